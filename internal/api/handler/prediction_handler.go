package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/proproperty/valuation-api/internal/core/domain"
	"github.com/proproperty/valuation-api/internal/core/ports"
)

// PredictionHandler serves the ledger read endpoints: history, summary, map.
type PredictionHandler struct {
	service ports.ValuationService
}

func NewPredictionHandler(service ports.ValuationService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// List returns ledger rows, newest first.
//
// @Summary      List predictions
// @Tags         predictions
// @Produce      json
// @Security     BearerAuth
// @Param        mine  query     bool  false  "Only the caller's predictions"
// @Success      200   {object}  listPredictionsResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/predictions [get]
func (h *PredictionHandler) List(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	filter := ""
	if c.QueryParam("mine") == "true" {
		filter = username
	}

	rows, err := h.service.History(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	data := make([]predictionResponse, 0, len(rows))
	for _, row := range rows {
		data = append(data, toPredictionResponse(row))
	}
	return c.JSON(http.StatusOK, listPredictionsResponse{Total: len(data), Data: data})
}

// Summary returns ledger-wide aggregates for the analytics dashboard.
//
// @Summary      Prediction ledger summary
// @Tags         predictions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  summaryResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/predictions/summary [get]
func (h *PredictionHandler) Summary(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}

	segments := make([]segmentCountResponse, 0, len(summary.Segments))
	for _, sc := range summary.Segments {
		segments = append(segments, segmentCountResponse{Segment: string(sc.Segment), Count: sc.Count})
	}
	cities := make([]cityCountResponse, 0, len(summary.Cities))
	for _, cc := range summary.Cities {
		cities = append(cities, cityCountResponse{City: cc.City, Count: cc.Count})
	}

	return c.JSON(http.StatusOK, summaryResponse{
		Total:           summary.Total,
		AvgPrice:        summary.AvgPrice,
		AvgPricePerArea: summary.AvgPricePerArea,
		Segments:        segments,
		Cities:          cities,
	})
}

// Map returns the plottable predictions. Rows without resolved coordinates
// are omitted.
//
// @Summary      Prediction map pins
// @Tags         predictions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   mapPinResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/predictions/map [get]
func (h *PredictionHandler) Map(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	pins, err := h.service.MapPins(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]mapPinResponse, 0, len(pins))
	for _, pin := range pins {
		out = append(out, mapPinResponse{
			City:           pin.City,
			State:          pin.State,
			PredictedPrice: pin.PredictedPrice,
			Segment:        string(pin.Segment),
			Coordinates:    coordinatesResponse{Lat: pin.Coordinates.Lat, Lon: pin.Coordinates.Lon},
			CreatedAt:      pin.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func toPredictionResponse(p domain.Prediction) predictionResponse {
	return predictionResponse{
		ID:       p.ID,
		Username: p.Username,
		Property: propertyResponse{
			Country:         p.Property.Country,
			State:           p.Property.State,
			City:            p.Property.City,
			Pincode:         p.Property.Pincode,
			Area:            p.Property.Area,
			Bedrooms:        p.Property.Bedrooms,
			Bathrooms:       p.Property.Bathrooms,
			Stories:         p.Property.Stories,
			Parking:         p.Property.Parking,
			Mainroad:        p.Property.Amenities.MainRoad,
			Guestroom:       p.Property.Amenities.GuestRoom,
			Basement:        p.Property.Amenities.Basement,
			HotWaterHeating: p.Property.Amenities.HotWaterHeating,
			AirConditioning: p.Property.Amenities.AirConditioning,
			PrefArea:        p.Property.Amenities.PreferredArea,
			Furnishing:      string(p.Property.Furnishing),
		},
		PredictedPrice: p.PredictedPrice,
		PricePerArea:   p.PricePerArea,
		Segment:        string(p.Segment),
		Coordinates:    toCoordinatesResponse(p.Coordinates),
		MediaRefs:      p.MediaRefs,
		CreatedAt:      p.CreatedAt,
	}
}
