package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/proproperty/valuation-api/internal/api/metrics"
	"github.com/proproperty/valuation-api/internal/core/domain"
	"github.com/proproperty/valuation-api/internal/core/ports"
	"github.com/proproperty/valuation-api/internal/infrastructure/media"
)

// MediaStore persists uploaded property media and returns stored refs.
type MediaStore interface {
	Save(username string, uploads []media.Upload) ([]string, error)
}

// ValuationHandler handles POST /v1/valuations.
type ValuationHandler struct {
	service ports.ValuationService
	store   MediaStore // may be nil when media storage is disabled
}

func NewValuationHandler(service ports.ValuationService, store MediaStore) *ValuationHandler {
	return &ValuationHandler{service: service, store: store}
}

// Create runs a valuation and appends it to the prediction ledger.
//
// Accepts either a JSON body or a multipart form; the multipart variant may
// carry property photos and videos under the "media" field.
//
// @Summary      Value a property
// @Tags         valuations
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      valuationRequest  true  "Property attributes"
// @Success      201   {object}  valuationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/valuations [post]
func (h *ValuationHandler) Create(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req valuationRequest
	if err := c.Bind(&req); err != nil {
		metrics.ValuationErrorsTotal.WithLabelValues("invalid_input").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ValuationErrorsTotal.WithLabelValues("invalid_input").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mediaRefs, err := h.saveMedia(c, username)
	if err != nil {
		return err
	}

	input := ports.ValuationInput{
		Username:  username,
		Property:  toPropertyInput(req),
		MediaRefs: mediaRefs,
	}
	if req.Lat != nil && req.Lon != nil {
		input.Coordinates = &domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}
	}

	start := time.Now()
	result, err := h.service.Appraise(c.Request().Context(), input)
	if err != nil {
		metrics.ValuationErrorsTotal.WithLabelValues(errorReason(err)).Inc()
		return err
	}
	metrics.ValuationDuration.Observe(time.Since(start).Seconds())
	metrics.ValuationsTotal.WithLabelValues(string(result.Segment)).Inc()

	return c.JSON(http.StatusCreated, valuationResponse{
		PredictionID:   result.PredictionID,
		PredictedPrice: result.PredictedPrice,
		BandLow:        result.BandLow,
		BandHigh:       result.BandHigh,
		PricePerArea:   result.PricePerArea,
		Segment:        string(result.Segment),
		Coordinates:    toCoordinatesResponse(result.Coordinates),
		MediaRefs:      mediaRefs,
		CreatedAt:      result.CreatedAt,
	})
}

// saveMedia stores any uploaded files from a multipart request. JSON requests
// carry no media and pass straight through.
func (h *ValuationHandler) saveMedia(c echo.Context, username string) ([]string, error) {
	if h.store == nil || !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	uploads := make([]media.Upload, 0, len(form.File["media"]))
	for _, fh := range form.File["media"] {
		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		defer src.Close()
		uploads = append(uploads, media.Upload{Filename: fh.Filename, Content: src})
	}

	refs, err := h.store.Save(username, uploads)
	if err != nil {
		return nil, fmt.Errorf("store media: %w", err)
	}
	metrics.MediaUploadsTotal.Add(float64(len(refs)))
	return refs, nil
}

func toPropertyInput(req valuationRequest) domain.PropertyInput {
	return domain.PropertyInput{
		Country:   req.Country,
		State:     req.State,
		City:      req.City,
		Pincode:   req.Pincode,
		Area:      req.Area,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		Stories:   req.Stories,
		Parking:   req.Parking,
		Amenities: domain.Amenities{
			MainRoad:        req.Mainroad,
			GuestRoom:       req.Guestroom,
			Basement:        req.Basement,
			HotWaterHeating: req.HotWaterHeating,
			AirConditioning: req.AirConditioning,
			PreferredArea:   req.PrefArea,
		},
		Furnishing: domain.Furnishing(req.Furnishing),
	}
}

func toCoordinatesResponse(c *domain.Coordinates) *coordinatesResponse {
	if c == nil {
		return nil
	}
	return &coordinatesResponse{Lat: c.Lat, Lon: c.Lon}
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrModelUnavailable):
		return "model_unavailable"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "storage"
	}
}
