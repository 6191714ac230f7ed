package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/proproperty/valuation-api/internal/core/domain"
	"github.com/proproperty/valuation-api/internal/core/ports"
)

// LocationHandler exposes the location resolver for form auto-fill.
type LocationHandler struct {
	resolver ports.LocationResolver
}

func NewLocationHandler(resolver ports.LocationResolver) *LocationHandler {
	return &LocationHandler{resolver: resolver}
}

// Countries returns the supported countries with their state lists.
//
// @Summary      Supported countries and states
// @Tags         locations
// @Produce      json
// @Success      200  {object}  countriesResponse
// @Router       /v1/locations/countries [get]
func (h *LocationHandler) Countries(c echo.Context) error {
	out := countriesResponse{}
	for _, name := range domain.Countries() {
		out.Countries = append(out.Countries, countryResponse{
			Name:   name,
			Code:   domain.CountryCode(name),
			States: domain.CountryStates[name],
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Pincode resolves a postal code to city, state, and coordinates.
//
// @Summary      Resolve a pincode
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Param        code     path      string  true   "Postal code"
// @Param        country  query     string  false  "Country name, defaults to India"
// @Success      200      {object}  placeResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/locations/pincode/{code} [get]
func (h *LocationHandler) Pincode(c echo.Context) error {
	code := c.Param("code")
	cc := domain.CountryCode(c.QueryParam("country"))

	place, ok := h.resolver.ResolvePincode(c.Request().Context(), code, cc)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "pincode not found")
	}

	return c.JSON(http.StatusOK, placeResponse{
		City:        place.City,
		State:       place.State,
		Coordinates: coordinatesResponse{Lat: place.Coordinates.Lat, Lon: place.Coordinates.Lon},
	})
}

// Geocode resolves a city name to coordinates.
//
// @Summary      Geocode a city
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Param        city     query     string  true   "City name"
// @Param        state    query     string  false  "State or region"
// @Param        country  query     string  false  "Country name"
// @Success      200      {object}  coordinatesResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/locations/geocode [get]
func (h *LocationHandler) Geocode(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "city is required")
	}

	coords, ok := h.resolver.Geocode(c.Request().Context(), city, c.QueryParam("state"), c.QueryParam("country"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "location not found")
	}

	return c.JSON(http.StatusOK, coordinatesResponse{Lat: coords.Lat, Lon: coords.Lon})
}
