package geo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/proproperty/valuation-api/internal/core/domain"
)

// RemoteClient talks to the external location providers. It sits behind an
// interface so the resolver can be tested without network access.
type RemoteClient interface {
	PincodeLookup(ctx context.Context, countryCode, pincode string) (domain.Place, error)
	Search(ctx context.Context, city, state, country string) (domain.Coordinates, error)
}

type RemoteConfig struct {
	PostalBaseURL    string
	NominatimBaseURL string
	UserAgent        string
	PostalTimeout    time.Duration
	GeocodeTimeout   time.Duration
}

type httpRemote struct {
	postal    *resty.Client
	nominatim *resty.Client
	userAgent string
}

func NewRemoteClient(cfg RemoteConfig) RemoteClient {
	if cfg.PostalBaseURL == "" {
		cfg.PostalBaseURL = "https://api.zippopotam.us"
	}
	if cfg.NominatimBaseURL == "" {
		cfg.NominatimBaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "ProPropertyAI/1.0"
	}
	if cfg.PostalTimeout <= 0 {
		cfg.PostalTimeout = 4 * time.Second
	}
	if cfg.GeocodeTimeout <= 0 {
		cfg.GeocodeTimeout = 5 * time.Second
	}

	return &httpRemote{
		postal: resty.New().
			SetBaseURL(strings.TrimRight(cfg.PostalBaseURL, "/")).
			SetTimeout(cfg.PostalTimeout),
		nominatim: resty.New().
			SetBaseURL(strings.TrimRight(cfg.NominatimBaseURL, "/")).
			SetTimeout(cfg.GeocodeTimeout),
		userAgent: cfg.UserAgent,
	}
}

type postalResponse struct {
	Places []struct {
		PlaceName string `json:"place name"`
		State     string `json:"state"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"places"`
}

func (h *httpRemote) PincodeLookup(ctx context.Context, countryCode, pincode string) (domain.Place, error) {
	var out postalResponse
	resp, err := h.postal.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/%s/%s", countryCode, pincode))
	if err != nil {
		return domain.Place{}, fmt.Errorf("postal lookup: %w", err)
	}
	if resp.IsError() {
		return domain.Place{}, fmt.Errorf("postal lookup: status %d", resp.StatusCode())
	}
	if len(out.Places) == 0 {
		return domain.Place{}, fmt.Errorf("postal lookup: no places for %s/%s", countryCode, pincode)
	}

	first := out.Places[0]
	lat, err := strconv.ParseFloat(first.Latitude, 64)
	if err != nil {
		return domain.Place{}, fmt.Errorf("postal lookup: bad latitude %q", first.Latitude)
	}
	lon, err := strconv.ParseFloat(first.Longitude, 64)
	if err != nil {
		return domain.Place{}, fmt.Errorf("postal lookup: bad longitude %q", first.Longitude)
	}
	return domain.Place{
		City:        first.PlaceName,
		State:       first.State,
		Coordinates: domain.Coordinates{Lat: lat, Lon: lon},
	}, nil
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (h *httpRemote) Search(ctx context.Context, city, state, country string) (domain.Coordinates, error) {
	var out []nominatimResult
	resp, err := h.nominatim.R().
		SetContext(ctx).
		SetHeader("User-Agent", h.userAgent).
		SetQueryParams(map[string]string{
			"q":      fmt.Sprintf("%s,%s,%s", city, state, country),
			"format": "json",
			"limit":  "1",
		}).
		SetResult(&out).
		Get("/search")
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode search: %w", err)
	}
	if resp.IsError() {
		return domain.Coordinates{}, fmt.Errorf("geocode search: status %d", resp.StatusCode())
	}
	if len(out) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode search: no results for %q", city)
	}

	lat, err := strconv.ParseFloat(out[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode search: bad latitude %q", out[0].Lat)
	}
	lon, err := strconv.ParseFloat(out[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode search: bad longitude %q", out[0].Lon)
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
