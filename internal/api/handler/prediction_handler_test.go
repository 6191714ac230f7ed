package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/proproperty/valuation-api/internal/core/domain"
	"github.com/proproperty/valuation-api/internal/core/ports"
)

func samplePrediction(username, city string) domain.Prediction {
	return domain.Prediction{
		ID:       "p1",
		Username: username,
		Property: domain.PropertyInput{
			Country: "India", State: "Maharashtra", City: city,
			Area: 1200, Bedrooms: 3, Bathrooms: 2, Stories: 2,
			Furnishing: domain.SemiFurnished,
		},
		PredictedPrice: 3_800_000,
		PricePerArea:   3_800_000.0 / 1200,
		Segment:        domain.SegmentMidRange,
		Coordinates:    &domain.Coordinates{Lat: 18.9388, Lon: 72.8354},
		CreatedAt:      time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestPredictionHandler_List_All(t *testing.T) {
	e := newTestEcho()
	var gotFilter string
	svc := &stubValuationService{
		historyFn: func(ctx context.Context, username string) ([]domain.Prediction, error) {
			gotFilter = username
			return []domain.Prediction{samplePrediction("alice", "Mumbai"), samplePrediction("bob", "Pune")}, nil
		},
	}
	handler := NewPredictionHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/predictions", nil)
	c, rec := authedContext(e, req)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter != "" {
		t.Errorf("expected unfiltered history, got filter %q", gotFilter)
	}

	var resp listPredictionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Errorf("expected 2 rows, got %+v", resp)
	}
	if resp.Data[0].Property.City != "Mumbai" {
		t.Errorf("unexpected first row: %+v", resp.Data[0])
	}
}

func TestPredictionHandler_List_Mine(t *testing.T) {
	e := newTestEcho()
	var gotFilter string
	svc := &stubValuationService{
		historyFn: func(ctx context.Context, username string) ([]domain.Prediction, error) {
			gotFilter = username
			return []domain.Prediction{samplePrediction("alice", "Mumbai")}, nil
		},
	}
	handler := NewPredictionHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/predictions?mine=true", nil)
	c, _ := authedContext(e, req)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotFilter != "alice" {
		t.Errorf("expected caller filter, got %q", gotFilter)
	}
}

func TestPredictionHandler_List_EmptyLedger(t *testing.T) {
	e := newTestEcho()
	svc := &stubValuationService{
		historyFn: func(ctx context.Context, username string) ([]domain.Prediction, error) {
			return []domain.Prediction{}, nil
		},
	}
	handler := NewPredictionHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/predictions", nil)
	c, rec := authedContext(e, req)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp listPredictionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 0 || resp.Data == nil {
		t.Errorf("expected empty non-null data array, got %s", rec.Body.String())
	}
}

func TestPredictionHandler_Summary(t *testing.T) {
	e := newTestEcho()
	svc := &stubValuationService{
		summaryFn: func(ctx context.Context) (*ports.LedgerSummary, error) {
			return &ports.LedgerSummary{
				Total:           3,
				AvgPrice:        5_000_000,
				AvgPricePerArea: 4_100,
				Segments: []ports.SegmentCount{
					{Segment: domain.SegmentMidRange, Count: 2},
					{Segment: domain.SegmentPremium, Count: 1},
				},
				Cities: []ports.CityCount{{City: "Mumbai", Count: 2}, {City: "Pune", Count: 1}},
			}, nil
		},
	}
	handler := NewPredictionHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/predictions/summary", nil)
	c, rec := authedContext(e, req)

	if err := handler.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp summaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 3 || resp.AvgPrice != 5_000_000 {
		t.Errorf("unexpected summary: %+v", resp)
	}
	if len(resp.Segments) != 2 || resp.Segments[0].Segment != "Mid-Range" {
		t.Errorf("unexpected segments: %+v", resp.Segments)
	}
}

func TestPredictionHandler_Map(t *testing.T) {
	e := newTestEcho()
	svc := &stubValuationService{
		mapPinsFn: func(ctx context.Context) ([]ports.MapPin, error) {
			return []ports.MapPin{{
				City:           "Mumbai",
				State:          "Maharashtra",
				PredictedPrice: 3_800_000,
				Segment:        domain.SegmentMidRange,
				Coordinates:    domain.Coordinates{Lat: 18.9388, Lon: 72.8354},
			}}, nil
		},
	}
	handler := NewPredictionHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/predictions/map", nil)
	c, rec := authedContext(e, req)

	if err := handler.Map(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []mapPinResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].Coordinates.Lat != 18.9388 {
		t.Errorf("unexpected pins: %+v", resp)
	}
}
