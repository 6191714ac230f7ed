package ports

import (
	"context"
	"time"

	"github.com/proproperty/valuation-api/internal/core/domain"
)

// ValuationInput carries everything needed to run one valuation.
type ValuationInput struct {
	Username string
	Property domain.PropertyInput
	// Coordinates, when non-nil, overrides resolver lookup (e.g. device GPS).
	Coordinates *domain.Coordinates
	// MediaRefs are the stored filenames of any uploaded media.
	MediaRefs []string
}

// ValuationResult is returned after a successful valuation run.
type ValuationResult struct {
	PredictionID   string
	PredictedPrice float64
	// BandLow/BandHigh form the symmetric ±10% display band.
	BandLow      float64
	BandHigh     float64
	PricePerArea float64
	Segment      domain.Segment
	Coordinates  *domain.Coordinates
	CreatedAt    time.Time
}

// SegmentCount pairs a price segment with its occurrence count.
type SegmentCount struct {
	Segment domain.Segment `json:"segment"`
	Count   int            `json:"count"`
}

// CityCount pairs a city name with its occurrence count.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// LedgerSummary aggregates the full prediction history.
type LedgerSummary struct {
	Total           int
	AvgPrice        float64
	AvgPricePerArea float64
	Segments        []SegmentCount
	Cities          []CityCount
}

// MapPin is one plottable prediction: only rows with resolved coordinates
// become pins.
type MapPin struct {
	City           string
	State          string
	PredictedPrice float64
	Segment        domain.Segment
	Coordinates    domain.Coordinates
	CreatedAt      time.Time
}

// ValuationService defines the use-case operations of the valuation engine
// and its ledger reads.
type ValuationService interface {
	Appraise(ctx context.Context, input ValuationInput) (*ValuationResult, error)
	History(ctx context.Context, username string) ([]domain.Prediction, error)
	Summary(ctx context.Context) (*LedgerSummary, error)
	MapPins(ctx context.Context) ([]MapPin, error)
}
