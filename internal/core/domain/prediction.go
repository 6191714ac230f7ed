package domain

import (
	"errors"
	"time"
)

var (
	ErrModelUnavailable = errors.New("valuation model unavailable")
	ErrInvalidInput     = errors.New("invalid valuation input")
)

// Segment is one of the four fixed price bands derived from the point price.
type Segment string

const (
	SegmentAffordable Segment = "Affordable"
	SegmentMidRange   Segment = "Mid-Range"
	SegmentPremium    Segment = "Premium"
	SegmentLuxury     Segment = "Luxury"
)

// Segment band boundaries, in the same currency unit as the model output.
// Comparisons are strictly less-than, ascending.
const (
	affordableUpper = 3_000_000
	midRangeUpper   = 8_000_000
	premiumUpper    = 20_000_000
)

// SegmentFor classifies a point price into its band.
func SegmentFor(price float64) Segment {
	switch {
	case price < affordableUpper:
		return SegmentAffordable
	case price < midRangeUpper:
		return SegmentMidRange
	case price < premiumUpper:
		return SegmentPremium
	default:
		return SegmentLuxury
	}
}

// Prediction is one row of the append-only valuation ledger. Rows are never
// mutated or deleted; PricePerArea is fixed at creation time.
type Prediction struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	Username       string        `json:"username" bson:"username"`
	Property       PropertyInput `json:"property" bson:"property"`
	PredictedPrice float64       `json:"predicted_price" bson:"predicted_price"`
	PricePerArea   float64       `json:"price_per_area" bson:"price_per_area"`
	Segment        Segment       `json:"segment" bson:"segment"`
	// Coordinates is nil when the location could not be resolved; such rows
	// carry no map pin.
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	// MediaRefs is a comma-joined list of stored media filenames.
	MediaRefs string    `json:"media_refs,omitempty" bson:"media_refs,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
