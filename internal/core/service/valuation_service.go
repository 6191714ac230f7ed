package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/proproperty/valuation-api/internal/core/domain"
	"github.com/proproperty/valuation-api/internal/core/model"
	"github.com/proproperty/valuation-api/internal/core/ports"
)

const minArea = 100

// bandSpread is the symmetric display band around the point price.
const bandSpread = 0.10

// ValuationService scores property inputs against the regression artifact
// and maintains the append-only prediction ledger.
type ValuationService struct {
	repo     ports.PredictionRepository
	resolver ports.LocationResolver
	artifact *model.Artifact // nil when the artifacts were absent at startup
	logger   zerolog.Logger
}

func NewValuationService(
	repo ports.PredictionRepository,
	resolver ports.LocationResolver,
	artifact *model.Artifact,
	logger zerolog.Logger,
) *ValuationService {
	return &ValuationService{repo: repo, resolver: resolver, artifact: artifact, logger: logger}
}

// Appraise runs one valuation: resolve coordinates, score the model,
// classify the price, persist the ledger row.
func (s *ValuationService) Appraise(ctx context.Context, input ports.ValuationInput) (*ports.ValuationResult, error) {
	if s.artifact == nil {
		return nil, domain.ErrModelUnavailable
	}
	if err := validateProperty(input.Property); err != nil {
		return nil, err
	}

	prop := input.Property
	coords := input.Coordinates
	if coords == nil {
		coords = s.resolve(ctx, &prop)
	}

	row, err := s.artifact.BuildRow(prop)
	if err != nil {
		return nil, fmt.Errorf("appraise: %w", err)
	}
	price := s.artifact.Predict(row)

	segment := domain.SegmentFor(price)
	now := time.Now().UTC()

	record := &domain.Prediction{
		Username:       input.Username,
		Property:       prop,
		PredictedPrice: price,
		PricePerArea:   price / prop.Area,
		Segment:        segment,
		Coordinates:    coords,
		MediaRefs:      strings.Join(input.MediaRefs, ","),
		CreatedAt:      now,
	}
	if err := s.repo.Record(ctx, record); err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to record prediction")
		return nil, err
	}

	s.logger.Info().
		Str("username", input.Username).
		Str("city", prop.City).
		Str("segment", string(segment)).
		Float64("price", price).
		Msg("valuation recorded")

	return &ports.ValuationResult{
		PredictionID:   record.ID,
		PredictedPrice: price,
		BandLow:        price * (1 - bandSpread),
		BandHigh:       price * (1 + bandSpread),
		PricePerArea:   record.PricePerArea,
		Segment:        segment,
		Coordinates:    coords,
		CreatedAt:      now,
	}, nil
}

// resolve fills in coordinates, preferring the postal-code path. A pincode
// hit also backfills city and state when the caller left them blank (the
// original form auto-fills these). A total miss yields nil: no map pin.
func (s *ValuationService) resolve(ctx context.Context, prop *domain.PropertyInput) *domain.Coordinates {
	if prop.Pincode != "" {
		if place, ok := s.resolver.ResolvePincode(ctx, prop.Pincode, domain.CountryCode(prop.Country)); ok {
			if prop.City == "" {
				prop.City = place.City
			}
			if prop.State == "" {
				prop.State = place.State
			}
			c := place.Coordinates
			return &c
		}
	}
	if coords, ok := s.resolver.Geocode(ctx, prop.City, prop.State, prop.Country); ok {
		c := coords
		return &c
	}
	return nil
}

func validateProperty(p domain.PropertyInput) error {
	// A pincode alone is enough to place the property: city and state get
	// backfilled from the postal lookup.
	switch {
	case strings.TrimSpace(p.City) == "" && strings.TrimSpace(p.Pincode) == "":
		return fmt.Errorf("%w: city is required", domain.ErrInvalidInput)
	case strings.TrimSpace(p.State) == "" && strings.TrimSpace(p.Pincode) == "":
		return fmt.Errorf("%w: state is required", domain.ErrInvalidInput)
	case p.Area < minArea:
		return fmt.Errorf("%w: area must be at least %d", domain.ErrInvalidInput, minArea)
	case !p.Furnishing.Valid():
		return fmt.Errorf("%w: unknown furnishing category %q", domain.ErrInvalidInput, p.Furnishing)
	}
	return nil
}

// History returns the ledger, newest first, optionally scoped to one user.
// A failed read degrades to an empty history rather than surfacing a hard
// error: the dashboard stays usable when storage is down.
func (s *ValuationService) History(ctx context.Context, username string) ([]domain.Prediction, error) {
	rows, err := s.repo.List(ctx, username)
	if err != nil {
		s.logger.Warn().Err(err).Msg("history read failed, returning empty set")
		return []domain.Prediction{}, nil
	}
	return rows, nil
}

// Summary aggregates the full ledger in one pass.
func (s *ValuationService) Summary(ctx context.Context) (*ports.LedgerSummary, error) {
	rows, err := s.History(ctx, "")
	if err != nil {
		return nil, err
	}

	summary := &ports.LedgerSummary{Total: len(rows)}
	if len(rows) == 0 {
		return summary, nil
	}

	var priceSum, ppaSum float64
	segments := make(map[domain.Segment]int)
	cities := make(map[string]int)
	for _, r := range rows {
		priceSum += r.PredictedPrice
		ppaSum += r.PricePerArea
		segments[r.Segment]++
		if r.Property.City != "" {
			cities[r.Property.City]++
		}
	}
	summary.AvgPrice = priceSum / float64(len(rows))
	summary.AvgPricePerArea = ppaSum / float64(len(rows))

	for _, seg := range []domain.Segment{
		domain.SegmentAffordable, domain.SegmentMidRange,
		domain.SegmentPremium, domain.SegmentLuxury,
	} {
		if n := segments[seg]; n > 0 {
			summary.Segments = append(summary.Segments, ports.SegmentCount{Segment: seg, Count: n})
		}
	}

	for city, n := range cities {
		summary.Cities = append(summary.Cities, ports.CityCount{City: city, Count: n})
	}
	sort.Slice(summary.Cities, func(i, j int) bool {
		if summary.Cities[i].Count != summary.Cities[j].Count {
			return summary.Cities[i].Count > summary.Cities[j].Count
		}
		return summary.Cities[i].City < summary.Cities[j].City
	})

	return summary, nil
}

// MapPins returns the plottable subset of the ledger: rows whose location
// was actually resolved.
func (s *ValuationService) MapPins(ctx context.Context) ([]ports.MapPin, error) {
	rows, err := s.History(ctx, "")
	if err != nil {
		return nil, err
	}

	pins := make([]ports.MapPin, 0, len(rows))
	for _, r := range rows {
		if r.Coordinates == nil {
			continue
		}
		pins = append(pins, ports.MapPin{
			City:           r.Property.City,
			State:          r.Property.State,
			PredictedPrice: r.PredictedPrice,
			Segment:        r.Segment,
			Coordinates:    *r.Coordinates,
			CreatedAt:      r.CreatedAt,
		})
	}
	return pins, nil
}
