package ports

import (
	"context"

	"github.com/proproperty/valuation-api/internal/core/domain"
)

// LocationResolver resolves a postal code or a free-text city/state/country
// triple to an approximate position. Resolution is best-effort and never
// returns an error: a miss is reported through the ok flag so callers cannot
// mistake an unresolved location for a real point.
type LocationResolver interface {
	ResolvePincode(ctx context.Context, pincode, countryCode string) (domain.Place, bool)
	Geocode(ctx context.Context, city, state, country string) (domain.Coordinates, bool)
}
