package geo

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/proproperty/valuation-api/internal/core/domain"
)

var lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "proproperty",
	Subsystem: "geo",
	Name:      "lookups_total",
	Help:      "Location lookups by kind and serving source.",
}, []string{"kind", "source"})

// Cache stores remote lookup results so repeated valuations for the same
// location skip the network. Implementations must be safe for concurrent use.
type Cache interface {
	// Get unmarshals the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
}

// Resolver resolves property locations in three tiers: packaged static
// tables, cached remote results, then the remote providers. It implements
// ports.LocationResolver and never returns an error: any failure is a miss.
type Resolver struct {
	remote RemoteClient
	cache  Cache // may be nil
	logger zerolog.Logger
}

func NewResolver(remote RemoteClient, cache Cache, logger zerolog.Logger) *Resolver {
	return &Resolver{remote: remote, cache: cache, logger: logger}
}

func (r *Resolver) ResolvePincode(ctx context.Context, pincode, countryCode string) (domain.Place, bool) {
	if place, ok := pincodeTable[pincode]; ok {
		lookupsTotal.WithLabelValues("pincode", "static").Inc()
		return place, true
	}

	key := fmt.Sprintf("geo:pin:%s:%s", countryCode, pincode)
	var place domain.Place
	if r.cacheGet(ctx, key, &place) {
		lookupsTotal.WithLabelValues("pincode", "cache").Inc()
		return place, true
	}

	place, err := r.remote.PincodeLookup(ctx, countryCode, pincode)
	if err != nil {
		lookupsTotal.WithLabelValues("pincode", "miss").Inc()
		r.logger.Debug().Err(err).Str("pincode", pincode).Msg("pincode lookup miss")
		return domain.Place{}, false
	}
	lookupsTotal.WithLabelValues("pincode", "remote").Inc()
	r.cacheSet(ctx, key, place)
	return place, true
}

func (r *Resolver) Geocode(ctx context.Context, city, state, country string) (domain.Coordinates, bool) {
	name := strings.ToLower(strings.TrimSpace(city))
	if name == "" {
		return domain.Coordinates{}, false
	}

	if coords, ok := cityTable[name]; ok {
		lookupsTotal.WithLabelValues("city", "static").Inc()
		return coords, true
	}
	// Partial match catches spellings like "navi mumbai" or "bangalore east".
	for known, coords := range cityTable {
		if strings.Contains(known, name) || strings.Contains(name, known) {
			lookupsTotal.WithLabelValues("city", "static").Inc()
			return coords, true
		}
	}

	key := fmt.Sprintf("geo:city:%s|%s|%s", name, strings.ToLower(state), strings.ToLower(country))
	var coords domain.Coordinates
	if r.cacheGet(ctx, key, &coords) {
		lookupsTotal.WithLabelValues("city", "cache").Inc()
		return coords, true
	}

	coords, err := r.remote.Search(ctx, city, state, country)
	if err != nil {
		lookupsTotal.WithLabelValues("city", "miss").Inc()
		r.logger.Debug().Err(err).Str("city", city).Msg("geocode miss")
		return domain.Coordinates{}, false
	}
	lookupsTotal.WithLabelValues("city", "remote").Inc()
	r.cacheSet(ctx, key, coords)
	return coords, true
}

func (r *Resolver) cacheGet(ctx context.Context, key string, dest any) bool {
	if r.cache == nil {
		return false
	}
	return r.cache.Get(ctx, key, dest)
}

func (r *Resolver) cacheSet(ctx context.Context, key string, value any) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, key, value)
}
