// Package metrics defines the custom Prometheus metrics of the valuation API.
// It is the single source of truth for metric names, labels, and help strings.
// Everything registers against the default registry at init time via promauto;
// geo lookup metrics live next to the resolver that drives them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "proproperty"

// ValuationsTotal counts completed valuations.
// Label:
//   - segment: the assigned price segment ("Affordable", "Mid-Range", ...)
var ValuationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "valuations_total",
		Help:      "Total number of valuations recorded, by price segment.",
	},
	[]string{"segment"},
)

// ValuationErrorsTotal counts valuation requests that failed.
// Label:
//   - reason: "model_unavailable", "invalid_input", or "storage"
var ValuationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "valuation_errors_total",
		Help:      "Total number of valuation requests that failed, by reason.",
	},
	[]string{"reason"},
)

// ValuationDuration measures a full valuation round trip: resolve, score,
// persist.
var ValuationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "valuation_duration_seconds",
		Help:      "Duration of a valuation from request decode to ledger write.",
		Buckets:   prometheus.DefBuckets,
	},
)

// MediaUploadsTotal counts stored media files.
var MediaUploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_uploads_total",
		Help:      "Total number of property media files stored.",
	},
)
