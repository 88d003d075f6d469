package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics shared across the ledger service.
type Metrics struct {
	TypesCreated     prometheus.Counter
	Mints            prometheus.Counter
	Redemptions      prometheus.Counter
	Conversions      prometheus.Counter
	Transfers        prometheus.Counter
	PolicyViolations prometheus.Counter
	RequestLatency   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TypesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pbm_types_created_total",
			Help: "Total number of PBM types registered",
		}),
		Mints: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pbm_mints_total",
			Help: "Total number of successful mint operations",
		}),
		Redemptions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pbm_redemptions_total",
			Help: "Total number of successful redemptions",
		}),
		Conversions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pbm_conversions_total",
			Help: "Total number of frozen-to-settlement conversions",
		}),
		Transfers: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pbm_transfers_total",
			Help: "Total number of successful transfer batches",
		}),
		PolicyViolations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pbm_policy_violations_total",
			Help: "Total number of operations rejected by the policy engine",
		}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pbm_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// NewForTest creates metrics on a private registry so parallel test packages
// do not collide on promauto's default registerer.
func NewForTest() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		TypesCreated:     factory.NewCounter(prometheus.CounterOpts{Name: "pbm_types_created_total"}),
		Mints:            factory.NewCounter(prometheus.CounterOpts{Name: "pbm_mints_total"}),
		Redemptions:      factory.NewCounter(prometheus.CounterOpts{Name: "pbm_redemptions_total"}),
		Conversions:      factory.NewCounter(prometheus.CounterOpts{Name: "pbm_conversions_total"}),
		Transfers:        factory.NewCounter(prometheus.CounterOpts{Name: "pbm_transfers_total"}),
		PolicyViolations: factory.NewCounter(prometheus.CounterOpts{Name: "pbm_policy_violations_total"}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pbm_http_request_duration_seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
