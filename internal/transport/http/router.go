// Package transport wires the public HTTP surface: health, metrics, and the
// authenticated ledger/registry/admin routes.
package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ledgerhandler "pbmledger/internal/ledger/handler"
	"pbmledger/internal/platform/metrics"
	"pbmledger/internal/platform/middleware"
	policyhandler "pbmledger/internal/policy/handler"
	registryhandler "pbmledger/internal/registry/handler"
)

// Handlers groups the feature handlers the router mounts.
type Handlers struct {
	Registry *registryhandler.Handler
	Ledger   *ledgerhandler.Handler
	Policy   *policyhandler.Handler
}

// NewRouter assembles the middleware chain and mounts all routes.
func NewRouter(h Handlers, validator middleware.TokenValidator, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(m))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(validator, logger))
		h.Registry.Register(r)
		h.Ledger.Register(r)
		h.Policy.Register(r)
	})

	return r
}
