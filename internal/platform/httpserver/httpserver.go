// Package httpserver builds the ledger's HTTP server with its timeout
// defaults in one place.
package httpserver

import (
	"net/http"
	"time"
)

// New builds the server for the ledger API. Ledger payloads are small JSON
// bodies, so slow-client timeouts are tight.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
