// Package httpserver builds the process's HTTP server from configuration.
package httpserver

import (
	"net/http"

	"instructhub/internal/platform/config"
)

// New builds an HTTP server with timeouts sourced from configuration. The
// write timeout bounds slow clients draining large case snapshots; the
// middleware request timeout fires first for slow handlers.
func New(addr string, handler http.Handler, cfg config.HTTPConfig) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
