package httpserver

import (
	"net/http"
	"time"
)

// New builds the screening API server. Screening calls are CPU-bound and
// fast, so the write timeout is tight; slow-client header reads are cut off
// early.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
}
