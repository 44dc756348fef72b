// Package httptransport assembles the HTTP surface: module handlers,
// request-scoped middleware, and the operational endpoints.
package httptransport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vigil/internal/screening/handler"
	"vigil/pkg/platform/httputil"
	"vigil/pkg/platform/middleware/requestid"
	"vigil/pkg/platform/middleware/requesttime"
)

// NewRouter wires all public endpoints. Business logic stays behind the
// module handlers; this layer only mounts them and the operational routes.
func NewRouter(screeningHandler *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)

	screeningHandler.Register(r)

	r.Get("/health", handleHealth)
	r.Get("/", handleIndex)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleIndex lists the service endpoints so operators can discover the
// surface without documentation at hand.
func handleIndex(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"service": "vigil payment screening",
		"endpoints": map[string]string{
			"POST /screen":              "screen a payer/beneficiary pair against the watchlist",
			"GET /watchlist":            "list watchlist entries",
			"GET /sanctioned-countries": "list sanctioned jurisdictions and aliases",
			"GET /health":               "service health",
			"GET /metrics":              "Prometheus metrics",
		},
	})
}
