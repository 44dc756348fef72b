package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vigil/internal/screening"
	"vigil/internal/screening/metrics"
	"vigil/pkg/platform/httputil"
	"vigil/pkg/requestcontext"
)

// Service defines the interface for screening operations.
type Service interface {
	Screen(ctx context.Context, payer, beneficiary screening.Party) (*screening.ScreeningResult, error)
	Watchlist(ctx context.Context) []screening.ReferenceEntry
	SanctionedJurisdictions(ctx context.Context) []screening.SanctionedJurisdiction
}

// Handler wires screening endpoints to the screening service.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a screening handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts screening endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/screen", h.HandleScreen)
	r.Get("/watchlist", h.HandleWatchlist)
	r.Get("/sanctioned-countries", h.HandleSanctionedCountries)
}

// HandleScreen handles POST /screen requests.
func (h *Handler) HandleScreen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ScreenRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Screen(ctx, req.Payer(), req.Beneficiary())
	if err != nil {
		h.logger.ErrorContext(ctx, "screening failed",
			"request_id", requestID,
			"reference", req.Reference,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "payment screened",
		"request_id", requestID,
		"reference", req.Reference,
		"decision", result.Decision,
		"reason", result.Reason,
		"best_score", result.BestScore,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result, req, requestcontext.Now(ctx)))
}

// HandleWatchlist handles GET /watchlist requests.
func (h *Handler) HandleWatchlist(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromEntries(h.service.Watchlist(r.Context())))
}

// HandleSanctionedCountries handles GET /sanctioned-countries requests.
func (h *Handler) HandleSanctionedCountries(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromJurisdictions(h.service.SanctionedJurisdictions(r.Context())))
}
