package screening

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"vigil/internal/screening/metrics"
	dErrors "vigil/pkg/domain-errors"
)

// Store supplies the immutable reference tables. Implementations must return
// read-only snapshots: no screening operation mutates them.
type Store interface {
	Watchlist(ctx context.Context) []ReferenceEntry
	SanctionedJurisdictions(ctx context.Context) []SanctionedJurisdiction
}

// Service is the screening engine entry point. Each Screen call is a pure
// function of its two parties and the reference tables, so concurrent calls
// need no coordination.
type Service struct {
	store     Store
	logger    *slog.Logger
	metrics   *metrics.Metrics
	threshold float64
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithThreshold overrides the escalation threshold. Values outside (0,1] are
// ignored in favor of the default.
func WithThreshold(threshold float64) Option {
	return func(s *Service) {
		if threshold > 0 && threshold <= 1 {
			s.threshold = threshold
		}
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("watchlist store is required")
	}

	svc := &Service{
		store:     store,
		threshold: DefaultThreshold,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Screen scores both parties against the watchlist and reduces the candidate
// scores plus jurisdiction flags into one decision. It fails only when a
// party name is missing; every other irregularity degrades into a lower
// sub-score so a screening always yields a decision or an explicit error,
// never a silent wrong answer.
func (s *Service) Screen(ctx context.Context, payer, beneficiary Party) (*ScreeningResult, error) {
	start := time.Now()

	payer.Role = RolePayer
	beneficiary.Role = RoleBeneficiary

	if strings.TrimSpace(payer.Name) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "payer name is required")
	}
	if strings.TrimSpace(beneficiary.Name) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "beneficiary name is required")
	}

	entries := s.store.Watchlist(ctx)
	jurisdictions := NewJurisdictions(s.store.SanctionedJurisdictions(ctx))

	// Score the two parties concurrently. Each writes its own slot, and the
	// reference tables are read-only, so no locking is needed.
	var payerCandidates, beneficiaryCandidates []CandidateScore
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		payerCandidates = MatchParty(payer, entries, jurisdictions)
		return gctx.Err()
	})
	g.Go(func() error {
		beneficiaryCandidates = MatchParty(beneficiary, entries, jurisdictions)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "candidate scoring aborted")
	}

	result := s.decide(payer, beneficiary, payerCandidates, beneficiaryCandidates, jurisdictions)

	s.metrics.IncrementOutcome(string(result.Decision), string(result.Reason))
	s.metrics.ObserveBestScore(result.BestScore)
	s.metrics.ObserveScreenLatency(time.Since(start))

	if s.logger != nil && result.Decision == DecisionEscalate {
		s.logger.InfoContext(ctx, "screening escalated",
			"reason", result.Reason,
			"best_role", result.BestRole,
			"best_score", result.BestScore,
			"sanction_flag", result.SanctionFlag,
		)
	}

	return result, nil
}

// decide applies the decision rules in precedence order: sanctioned
// jurisdiction first, then the score threshold, then release.
func (s *Service) decide(payer, beneficiary Party, payerCandidates, beneficiaryCandidates []CandidateScore, jurisdictions *Jurisdictions) *ScreeningResult {
	result := &ScreeningResult{
		BestRole:   RoleNone,
		Candidates: mergeCandidates(payerCandidates, beneficiaryCandidates),
	}

	for _, party := range []Party{payer, beneficiary} {
		code := jurisdictions.Canonicalize(party.Country)
		if jurisdictions.IsSanctioned(code) {
			result.SanctionFlag = true
			result.SanctionReasons = append(result.SanctionReasons,
				fmt.Sprintf("%s country in sanctioned list: %s", party.Role, code))
		}
		if alias, ok := jurisdictions.AddressMention(party.Address); ok {
			result.SanctionFlag = true
			result.SanctionReasons = append(result.SanctionReasons,
				fmt.Sprintf("%s address mentions sanctioned country: %s", party.Role, alias))
		}
	}

	if len(result.Candidates) > 0 {
		best := result.Candidates[0]
		result.BestRole = best.Role
		result.BestScore = best.Composite
		result.Breakdown = &best
	}

	switch {
	case result.SanctionFlag:
		result.Decision = DecisionEscalate
		result.Reason = ReasonSanctionedCountry
	case result.BestScore >= s.threshold:
		result.Decision = DecisionEscalate
		result.Reason = ReasonScoreThreshold
	default:
		result.Decision = DecisionRelease
		result.Reason = ReasonBelowThreshold
	}

	return result
}

// mergeCandidates interleaves both parties' scores in watchlist order, then
// stable-sorts descending by composite. The stable sort keeps ties in
// reference-entry insertion order.
func mergeCandidates(payerCandidates, beneficiaryCandidates []CandidateScore) []CandidateScore {
	merged := make([]CandidateScore, 0, len(payerCandidates)+len(beneficiaryCandidates))
	for i := range payerCandidates {
		merged = append(merged, payerCandidates[i])
		if i < len(beneficiaryCandidates) {
			merged = append(merged, beneficiaryCandidates[i])
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Composite > merged[j].Composite
	})
	return merged
}

// Watchlist exposes the read-only reference table for adapter endpoints.
func (s *Service) Watchlist(ctx context.Context) []ReferenceEntry {
	return s.store.Watchlist(ctx)
}

// SanctionedJurisdictions exposes the read-only jurisdiction table for
// adapter endpoints.
func (s *Service) SanctionedJurisdictions(ctx context.Context) []SanctionedJurisdiction {
	return s.store.SanctionedJurisdictions(ctx)
}
