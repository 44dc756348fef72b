// Package screening implements the payment party match & decision engine:
// text normalization, name/address similarity, sanctioned-jurisdiction
// resolution, per-watchlist-entry scoring, and the escalate/release rule.
//
// The engine is pure: it computes over the two request parties and the
// immutable reference tables, holds no per-request state between calls, and
// performs no I/O below Service.Screen.
package screening

import "time"

// Role identifies which side of the transaction a party is on.
type Role string

const (
	RolePayer       Role = "PAYER"
	RoleBeneficiary Role = "BENEFICIARY"
	RoleNone        Role = "NONE"
)

// Decision is the binary compliance outcome of a screening call.
type Decision string

const (
	DecisionEscalate Decision = "ESCALATE"
	DecisionRelease  Decision = "RELEASE"
)

// Reason states which rule produced the decision.
type Reason string

const (
	ReasonSanctionedCountry Reason = "Sanctioned Country"
	ReasonScoreThreshold    Reason = "Score Threshold"
	ReasonBelowThreshold    Reason = "Below Threshold"
)

// Party is one side of a screened transaction. DOB is optional; a nil DOB
// contributes nothing to the score. Country carries the raw code or name as
// supplied by the caller and is canonicalized during matching.
type Party struct {
	Name    string
	Address string
	Country string
	DOB     *time.Time
	Role    Role
}

// ReferenceEntry is a single watchlist record. Entries are loaded once at
// startup and never mutated. Address is optional; entries without one score
// zero on the address component.
type ReferenceEntry struct {
	Name       string
	AKA        []string
	Address    string
	ListSource string
	Category   string
	Country    string // canonical code
	DOB        *time.Time
}

// SanctionedJurisdiction is one sanctioned country with the aliases that
// resolve to it (e.g. canonical "UA" with aliases "ukraine" and the
// misspelling "ukraise" seen on real payment instructions).
type SanctionedJurisdiction struct {
	CanonicalCode string
	Aliases       []string
}

// CandidateScore is the per-entry breakdown for one party. All sub-scores and
// the composite lie in [0,1]. Computed fresh per request, never cached.
type CandidateScore struct {
	Entry        *ReferenceEntry
	Role         Role
	NameScore    float64
	AddressScore float64
	DOBScore     float64
	CountryBonus float64
	Composite    float64
}

// ScreeningResult is the engine's verdict for one payer/beneficiary pair.
// Candidates holds every scored pair across both parties, sorted descending
// by composite score with ties kept in watchlist order. The best candidate is
// reported even when the decision came from the jurisdiction rule, so an
// investigator always sees the closest name match.
type ScreeningResult struct {
	Decision        Decision
	Reason          Reason
	BestRole        Role
	BestScore       float64
	Breakdown       *CandidateScore
	SanctionFlag    bool
	SanctionReasons []string
	Candidates      []CandidateScore
}
