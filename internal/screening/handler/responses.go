package handler

import (
	"time"

	"vigil/internal/screening"
)

// ScreenResponse is the HTTP response for POST /screen.
type ScreenResponse struct {
	Timestamp          time.Time               `json:"timestamp"`
	ScreeningResult    ScreeningResultResponse `json:"screening_result"`
	TransactionDetails TransactionDetails      `json:"transaction_details"`
	Warnings           []string                `json:"warnings,omitempty"`
	Explanation        string                  `json:"explanation,omitempty"`
}

// ScreeningResultResponse is the engine verdict portion of the response.
type ScreeningResultResponse struct {
	Decision        string              `json:"decision"`
	Reason          string              `json:"reason"`
	BestRole        string              `json:"best_role"`
	BestScore       float64             `json:"best_score"`
	Breakdown       *CandidateResponse  `json:"breakdown,omitempty"`
	SanctionFlag    bool                `json:"sanction_flag"`
	SanctionReasons []string            `json:"sanction_reasons,omitempty"`
	Candidates      []CandidateResponse `json:"candidates"`
}

// CandidateResponse is one scored watchlist pairing.
type CandidateResponse struct {
	EntryName    string  `json:"entry_name"`
	ListSource   string  `json:"list_source"`
	Category     string  `json:"category"`
	Role         string  `json:"role"`
	NameScore    float64 `json:"name_score"`
	AddressScore float64 `json:"address_score"`
	DOBScore     float64 `json:"dob_score"`
	CountryBonus float64 `json:"country_bonus"`
	Composite    float64 `json:"composite"`
}

// TransactionDetails echoes the pass-through payment metadata.
type TransactionDetails struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Reference string  `json:"reference,omitempty"`
}

// FromResult converts a domain ScreeningResult to an HTTP response.
func FromResult(result *screening.ScreeningResult, req *ScreenRequest, now time.Time) *ScreenResponse {
	resp := &ScreenResponse{
		Timestamp: now.UTC(),
		ScreeningResult: ScreeningResultResponse{
			Decision:        string(result.Decision),
			Reason:          string(result.Reason),
			BestRole:        string(result.BestRole),
			BestScore:       result.BestScore,
			SanctionFlag:    result.SanctionFlag,
			SanctionReasons: result.SanctionReasons,
			Candidates:      make([]CandidateResponse, 0, len(result.Candidates)),
		},
		TransactionDetails: TransactionDetails{
			Amount:    req.Amount,
			Currency:  req.Currency,
			Reference: req.Reference,
		},
		Warnings: req.Warnings(),
	}

	if result.Breakdown != nil {
		breakdown := fromCandidate(*result.Breakdown)
		resp.ScreeningResult.Breakdown = &breakdown
	}
	for _, candidate := range result.Candidates {
		resp.ScreeningResult.Candidates = append(resp.ScreeningResult.Candidates, fromCandidate(candidate))
	}
	if req.Explain {
		resp.Explanation = screening.Explain(result)
	}

	return resp
}

func fromCandidate(candidate screening.CandidateScore) CandidateResponse {
	resp := CandidateResponse{
		Role:         string(candidate.Role),
		NameScore:    candidate.NameScore,
		AddressScore: candidate.AddressScore,
		DOBScore:     candidate.DOBScore,
		CountryBonus: candidate.CountryBonus,
		Composite:    candidate.Composite,
	}
	if candidate.Entry != nil {
		resp.EntryName = candidate.Entry.Name
		resp.ListSource = candidate.Entry.ListSource
		resp.Category = candidate.Entry.Category
	}
	return resp
}

// WatchlistResponse is the HTTP response for GET /watchlist.
type WatchlistResponse struct {
	Count   int                      `json:"count"`
	Entries []WatchlistEntryResponse `json:"entries"`
}

// WatchlistEntryResponse is one reference entry.
type WatchlistEntryResponse struct {
	Name       string   `json:"name"`
	AKA        []string `json:"aka"`
	Address    string   `json:"address,omitempty"`
	Country    string   `json:"country"`
	DOB        string   `json:"dob,omitempty"`
	ListSource string   `json:"list_source"`
	Category   string   `json:"category"`
}

// FromEntries converts the watchlist table to an HTTP response.
func FromEntries(entries []screening.ReferenceEntry) *WatchlistResponse {
	resp := &WatchlistResponse{
		Count:   len(entries),
		Entries: make([]WatchlistEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		item := WatchlistEntryResponse{
			Name:       entry.Name,
			AKA:        entry.AKA,
			Address:    entry.Address,
			Country:    entry.Country,
			ListSource: entry.ListSource,
			Category:   entry.Category,
		}
		if entry.DOB != nil {
			item.DOB = entry.DOB.Format(dobLayout)
		}
		resp.Entries = append(resp.Entries, item)
	}
	return resp
}

// SanctionedCountriesResponse is the HTTP response for GET /sanctioned-countries.
type SanctionedCountriesResponse struct {
	Count     int                    `json:"count"`
	Countries []JurisdictionResponse `json:"countries"`
}

// JurisdictionResponse is one sanctioned jurisdiction.
type JurisdictionResponse struct {
	Code    string   `json:"code"`
	Aliases []string `json:"aliases"`
}

// FromJurisdictions converts the jurisdiction table to an HTTP response.
func FromJurisdictions(jurisdictions []screening.SanctionedJurisdiction) *SanctionedCountriesResponse {
	resp := &SanctionedCountriesResponse{
		Count:     len(jurisdictions),
		Countries: make([]JurisdictionResponse, 0, len(jurisdictions)),
	}
	for _, jurisdiction := range jurisdictions {
		resp.Countries = append(resp.Countries, JurisdictionResponse{
			Code:    jurisdiction.CanonicalCode,
			Aliases: jurisdiction.Aliases,
		})
	}
	return resp
}
