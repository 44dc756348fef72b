// Package watchlist holds the in-memory reference tables: the sanctioned
// entity watchlist and the sanctioned jurisdiction set. Tables are loaded
// once at construction and never mutated, so reads need no locking.
package watchlist

import (
	"context"

	"vigil/internal/screening"
)

// InMemory is a read-only snapshot store over fixed reference tables.
type InMemory struct {
	entries       []screening.ReferenceEntry
	jurisdictions []screening.SanctionedJurisdiction
}

// NewInMemory copies both tables so later mutation of the caller's slices
// cannot leak into the store.
func NewInMemory(entries []screening.ReferenceEntry, jurisdictions []screening.SanctionedJurisdiction) *InMemory {
	s := &InMemory{
		entries:       make([]screening.ReferenceEntry, len(entries)),
		jurisdictions: make([]screening.SanctionedJurisdiction, len(jurisdictions)),
	}
	copy(s.entries, entries)
	copy(s.jurisdictions, jurisdictions)
	return s
}

// Watchlist returns the reference entries in insertion order. Callers treat
// the slice as read-only.
func (s *InMemory) Watchlist(_ context.Context) []screening.ReferenceEntry {
	return s.entries
}

// SanctionedJurisdictions returns the jurisdiction table in insertion order.
// Callers treat the slice as read-only.
func (s *InMemory) SanctionedJurisdictions(_ context.Context) []screening.SanctionedJurisdiction {
	return s.jurisdictions
}
