package screening

import "strings"

// Jurisdictions resolves raw country identifiers to canonical codes and
// detects sanctioned-jurisdiction references. Built once from the immutable
// reference table; safe for concurrent use.
type Jurisdictions struct {
	// ordered keeps the table's insertion order so address scans are
	// deterministic.
	ordered []SanctionedJurisdiction
	byAlias map[string]string // normalized alias -> canonical code
	codes   map[string]struct{}
}

// NewJurisdictions builds a resolver from the sanctioned-jurisdiction table.
func NewJurisdictions(table []SanctionedJurisdiction) *Jurisdictions {
	j := &Jurisdictions{
		ordered: table,
		byAlias: make(map[string]string),
		codes:   make(map[string]struct{}, len(table)),
	}
	for _, entry := range table {
		j.codes[entry.CanonicalCode] = struct{}{}
		for _, alias := range entry.Aliases {
			if normalized := Normalize(alias); normalized != "" {
				j.byAlias[normalized] = entry.CanonicalCode
			}
		}
	}
	return j
}

// Canonicalize maps a raw country string or code to its canonical code via
// the alias table (case-insensitive). An unknown value falls through to the
// trimmed uppercase input; that is the documented default, not an error.
func (j *Jurisdictions) Canonicalize(raw string) string {
	if code, ok := j.byAlias[Normalize(raw)]; ok {
		return code
	}
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsSanctioned reports whether a canonical code is in the sanctioned set.
func (j *Jurisdictions) IsSanctioned(canonicalCode string) bool {
	_, ok := j.codes[canonicalCode]
	return ok
}

// AddressMention scans free-text address for an embedded sanctioned
// jurisdiction name or alias and returns the matched alias. This is an
// independent detection path from the structured country field: an address
// can reference a sanctioned country even when the country code is clean.
// Aliases match as whole-token phrases, so "Pakistan" in "Lahore, Pakistan"
// hits while a substring inside another word does not.
func (j *Jurisdictions) AddressMention(address string) (string, bool) {
	normalized := Normalize(address)
	if normalized == "" {
		return "", false
	}
	padded := " " + normalized + " "

	for _, entry := range j.ordered {
		for _, alias := range entry.Aliases {
			normalizedAlias := Normalize(alias)
			if normalizedAlias == "" {
				continue
			}
			if strings.Contains(padded, " "+normalizedAlias+" ") {
				return normalizedAlias, true
			}
		}
	}
	return "", false
}

// AddressMentionsSanctioned reports whether the address references any
// sanctioned jurisdiction.
func (j *Jurisdictions) AddressMentionsSanctioned(address string) bool {
	_, ok := j.AddressMention(address)
	return ok
}
