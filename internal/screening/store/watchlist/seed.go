package watchlist

import (
	"time"

	"vigil/internal/screening"
)

// NewSeeded builds the store with the baseline reference tables. In
// production deployments the tables would come from a list provider export;
// the baseline set is small on purpose so every screening scores the full
// table.
func NewSeeded() *InMemory {
	return NewInMemory(SeedEntries(), SeedJurisdictions())
}

// SeedEntries returns the baseline watchlist.
func SeedEntries() []screening.ReferenceEntry {
	return []screening.ReferenceEntry{
		{
			Name:       "Mohammad Al Hamed",
			AKA:        []string{"Mohammed Al-Hameed", "Mohamad Alhammad"},
			Address:    "12 King Faisal Road, Manama, Bahrain",
			Country:    "BH",
			DOB:        date(1978, 4, 9),
			ListSource: "UN Sanctions",
			Category:   "Terrorism",
		},
		{
			Name:       "Zhang Wei",
			AKA:        []string{"Wei Chang", "Z. Wei"},
			Address:    "66 Nanjing West Road, Jing'an, Shanghai, China",
			Country:    "CN",
			DOB:        date(1983, 11, 23),
			ListSource: "OFAC SDN",
			Category:   "Proliferation",
		},
		{
			Name:       "Hafiz Mohammed",
			AKA:        []string{"Karachi", "Pakistan"},
			Address:    "Karachi, Pakistan",
			Country:    "PK",
			DOB:        date(1990, 2, 1),
			ListSource: "EU Consolidated",
			Category:   "Corruption",
		},
		{
			Name:       "Global Trade LLC",
			AKA:        []string{"Global Trading Limited", "Global Trade Co."},
			Address:    "PO Box 12345, Dubai, United Arab Emirates",
			Country:    "AE",
			ListSource: "Internal Watch",
			Category:   "Adverse Media",
		},
	}
}

// SeedJurisdictions returns the baseline sanctioned jurisdiction set. The
// "ukraise" alias covers a misspelling that shows up in real payment
// instructions.
func SeedJurisdictions() []screening.SanctionedJurisdiction {
	return []screening.SanctionedJurisdiction{
		{CanonicalCode: "PK", Aliases: []string{"pakistan"}},
		{CanonicalCode: "IR", Aliases: []string{"iran"}},
		{CanonicalCode: "SY", Aliases: []string{"syria"}},
		{CanonicalCode: "UA", Aliases: []string{"ukraine", "ukraise"}},
		{CanonicalCode: "CU", Aliases: []string{"cuba"}},
		{CanonicalCode: "KR", Aliases: []string{"south korea"}},
	}
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
