package screening

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func testEntries() []ReferenceEntry {
	return []ReferenceEntry{
		{
			Name:       "Mohammad Al Hamed",
			AKA:        []string{"Mohammed Al-Hameed", "Mohamad Alhammad"},
			Address:    "12 King Faisal Road, Manama, Bahrain",
			Country:    "BH",
			DOB:        testDate(1978, 4, 9),
			ListSource: "UN Sanctions",
			Category:   "Terrorism",
		},
		{
			Name:       "Zhang Wei",
			AKA:        []string{"Wei Chang", "Z. Wei"},
			Address:    "66 Nanjing West Road, Jing'an, Shanghai, China",
			Country:    "CN",
			DOB:        testDate(1983, 11, 23),
			ListSource: "OFAC SDN",
			Category:   "Proliferation",
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

func findCandidate(t *testing.T, candidates []CandidateScore, entryName string) CandidateScore {
	t.Helper()
	for _, c := range candidates {
		if c.Entry != nil && c.Entry.Name == entryName {
			return c
		}
	}
	t.Fatalf("no candidate for entry %q", entryName)
	return CandidateScore{}
}

func TestMatchPartyScoresEveryEntry(t *testing.T) {
	entries := testEntries()
	party := Party{Name: "Zhang Wei", Country: "GB", Role: RolePayer}

	candidates := MatchParty(party, entries, testJurisdictions())

	require.Len(t, candidates, len(entries))
	for _, c := range candidates {
		assert.Equal(t, RolePayer, c.Role)
		assert.GreaterOrEqual(t, c.Composite, 0.0)
		assert.LessOrEqual(t, c.Composite, 1.0)
	}
}

func TestNameScoreTakesMaxAcrossAliases(t *testing.T) {
	entries := testEntries()
	j := testJurisdictions()

	// Exact hit on an alias must score 1.0 even though the primary name differs.
	party := Party{Name: "Wei Chang", Role: RolePayer}
	candidate := findCandidate(t, MatchParty(party, entries, j), "Zhang Wei")
	assert.Equal(t, 1.0, candidate.NameScore)

	// Near-alias spelling outscores the primary-name comparison.
	party = Party{Name: "Mohamad Alhamad", Role: RolePayer}
	candidate = findCandidate(t, MatchParty(party, entries, j), "Mohammad Al Hamed")
	assert.Greater(t, candidate.NameScore, EditSimilarity("Mohamad Alhamad", "Mohammad Al Hamed"))
}

func TestAddressScore(t *testing.T) {
	entries := testEntries()
	j := testJurisdictions()

	t.Run("identical address scores full weight", func(t *testing.T) {
		party := Party{
			Name:    "Somebody Else",
			Address: "12 King Faisal Rd, Manama, Bahrain",
			Role:    RolePayer,
		}
		candidate := findCandidate(t, MatchParty(party, entries, j), "Mohammad Al Hamed")
		// Abbreviation expansion makes the addresses identical after
		// normalization, so both blend components hit 1.0.
		assert.InDelta(t, 1.0, candidate.AddressScore, 1e-12)
	})

	t.Run("entry without address scores zero", func(t *testing.T) {
		entriesNoAddr := []ReferenceEntry{{Name: "Zhang Wei", Country: "CN"}}
		party := Party{Name: "Zhang Wei", Address: "Anywhere 1", Role: RolePayer}
		candidate := MatchParty(party, entriesNoAddr, j)[0]
		assert.Equal(t, 0.0, candidate.AddressScore)
	})

	t.Run("party without address scores zero", func(t *testing.T) {
		party := Party{Name: "Zhang Wei", Role: RolePayer}
		candidate := findCandidate(t, MatchParty(party, entries, j), "Zhang Wei")
		assert.Equal(t, 0.0, candidate.AddressScore)
	})
}

func TestDOBScore(t *testing.T) {
	entries := testEntries()
	j := testJurisdictions()

	t.Run("exact match scores one", func(t *testing.T) {
		party := Party{Name: "Zhang Wei", DOB: testDate(1983, 11, 23), Role: RolePayer}
		candidate := findCandidate(t, MatchParty(party, entries, j), "Zhang Wei")
		assert.Equal(t, 1.0, candidate.DOBScore)
	})

	t.Run("different date scores zero", func(t *testing.T) {
		party := Party{Name: "Zhang Wei", DOB: testDate(1983, 11, 24), Role: RolePayer}
		candidate := findCandidate(t, MatchParty(party, entries, j), "Zhang Wei")
		assert.Equal(t, 0.0, candidate.DOBScore)
	})

	t.Run("missing party dob scores zero", func(t *testing.T) {
		party := Party{Name: "Zhang Wei", Role: RolePayer}
		candidate := findCandidate(t, MatchParty(party, entries, j), "Zhang Wei")
		assert.Equal(t, 0.0, candidate.DOBScore)
	})

	t.Run("missing entry dob scores zero", func(t *testing.T) {
		party := Party{Name: "Global Trade LLC", DOB: testDate(1990, 1, 1), Role: RolePayer}
		candidate := findCandidate(t, MatchParty(party, entries, j), "Global Trade LLC")
		assert.Equal(t, 0.0, candidate.DOBScore)
	})
}

func TestCountryBonus(t *testing.T) {
	entries := testEntries()
	j := testJurisdictions()

	t.Run("matching canonical country earns the bonus", func(t *testing.T) {
		party := Party{Name: "Zhang Wei", Country: "CN", Role: RolePayer}
		candidate := findCandidate(t, MatchParty(party, entries, j), "Zhang Wei")
		assert.InDelta(t, 0.05, candidate.CountryBonus, 1e-12)
	})

	t.Run("different country earns nothing", func(t *testing.T) {
		party := Party{Name: "Zhang Wei", Country: "GB", Role: RolePayer}
		candidate := findCandidate(t, MatchParty(party, entries, j), "Zhang Wei")
		assert.Equal(t, 0.0, candidate.CountryBonus)
	})

	t.Run("lowercase code canonicalizes before comparison", func(t *testing.T) {
		party := Party{Name: "Zhang Wei", Country: "cn", Role: RolePayer}
		candidate := findCandidate(t, MatchParty(party, entries, j), "Zhang Wei")
		assert.InDelta(t, 0.05, candidate.CountryBonus, 1e-12)
	})
}

func TestCompositeAssembly(t *testing.T) {
	entries := testEntries()
	j := testJurisdictions()

	party := Party{
		Name:    "Zhang Wei",
		Address: "66 Nanjing West Rd, Jing'an, Shanghai, China",
		Country: "CN",
		DOB:     testDate(1983, 11, 23),
		Role:    RoleBeneficiary,
	}
	candidate := findCandidate(t, MatchParty(party, entries, j), "Zhang Wei")

	assert.Equal(t, 1.0, candidate.NameScore)
	assert.InDelta(t, 1.0, candidate.AddressScore, 1e-12)
	assert.Equal(t, 1.0, candidate.DOBScore)
	assert.InDelta(t, 0.05, candidate.CountryBonus, 1e-12)
	assert.InDelta(t, 1.0, candidate.Composite, 1e-9)
}
