package screening

import "time"

// metric is one similarity measure over two raw strings. Name scoring folds
// a fixed set of metrics over every candidate string (primary name plus each
// alias) and keeps the maximum, so adding a metric or alias never needs new
// branching.
type metric func(a, b string) float64

var nameMetrics = []metric{
	EditSimilarity,
	func(a, b string) float64 { return TokenOverlap(Tokens(a), Tokens(b)) },
}

// MatchParty scores one party against every watchlist entry. The full table
// is always scored; the list is small enough that pruning or indexing would
// only add failure modes.
func MatchParty(party Party, entries []ReferenceEntry, jurisdictions *Jurisdictions) []CandidateScore {
	partyCountry := jurisdictions.Canonicalize(party.Country)

	candidates := make([]CandidateScore, 0, len(entries))
	for i := range entries {
		entry := &entries[i]

		score := CandidateScore{
			Entry:        entry,
			Role:         party.Role,
			NameScore:    nameScore(party.Name, entry),
			AddressScore: addressScore(party.Address, entry.Address),
			DOBScore:     dobScore(party.DOB, entry.DOB),
		}
		if entry.Country != "" && partyCountry == entry.Country {
			score.CountryBonus = countryBonusValue
		}
		score.Composite = Composite(score.NameScore, score.AddressScore, score.DOBScore, score.CountryBonus)

		candidates = append(candidates, score)
	}
	return candidates
}

// nameScore is the maximum of every metric applied to the primary name and
// each alias.
func nameScore(name string, entry *ReferenceEntry) float64 {
	best := 0.0
	for _, candidate := range entry.nameCandidates() {
		for _, m := range nameMetrics {
			if s := m(name, candidate); s > best {
				best = s
			}
		}
	}
	return best
}

func (e *ReferenceEntry) nameCandidates() []string {
	candidates := make([]string, 0, 1+len(e.AKA))
	candidates = append(candidates, e.Name)
	candidates = append(candidates, e.AKA...)
	return candidates
}

// addressScore blends edit and token similarity 0.4/0.6. Entries without an
// address on record score zero; see the weight note in score.go.
func addressScore(partyAddress, entryAddress string) float64 {
	if entryAddress == "" {
		return 0.0
	}
	edit := EditSimilarity(partyAddress, entryAddress)
	overlap := TokenOverlap(Tokens(partyAddress), Tokens(entryAddress))
	return 0.4*edit + 0.6*overlap
}

// dobScore is exact-match only: both dates present and equal.
func dobScore(partyDOB, entryDOB *time.Time) float64 {
	if partyDOB != nil && entryDOB != nil && partyDOB.Equal(*entryDOB) {
		return 1.0
	}
	return 0.0
}
