package screening

// Composite weights. Address keeps its full 0.30 weight even against entries
// with no address on record: the component contributes zero and the weight is
// not renormalized. Changing that would move decision outcomes, so the quirk
// stays.
const (
	nameWeight    = 0.60
	addressWeight = 0.30
	dobWeight     = 0.05

	// countryBonusValue is additive on top of the weighted sum when the
	// party's canonical country equals the entry's.
	countryBonusValue = 0.05

	// DefaultThreshold is the composite score at or above which a screening
	// escalates.
	DefaultThreshold = 0.80
)

// Composite combines the four sub-scores into one weighted score, clamped to
// [0,1]. The clamp is a defensive invariant: under the fixed weights the sum
// can only exceed 1.0 when every component is already at its cap.
func Composite(nameScore, addressScore, dobScore, countryBonus float64) float64 {
	return clamp01(nameWeight*nameScore + addressWeight*addressScore + dobWeight*dobScore + countryBonus)
}
