package screening

import "github.com/xrash/smetrics"

// Jaro-Winkler parameters: boost applied above 0.7 with the classic 4-char
// prefix window.
const (
	jaroWinklerBoostThreshold = 0.7
	jaroWinklerPrefixSize     = 4
)

// EditSimilarity returns the Jaro-Winkler similarity of the normalized forms
// of a and b, in [0,1]. Identical inputs (including two empty strings) score
// 1.0; an empty string against a non-empty one scores 0.0.
func EditSimilarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return 1.0
	}
	if na == "" || nb == "" {
		return 0.0
	}
	return clamp01(smetrics.JaroWinkler(na, nb, jaroWinklerBoostThreshold, jaroWinklerPrefixSize))
}

// TokenOverlap returns the Jaccard similarity of two token sequences treated
// as sets, in [0,1]. Two empty sets score 0.0 rather than 1.0 so missing data
// is never rewarded.
func TokenOverlap(a, b []string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
