package screening

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainEscalation(t *testing.T) {
	entry := testEntries()[0]
	result := &ScreeningResult{
		Decision:  DecisionEscalate,
		Reason:    ReasonScoreThreshold,
		BestRole:  RolePayer,
		BestScore: 0.912,
		Breakdown: &CandidateScore{
			Entry:        &entry,
			Role:         RolePayer,
			NameScore:    0.97,
			AddressScore: 0.85,
			DOBScore:     1.0,
			CountryBonus: 0.05,
			Composite:    0.912,
		},
	}

	note := Explain(result)

	assert.Contains(t, note, "Payment Screening Explanation")
	assert.Contains(t, note, "Decision: ESCALATE")
	assert.Contains(t, note, "Reason: Score Threshold")
	assert.Contains(t, note, "Best match score: 0.912")
	assert.Contains(t, note, "Mohammad Al Hamed")
	assert.Contains(t, note, "List: UN Sanctions")
	assert.Contains(t, note, "DOB: 1978-04-09")
	assert.Contains(t, note, "No sanctions hit detected.")
	assert.Contains(t, note, "Level-2 review")

	// Drivers listed highest first.
	dobIdx := strings.Index(note, "- DOB: 1.000")
	nameIdx := strings.Index(note, "- Name: 0.970")
	addressIdx := strings.Index(note, "- Address: 0.850")
	require.NotEqual(t, -1, dobIdx)
	require.NotEqual(t, -1, nameIdx)
	require.NotEqual(t, -1, addressIdx)
	assert.Less(t, dobIdx, nameIdx)
	assert.Less(t, nameIdx, addressIdx)
}

func TestExplainSanctionHit(t *testing.T) {
	result := &ScreeningResult{
		Decision:        DecisionEscalate,
		Reason:          ReasonSanctionedCountry,
		BestRole:        RoleNone,
		SanctionFlag:    true,
		SanctionReasons: []string{"BENEFICIARY country in sanctioned list: UA"},
	}

	note := Explain(result)

	assert.Contains(t, note, "Reason: Sanctioned Country")
	assert.Contains(t, note, "Sanctions hit detected.")
	assert.Contains(t, note, "- BENEFICIARY country in sanctioned list: UA")
	assert.Contains(t, note, "No driver details available")
}

func TestExplainRelease(t *testing.T) {
	result := &ScreeningResult{
		Decision:  DecisionRelease,
		Reason:    ReasonBelowThreshold,
		BestRole:  RolePayer,
		BestScore: 0.31,
	}

	note := Explain(result)

	assert.Contains(t, note, "Decision: RELEASE")
	assert.Contains(t, note, "Reason: Below Threshold")
	assert.Contains(t, note, "No sanctions hit detected.")
	assert.Contains(t, note, "standard STP rules")
	assert.NotContains(t, note, "Level-2 review")
}
