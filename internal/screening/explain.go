package screening

import (
	"fmt"
	"sort"
	"strings"
)

// Explain renders an audit-ready plain-text note for a screening result:
// summary, best-match context, the score drivers in descending order, the
// sanctions findings, and the recommended handling steps. Fully local and
// deterministic; investigators paste it straight into case notes.
func Explain(result *ScreeningResult) string {
	var b strings.Builder

	title := "Payment Screening Explanation"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n")

	summary := []string{
		fmt.Sprintf("Decision: %s", result.Decision),
		fmt.Sprintf("Reason: %s", result.Reason),
		fmt.Sprintf("Best match score: %.3f", result.BestScore),
	}
	b.WriteString(" • " + strings.Join(summary, " | ") + "\n")

	if result.Breakdown != nil && result.Breakdown.Entry != nil {
		entry := result.Breakdown.Entry
		b.WriteString("\nWatchlist Context\n-----------------\n")
		dob := "—"
		if entry.DOB != nil {
			dob = entry.DOB.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "Best match (%s): %s (List: %s; Category: %s; Country: %s; DOB: %s)\n",
			result.BestRole, entry.Name, entry.ListSource, entry.Category, entry.Country, dob)
	}

	b.WriteString("\nKey Drivers\n-----------\n")
	for _, driver := range scoreDrivers(result.Breakdown) {
		fmt.Fprintf(&b, "- %s: %.3f\n", driver.name, driver.value)
	}

	b.WriteString("\nSanctions\n---------\n")
	if result.SanctionFlag {
		b.WriteString("Sanctions hit detected.\n")
		for _, reason := range result.SanctionReasons {
			b.WriteString("- " + reason + "\n")
		}
	} else {
		b.WriteString("No sanctions hit detected.\n")
	}

	b.WriteString("\nRecommended Actions\n-------------------\n")
	for _, action := range recommendedActions(result.Decision) {
		b.WriteString("- " + action + "\n")
	}

	return b.String()
}

type scoreDriver struct {
	name  string
	value float64
}

// scoreDrivers lists the sub-scores highest first so the note leads with
// what actually moved the composite.
func scoreDrivers(breakdown *CandidateScore) []scoreDriver {
	if breakdown == nil {
		return []scoreDriver{{name: "No driver details available", value: 0}}
	}
	drivers := []scoreDriver{
		{name: "Name", value: breakdown.NameScore},
		{name: "Address", value: breakdown.AddressScore},
		{name: "DOB", value: breakdown.DOBScore},
		{name: "Country bonus", value: breakdown.CountryBonus},
	}
	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].value > drivers[j].value
	})
	return drivers
}

func recommendedActions(decision Decision) []string {
	if decision == DecisionEscalate {
		return []string{
			"Place payment on hold and route to Level-2 review.",
			"Verify identity against authoritative KYC/KYB sources and documentary evidence.",
			"Re-screen name, address and country with up-to-date lists and adverse media.",
			"If sanctions flags are confirmed, follow blocking/reporting procedures.",
		}
	}
	return []string{
		"Proceed with payment per standard STP rules.",
		"Retain screening scores and evidence for audit.",
		"Monitor for list updates; re-screen if new alerts occur.",
	}
}
