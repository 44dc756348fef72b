package handler

import (
	"fmt"
	"strings"
	"time"

	"vigil/internal/screening"
	dErrors "vigil/pkg/domain-errors"
)

// dobLayout is the accepted date-of-birth format (ISO date).
const dobLayout = "2006-01-02"

// ScreenRequest is the HTTP request body for POST /screen. Field names match
// the established wire format. Amount, currency and reference are
// pass-through transaction metadata; the engine never reads them.
type ScreenRequest struct {
	PayerName    string `json:"payer_name"`
	PayerAddress string `json:"payer_address"`
	PayerCountry string `json:"payer_country"`
	PayerDOB     string `json:"payer_dob"`

	BenefName    string `json:"benef_name"`
	BenefAddress string `json:"benef_address"`
	BenefCountry string `json:"benef_country"`
	BenefDOB     string `json:"benef_dob"`

	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Reference string  `json:"reference"`

	// Explain asks for the audit note alongside the result.
	Explain bool `json:"explain"`

	// Parsed values (populated by Validate)
	payerDOB *time.Time
	benefDOB *time.Time
	warnings []string
}

// Validate checks required fields and parses the optional dates. An
// unparseable DOB is not fatal: it is treated as absent and reported as a
// warning so the caller can correct the input.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ScreenRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"payer_name", r.PayerName},
		{"payer_address", r.PayerAddress},
		{"payer_country", r.PayerCountry},
		{"benef_name", r.BenefName},
		{"benef_address", r.BenefAddress},
		{"benef_country", r.BenefCountry},
		{"currency", r.Currency},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	r.payerDOB = r.parseDOB("payer_dob", r.PayerDOB)
	r.benefDOB = r.parseDOB("benef_dob", r.BenefDOB)

	return nil
}

func (r *ScreenRequest) parseDOB(field, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(dobLayout, value)
	if err != nil {
		r.warnings = append(r.warnings,
			fmt.Sprintf("%s %q is not a valid ISO date; ignored for scoring", field, value))
		return nil
	}
	return &parsed
}

// Payer returns the validated payer party.
func (r *ScreenRequest) Payer() screening.Party {
	return screening.Party{
		Name:    r.PayerName,
		Address: r.PayerAddress,
		Country: r.PayerCountry,
		DOB:     r.payerDOB,
		Role:    screening.RolePayer,
	}
}

// Beneficiary returns the validated beneficiary party.
func (r *ScreenRequest) Beneficiary() screening.Party {
	return screening.Party{
		Name:    r.BenefName,
		Address: r.BenefAddress,
		Country: r.BenefCountry,
		DOB:     r.benefDOB,
		Role:    screening.RoleBeneficiary,
	}
}

// Warnings returns non-fatal validation findings.
func (r *ScreenRequest) Warnings() []string {
	return r.warnings
}
