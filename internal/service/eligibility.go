package service

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/bidforge/bidforge-go/internal/models"
)

// paymentDays captures the first integer immediately preceding "days"
// in a payment-terms string.
var paymentDays = regexp.MustCompile(`(?i)(\d+)\s*days`)

// EvaluateEligibility derives the fixed five-point eligibility checklist
// from bid metadata. Pure and deterministic: identical inputs yield an
// identical, identically-ordered checklist.
func EvaluateEligibility(criteria *models.EligibilityCriteria, paymentTerms string) []models.EligibilityCheck {
	if criteria == nil {
		criteria = &models.EligibilityCriteria{}
	}

	checks := []models.EligibilityCheck{
		{
			Criterion:  "Local Supplier Requirement",
			StatusText: orDefault(criteria.LocalSupplierClass, "Not Evaluated"),
			Status:     models.CheckInfo,
		},
		{
			Criterion:  "Turnover Criteria",
			StatusText: orDefault(criteria.TurnoverRequirement, "Data not available"),
			Status:     models.CheckWarn,
		},
		{
			// Certifications can never be verified automatically.
			Criterion:  "Quality Certification",
			StatusText: "Manual verification required",
			Status:     models.CheckWarn,
		},
		{
			Criterion:  "Sample Approval Clause",
			StatusText: orDefault(criteria.SampleApprovalClause, "Not explicitly mentioned"),
			Status:     models.CheckInfo,
		},
	}

	return append(checks, paymentTermsCheck(paymentTerms))
}

// paymentTermsCheck passes when the terms state at least 60 days.
// Anything unparseable requires review.
func paymentTermsCheck(paymentTerms string) models.EligibilityCheck {
	check := models.EligibilityCheck{Criterion: "Payment Terms"}

	if m := paymentDays.FindStringSubmatch(paymentTerms); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil && days >= 60 {
			check.StatusText = fmt.Sprintf("%d days (Acceptable)", days)
			check.Status = models.CheckPass
			return check
		}
	}

	check.StatusText = fmt.Sprintf("Requires Review (%s)", paymentTerms)
	check.Status = models.CheckWarn
	return check
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
