package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/bidforge/bidforge-go/internal/models"
)

var (
	longDigitRun  = regexp.MustCompile(`\d{5,}`)
	firstDigitRun = regexp.MustCompile(`\d+`)
)

// MatchLineItem scores every active, compliance-ready catalog entry
// against one RFP line item, returning the top-3 candidates, the
// selected (rank-1) SKU, and the standards compliance checklist.
//
// The scoring heuristic is permissive: a requirement counts as matched
// when any specification value contains the requirement's first
// whitespace-delimited token as a substring.
func MatchLineItem(item models.RfpProductLineItem, skus []models.SKU) (models.LineItemTechnicalAnalysis, error) {
	requirements := distinct(item.TechnicalSpecs)

	var scored []models.ScoredSKU
	for _, sku := range skus {
		if !sku.IsActive || !sku.IsComplianceReady {
			continue
		}
		scored = append(scored, models.ScoredSKU{
			SKU:             sku,
			MatchPercentage: matchPercentage(requirements, sku.Specification),
		})
	}

	// Descending by score; ties keep catalog iteration order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchPercentage > scored[j].MatchPercentage
	})

	if len(scored) == 0 {
		return models.LineItemTechnicalAnalysis{}, &NoEligibleSKUError{LineItem: item.Name}
	}

	top := scored
	if len(top) > 3 {
		top = top[:3]
	}
	selected := scored[0]

	return models.LineItemTechnicalAnalysis{
		RfpLineItem:         item,
		Top3Recommendations: top,
		SelectedSKU:         selected,
		ComplianceChecks:    evaluateStandards(item.RequiredStandards, selected.Specification["Standard"]),
	}, nil
}

// matchPercentage returns the specification-overlap score. An empty
// requirement set is a perfect match.
func matchPercentage(requirements []string, specification map[string]string) float64 {
	if len(requirements) == 0 {
		return 100
	}

	matched := 0
	for _, req := range requirements {
		token, _, _ := strings.Cut(req, " ")
		for _, value := range specification {
			if strings.Contains(value, token) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(requirements)) * 100
}

// evaluateStandards maps each required standard to a compliance status
// against the selected SKU's "Standard" specification value. Precedence:
// store spec-sheet containment, then ATC reference, then a GSRTC code
// lookup, and finally manual verification.
func evaluateStandards(required []string, skuStandard string) []models.ComplianceCheck {
	checks := make([]models.ComplianceCheck, 0, len(required))
	skuStandardLower := strings.ToLower(skuStandard)

	for _, standard := range required {
		lower := strings.ToLower(standard)
		prefix, _, _ := strings.Cut(lower, ":")

		check := models.ComplianceCheck{Standard: standard}
		switch {
		case strings.Contains(skuStandardLower, prefix):
			check.Status = models.ComplianceFound
			check.Source = "Available in Store Spec Sheet"
		case strings.Contains(lower, "spec"):
			check.Status = models.ComplianceReferenced
			check.Source = "ATC-mapped"
		case longDigitRun.MatchString(standard) && !strings.Contains(lower, "is"):
			check.Status = models.ComplianceFound
			check.Source = fmt.Sprintf("GSRTC Code %s", firstDigitRun.FindString(standard))
		default:
			check.Status = models.ComplianceNotFound
			check.Source = "Manual verification required"
		}

		checks = append(checks, check)
	}

	return checks
}

// distinct removes duplicate strings, preserving first-seen order.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
