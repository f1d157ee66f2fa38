package service

import (
	"errors"
	"testing"

	"github.com/bidforge/bidforge-go/internal/models"
)

func testSKU(id string, specs map[string]string) models.SKU {
	return models.SKU{
		SKUID:             id,
		ProductName:       "Product " + id,
		Specification:     specs,
		UnitSalesPrice:    100,
		BulkSalesPrice:    90,
		GSTRate:           18,
		IsActive:          true,
		IsComplianceReady: true,
	}
}

func TestMatchLineItemScoring(t *testing.T) {
	skus := []models.SKU{
		testSKU("A", map[string]string{"Diameter": "50mm NB Medium", "Material": "Mild Steel"}),
		testSKU("B", map[string]string{"Diameter": "80mm NB Heavy"}),
		testSKU("C", map[string]string{"Material": "Mild Steel", "Diameter": "50mm NB", "Coating": "Galvanized finish"}),
	}

	item := models.RfpProductLineItem{
		Name:           "MS Pipe",
		Quantity:       10,
		TechnicalSpecs: []string{"50mm NB Medium", "Galvanized coating"},
	}

	analysis, err := MatchLineItem(item, skus)
	if err != nil {
		t.Fatalf("MatchLineItem: %v", err)
	}

	// C matches both requirements (50mm + Galvanized), A matches one.
	if analysis.SelectedSKU.SKUID != "C" {
		t.Errorf("selected = %s, want C", analysis.SelectedSKU.SKUID)
	}
	if analysis.SelectedSKU.MatchPercentage != 100 {
		t.Errorf("selected match = %v, want 100", analysis.SelectedSKU.MatchPercentage)
	}

	// Sorted non-increasing, selected equals the top recommendation.
	recs := analysis.Top3Recommendations
	for i := 1; i < len(recs); i++ {
		if recs[i].MatchPercentage > recs[i-1].MatchPercentage {
			t.Errorf("recommendations not sorted at %d: %v > %v", i, recs[i].MatchPercentage, recs[i-1].MatchPercentage)
		}
	}
	if recs[0].SKUID != analysis.SelectedSKU.SKUID {
		t.Errorf("selected %s != top recommendation %s", analysis.SelectedSKU.SKUID, recs[0].SKUID)
	}
}

func TestMatchLineItemEmptyRequirements(t *testing.T) {
	skus := []models.SKU{
		testSKU("A", map[string]string{"Diameter": "50mm"}),
		testSKU("B", nil),
	}

	analysis, err := MatchLineItem(models.RfpProductLineItem{Name: "Anything", Quantity: 1}, skus)
	if err != nil {
		t.Fatalf("MatchLineItem: %v", err)
	}

	for _, rec := range analysis.Top3Recommendations {
		if rec.MatchPercentage != 100 {
			t.Errorf("SKU %s = %v%%, want 100%% for empty requirements", rec.SKUID, rec.MatchPercentage)
		}
	}
	// Ties keep catalog iteration order.
	if analysis.SelectedSKU.SKUID != "A" {
		t.Errorf("selected = %s, want first catalog entry A", analysis.SelectedSKU.SKUID)
	}
}

func TestMatchLineItemTopThreeCap(t *testing.T) {
	skus := []models.SKU{
		testSKU("A", nil), testSKU("B", nil), testSKU("C", nil), testSKU("D", nil), testSKU("E", nil),
	}

	analysis, err := MatchLineItem(models.RfpProductLineItem{Name: "X", Quantity: 1}, skus)
	if err != nil {
		t.Fatalf("MatchLineItem: %v", err)
	}
	if len(analysis.Top3Recommendations) != 3 {
		t.Errorf("got %d recommendations, want 3", len(analysis.Top3Recommendations))
	}
}

func TestMatchLineItemNoEligibleSKUs(t *testing.T) {
	inactive := testSKU("A", nil)
	inactive.IsActive = false
	notReady := testSKU("B", nil)
	notReady.IsComplianceReady = false

	_, err := MatchLineItem(models.RfpProductLineItem{Name: "MS Pipe 50mm", Quantity: 2}, []models.SKU{inactive, notReady})

	var noSKU *NoEligibleSKUError
	if !errors.As(err, &noSKU) {
		t.Fatalf("got %v, want NoEligibleSKUError", err)
	}
	if noSKU.LineItem != "MS Pipe 50mm" {
		t.Errorf("error names %q, want the offending line item", noSKU.LineItem)
	}
}

func TestMatchPercentageFirstTokenContainment(t *testing.T) {
	tests := []struct {
		name         string
		requirements []string
		specs        map[string]string
		want         float64
	}{
		{"first token matches", []string{"50mm NB nonsense"}, map[string]string{"D": "Pipe 50mm NB"}, 100},
		{"case sensitive", []string{"STEEL grade"}, map[string]string{"M": "steel grade A"}, 0},
		{"substring containment", []string{"0mm"}, map[string]string{"D": "50mm"}, 100},
		{"half matched", []string{"50mm", "Copper"}, map[string]string{"D": "50mm pipe"}, 50},
		{"no specs on SKU", []string{"50mm"}, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchPercentage(tt.requirements, tt.specs)
			if got != tt.want {
				t.Errorf("matchPercentage(%v) = %v, want %v", tt.requirements, got, tt.want)
			}
		})
	}
}

func TestEvaluateStandards(t *testing.T) {
	tests := []struct {
		name        string
		standard    string
		skuStandard string
		wantStatus  models.ComplianceStatus
		wantSource  string
	}{
		{"pre-colon prefix found", "IS:1239", "IS 1239, IS 4923", models.ComplianceFound, "Available in Store Spec Sheet"},
		{"case insensitive prefix", "is 7098", "IS 7098, IS 8130", models.ComplianceFound, "Available in Store Spec Sheet"},
		{"spec reference", "As per ATC specification", "IS 1239", models.ComplianceReferenced, "ATC-mapped"},
		{"gsrtc code", "CODE 7710042", "IS 1239", models.ComplianceFound, "GSRTC Code 7710042"},
		{"long digits but contains is", "IS 9999900", "unrelated", models.ComplianceNotFound, "Manual verification required"},
		{"nothing matches", "BS EN 1025", "IS 1239", models.ComplianceNotFound, "Manual verification required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checks := evaluateStandards([]string{tt.standard}, tt.skuStandard)
			if len(checks) != 1 {
				t.Fatalf("got %d checks, want 1", len(checks))
			}
			check := checks[0]
			if check.Status != tt.wantStatus || check.Source != tt.wantSource {
				t.Errorf("evaluateStandards(%q vs %q) = {%s %s}, want {%s %s}",
					tt.standard, tt.skuStandard, check.Status, check.Source, tt.wantStatus, tt.wantSource)
			}
			if check.Verified {
				t.Error("checks must start unverified")
			}
		})
	}
}

func TestEvaluateStandardsEmpty(t *testing.T) {
	checks := evaluateStandards(nil, "IS 1239")
	if len(checks) != 0 {
		t.Errorf("got %d checks for no required standards", len(checks))
	}
}
