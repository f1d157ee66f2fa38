package service

import (
	"fmt"

	"github.com/bidforge/bidforge-go/internal/models"
)

// proximityThreshold: transport under 5% of material cost implies the
// warehouse sits close to the consignee.
const proximityThreshold = 0.05

// DeriveRisks produces the heuristic risk list for a run. Order is
// significant and entries are de-duplicated by exact statement text.
func DeriveRisks(parsed *models.ParsedRfpData, analyses []models.LineItemTechnicalAnalysis, pricing PricingBreakdown) []models.RiskEntry {
	seen := make(map[string]struct{})
	var risks []models.RiskEntry

	add := func(risk models.RiskEntry) {
		if _, dup := seen[risk.Statement]; dup {
			return
		}
		seen[risk.Statement] = struct{}{}
		risks = append(risks, risk)
	}

	if pricing.TransportTotal < pricing.MaterialTotal*proximityThreshold {
		add(models.RiskEntry{
			Category:  models.RiskLogistics,
			Statement: "Transport cost assumes warehouse proximity; verify for remote/challenging sites.",
			RiskLevel: models.RiskLow,
		})
	}

	if criteria := parsed.EligibilityCriteria; criteria != nil {
		if criteria.SampleApprovalClause != "" {
			add(models.RiskEntry{
				Category:  models.RiskCompliance,
				Statement: "Delivery timeline is subject to delays from the sample approval process.",
				RiskLevel: models.RiskMedium,
			})
		}
		if criteria.OptionClause != "" {
			add(models.RiskEntry{
				Category:  models.RiskFinancial,
				Statement: fmt.Sprintf("Option clause detected (%q). This may impact final quantity and value.", criteria.OptionClause),
				RiskLevel: models.RiskMedium,
			})
		}
	}

	if len(parsed.MandatoryDocuments) > 0 {
		add(models.RiskEntry{
			Category:  models.RiskCompliance,
			Statement: "All mandatory documents require manual verification and attachment before final submission.",
			RiskLevel: models.RiskMedium,
		})
	}

	deliveryDays := parsed.Metadata.DeliveryDays
	if deliveryDays > 0 {
		for _, analysis := range analyses {
			sku := analysis.SelectedSKU
			if sku.LeadTime > deliveryDays {
				add(models.RiskEntry{
					Category: models.RiskLogistics,
					Statement: fmt.Sprintf("Potential timeline conflict for %s: SKU lead time (%d days) exceeds required delivery of %d days.",
						sku.ProductName, sku.LeadTime, deliveryDays),
					RiskLevel: models.RiskHigh,
				})
			}
		}
	}

	return risks
}
