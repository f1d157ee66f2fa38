package models

// CheckStatus classifies an eligibility checklist entry.
type CheckStatus string

const (
	CheckPass CheckStatus = "Pass"
	CheckWarn CheckStatus = "Warn"
	CheckInfo CheckStatus = "Info"
	CheckFail CheckStatus = "Fail"
)

// EligibilityCheck is one row of the fixed eligibility checklist.
type EligibilityCheck struct {
	Criterion  string      `json:"criterion"`
	StatusText string      `json:"statusText"`
	Status     CheckStatus `json:"status"`
}

// ComplianceStatus classifies how a required standard was matched
// against the selected SKU.
type ComplianceStatus string

const (
	ComplianceFound      ComplianceStatus = "Found"
	ComplianceReferenced ComplianceStatus = "Referenced"
	ComplianceNotFound   ComplianceStatus = "NotFound"
)

// ComplianceCheck records how one required standard was evaluated.
// Verified is display state toggled by the consumer surface, never set
// by the pipeline.
type ComplianceCheck struct {
	Standard string           `json:"standard"`
	Status   ComplianceStatus `json:"status"`
	Source   string           `json:"source"`
	Verified bool             `json:"verified"`
}

// LineItemTechnicalAnalysis is the matching result for one RFP line
// item: its top-scored candidates, the selected SKU, and the standards
// checklist.
type LineItemTechnicalAnalysis struct {
	RfpLineItem         RfpProductLineItem `json:"rfpLineItem"`
	Top3Recommendations []ScoredSKU        `json:"top3Recommendations"`
	SelectedSKU         ScoredSKU          `json:"selectedSku"`
	ComplianceChecks    []ComplianceCheck  `json:"complianceChecks"`
}

// TechnicalAnalysis aggregates line-item analyses in RFP order.
type TechnicalAnalysis struct {
	LineItemAnalyses []LineItemTechnicalAnalysis `json:"lineItemAnalyses"`
}

// PricingLine is one labelled amount in the pricing breakdown.
type PricingLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Pricing is the ordered cost breakdown, always ending in the
// "Final Bid Value" line.
type Pricing []PricingLine

// Amount returns the value for a label, or zero when absent.
func (p Pricing) Amount(label string) float64 {
	for _, line := range p {
		if line.Label == label {
			return line.Amount
		}
	}
	return 0
}

// RiskCategory groups derived risk entries.
type RiskCategory string

const (
	RiskLogistics  RiskCategory = "Logistics"
	RiskCompliance RiskCategory = "Compliance"
	RiskFinancial  RiskCategory = "Financial"
	RiskTechnical  RiskCategory = "Technical"
)

// RiskLevel grades a derived risk entry.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskEntry is one heuristic finding from the risk analysis,
// de-duplicated by exact statement text within a run.
type RiskEntry struct {
	Category  RiskCategory `json:"category"`
	Statement string       `json:"statement"`
	RiskLevel RiskLevel    `json:"riskLevel"`
}
