package models

// RfpProductLineItem is one product line within an RFP, with its own
// quantity and per-item technical requirements.
type RfpProductLineItem struct {
	Name              string   `json:"name"`
	Quantity          int      `json:"quantity"`
	TechnicalSpecs    []string `json:"technicalSpecs"`
	RequiredStandards []string `json:"requiredStandards,omitempty"`
}

// RfpMetadata holds the header fields extracted from a bid document.
type RfpMetadata struct {
	BidNumber           string `json:"bidNumber"`
	IssuingOrganization string `json:"issuingOrganization"`
	BidType             string `json:"bidType"`
	// BidEndDate is the closing date in ISO 8601 form, e.g. "2026-01-26T20:00:00".
	BidEndDate    string `json:"bidEndDate"`
	OfferValidity int    `json:"offerValidity"`
	DeliveryDays  int    `json:"deliveryDays,omitempty"`
}

// FinancialConditions holds the commercial terms of a bid.
type FinancialConditions struct {
	EPBG         string `json:"epbg,omitempty"`
	PaymentTerms string `json:"paymentTerms,omitempty"`
}

// EligibilityCriteria holds the seller-qualification clauses of a bid.
// All fields are optional; absent clauses degrade to default check text.
type EligibilityCriteria struct {
	LocalSupplierClass    string   `json:"localSupplierClass,omitempty"`
	TurnoverRequirement   string   `json:"turnoverRequirement,omitempty"`
	QualityCertifications []string `json:"qualityCertifications,omitempty"`
	SampleApprovalClause  string   `json:"sampleApprovalClause,omitempty"`
	OptionClause          string   `json:"optionClause,omitempty"`
}

// ParsedRfpData is the normalized representation of a bid document,
// produced once by the structuring client and immutable thereafter.
type ParsedRfpData struct {
	Metadata            RfpMetadata          `json:"metadata"`
	Products            []RfpProductLineItem `json:"products"`
	MandatoryDocuments  []string             `json:"mandatoryDocuments"`
	FinancialConditions FinancialConditions  `json:"financialConditions"`
	EligibilityCriteria *EligibilityCriteria `json:"eligibilityCriteria,omitempty"`
	Consignee           string               `json:"consignee"`
}
