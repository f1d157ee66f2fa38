// Package models defines data structures for the bidforge RFP pipeline.
package models

import "time"

// AgentName identifies a pipeline stage agent.
type AgentName string

const (
	AgentExtractor  AgentName = "EXTRACTOR"
	AgentParsing    AgentName = "PARSING_ENGINE"
	AgentSales      AgentName = "SALES_AGENT"
	AgentTechnical  AgentName = "TECHNICAL_AGENT"
	AgentPricing    AgentName = "PRICING_AGENT"
	AgentFinalizing AgentName = "FINALIZING_AGENT"

	// AgentSystem marks audit entries produced by the orchestrator itself.
	AgentSystem AgentName = "SYSTEM"
)

// Status is the lifecycle state of a bid document.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusExtracting Status = "Extracting"
	StatusParsing    Status = "Parsing"
	StatusProcessing Status = "Processing"
	StatusComplete   Status = "Complete"
	StatusError      Status = "Error"
)

// Source indicates where a bid document was ingested from.
type Source string

const (
	SourceURL  Source = "URL"
	SourceFile Source = "File"
)

// AgentOutputs accumulates per-stage results on a document. Each field is
// written once by its producing stage; existing fields are never deleted
// and never deep-merged.
type AgentOutputs struct {
	ParsedData          *ParsedRfpData     `json:"parsedData,omitempty"`
	EligibilityAnalysis []EligibilityCheck `json:"eligibilityAnalysis,omitempty"`
	TechnicalAnalysis   *TechnicalAnalysis `json:"technicalAnalysis,omitempty"`
	Pricing             Pricing            `json:"pricing,omitempty"`
	RiskAnalysis        []RiskEntry        `json:"riskAnalysis,omitempty"`
	Report              string             `json:"report,omitempty"`
}

// Rfp is a bid document moving through the pipeline. The ID starts as a
// temporary ingestion key and is re-keyed to the canonical bid number once
// parsing reveals it. Mutated only through the document store.
type Rfp struct {
	ID           string       `json:"id"`
	Organisation string       `json:"organisation"`
	BidType      string       `json:"bidType"`
	ClosingDate  time.Time    `json:"closingDate"`
	Status       Status       `json:"status"`
	RawDocument  string       `json:"rawDocument"`
	Source       Source       `json:"source"`
	FileName     string       `json:"fileName,omitempty"`
	AgentOutputs AgentOutputs `json:"agentOutputs"`

	// ActiveAgent is the stage currently working on the document. Empty
	// when idle; cleared on Complete, left at the failing stage on Error.
	ActiveAgent AgentName `json:"activeAgent,omitempty"`

	// ProcessingDuration is the wall-clock run time in whole seconds,
	// recorded on both Complete and Error.
	ProcessingDuration int `json:"processingDuration,omitempty"`
}

// Terminal reports whether the document has reached a final state.
func (s Status) Terminal() bool {
	return s == StatusComplete || s == StatusError
}

// LogEntry is one append-only audit log record.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Agent     AgentName `json:"agent"`
	Message   string    `json:"message"`
	Data      string    `json:"data,omitempty"`
}
