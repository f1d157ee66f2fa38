// Package service implements the RFP processing pipeline: eligibility
// evaluation, SKU matching, pricing, risk analysis, and the stage
// orchestrator that drives them.
package service

import "fmt"

// NoEligibleSKUError indicates the catalog yielded no active,
// compliance-ready candidates for a line item. Fatal: the whole run
// aborts, not just the one line item.
type NoEligibleSKUError struct {
	LineItem string
}

func (e *NoEligibleSKUError) Error() string {
	return fmt.Sprintf("no active/compliant SKUs found for %s", e.LineItem)
}
