package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/bidforge/bidforge-go/internal/config"
	"github.com/bidforge/bidforge-go/internal/models"
)

// CompileReport renders a run's accumulated outputs into the final text
// report. Presentation only: it reads the document snapshot and the
// company profile, never pipeline internals.
func CompileReport(doc models.Rfp, profile config.CompanyProfile) string {
	var b strings.Builder
	out := doc.AgentOutputs

	fmt.Fprintf(&b, "BID RESPONSE REPORT\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 60))
	fmt.Fprintf(&b, "%s\n%s\nGSTIN: %s | PAN: %s\n\n", profile.CompanyName, profile.CompanyAddress, profile.GSTIN, profile.PAN)

	fmt.Fprintf(&b, "Bid Number:    %s\n", doc.ID)
	fmt.Fprintf(&b, "Organisation:  %s\n", doc.Organisation)
	fmt.Fprintf(&b, "Bid Type:      %s\n", doc.BidType)
	if !doc.ClosingDate.IsZero() {
		fmt.Fprintf(&b, "Closing Date:  %s\n", doc.ClosingDate.Format("02 Jan 2006 15:04"))
	}
	if parsed := out.ParsedData; parsed != nil {
		fmt.Fprintf(&b, "Offer Validity: %d days\n", parsed.Metadata.OfferValidity)
		fmt.Fprintf(&b, "Consignee:     %s\n", parsed.Consignee)
	}
	b.WriteString("\n")

	if len(out.EligibilityAnalysis) > 0 {
		b.WriteString("ELIGIBILITY SNAPSHOT\n")
		for _, check := range out.EligibilityAnalysis {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", check.Status, check.Criterion, check.StatusText)
		}
		b.WriteString("\n")
	}

	if ta := out.TechnicalAnalysis; ta != nil {
		b.WriteString("TECHNICAL SELECTION\n")
		for _, analysis := range ta.LineItemAnalyses {
			fmt.Fprintf(&b, "  %s (Qty: %d)\n", analysis.RfpLineItem.Name, analysis.RfpLineItem.Quantity)
			fmt.Fprintf(&b, "    Selected: %s (%s, %.0f%% match)\n",
				analysis.SelectedSKU.ProductName, analysis.SelectedSKU.SKUID, analysis.SelectedSKU.MatchPercentage)
			for _, check := range analysis.ComplianceChecks {
				fmt.Fprintf(&b, "    Standard %s: %s (%s)\n", check.Standard, check.Status, check.Source)
			}
		}
		b.WriteString("\n")
	}

	if len(out.Pricing) > 0 {
		b.WriteString("PRICING\n")
		for _, line := range out.Pricing {
			fmt.Fprintf(&b, "  %-28s %s\n", line.Label, FormatINR(line.Amount))
		}
		b.WriteString("\n")
	}

	if len(out.RiskAnalysis) > 0 {
		b.WriteString("RISKS & ASSUMPTIONS\n")
		for _, risk := range out.RiskAnalysis {
			fmt.Fprintf(&b, "  [%s/%s] %s\n", risk.Category, risk.RiskLevel, risk.Statement)
		}
		b.WriteString("\n")
	}

	if len(profile.SigningAuthorities) > 0 {
		signer := profile.SigningAuthorities[0]
		fmt.Fprintf(&b, "For %s\n\n%s\n%s", profile.CompanyName, signer.Name, signer.Designation)
		if signer.DIN != "" {
			fmt.Fprintf(&b, " (DIN: %s)", signer.DIN)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatINR renders an amount with the Indian digit grouping used on
// bid documents, e.g. 1234567.5 -> "₹12,34,567.50".
func FormatINR(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	whole := int64(amount)
	fraction := int64(math.Round((amount - float64(whole)) * 100))
	if fraction == 100 {
		whole++
		fraction = 0
	}

	digits := fmt.Sprintf("%d", whole)
	grouped := groupIndian(digits)

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s₹%s.%02d", sign, grouped, fraction)
}

// groupIndian inserts commas in the ##,##,### pattern: the last three
// digits form one group, everything before groups in pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}
