package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bidforge/bidforge-go/internal/models"
)

// Sentinel errors for the structuring call. Both are fatal: the
// orchestrator aborts the run when either is returned.
var (
	// ErrModelInvocation indicates the remote call failed or returned
	// empty text.
	ErrModelInvocation = errors.New("model invocation failed")

	// ErrInvalidResponse indicates the response could not be parsed as
	// the expected RFP schema.
	ErrInvalidResponse = errors.New("invalid response from model")
)

const structuringSystemPrompt = `You are an expert document analysis agent for a company that responds to Requests for Proposals (RFPs). Your primary function is to parse unstructured RFP documents and extract key information into a structured JSON format. Your key skill is extracting structured data from visually complex documents that contain a mix of English and Hindi, including data laid out in tables with varying formats. You must accurately map labels to values and handle multilingual content seamlessly. Pay close attention to details like bid numbers, deadlines, technical specifications, and financial terms.`

// rfpSchema describes the required response shape. Embedded in the user
// prompt because provider-side response schemas are not uniformly
// supported across langchaingo backends.
const rfpSchema = `{
  "metadata": {
    "bidNumber": "string, unique bid identifier, e.g. 'GEM/2026/B/7064364' (required)",
    "issuingOrganization": "string, organization that issued the RFP (required)",
    "bidType": "string, e.g. 'Two Packet Bid' (required)",
    "bidEndDate": "string, closing date and time in ISO 8601, e.g. '2026-01-26T20:00:00' (required)",
    "offerValidity": "number, days the offer must stay valid (required)",
    "deliveryDays": "number, days allowed for delivery after order placement (optional)"
  },
  "products": [
    {
      "name": "string, product required (required)",
      "quantity": "number (required)",
      "technicalSpecs": ["string, specifications SPECIFIC to this line item (required)"],
      "requiredStandards": ["string, compliance standards SPECIFIC to this line item (optional)"]
    }
  ],
  "mandatoryDocuments": ["string, documents the seller must provide for the overall bid"],
  "financialConditions": {
    "epbg": "string, ePBG percentage if mentioned (optional)",
    "paymentTerms": "string (optional)"
  },
  "eligibilityCriteria": {
    "localSupplierClass": "string (optional)",
    "turnoverRequirement": "string (optional)",
    "qualityCertifications": ["string (optional)"],
    "sampleApprovalClause": "string (optional)",
    "optionClause": "string, quantity variation clause, e.g. '+25%'. If not present, return 'N/A' (optional)"
  },
  "consignee": "string, full name and address of the recipient including PIN code (required)"
}`

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// StructureRFP sends a raw bid document to the model and decodes the
// structured result. The raw response text is returned alongside any
// error so callers can log what the model actually produced. No retry
// is performed here; retry policy belongs to the caller.
func StructureRFP(ctx context.Context, g Generator, document string) (*models.ParsedRfpData, string, error) {
	userPrompt := fmt.Sprintf(`Your task is to parse the following RFP document and extract key information into a structured JSON format. The document may contain a mix of English and Hindi.
It is CRITICAL to associate technical specifications and compliance standards directly with EACH product line item in the 'products' array. Do not list technical specifications or standards globally.

Your output MUST be a single, valid JSON object conforming to this schema:
%s

Do NOT include any text, explanations, or markdown formatting before or after the JSON object.

Parse the following document:
---DOCUMENT START---
%s
---DOCUMENT END---
`, rfpSchema, document)

	raw, err := g.GenerateWithSystem(ctx, structuringSystemPrompt, userPrompt)
	if err != nil {
		return nil, raw, fmt.Errorf("%w: %v", ErrModelInvocation, err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, raw, fmt.Errorf("%w: received empty response", ErrModelInvocation)
	}

	parsed, err := decodeRFP(raw)
	if err != nil {
		return nil, raw, err
	}

	return parsed, raw, nil
}

// decodeRFP extracts the JSON payload from a model response, tolerating
// a fenced ```json code block, and validates the required fields.
func decodeRFP(raw string) (*models.ParsedRfpData, error) {
	payload := strings.TrimSpace(raw)
	if m := fencedJSON.FindStringSubmatch(payload); m != nil {
		payload = m[1]
	}

	var parsed models.ParsedRfpData
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if parsed.Metadata.BidNumber == "" {
		return nil, fmt.Errorf("%w: missing metadata.bidNumber", ErrInvalidResponse)
	}
	if parsed.Consignee == "" {
		return nil, fmt.Errorf("%w: missing consignee", ErrInvalidResponse)
	}

	return &parsed, nil
}

// Generator is the minimal model surface the structurer needs.
// *Model satisfies it; tests substitute a canned implementation.
type Generator interface {
	GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
