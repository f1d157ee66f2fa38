package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bidforge/bidforge-go/internal/catalog"
	"github.com/bidforge/bidforge-go/internal/config"
	"github.com/bidforge/bidforge-go/internal/llm"
	"github.com/bidforge/bidforge-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cannedModel returns a fixed structuring response or error.
type cannedModel struct {
	response string
	err      error
}

func (m cannedModel) GenerateWithSystem(_ context.Context, _, _ string) (string, error) {
	return m.response, m.err
}

const structuredResponse = "```json\n" + `{
  "metadata": {
    "bidNumber": "GEM/2026/B/7064364",
    "issuingOrganization": "Mahanadi Coalfields Limited",
    "bidType": "Two Packet Bid",
    "bidEndDate": "2026-01-26T20:00:00",
    "offerValidity": 120,
    "deliveryDays": 10
  },
  "products": [
    {
      "name": "MS Pipe 50mm",
      "quantity": 10,
      "technicalSpecs": ["50mm NB Medium", "Mild Steel ERW"],
      "requiredStandards": ["IS:1239"]
    }
  ],
  "mandatoryDocuments": ["PAN", "GST Certificate"],
  "financialConditions": {"paymentTerms": "Payment within 90 days of delivery"},
  "eligibilityCriteria": {"optionClause": "+25%"},
  "consignee": "Depot Officer, Sundargarh, PIN-770076"
}` + "\n```"

func newTestPipeline(t *testing.T, model llm.Generator, skus []models.SKU) *Pipeline {
	t.Helper()
	p := NewPipeline(NewDocumentStore(), catalog.NewStore(skus), model, NewAuditLog(), config.DefaultProfile())
	p.Pacing = 0
	return p
}

func TestPipelineRunCompletes(t *testing.T) {
	p := newTestPipeline(t, cannedModel{response: structuredResponse}, catalog.Seed())

	doc := p.Ingest(models.SourceFile, "tender.txt", "raw tender text")
	require.Equal(t, models.StatusPending, doc.Status)

	finalID, err := p.Run(context.Background(), doc.ID)
	require.NoError(t, err)

	// Re-keyed to the canonical bid number; old key abandoned.
	assert.Equal(t, "GEM/2026/B/7064364", finalID)
	_, stillThere := p.Documents().Get(doc.ID)
	assert.False(t, stillThere, "temporary ID must not resolve after rekey")

	final, ok := p.Documents().Get(finalID)
	require.True(t, ok)

	assert.Equal(t, models.StatusComplete, final.Status)
	assert.Empty(t, final.ActiveAgent, "activeAgent cleared on Complete")
	assert.Equal(t, "Mahanadi Coalfields Limited", final.Organisation)
	assert.Equal(t, "Two Packet Bid", final.BidType)
	assert.Equal(t, 2026, final.ClosingDate.Year())

	out := final.AgentOutputs
	require.NotNil(t, out.ParsedData)
	require.Len(t, out.EligibilityAnalysis, 5)
	assert.Equal(t, "90 days (Acceptable)", out.EligibilityAnalysis[4].StatusText)

	require.NotNil(t, out.TechnicalAnalysis)
	require.Len(t, out.TechnicalAnalysis.LineItemAnalyses, 1)
	analysis := out.TechnicalAnalysis.LineItemAnalyses[0]
	assert.Equal(t, analysis.Top3Recommendations[0].SKUID, analysis.SelectedSKU.SKUID)
	require.Len(t, analysis.ComplianceChecks, 1)
	assert.Equal(t, models.ComplianceFound, analysis.ComplianceChecks[0].Status)

	require.NotEmpty(t, out.Pricing)
	assert.Equal(t, "Final Bid Value", out.Pricing[len(out.Pricing)-1].Label)
	assert.NotEmpty(t, out.RiskAnalysis)
	assert.Contains(t, out.Report, "BID RESPONSE REPORT")
}

func TestPipelineStageOrderInAuditLog(t *testing.T) {
	p := newTestPipeline(t, cannedModel{response: structuredResponse}, catalog.Seed())

	start := time.Now()
	doc := p.Ingest(models.SourceFile, "", "raw")
	_, err := p.Run(context.Background(), doc.ID)
	require.NoError(t, err)

	// Agents appear in the fixed stage order and never revisit an
	// earlier stage.
	stageRank := map[models.AgentName]int{
		models.AgentExtractor:  1,
		models.AgentParsing:    2,
		models.AgentSales:      3,
		models.AgentTechnical:  4,
		models.AgentPricing:    5,
		models.AgentFinalizing: 6,
	}

	highest := 0
	for _, entry := range p.Log().Since(start) {
		rank, isStage := stageRank[entry.Agent]
		if !isStage {
			continue
		}
		require.GreaterOrEqual(t, rank, highest, "agent %s logged after a later stage", entry.Agent)
		highest = rank
	}
	assert.Equal(t, 6, highest, "every stage must log")
}

func TestPipelineModelFailure(t *testing.T) {
	p := newTestPipeline(t, cannedModel{err: errors.New("connection reset")}, catalog.Seed())

	doc := p.Ingest(models.SourceURL, "", "raw")
	_, err := p.Run(context.Background(), doc.ID)
	require.ErrorIs(t, err, llm.ErrModelInvocation)

	failed, ok := p.Documents().Get(doc.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusError, failed.Status)
	// The failing stage stays visible so callers can render it.
	assert.Equal(t, models.AgentParsing, failed.ActiveAgent)
	assert.Nil(t, failed.AgentOutputs.ParsedData)
}

func TestPipelineInvalidResponse(t *testing.T) {
	p := newTestPipeline(t, cannedModel{response: "this is not JSON"}, catalog.Seed())

	doc := p.Ingest(models.SourceFile, "", "raw")
	_, err := p.Run(context.Background(), doc.ID)
	require.ErrorIs(t, err, llm.ErrInvalidResponse)

	// The raw model output is preserved in the audit log for debugging.
	found := false
	for _, entry := range p.Log().Entries() {
		if entry.Agent == models.AgentParsing && entry.Data != "" {
			found = true
		}
	}
	assert.True(t, found, "raw response must be logged on parse failure")
}

func TestPipelineNoEligibleSKUs(t *testing.T) {
	// Catalog entries exist but none is active and compliance-ready.
	inactive := catalog.Seed()[0]
	inactive.IsActive = false

	p := newTestPipeline(t, cannedModel{response: structuredResponse}, []models.SKU{inactive})

	doc := p.Ingest(models.SourceFile, "", "raw")
	finalID, err := p.Run(context.Background(), doc.ID)

	var noSKU *NoEligibleSKUError
	require.ErrorAs(t, err, &noSKU)
	assert.Equal(t, "MS Pipe 50mm", noSKU.LineItem)

	failed, ok := p.Documents().Get(finalID)
	require.True(t, ok)
	assert.Equal(t, models.StatusError, failed.Status)
	assert.Equal(t, models.AgentTechnical, failed.ActiveAgent)

	// Outputs written before the failure survive on the document.
	assert.NotNil(t, failed.AgentOutputs.ParsedData)
	assert.Len(t, failed.AgentOutputs.EligibilityAnalysis, 5)
	assert.Nil(t, failed.AgentOutputs.TechnicalAnalysis)
}

func TestPipelineRunMissingDocument(t *testing.T) {
	p := newTestPipeline(t, cannedModel{response: structuredResponse}, catalog.Seed())

	_, err := p.Run(context.Background(), "nope")
	require.Error(t, err)
}

func TestPipelineRekeyIsStable(t *testing.T) {
	// A document ingested under its canonical ID is not renamed.
	p := newTestPipeline(t, cannedModel{response: structuredResponse}, catalog.Seed())

	p.Documents().Insert(models.Rfp{ID: "GEM/2026/B/7064364", Status: models.StatusPending, RawDocument: "raw"})

	finalID, err := p.Run(context.Background(), "GEM/2026/B/7064364")
	require.NoError(t, err)
	assert.Equal(t, "GEM/2026/B/7064364", finalID)
	assert.Len(t, p.Documents().List(), 1)
}

func TestPipelineRecordsStageTimings(t *testing.T) {
	p := newTestPipeline(t, cannedModel{response: structuredResponse}, catalog.Seed())

	doc := p.Ingest(models.SourceFile, "", "raw")
	_, err := p.Run(context.Background(), doc.ID)
	require.NoError(t, err)

	snap := p.Metrics()
	for _, agent := range []models.AgentName{
		models.AgentExtractor, models.AgentParsing, models.AgentSales,
		models.AgentTechnical, models.AgentPricing, models.AgentFinalizing,
	} {
		s, ok := snap.Stages[string(agent)]
		require.True(t, ok, "missing timing for %s", agent)
		assert.EqualValues(t, 1, s.Count)
	}
}

func TestPipelineTimingsStopAtFailedStage(t *testing.T) {
	p := newTestPipeline(t, cannedModel{err: errors.New("model offline")}, catalog.Seed())

	doc := p.Ingest(models.SourceFile, "", "raw")
	_, err := p.Run(context.Background(), doc.ID)
	require.Error(t, err)

	snap := p.Metrics()
	_, ok := snap.Stages[string(models.AgentExtractor)]
	assert.True(t, ok)
	_, ok = snap.Stages[string(models.AgentParsing)]
	assert.False(t, ok, "failed stage should not record a timing")
}
