package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/bidforge/bidforge-go/internal/catalog"
	"github.com/bidforge/bidforge-go/internal/config"
	"github.com/bidforge/bidforge-go/internal/llm"
	"github.com/bidforge/bidforge-go/internal/metrics"
	"github.com/bidforge/bidforge-go/internal/models"
	"github.com/google/uuid"
)

// Per-stage pacing delays simulating agent work. These and the remote
// structuring call are the pipeline's only suspension points.
const (
	extractDelay    = 1500 * time.Millisecond
	salesDelay      = 800 * time.Millisecond
	prePricingWait  = 500 * time.Millisecond
	preFinalizeWait = 1000 * time.Millisecond
	finalizeDelay   = 800 * time.Millisecond
)

// Pipeline sequences the agent stages over one document at a time:
// extract, parse, eligibility, technical matching, pricing/risk, and
// report finalization. Any stage error aborts the remaining stages;
// outputs written before the failure stay on the document.
type Pipeline struct {
	docs    *DocumentStore
	catalog *catalog.Store
	model   llm.Generator
	log     *AuditLog
	profile config.CompanyProfile
	timings *metrics.Collector

	// Pacing scales the artificial stage delays; zero disables them.
	Pacing float64
}

// NewPipeline wires a pipeline over the session's document store,
// catalog, structuring model, and audit log.
func NewPipeline(docs *DocumentStore, cat *catalog.Store, model llm.Generator, log *AuditLog, profile config.CompanyProfile) *Pipeline {
	return &Pipeline{
		docs:    docs,
		catalog: cat,
		model:   model,
		log:     log,
		profile: profile,
		timings: metrics.NewCollector(),
		Pacing:  1.0,
	}
}

// Metrics exposes per-stage timing statistics gathered across runs.
func (p *Pipeline) Metrics() metrics.Snapshot {
	return p.timings.Snapshot()
}

// Log exposes the session audit log for consumers that render progress.
func (p *Pipeline) Log() *AuditLog {
	return p.log
}

// Documents exposes the session document store.
func (p *Pipeline) Documents() *DocumentStore {
	return p.docs
}

// Ingest registers a new bid document under a temporary ID and returns
// its snapshot. Processing is a separate step.
func (p *Pipeline) Ingest(source models.Source, fileName, content string) models.Rfp {
	doc := models.Rfp{
		ID:           fmt.Sprintf("TDR-%s", uuid.New().String()[:8]),
		Organisation: "Parsing...",
		BidType:      "Parsing...",
		ClosingDate:  time.Now(),
		Status:       models.StatusPending,
		RawDocument:  content,
		Source:       source,
		FileName:     fileName,
	}
	p.docs.Insert(doc)

	detail := ""
	if fileName != "" {
		detail = fmt.Sprintf(" (%s)", fileName)
	}
	p.log.Append(models.AgentSystem, fmt.Sprintf("New RFP ingested from %s%s.", source, detail), nil)

	return doc
}

// Run drives the document with the given ID through every stage.
// Returns the document's final ID, which differs from id when parsing
// revealed the canonical bid number. Cancellation is not supported;
// ctx reaches only the remote structuring call.
func (p *Pipeline) Run(ctx context.Context, id string) (string, error) {
	start := time.Now()

	doc, ok := p.docs.Get(id)
	if !ok {
		p.log.Append(models.AgentSystem, fmt.Sprintf("Could not find RFP with ID %s to start processing.", id), nil)
		return id, fmt.Errorf("document %s not found", id)
	}

	currentID, err := p.run(ctx, id, doc)
	duration := int(math.Round(time.Since(start).Seconds()))

	if err != nil {
		p.log.Append(models.AgentSystem, fmt.Sprintf("Processing failed for RFP %s: %s", currentID, err), err.Error())
		p.docs.Update(currentID, func(d *models.Rfp) {
			d.Status = models.StatusError
			d.ProcessingDuration = duration
		})
		slog.Error("pipeline run failed", "rfp", currentID, "error", err)
		return currentID, err
	}

	p.docs.Update(currentID, func(d *models.Rfp) {
		d.Status = models.StatusComplete
		d.ActiveAgent = ""
		d.ProcessingDuration = duration
	})
	p.log.Append(models.AgentSystem, fmt.Sprintf("All agents completed. RFP: %s is ready for review.", currentID), nil)
	slog.Info("pipeline run complete", "rfp", currentID, "duration_s", duration)

	return currentID, nil
}

// run executes the stage sequence, returning the (possibly re-keyed)
// document ID and the first stage error. The caller owns terminal
// state handling.
func (p *Pipeline) run(ctx context.Context, id string, doc models.Rfp) (string, error) {
	currentID := id
	p.log.Append(models.AgentSystem, fmt.Sprintf("Processing pipeline initiated for RFP: %s", currentID), nil)

	// Stage 1: extraction.
	stageStart := time.Now()
	p.setStage(currentID, models.StatusExtracting, models.AgentExtractor)
	p.log.Append(models.AgentExtractor, "Starting raw text extraction from source document.", nil)
	p.pause(extractDelay)
	p.log.Append(models.AgentExtractor, "Text extraction complete.", nil)
	p.timings.RecordStage(string(models.AgentExtractor), time.Since(stageStart))

	// Stage 2: remote structuring.
	stageStart = time.Now()
	p.setStage(currentID, models.StatusParsing, models.AgentParsing)
	p.log.Append(models.AgentParsing, "Agent invoked. Sending extracted text to model for structuring.", nil)

	parsed, raw, err := llm.StructureRFP(ctx, p.model, doc.RawDocument)
	if err != nil {
		p.log.Append(models.AgentParsing, "Failed to parse JSON response from model.", raw)
		return currentID, err
	}
	p.log.Append(models.AgentParsing, "Parsing complete. Received structured data from model.", nil)
	p.timings.RecordStage(string(models.AgentParsing), time.Since(stageStart))

	// Re-key to the canonical bid number between stages, atomically.
	if currentID != parsed.Metadata.BidNumber {
		tempID := currentID
		if renameErr := p.docs.Rename(tempID, parsed.Metadata.BidNumber); renameErr != nil {
			return currentID, fmt.Errorf("rekey document: %w", renameErr)
		}
		currentID = parsed.Metadata.BidNumber
		p.docs.Update(currentID, func(d *models.Rfp) {
			d.Organisation = parsed.Metadata.IssuingOrganization
			d.BidType = parsed.Metadata.BidType
			if closing, ok := parseBidEndDate(parsed.Metadata.BidEndDate); ok {
				d.ClosingDate = closing
			}
		})
	}

	// Stage 3: eligibility snapshot.
	stageStart = time.Now()
	p.docs.Update(currentID, func(d *models.Rfp) {
		d.Status = models.StatusProcessing
		d.ActiveAgent = models.AgentSales
		d.AgentOutputs.ParsedData = parsed
	})
	p.log.Append(models.AgentSales, fmt.Sprintf("Received parsed RFP %s. Checking business eligibility.", currentID), nil)
	p.pause(salesDelay)
	p.log.Append(models.AgentSales, "Product category is within scope. Proceeding.", nil)

	eligibility := EvaluateEligibility(parsed.EligibilityCriteria, parsed.FinancialConditions.PaymentTerms)
	p.docs.Update(currentID, func(d *models.Rfp) {
		d.AgentOutputs.EligibilityAnalysis = eligibility
	})
	p.log.Append(models.AgentSales, "Eligibility and compliance snapshot generated.", nil)
	p.timings.RecordStage(string(models.AgentSales), time.Since(stageStart))

	// Stage 4: per-line-item technical matching.
	stageStart = time.Now()
	p.setActiveAgent(currentID, models.AgentTechnical)
	p.log.Append(models.AgentTechnical, "Agent invoked. Starting per-line-item technical analysis.", nil)

	skus := p.catalog.List()
	analyses := make([]models.LineItemTechnicalAnalysis, 0, len(parsed.Products))
	for _, product := range parsed.Products {
		p.log.Append(models.AgentTechnical, fmt.Sprintf("Analyzing line item: %s (Qty: %d)", product.Name, product.Quantity), nil)

		analysis, err := MatchLineItem(product, skus)
		if err != nil {
			return currentID, err
		}
		analyses = append(analyses, analysis)

		p.log.Append(models.AgentTechnical, fmt.Sprintf("Best fit for %s: SKU %s with %.0f%% match.",
			product.Name, analysis.SelectedSKU.SKUID, analysis.SelectedSKU.MatchPercentage), nil)
	}

	technical := &models.TechnicalAnalysis{LineItemAnalyses: analyses}
	p.docs.Update(currentID, func(d *models.Rfp) {
		d.AgentOutputs.TechnicalAnalysis = technical
	})
	p.log.Append(models.AgentTechnical, "All line items analyzed.", nil)
	p.timings.RecordStage(string(models.AgentTechnical), time.Since(stageStart))

	// Stage 5: pricing and risk.
	p.pause(prePricingWait)
	stageStart = time.Now()
	p.setActiveAgent(currentID, models.AgentPricing)
	p.log.Append(models.AgentPricing, "Agent invoked. Starting financial calculation for all line items.", nil)

	breakdown := ComputePricing(parsed, analyses)
	finalValue := breakdown.Lines.Amount("Final Bid Value")
	p.log.Append(models.AgentPricing, fmt.Sprintf("Total pricing calculated. Final bid value: %s", FormatINR(finalValue)), breakdown.Lines)

	p.log.Append(models.AgentPricing, "Starting risk and assumption analysis.", nil)
	risks := DeriveRisks(parsed, analyses, breakdown)
	p.log.Append(models.AgentPricing, fmt.Sprintf("Risk analysis complete. Identified %d key points.", len(risks)), nil)

	p.docs.Update(currentID, func(d *models.Rfp) {
		d.AgentOutputs.Pricing = breakdown.Lines
		d.AgentOutputs.RiskAnalysis = risks
	})
	p.timings.RecordStage(string(models.AgentPricing), time.Since(stageStart))

	// Stage 6: report finalization.
	p.pause(preFinalizeWait)
	stageStart = time.Now()
	p.setActiveAgent(currentID, models.AgentFinalizing)
	p.log.Append(models.AgentFinalizing, "Compiling all agent outputs into final report.", nil)

	if snapshot, ok := p.docs.Get(currentID); ok {
		report := CompileReport(snapshot, p.profile)
		p.docs.Update(currentID, func(d *models.Rfp) {
			d.AgentOutputs.Report = report
		})
	}
	p.pause(finalizeDelay)
	p.log.Append(models.AgentFinalizing, "Final report compiled.", nil)
	p.timings.RecordStage(string(models.AgentFinalizing), time.Since(stageStart))

	return currentID, nil
}

func (p *Pipeline) setStage(id string, status models.Status, agent models.AgentName) {
	p.docs.Update(id, func(d *models.Rfp) {
		d.Status = status
		d.ActiveAgent = agent
	})
}

func (p *Pipeline) setActiveAgent(id string, agent models.AgentName) {
	p.docs.Update(id, func(d *models.Rfp) {
		d.ActiveAgent = agent
	})
}

// pause sleeps for the stage delay scaled by the pacing factor.
func (p *Pipeline) pause(d time.Duration) {
	if p.Pacing <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(d) * p.Pacing))
}

// parseBidEndDate accepts the ISO 8601 forms the structuring model
// produces, with or without a zone offset.
func parseBidEndDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
