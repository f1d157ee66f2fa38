package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/bidforge/bidforge-go/internal/catalog"
	"github.com/bidforge/bidforge-go/internal/llm"
	"github.com/bidforge/bidforge-go/internal/models"
	"github.com/bidforge/bidforge-go/internal/service"
	"github.com/spf13/cobra"
)

var (
	processCatalogFile string
	processShowLog     bool
	processShowTimings bool
	processNoUI        bool
	processOutputFile  string
)

var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Run a bid document through the full agent pipeline",
	Long: `Run a bid document through the full agent pipeline.

The document is ingested under a temporary ID, structured by the
configured LLM, checked for eligibility, matched against the catalog,
priced, and compiled into a final report. The document is re-keyed to
its canonical bid number once parsing reveals it.

Examples:
  bidforge process tender.txt
  bidforge process tender.txt --catalog skus.yaml -o report.txt
  bidforge process tender.txt --no-ui --show-log`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processCatalogFile, "catalog", "", "YAML catalog file (default: built-in inventory)")
	processCmd.Flags().BoolVar(&processShowLog, "show-log", false, "print this run's audit log entries")
	processCmd.Flags().BoolVar(&processShowTimings, "timings", false, "print per-stage timing statistics")
	processCmd.Flags().BoolVar(&processNoUI, "no-ui", false, "disable the interactive progress display")
	processCmd.Flags().StringVarP(&processOutputFile, "output", "o", "", "write the final report to a file")
}

func runProcess(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	skus, err := loadCatalog(processCatalogFile)
	if err != nil {
		return err
	}

	profile, err := loadProfile()
	if err != nil {
		return err
	}

	model, err := llm.NewModel(cfg)
	if err != nil {
		return fmt.Errorf("init model: %w", err)
	}

	docs := service.NewDocumentStore()
	auditLog := service.NewAuditLog()
	pipeline := service.NewPipeline(docs, catalog.NewStore(skus), model, auditLog, profile)
	pipeline.Pacing = cfg.Pacing

	start := time.Now()
	doc := pipeline.Ingest(models.SourceFile, args[0], string(content))

	finalID, runErr := runWithProgress(pipeline, doc.ID)

	if processShowLog {
		for _, entry := range auditLog.Since(start) {
			fmt.Printf("%s  %-16s %s\n", entry.Timestamp.Format("15:04:05"), entry.Agent, entry.Message)
		}
		fmt.Println()
	}

	if processShowTimings {
		printTimings(pipeline)
	}

	if runErr != nil {
		return fmt.Errorf("pipeline failed: %w", runErr)
	}

	final, ok := docs.Get(finalID)
	if !ok {
		return fmt.Errorf("document %s missing after run", finalID)
	}

	if processOutputFile != "" {
		if err := os.WriteFile(processOutputFile, []byte(final.AgentOutputs.Report), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("Report written to %s (processed in %ds)\n", processOutputFile, final.ProcessingDuration)
		return nil
	}

	fmt.Println(final.AgentOutputs.Report)
	return nil
}

// printTimings writes per-stage timing statistics in pipeline order.
// Stages that never ran (e.g. after a mid-run failure) are omitted.
func printTimings(pipeline *service.Pipeline) {
	snap := pipeline.Metrics()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STAGE\tRUNS\tTOTAL (ms)\tAVG (ms)")
	for _, agent := range []models.AgentName{
		models.AgentExtractor,
		models.AgentParsing,
		models.AgentSales,
		models.AgentTechnical,
		models.AgentPricing,
		models.AgentFinalizing,
	} {
		s, ok := snap.Stages[string(agent)]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\n", agent, s.Count, s.TotalTimeMs, s.AvgTimeMs)
	}
	w.Flush()
	fmt.Println()
}

// runWithProgress drives the pipeline in the background while rendering
// progress, falling back to plain execution when the UI is disabled.
func runWithProgress(pipeline *service.Pipeline, id string) (string, error) {
	if processNoUI {
		return pipeline.Run(context.Background(), id)
	}
	return RunPipelineProgress(pipeline, id)
}
