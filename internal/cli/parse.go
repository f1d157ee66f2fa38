package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bidforge/bidforge-go/internal/llm"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Structure a bid document without running the full pipeline",
	Long: `Send a raw bid document to the configured LLM and print the
structured JSON it produces. Useful for inspecting what the pipeline
would work with before committing to a full run.

Examples:
  bidforge parse tender.txt
  bidforge parse tender.txt | jq '.products'`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	model, err := llm.NewModel(cfg)
	if err != nil {
		return fmt.Errorf("init model: %w", err)
	}

	parsed, _, err := llm.StructureRFP(context.Background(), model, string(content))
	if err != nil {
		return fmt.Errorf("structure document: %w", err)
	}

	out, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
