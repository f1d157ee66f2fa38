// Package cli provides the command-line interface for bidforge.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bidforge/bidforge-go/internal/catalog"
	"github.com/bidforge/bidforge-go/internal/config"
	"github.com/bidforge/bidforge-go/internal/models"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Global config and log cleanup
	cfg        config.Config
	logCleanup func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bidforge",
	Short: "Multi-agent RFP bid processing pipeline",
	Long: `Bidforge runs procurement bid documents (RFPs) through a multi-agent
pipeline: text extraction, AI structuring, eligibility checking, SKU
matching against the product catalog, pricing and logistics costing,
and a risk-flagged final report.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}

		logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		slog.SetDefault(logger)
		logCleanup = cleanup

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// loadCatalog returns the SKU inventory: an explicit file if configured,
// the built-in seed otherwise.
func loadCatalog(path string) ([]models.SKU, error) {
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Seed(), nil
	}
	return catalog.LoadFile(path)
}

// loadProfile returns the company profile for report rendering.
func loadProfile() (config.CompanyProfile, error) {
	if cfg.ProfilePath == "" {
		return config.DefaultProfile(), nil
	}
	return config.LoadProfile(cfg.ProfilePath)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(catalogCmd)
}
