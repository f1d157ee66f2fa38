package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogFile string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the SKU inventory available for matching",
	Long: `List the SKU inventory the technical agent matches against.

Only entries that are both active and compliance-ready are eligible
for selection; the rest are shown for completeness.

Examples:
  bidforge catalog
  bidforge catalog --file skus.yaml`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFile, "file", "", "YAML catalog file (default: built-in inventory)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	skus, err := loadCatalog(catalogFile)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SKU ID\tPRODUCT\tWAREHOUSE\tLEAD\tUNIT\tBULK\tGST\tELIGIBLE")
	for _, sku := range skus {
		eligible := "no"
		if sku.IsActive && sku.IsComplianceReady {
			eligible = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dd\t%.0f\t%.0f\t%.0f%%\t%s\n",
			sku.SKUID, sku.ProductName, sku.WarehouseCode, sku.LeadTime,
			sku.UnitSalesPrice, sku.BulkSalesPrice, sku.GSTRate, eligible)
	}
	return w.Flush()
}
