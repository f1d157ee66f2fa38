package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSeedIsWellFormed(t *testing.T) {
	skus := Seed()
	if len(skus) == 0 {
		t.Fatal("seed inventory is empty")
	}

	seen := make(map[string]bool, len(skus))
	eligible := 0
	for _, sku := range skus {
		if sku.SKUID == "" {
			t.Errorf("SKU %q has empty ID", sku.ProductName)
		}
		if seen[sku.SKUID] {
			t.Errorf("duplicate SKU ID %s", sku.SKUID)
		}
		seen[sku.SKUID] = true

		if sku.UnitSalesPrice < sku.BulkSalesPrice {
			t.Errorf("%s: bulk price %v exceeds unit price %v", sku.SKUID, sku.BulkSalesPrice, sku.UnitSalesPrice)
		}
		if sku.IsActive && sku.IsComplianceReady {
			eligible++
		}
	}

	if eligible == 0 {
		t.Error("seed inventory has no matchable SKUs")
	}
}

func TestStoreListIsSnapshot(t *testing.T) {
	store := NewStore(Seed())

	first := store.List()
	first[0].SKUID = "mutated"

	if store.List()[0].SKUID == "mutated" {
		t.Error("List must return a copy, not the backing slice")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	content := `skus:
  - skuId: SKU-T-1
    productName: Test Pipe
    specification:
      Standard: IS 1239
    truckType: LCV
    leadTime: 5
    unitSalesPrice: 100
    bulkSalesPrice: 90
    gstRate: 18
    isActive: true
    isComplianceReady: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	skus, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(skus) != 1 {
		t.Fatalf("got %d SKUs, want 1", len(skus))
	}
	if skus[0].SKUID != "SKU-T-1" || skus[0].Specification["Standard"] != "IS 1239" {
		t.Errorf("unexpected SKU: %+v", skus[0])
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("skus: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(empty); err == nil {
		t.Error("expected error for catalog with no SKUs")
	}
}
