// Package catalog holds the read-only SKU inventory consumed by the
// matching and pricing stages. Catalog lifecycle (inventory management)
// is owned externally; the pipeline only reads snapshots.
package catalog

import (
	"fmt"
	"os"
	"sync"

	"github.com/bidforge/bidforge-go/internal/models"
	"gopkg.in/yaml.v3"
)

// Store is a mutex-guarded in-memory SKU inventory.
type Store struct {
	mu   sync.RWMutex
	skus []models.SKU
}

// NewStore creates a store preloaded with the given SKUs.
func NewStore(skus []models.SKU) *Store {
	return &Store{skus: append([]models.SKU(nil), skus...)}
}

// List returns a snapshot copy of all SKUs in catalog order.
func (s *Store) List() []models.SKU {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SKU(nil), s.skus...)
}

// Len returns the number of catalog entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.skus)
}

// Replace swaps the full inventory. Used by the inventory-management
// surface, not by the pipeline.
func (s *Store) Replace(skus []models.SKU) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skus = append([]models.SKU(nil), skus...)
}

// catalogFile is the YAML shape of an external catalog file.
type catalogFile struct {
	SKUs []models.SKU `yaml:"skus"`
}

// LoadFile reads a SKU inventory from a YAML file.
func LoadFile(path string) ([]models.SKU, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	if len(file.SKUs) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no SKUs", path)
	}

	return file.SKUs, nil
}
