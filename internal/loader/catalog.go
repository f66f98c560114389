package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Catalog is the subset of dbt's catalog.json lookgen reads: the warehouse
// column types for each materialized node.
type Catalog struct {
	Nodes map[string]CatalogNode `json:"nodes"`
}

// CatalogNode is one materialized relation.
type CatalogNode struct {
	Metadata CatalogNodeMetadata      `json:"metadata"`
	Columns  map[string]CatalogColumn `json:"columns"`
}

// CatalogNodeMetadata describes the relation itself.
type CatalogNodeMetadata struct {
	Type    string `json:"type"`
	Schema  string `json:"schema"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Owner   string `json:"owner"`
}

// CatalogColumn carries the warehouse type and position of one column.
// Some adapters report upper-cased column names here; lookups are
// case-insensitive.
type CatalogColumn struct {
	Type    string `json:"type"`
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

// LoadCatalog reads and decodes a catalog.json.
func LoadCatalog(targetDir string) (*Catalog, error) {
	path := filepath.Join(targetDir, "catalog.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog (run `dbt docs generate` first?): %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}
