// Package loader reads compiled dbt artifacts (manifest.json, catalog.json,
// dbt_project.yml) and assembles the validated models the generator
// consumes. The generator itself never touches the filesystem.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest is the subset of dbt's manifest.json lookgen reads.
type Manifest struct {
	Metadata  ManifestMetadata        `json:"metadata"`
	Nodes     map[string]ManifestNode `json:"nodes"`
	Exposures map[string]ManifestNode `json:"exposures"`
}

// ManifestMetadata carries run-level manifest information.
type ManifestMetadata struct {
	AdapterType string `json:"adapter_type"`
	ProjectName string `json:"project_name"`
}

// ManifestNode is one node entry. Only resource_type "model" nodes are
// consumed; other node kinds pass through untouched.
type ManifestNode struct {
	UniqueID     string                    `json:"unique_id"`
	ResourceType string                    `json:"resource_type"`
	Name         string                    `json:"name"`
	RelationName string                    `json:"relation_name"`
	Schema       string                    `json:"schema"`
	Description  string                    `json:"description"`
	Tags         []string                  `json:"tags"`
	Meta         map[string]any            `json:"meta"`
	Columns      map[string]ManifestColumn `json:"columns"`
}

// ManifestColumn is a documented column from a model's schema.yml.
type ManifestColumn struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Meta        map[string]any `json:"meta"`
}

// LoadManifest reads and decodes a manifest.json.
func LoadManifest(targetDir string) (*Manifest, error) {
	path := filepath.Join(targetDir, "manifest.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest (is %s a dbt target directory?): %w", targetDir, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m.Metadata.AdapterType == "" {
		return nil, fmt.Errorf("%s: manifest metadata has no adapter_type", path)
	}
	return &m, nil
}
