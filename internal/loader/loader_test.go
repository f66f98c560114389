package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lookgen/pkg/core"
)

const manifestJSON = `{
  "metadata": {"adapter_type": "bigquery", "project_name": "jaffle_shop"},
  "nodes": {
    "model.jaffle_shop.orders": {
      "unique_id": "model.jaffle_shop.orders",
      "resource_type": "model",
      "name": "orders",
      "relation_name": "` + "`analytics`.`orders`" + `",
      "description": "One row per order",
      "tags": ["looker"],
      "meta": {"primary_key": "id"},
      "columns": {
        "id": {"name": "id", "description": "Order id"},
        "created_at": {"name": "created_at"},
        "ghost": {"name": "ghost", "description": "Documented but never materialized"}
      }
    },
    "model.jaffle_shop.drafts": {
      "unique_id": "model.jaffle_shop.drafts",
      "resource_type": "model",
      "name": "drafts",
      "relation_name": "drafts",
      "columns": {"id": {"name": "id"}}
    },
    "seed.jaffle_shop.countries": {
      "unique_id": "seed.jaffle_shop.countries",
      "resource_type": "seed",
      "name": "countries"
    }
  }
}`

const catalogJSON = `{
  "nodes": {
    "model.jaffle_shop.orders": {
      "metadata": {"type": "table", "schema": "analytics", "name": "orders"},
      "columns": {
        "ID": {"type": "STRING", "index": 1, "name": "ID"},
        "created_at": {"type": "TIMESTAMP", "index": 2, "name": "created_at"}
      }
    }
  }
}`

func writeTarget(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(manifestJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.json"), []byte(catalogJSON), 0o644))
	return dir
}

func TestLoadManifest(t *testing.T) {
	man, err := LoadManifest(writeTarget(t))
	require.NoError(t, err)

	assert.Equal(t, "bigquery", man.Metadata.AdapterType)
	assert.Equal(t, "jaffle_shop", man.Metadata.ProjectName)
	assert.Len(t, man.Nodes, 3)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dbt target directory")
}

func TestLoadManifestMissingAdapterType(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"),
		[]byte(`{"metadata": {}, "nodes": {}}`), 0o644))

	_, err := LoadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adapter_type")
}

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(writeTarget(t))
	require.NoError(t, err)
	assert.Len(t, cat.Nodes, 1)
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dbt_project.yml"),
		[]byte("name: jaffle_shop\nversion: \"1.0\"\n"), 0o644))

	p, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "jaffle_shop", p.Name)
}

func TestLoadProjectMissingName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dbt_project.yml"),
		[]byte("version: \"1.0\"\n"), 0o644))

	_, err := LoadProject(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestBuildModels(t *testing.T) {
	dir := writeTarget(t)
	man, err := LoadManifest(dir)
	require.NoError(t, err)
	cat, err := LoadCatalog(dir)
	require.NoError(t, err)

	models, diags := BuildModels(man, cat, "")

	// Only "orders" survives: "drafts" is missing from the catalog, the
	// seed is not a model at all.
	require.Len(t, models, 1)
	m := models[0]
	assert.Equal(t, "model.jaffle_shop.orders", m.UniqueID)
	assert.Equal(t, "orders", m.Name)
	assert.Equal(t, map[string]any{"primary_key": "id"}, m.Meta)

	// Catalog types merge case-insensitively, ordered by catalog index;
	// the documented-but-unmaterialized column is skipped.
	require.Len(t, m.Columns, 2)
	assert.Equal(t, core.Column{Name: "id", RawType: "STRING", Description: "Order id"}, m.Columns[0])
	assert.Equal(t, "created_at", m.Columns[1].Name)
	assert.Equal(t, "TIMESTAMP", m.Columns[1].RawType)

	warnings := make(map[string]bool)
	for _, d := range diags {
		require.Equal(t, core.SeverityWarning, d.Severity)
		warnings[d.ModelID+"/"+d.Column] = true
	}
	assert.True(t, warnings["model.jaffle_shop.drafts/"])
	assert.True(t, warnings["model.jaffle_shop.orders/ghost"])
}

func TestBuildModelsTagFilter(t *testing.T) {
	dir := writeTarget(t)
	man, err := LoadManifest(dir)
	require.NoError(t, err)
	cat, err := LoadCatalog(dir)
	require.NoError(t, err)

	models, _ := BuildModels(man, cat, "looker")
	require.Len(t, models, 1)
	assert.Equal(t, "orders", models[0].Name)

	models, _ = BuildModels(man, cat, "nightly")
	assert.Empty(t, models)
}
