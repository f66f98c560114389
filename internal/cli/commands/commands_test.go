package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lookgen/internal/cli/config"
	"github.com/leapstack-labs/lookgen/internal/cli/output"
	"github.com/leapstack-labs/lookgen/internal/testutil"

	_ "github.com/leapstack-labs/lookgen/pkg/dialects"
)

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "2026-08-30", "abc1234")
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "lookgen v1.2.3")
	assert.Contains(t, out.String(), "2026-08-30")
	assert.Contains(t, out.String(), "abc1234")
}

func TestVersionCommandOmitsEmptyBuildInfo(t *testing.T) {
	cmd := NewVersionCommand("dev", "", "")
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "lookgen vdev\n", out.String())
}

const generateManifest = `{
  "metadata": {"adapter_type": "bigquery", "project_name": "jaffle_shop"},
  "nodes": {
    "model.jaffle_shop.orders": {
      "unique_id": "model.jaffle_shop.orders",
      "resource_type": "model",
      "name": "orders",
      "relation_name": "` + "`analytics`.`orders`" + `",
      "meta": {"primary_key": "id", "sparkles": true},
      "columns": {"id": {"name": "id"}}
    }
  }
}`

const generateCatalog = `{
  "nodes": {
    "model.jaffle_shop.orders": {
      "metadata": {"type": "table", "schema": "analytics", "name": "orders"},
      "columns": {"id": {"type": "STRING", "index": 1, "name": "id"}}
    }
  }
}`

func writeGenerateFixtures(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "manifest.json"), []byte(generateManifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(target, "catalog.json"), []byte(generateCatalog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dbt_project.yml"),
		[]byte("name: jaffle_shop\nversion: \"1.0\"\n"), 0o644))
	return &config.Config{
		ProjectDir: dir,
		TargetDir:  target,
		OutputDir:  filepath.Join(dir, "lookml"),
		Format:     "json",
	}
}

func TestRunGenerateReportsEachDiagnosticOnce(t *testing.T) {
	cfg := writeGenerateFixtures(t)

	cmd := &cobra.Command{}
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	require.NoError(t, runGenerate(cmd, cfg, testutil.NewTestLogger(t)))

	var summary output.Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.Equal(t, 1, summary.Views)

	// The bad model-level annotation key is reported once for the run,
	// not again when the explore is assembled.
	var hits int
	for _, d := range summary.Diagnostics {
		if d.ModelID == "model.jaffle_shop.orders" && d.Column == "" {
			hits++
		}
	}
	assert.Equal(t, 1, hits)
}

func TestDialectsCommand(t *testing.T) {
	cmd := NewDialectsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	for _, name := range []string{"bigquery", "snowflake", "redshift", "postgres", "spark"} {
		assert.Contains(t, out.String(), name)
	}
}
