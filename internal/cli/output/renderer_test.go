package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lookgen/pkg/core"
)

func sampleSummary() *Summary {
	return &Summary{
		RunID:     "run-1",
		Dialect:   "bigquery",
		Views:     3,
		Models:    4,
		OutputDir: "./lookml",
		Diagnostics: []core.Diagnostic{
			core.Warnf("model.shop.orders", "geo", "unsupported type"),
			core.Errorf("model.shop.broken", "", "model has no columns"),
		},
	}
}

func TestRenderText(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)

	require.NoError(t, r.Render(sampleSummary()))

	assert.Contains(t, out.String(), "Generated 3 LookML views from 4 models in ./lookml (run run-1)")
	assert.Contains(t, errOut.String(), "warning: model.shop.orders.geo: unsupported type")
	assert.Contains(t, errOut.String(), "error: model.shop.broken: model has no columns")
}

func TestRenderJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeJSON)

	require.NoError(t, r.Render(sampleSummary()))
	assert.Empty(t, errOut.String())

	var got Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, 3, got.Views)
	assert.Len(t, got.Diagnostics, 2)
}

func TestRenderTable(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeTable)

	require.NoError(t, r.Render(sampleSummary()))

	assert.Contains(t, errOut.String(), "model.shop.orders")
	assert.Contains(t, errOut.String(), "WARNING")
	assert.Contains(t, out.String(), "Generated 3 LookML views")
}

func TestRenderTableNoDiagnostics(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeTable)

	s := sampleSummary()
	s.Diagnostics = nil
	require.NoError(t, r.Render(s))

	assert.Empty(t, errOut.String())
}

func TestUnknownModeFallsBackToText(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, Mode("xml"))

	require.NoError(t, r.Render(sampleSummary()))
	assert.Contains(t, out.String(), "Generated 3 LookML views")
}
