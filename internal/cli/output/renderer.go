// Package output renders generation diagnostics and run summaries for the
// terminal or for machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/lookgen/pkg/core"
)

// Mode selects the rendering style.
type Mode string

// Rendering modes.
const (
	ModeText  Mode = "text"
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
)

// Summary describes one generation run.
type Summary struct {
	RunID       string            `json:"run_id"`
	Dialect     string            `json:"dialect"`
	Views       int               `json:"views"`
	Models      int               `json:"models"`
	OutputDir   string            `json:"output_dir"`
	Diagnostics []core.Diagnostic `json:"diagnostics"`
}

// Renderer writes diagnostics and summaries to out, errors to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer for the given mode. Unknown modes fall
// back to text.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeTable, ModeJSON:
	default:
		mode = ModeText
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// Render writes the run summary in the renderer's mode.
func (r *Renderer) Render(s *Summary) error {
	switch r.mode {
	case ModeJSON:
		return r.renderJSON(s)
	case ModeTable:
		return r.renderTable(s)
	default:
		return r.renderText(s)
	}
}

func (r *Renderer) renderJSON(s *Summary) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func (r *Renderer) renderText(s *Summary) error {
	for _, d := range s.Diagnostics {
		fmt.Fprintln(r.errOut, d.String())
	}
	fmt.Fprintf(r.out, "Generated %d LookML views from %d models in %s (run %s)\n",
		s.Views, s.Models, s.OutputDir, s.RunID)
	return nil
}

func (r *Renderer) renderTable(s *Summary) error {
	if len(s.Diagnostics) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(r.errOut)
		t.AppendHeader(table.Row{"Severity", "Model", "Column", "Message"})
		for _, d := range s.Diagnostics {
			t.AppendRow(table.Row{strings.ToUpper(d.Severity.String()), d.ModelID, d.Column, d.Message})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
	}
	fmt.Fprintf(r.out, "Generated %d LookML views from %d models in %s (run %s)\n",
		s.Views, s.Models, s.OutputDir, s.RunID)
	return nil
}
