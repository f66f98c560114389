// Package generator implements the metadata-to-view transformation engine.
// It turns validated dbt models into LookML view definitions: mapping column
// types through the warehouse dialect, deriving dimensions, dimension
// groups, and measures (with user annotations layered on top), assembling
// one view per model, and running the validation gate over the result.
package generator

import (
	"log/slog"
	"sort"

	"github.com/leapstack-labs/lookgen/pkg/core"
	"github.com/leapstack-labs/lookgen/pkg/dialect"
	"github.com/leapstack-labs/lookgen/pkg/meta"
)

// Engine derives view definitions for one warehouse dialect. The dialect
// type table is fixed at construction; everything else is a pure function of
// the input models, so repeated runs over identical input produce identical
// output.
type Engine struct {
	dialect *dialect.Dialect
	log     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithDialect substitutes an explicit dialect value, bypassing the registry.
// Used by tests with synthetic type tables.
func WithDialect(d *dialect.Dialect) Option {
	return func(e *Engine) { e.dialect = d }
}

// New creates an engine for the named dialect. An unsupported dialect fails
// here, once, rather than per column.
func New(dialectName string, opts ...Option) (*Engine, error) {
	e := &Engine{log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	if e.dialect == nil {
		d, err := dialect.Get(dialectName)
		if err != nil {
			return nil, err
		}
		e.dialect = d
	}
	return e, nil
}

// Dialect returns the engine's dialect.
func (e *Engine) Dialect() *dialect.Dialect { return e.dialect }

// Generate derives one view definition per structurally valid model. It
// never aborts the batch: a malformed model or an unresolvable naming
// collision surfaces as an error diagnostic for that model only, and the
// remaining views are still returned. Models are processed in unique-id
// order so diagnostics are deterministic.
func (e *Engine) Generate(models []*core.Model) (map[string]*core.ViewDefinition, []core.Diagnostic) {
	ordered := make([]*core.Model, len(models))
	copy(ordered, models)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].UniqueID < ordered[j].UniqueID })

	views := make(map[string]*core.ViewDefinition, len(ordered))
	var diags []core.Diagnostic

	for _, m := range ordered {
		view, vdiags := e.generateView(m)
		diags = append(diags, vdiags...)
		if view != nil {
			views[m.UniqueID] = view
		}
	}
	return views, diags
}

// generateView produces the view for one model, or nil with error
// diagnostics when the model is structurally broken.
func (e *Engine) generateView(m *core.Model) (*core.ViewDefinition, []core.Diagnostic) {
	var diags []core.Diagnostic

	if err := m.Validate(); err != nil {
		serr := err.(*core.StructuralError)
		for _, v := range serr.Violations {
			diags = append(diags, core.Errorf(m.UniqueID, "", "%s", v.String()))
		}
		return nil, diags
	}

	modelMeta, merrs := meta.ParseModelMeta(m.UniqueID, m.Meta)
	diags = append(diags, annotationDiags(merrs)...)

	// Keyed by normalized name so measure filters resolve case-insensitively.
	columnMeta := make(map[string]*meta.ColumnMeta, len(m.Columns))
	for _, col := range m.Columns {
		cm, cerrs := meta.ParseColumnMeta(m.UniqueID, col.Name, col.Meta)
		diags = append(diags, annotationDiags(cerrs)...)
		columnMeta[core.NormalizeName(col.Name)] = cm
	}

	var fields []derivedField
	for _, col := range m.Columns {
		colFields, cdiags := e.deriveColumn(m, col, columnMeta)
		fields = append(fields, colFields...)
		diags = append(diags, cdiags...)
	}
	fields = append(fields, e.modelFields(m, modelMeta, fields)...)

	view, adiags := assembleView(m, fields)
	diags = append(diags, adiags...)
	if view == nil {
		return nil, diags
	}

	if gate := meta.ValidateView(view); len(gate) > 0 {
		// Unreachable unless the deriver or assembler is broken.
		diags = append(diags, gate...)
		return nil, diags
	}

	e.log.Debug("generated view",
		"model", m.UniqueID,
		"dimensions", len(view.Dimensions),
		"dimension_groups", len(view.DimensionGroups),
		"measures", len(view.Measures))
	return view, diags
}

// annotationDiags converts annotation errors to warning diagnostics: a bad
// annotation drops its own effect and derivation falls back to defaults.
func annotationDiags(errs []error) []core.Diagnostic {
	var diags []core.Diagnostic
	for _, err := range errs {
		if aerr, ok := err.(*core.AnnotationError); ok {
			diags = append(diags, core.Diagnostic{
				ModelID:  aerr.ModelID,
				Column:   aerr.Column,
				Severity: core.SeverityWarning,
				Message:  aerr.Error(),
			})
			continue
		}
		diags = append(diags, core.Warnf("", "", "%s", err.Error()))
	}
	return diags
}
