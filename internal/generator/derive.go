package generator

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/leapstack-labs/lookgen/pkg/core"
	"github.com/leapstack-labs/lookgen/pkg/meta"
)

// fieldKind tags the variants of a derived field.
type fieldKind int

const (
	kindDimension fieldKind = iota
	kindDimensionGroup
	kindMeasure
)

// derivedField is one derived dimension, dimension group, or measure, kept
// in column order until assembly.
type derivedField struct {
	kind      fieldKind
	dimension core.Dimension
	group     core.DimensionGroup
	measure   core.Measure
}

// name returns the field's view-namespace name (group name for groups; the
// grain expansion happens at assembly).
func (f *derivedField) name() string {
	switch f.kind {
	case kindDimension:
		return f.dimension.Name
	case kindDimensionGroup:
		return f.group.Name
	default:
		return f.measure.Name
	}
}

// source returns the field's source column, empty for model-level fields.
func (f *derivedField) source() string {
	switch f.kind {
	case kindDimension:
		return f.dimension.SourceColumn
	case kindDimensionGroup:
		return f.group.SourceColumn
	default:
		return f.measure.SourceColumn
	}
}

// deriveColumn produces the derived fields for one column. Default policy:
// temporal columns become a six-grain dimension group instead of a plain
// dimension, everything else becomes one dimension of the mapped kind.
// A dimension override merges on top, override winning per attribute; extra
// measures are appended after the dimension.
func (e *Engine) deriveColumn(m *core.Model, col core.Column, columnMeta map[string]*meta.ColumnMeta) ([]derivedField, []core.Diagnostic) {
	var (
		fields []derivedField
		diags  []core.Diagnostic
	)
	cm := columnMeta[core.NormalizeName(col.Name)]
	ov := cm.Dimension

	at := e.dialect.MapType(col.RawType)
	if at == core.TypeUnknown {
		diags = append(diags, core.Warnf(m.UniqueID, col.Name,
			"column type %q is not supported for %s; falling back to a generic string dimension",
			col.RawType, e.dialect.Name))
		if ov != nil {
			diags = append(diags, core.Warnf(m.UniqueID, col.Name,
				"dimension override on a column with unsupported type %q", col.RawType))
		}
	}

	enabled := ov == nil || ov.Enabled == nil || *ov.Enabled
	if enabled {
		if at.Temporal() {
			fields = append(fields, derivedField{kind: kindDimensionGroup, group: deriveGroup(col, at, ov)})
		} else {
			fields = append(fields, derivedField{kind: kindDimension, dimension: deriveDimension(col, at, ov)})
		}
	}

	for _, mm := range cm.Measures {
		measure, ok := e.buildColumnMeasure(m, col, mm, columnMeta, &diags)
		if !ok {
			continue
		}
		fields = append(fields, derivedField{kind: kindMeasure, measure: measure})
	}
	return fields, diags
}

// deriveDimension applies the merge-override policy: every attribute keeps
// its derived default unless the override sets it explicitly.
func deriveDimension(col core.Column, at core.AbstractType, ov *meta.DimensionOverride) core.Dimension {
	d := core.Dimension{
		Name:         col.Name,
		Type:         at,
		Description:  col.Description,
		SQL:          tableColumn(col.Name),
		SourceColumn: col.Name,
	}
	if ov == nil {
		return d
	}
	if ov.Name != "" {
		d.Name = ov.Name
	}
	if ov.Label != "" {
		d.Label = ov.Label
	}
	if ov.Hidden != nil {
		d.Hidden = *ov.Hidden
	}
	if ov.SQL != "" {
		d.SQL = ov.SQL
	}
	if ov.Description != "" {
		d.Description = ov.Description
	}
	if ov.ValueFormatName != "" && at == core.TypeNumber {
		d.ValueFormatName = ov.ValueFormatName
	}
	return d
}

func deriveGroup(col core.Column, at core.AbstractType, ov *meta.DimensionOverride) core.DimensionGroup {
	g := core.DimensionGroup{
		Name:         col.Name,
		Kind:         at,
		Description:  col.Description,
		SQL:          tableColumn(col.Name),
		Timeframes:   core.CanonicalGrains(),
		SourceColumn: col.Name,
	}
	if ov == nil {
		return g
	}
	if ov.Name != "" {
		g.Name = ov.Name
	}
	if ov.Label != "" {
		g.Label = ov.Label
	}
	if ov.Hidden != nil {
		g.Hidden = *ov.Hidden
	}
	if ov.SQL != "" {
		g.SQL = ov.SQL
	}
	if ov.Description != "" {
		g.Description = ov.Description
	}
	return g
}

// buildColumnMeasure converts a measure annotation on a column. Filters are
// resolved against the model's columns, honoring dimension renames; a filter
// naming a nonexistent column drops the measure with a warning.
func (e *Engine) buildColumnMeasure(m *core.Model, col core.Column, mm meta.Measure, columnMeta map[string]*meta.ColumnMeta, diags *[]core.Diagnostic) (core.Measure, bool) {
	measure := core.Measure{
		Name:            mm.Name,
		Type:            mm.Type,
		Label:           mm.Label,
		Hidden:          mm.Hidden,
		SQL:             mm.SQL,
		Description:     mm.Description,
		ValueFormatName: mm.ValueFormatName,
		SourceColumn:    col.Name,
	}
	if measure.SQL == "" {
		measure.SQL = tableColumn(col.Name)
	}
	if measure.Description == "" {
		measure.Description = col.Description
	}
	if measure.Description == "" {
		measure.Description = fmt.Sprintf("%s of %s", inflect.Humanize(string(mm.Type)), inflect.Humanize(col.Name))
	}

	for _, f := range mm.Filters {
		target := core.NormalizeName(f.Dimension)
		cm, ok := columnMeta[target]
		if !ok {
			*diags = append(*diags, core.Warnf(m.UniqueID, col.Name,
				"measure %q filters on column %q which does not exist on the model", mm.Name, f.Dimension))
			return core.Measure{}, false
		}
		// The filter references the dimension, not the column: honor a
		// rename, otherwise use the column's manifest spelling.
		dimName := columnSpelling(m, target)
		if cm.Dimension != nil && cm.Dimension.Name != "" {
			dimName = cm.Dimension.Name
		}
		measure.Filters = append(measure.Filters, core.MeasureFilter{Dimension: dimName, Expression: f.Expression})
	}
	return measure, true
}

// modelFields derives the per-model fields: model-level measures, the
// primary key marking (or a synthesized compound-key dimension), and the
// default row-count measure.
func (e *Engine) modelFields(m *core.Model, mm *meta.ModelMeta, columnFields []derivedField) []derivedField {
	var fields []derivedField

	for _, measure := range mm.Measures {
		cm := core.Measure{
			Name:            measure.Name,
			Type:            measure.Type,
			Label:           measure.Label,
			Hidden:          measure.Hidden,
			SQL:             measure.SQL,
			Description:     measure.Description,
			ValueFormatName: measure.ValueFormatName,
		}
		fields = append(fields, derivedField{kind: kindMeasure, measure: cm})
	}

	if pk := strings.TrimSpace(mm.PrimaryKey); pk != "" {
		if strings.Contains(pk, ",") {
			fields = append(fields, derivedField{kind: kindDimension, dimension: compoundKeyDimension(pk)})
		} else {
			markPrimaryKey(columnFields, core.NormalizeName(pk))
		}
	}

	if !hasField(columnFields, "count") && !hasField(fields, "count") {
		fields = append(fields, derivedField{kind: kindMeasure, measure: core.Measure{
			Name:        "count",
			Type:        core.AggregateCount,
			Description: "Default count measure",
		}})
	}
	return fields
}

// compoundKeyDimension synthesizes a hidden primary key dimension from a
// comma-separated column list.
func compoundKeyDimension(pk string) core.Dimension {
	parts := strings.Split(pk, ",")
	refs := make([]string, 0, len(parts))
	for _, p := range parts {
		refs = append(refs, tableColumn(strings.TrimSpace(p)))
	}
	return core.Dimension{
		Name:        "primary_key",
		Type:        core.TypeString,
		PrimaryKey:  true,
		Hidden:      true,
		SQL:         "CONCAT(" + strings.Join(refs, ", ") + ")",
		Description: "Auto generated compound key from the columns: " + pk,
	}
}

func markPrimaryKey(fields []derivedField, column string) {
	for i := range fields {
		if fields[i].kind == kindDimension && core.NormalizeName(fields[i].dimension.SourceColumn) == column {
			fields[i].dimension.PrimaryKey = true
		}
	}
}

func hasField(fields []derivedField, name string) bool {
	for i := range fields {
		if core.NormalizeName(fields[i].name()) == name {
			return true
		}
	}
	return false
}

// columnSpelling returns the manifest spelling for a normalized column name.
func columnSpelling(m *core.Model, normalized string) string {
	for _, col := range m.Columns {
		if core.NormalizeName(col.Name) == normalized {
			return col.Name
		}
	}
	return normalized
}

// tableColumn renders the ${TABLE} substitution for a column.
func tableColumn(name string) string {
	return "${TABLE}." + name
}
