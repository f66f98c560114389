package lookml

import (
	"strings"

	"github.com/leapstack-labs/lookgen/pkg/core"
)

// ViewFileName returns the output filename for a view.
func ViewFileName(viewName string) string {
	return viewName + ".view.lkml"
}

// ModelFileName returns the output filename for a model file.
func ModelFileName(modelName string) string {
	return modelName + ".model.lkml"
}

// Marshal serializes one view definition to LookML.
func Marshal(v *core.ViewDefinition) []byte {
	p := newPrinter()
	p.block("view", v.Name, func() {
		p.sql("sql_table_name", v.SQLTableName)

		for _, g := range v.DimensionGroups {
			p.writeln()
			writeDimensionGroup(p, g)
		}
		for _, d := range v.Dimensions {
			p.writeln()
			writeDimension(p, d)
		}
		for _, m := range v.Measures {
			p.writeln()
			writeMeasure(p, m)
		}
	})
	return p.Bytes()
}

// MarshalModel serializes a model file: connection, view includes, and one
// explore with its joins.
func MarshalModel(e *core.Explore) []byte {
	p := newPrinter()
	p.quoted("connection", e.Connection)
	p.quoted("include", "views/*")
	p.writeln()
	p.block("explore", e.Name, func() {
		if e.Description != "" {
			p.quoted("description", e.Description)
		}
		for _, j := range e.Joins {
			writeJoin(p, j)
		}
	})
	return p.Bytes()
}

func writeDimensionGroup(p *printer, g core.DimensionGroup) {
	p.block("dimension_group", g.Name, func() {
		p.param("type", "time")
		p.param("timeframes", grainList(g.Timeframes))
		p.sql("sql", g.SQL)
		if g.Label != "" {
			p.quoted("label", g.Label)
		}
		if g.Description != "" {
			p.quoted("description", g.Description)
		}
		p.param("datatype", datatype(g.Kind))
		if g.Hidden {
			p.param("hidden", "yes")
		}
	})
}

func writeDimension(p *printer, d core.Dimension) {
	p.block("dimension", d.Name, func() {
		p.param("type", d.Type.LookerType())
		p.sql("sql", d.SQL)
		if d.Label != "" {
			p.quoted("label", d.Label)
		}
		if d.Description != "" {
			p.quoted("description", d.Description)
		}
		if d.PrimaryKey {
			p.param("primary_key", "yes")
		}
		if d.Hidden {
			p.param("hidden", "yes")
		}
		if d.ValueFormatName != "" {
			p.param("value_format_name", string(d.ValueFormatName))
		}
	})
}

func writeMeasure(p *printer, m core.Measure) {
	p.block("measure", m.Name, func() {
		p.param("type", string(m.Type))
		if m.SQL != "" {
			p.sql("sql", m.SQL)
		}
		if m.Label != "" {
			p.quoted("label", m.Label)
		}
		if m.Description != "" {
			p.quoted("description", m.Description)
		}
		if m.Hidden {
			p.param("hidden", "yes")
		}
		if m.ValueFormatName != "" {
			p.param("value_format_name", string(m.ValueFormatName))
		}
		if len(m.Filters) > 0 {
			p.param("filters", filterList(m.Filters))
		}
	})
}

func writeJoin(p *printer, j core.ExploreJoin) {
	p.block("join", j.Name, func() {
		p.param("type", string(j.Type))
		p.param("relationship", string(j.Relationship))
		p.sql("sql_on", j.SQLOn)
	})
}

// grainList renders a timeframes list: [time, date, week, ...].
func grainList(grains []core.TimeGrain) string {
	parts := make([]string, 0, len(grains))
	for _, g := range grains {
		parts = append(parts, string(g))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// filterList renders the bracketed filters form:
// [status: "completed", tier: "-gold"].
func filterList(filters []core.MeasureFilter) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, f.Dimension+": "+quote(f.Expression))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// datatype renders the dimension_group datatype keyword.
func datatype(kind core.AbstractType) string {
	if kind == core.TypeDate {
		return "date"
	}
	return "timestamp"
}
