package meta

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/leapstack-labs/lookgen/pkg/core"
)

// fieldNamePattern is the LookML field name grammar.
var fieldNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidateView checks the shape of an assembled view definition before it is
// handed to serialization. The assembler upholds these invariants itself, so
// findings here indicate internal bugs; the gate is defensive and reports
// every violation found, not just the first.
func ValidateView(v *core.ViewDefinition) []core.Diagnostic {
	var diags []core.Diagnostic
	report := func(column, format string, args ...any) {
		diags = append(diags, core.Errorf(v.Name, column, format, args...))
	}

	if v.Name == "" {
		report("", "view has no name")
	} else if !fieldNamePattern.MatchString(v.Name) {
		report("", "view name %q is not a valid LookML identifier", v.Name)
	}
	if v.SQLTableName == "" {
		report("", "view has no sql_table_name")
	}

	seen := make(map[string]string)
	checkName := func(name, column string) {
		if name == "" {
			report(column, "field has no name")
			return
		}
		if !fieldNamePattern.MatchString(name) {
			report(column, "field name %q is not a valid LookML identifier", name)
			return
		}
		norm := core.NormalizeName(name)
		if prev, dup := seen[norm]; dup {
			report(column, "field name %q collides with %q", name, prev)
			return
		}
		seen[norm] = name
	}

	for _, d := range v.Dimensions {
		checkName(d.Name, d.SourceColumn)
	}
	for _, g := range v.DimensionGroups {
		if !g.Kind.Temporal() {
			report(g.SourceColumn, "dimension group %q has non-temporal kind %q", g.Name, g.Kind)
		}
		if !slices.Equal(g.Timeframes, core.CanonicalGrains()) {
			report(g.SourceColumn, "dimension group %q has non-canonical timeframes %v", g.Name, g.Timeframes)
		}
		for _, name := range g.GrainNames() {
			checkName(name, g.SourceColumn)
		}
	}
	for _, m := range v.Measures {
		checkName(m.Name, m.SourceColumn)
		if _, ok := core.ParseAggregateType(string(m.Type)); !ok {
			report(m.SourceColumn, "measure %q has unknown aggregate type %q", m.Name, m.Type)
		}
		for i, f := range m.Filters {
			if f.Dimension == "" || f.Expression == "" {
				report(m.SourceColumn, "measure %q filter %s is incomplete", m.Name, fmt.Sprint(i))
			}
		}
	}
	return diags
}
