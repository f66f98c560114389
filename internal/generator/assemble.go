package generator

import (
	"github.com/leapstack-labs/lookgen/pkg/core"
)

// assembleView builds the view definition from the derived fields, keeping
// column order and enforcing the view namespace. Dimension groups occupy
// one name per grain. A duplicate name re-declared for the same source
// column is deduplicated last-declared-wins with a warning; a duplicate
// across different columns (including names differing only in case) is a
// structural error and the view is dropped, leaving the rest of the batch
// untouched.
func assembleView(m *core.Model, fields []derivedField) (*core.ViewDefinition, []core.Diagnostic) {
	var diags []core.Diagnostic
	serr := &core.StructuralError{ModelID: m.UniqueID}

	type slot struct {
		idx     int
		source  string
		display string
	}
	var (
		kept      []derivedField
		keptNames [][]string
		dead      []bool
		occupied  = make(map[string]slot)
	)

	for _, f := range fields {
		names := flattenedNames(&f)
		replace := -1
		collided := false
		for _, n := range names {
			norm := core.NormalizeName(n)
			occ, ok := occupied[norm]
			if !ok {
				continue
			}
			if f.source() != "" && occ.source == f.source() {
				replace = occ.idx
				diags = append(diags, core.Warnf(m.UniqueID, f.source(),
					"field %q declared more than once; keeping the last declaration", n))
				continue
			}
			serr.Add("fields."+norm, "name "+n+" collides with "+occ.display+
				" (from column "+displayColumn(occ.source)+")")
			collided = true
		}
		if collided {
			continue
		}
		if replace >= 0 {
			dead[replace] = true
			for _, n := range keptNames[replace] {
				delete(occupied, core.NormalizeName(n))
			}
		}
		idx := len(kept)
		kept = append(kept, f)
		keptNames = append(keptNames, names)
		dead = append(dead, false)
		for _, n := range names {
			occupied[core.NormalizeName(n)] = slot{idx: idx, source: f.source(), display: n}
		}
	}

	if len(serr.Violations) > 0 {
		for _, v := range serr.Violations {
			diags = append(diags, core.Errorf(m.UniqueID, "", "%s", v.String()))
		}
		return nil, diags
	}

	view := &core.ViewDefinition{
		Name:         m.Name,
		SQLTableName: m.RelationName,
		Description:  m.Description,
	}
	for i, f := range kept {
		if dead[i] {
			continue
		}
		switch f.kind {
		case kindDimension:
			view.Dimensions = append(view.Dimensions, f.dimension)
		case kindDimensionGroup:
			view.DimensionGroups = append(view.DimensionGroups, f.group)
		case kindMeasure:
			view.Measures = append(view.Measures, f.measure)
		}
	}
	return view, diags
}

// flattenedNames returns every view-namespace name a field occupies.
func flattenedNames(f *derivedField) []string {
	if f.kind == kindDimensionGroup {
		return f.group.GrainNames()
	}
	return []string{f.name()}
}

func displayColumn(source string) string {
	if source == "" {
		return "model meta"
	}
	return source
}
