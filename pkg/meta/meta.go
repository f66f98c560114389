// Package meta parses and validates the looker annotation blocks users place
// under `meta:` keys in their dbt schema files. Blocks are decoded strictly
// into a closed set of annotation shapes: a dimension override, named
// measure declarations, and model-level explore metadata. Unrecognized
// fields and unknown enum values become typed AnnotationErrors rather than
// silently ignored input.
package meta

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/lookgen/pkg/core"
)

// DimensionOverride adjusts or suppresses the default-derived dimension (or
// dimension group) for one column. Pointer fields distinguish "not set" from
// an explicit value: overrides merge with derived defaults, override winning
// per attribute.
type DimensionOverride struct {
	Enabled         *bool
	Name            string
	Label           string
	Hidden          *bool
	SQL             string
	Description     string
	ValueFormatName core.ValueFormat
}

// Measure is one declared measure annotation, column-level or model-level.
type Measure struct {
	Name            string
	Type            core.AggregateType
	Label           string
	Hidden          bool
	SQL             string
	Description     string
	ValueFormatName core.ValueFormat
	Filters         []core.MeasureFilter
}

// ColumnMeta is the parsed column-level annotation block.
type ColumnMeta struct {
	Dimension *DimensionOverride
	// Measures are ordered by name for deterministic output.
	Measures []Measure
}

// ModelMeta is the parsed model-level annotation block.
type ModelMeta struct {
	// PrimaryKey names the primary key column, or a comma-separated list
	// for a synthesized compound key.
	PrimaryKey string
	// Measures are model-level measures not tied to a single column.
	Measures []Measure
	// Joins describe the generated explore, when present.
	Joins []core.ExploreJoin
}

// Wire shapes. The measure maps accept the four aliases dbt users write in
// the wild (measures/measure/metrics/metric); later aliases win on a name
// clash, matching how overlapping blocks merge in dbt itself.
type rawColumnMeta struct {
	Looker    *rawInnerMeta         `mapstructure:"looker"`
	Measures  map[string]rawMeasure `mapstructure:"measures"`
	Measure   map[string]rawMeasure `mapstructure:"measure"`
	Metrics   map[string]rawMeasure `mapstructure:"metrics"`
	Metric    map[string]rawMeasure `mapstructure:"metric"`
	Dimension *rawDimension         `mapstructure:"dimension"`
}

type rawInnerMeta struct {
	Measures  map[string]rawMeasure `mapstructure:"measures"`
	Measure   map[string]rawMeasure `mapstructure:"measure"`
	Metrics   map[string]rawMeasure `mapstructure:"metrics"`
	Metric    map[string]rawMeasure `mapstructure:"metric"`
	Dimension *rawDimension         `mapstructure:"dimension"`
}

type rawDimension struct {
	Enabled         *bool  `mapstructure:"enabled"`
	Name            string `mapstructure:"name"`
	Label           string `mapstructure:"label"`
	Hidden          *bool  `mapstructure:"hidden"`
	SQL             string `mapstructure:"sql"`
	Description     string `mapstructure:"description"`
	ValueFormatName string `mapstructure:"value_format_name"`
}

type rawMeasure struct {
	Type            string              `mapstructure:"type"`
	Label           string              `mapstructure:"label"`
	Hidden          bool                `mapstructure:"hidden"`
	SQL             string              `mapstructure:"sql"`
	Description     string              `mapstructure:"description"`
	ValueFormatName string              `mapstructure:"value_format_name"`
	Filters         []map[string]string `mapstructure:"filters"`
}

type rawModelMeta struct {
	Looker *rawModelInner `mapstructure:"looker"`
	Joins  []rawJoin      `mapstructure:"joins"`
	// Both spellings occur in the wild.
	PrimaryKey       string                `mapstructure:"primary_key"`
	PrimaryKeyDashed string                `mapstructure:"primary-key"`
	Measures         map[string]rawMeasure `mapstructure:"measures"`
	Measure          map[string]rawMeasure `mapstructure:"measure"`
	Metrics          map[string]rawMeasure `mapstructure:"metrics"`
	Metric           map[string]rawMeasure `mapstructure:"metric"`
}

type rawModelInner struct {
	Joins []rawJoin `mapstructure:"joins"`
}

type rawJoin struct {
	Join         string `mapstructure:"join"`
	Type         string `mapstructure:"type"`
	Relationship string `mapstructure:"relationship"`
	SQLOn        string `mapstructure:"sql_on"`
}

// ParseColumnMeta decodes a raw column meta block. It returns the parsed
// annotations plus every AnnotationError found in the block. A bad
// annotation drops only its own effect: an invalid measure is omitted while
// valid ones survive, and a broken dimension override leaves the default
// derivation in place.
func ParseColumnMeta(modelID, column string, raw map[string]any) (*ColumnMeta, []error) {
	out := &ColumnMeta{}
	if len(raw) == 0 {
		return out, nil
	}

	var rc rawColumnMeta
	errs := decodeStrict(modelID, column, raw, &rc)

	if rc.Looker != nil {
		rc.Measures = mergeMeasureMaps(rc.Looker.Measures, rc.Looker.Measure, rc.Looker.Metrics, rc.Looker.Metric, rc.Measures)
		if rc.Dimension == nil {
			rc.Dimension = rc.Looker.Dimension
		}
	}
	merged := mergeMeasureMaps(rc.Measures, rc.Measure, rc.Metrics, rc.Metric)

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m, merrs := buildMeasure(modelID, column, name, merged[name])
		if len(merrs) > 0 {
			errs = append(errs, merrs...)
			continue
		}
		out.Measures = append(out.Measures, m)
	}

	if rc.Dimension != nil {
		d, derrs := buildDimensionOverride(modelID, column, rc.Dimension)
		if len(derrs) > 0 {
			errs = append(errs, derrs...)
		} else {
			out.Dimension = d
		}
	}
	return out, errs
}

// ParseModelMeta decodes a raw model-level meta block.
func ParseModelMeta(modelID string, raw map[string]any) (*ModelMeta, []error) {
	out := &ModelMeta{}
	if len(raw) == 0 {
		return out, nil
	}

	var rm rawModelMeta
	errs := decodeStrict(modelID, "", raw, &rm)

	out.PrimaryKey = rm.PrimaryKey
	if out.PrimaryKey == "" {
		out.PrimaryKey = rm.PrimaryKeyDashed
	}

	merged := mergeMeasureMaps(rm.Measures, rm.Measure, rm.Metrics, rm.Metric)
	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m, merrs := buildMeasure(modelID, "", name, merged[name])
		if len(merrs) > 0 {
			errs = append(errs, merrs...)
			continue
		}
		out.Measures = append(out.Measures, m)
	}

	joins := rm.Joins
	if rm.Looker != nil && len(rm.Looker.Joins) > 0 {
		joins = rm.Looker.Joins
	}
	for i, rj := range joins {
		j, jerrs := buildJoin(modelID, i, rj)
		if len(jerrs) > 0 {
			errs = append(errs, jerrs...)
			continue
		}
		out.Joins = append(out.Joins, j)
	}
	return out, errs
}

// decodeStrict decodes raw into target, reporting every unknown field as an
// AnnotationError with its path.
func decodeStrict(modelID, column string, raw map[string]any, target any) []error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   target,
		Metadata: &md,
	})
	if err != nil {
		return []error{&core.AnnotationError{ModelID: modelID, Column: column, Reason: err.Error()}}
	}

	var errs []error
	if err := dec.Decode(raw); err != nil {
		// Decode failures come back joined, one per offending field.
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				errs = append(errs, &core.AnnotationError{ModelID: modelID, Column: column, Reason: e.Error()})
			}
		} else {
			errs = append(errs, &core.AnnotationError{ModelID: modelID, Column: column, Reason: err.Error()})
		}
		return errs
	}
	sort.Strings(md.Unused)
	for _, key := range md.Unused {
		errs = append(errs, &core.AnnotationError{
			ModelID: modelID, Column: column, Path: key,
			Reason: "unrecognized annotation field",
		})
	}
	return errs
}

func buildMeasure(modelID, column, name string, rm rawMeasure) (Measure, []error) {
	var errs []error
	m := Measure{
		Name:        name,
		Label:       rm.Label,
		Hidden:      rm.Hidden,
		SQL:         rm.SQL,
		Description: rm.Description,
	}

	agg, ok := core.ParseAggregateType(rm.Type)
	if !ok {
		errs = append(errs, &core.AnnotationError{
			ModelID: modelID, Column: column, Path: "measures." + name + ".type",
			Reason: fmt.Sprintf("unknown aggregate type %q", rm.Type),
		})
	}
	m.Type = agg

	if rm.ValueFormatName != "" {
		vf, ok := core.ParseValueFormat(rm.ValueFormatName)
		if !ok {
			errs = append(errs, &core.AnnotationError{
				ModelID: modelID, Column: column, Path: "measures." + name + ".value_format_name",
				Reason: fmt.Sprintf("unknown value format %q", rm.ValueFormatName),
			})
		}
		m.ValueFormatName = vf
	}

	for i, f := range rm.Filters {
		if len(f) != 1 {
			errs = append(errs, &core.AnnotationError{
				ModelID: modelID, Column: column,
				Path:   fmt.Sprintf("measures.%s.filters[%d]", name, i),
				Reason: "a measure filter must name exactly one column",
			})
			continue
		}
		for col, expr := range f {
			m.Filters = append(m.Filters, core.MeasureFilter{Dimension: col, Expression: expr})
		}
	}
	if len(errs) > 0 {
		return Measure{}, errs
	}
	return m, nil
}

func buildDimensionOverride(modelID, column string, rd *rawDimension) (*DimensionOverride, []error) {
	var errs []error
	d := &DimensionOverride{
		Enabled:     rd.Enabled,
		Name:        rd.Name,
		Label:       rd.Label,
		Hidden:      rd.Hidden,
		SQL:         rd.SQL,
		Description: rd.Description,
	}
	if rd.ValueFormatName != "" {
		vf, ok := core.ParseValueFormat(rd.ValueFormatName)
		if !ok {
			errs = append(errs, &core.AnnotationError{
				ModelID: modelID, Column: column, Path: "dimension.value_format_name",
				Reason: fmt.Sprintf("unknown value format %q", rd.ValueFormatName),
			})
		}
		d.ValueFormatName = vf
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return d, nil
}

func buildJoin(modelID string, idx int, rj rawJoin) (core.ExploreJoin, []error) {
	var errs []error
	j := core.ExploreJoin{Name: rj.Join, SQLOn: rj.SQLOn}

	if rj.Join == "" {
		errs = append(errs, &core.AnnotationError{
			ModelID: modelID, Path: fmt.Sprintf("joins[%d].join", idx),
			Reason: "missing join target",
		})
	}
	if rj.SQLOn == "" {
		errs = append(errs, &core.AnnotationError{
			ModelID: modelID, Path: fmt.Sprintf("joins[%d].sql_on", idx),
			Reason: "missing sql_on condition",
		})
	}

	j.Type = core.JoinLeftOuter
	if rj.Type != "" {
		jt, ok := core.ParseJoinType(rj.Type)
		if !ok {
			errs = append(errs, &core.AnnotationError{
				ModelID: modelID, Path: fmt.Sprintf("joins[%d].type", idx),
				Reason: fmt.Sprintf("unknown join type %q", rj.Type),
			})
		}
		j.Type = jt
	}

	j.Relationship = core.RelManyToOne
	if rj.Relationship != "" {
		rel, ok := core.ParseJoinRelationship(rj.Relationship)
		if !ok {
			errs = append(errs, &core.AnnotationError{
				ModelID: modelID, Path: fmt.Sprintf("joins[%d].relationship", idx),
				Reason: fmt.Sprintf("unknown join relationship %q", rj.Relationship),
			})
		}
		j.Relationship = rel
	}

	if len(errs) > 0 {
		return core.ExploreJoin{}, errs
	}
	return j, nil
}

// mergeMeasureMaps merges alias maps; later maps win on a name clash.
func mergeMeasureMaps(maps ...map[string]rawMeasure) map[string]rawMeasure {
	out := make(map[string]rawMeasure)
	for _, m := range maps {
		for name, rm := range m {
			out[name] = rm
		}
	}
	return out
}
