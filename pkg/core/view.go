package core

// ViewDefinition is the assembled output for one model: the complete set of
// dimensions, dimension groups, and measures, ready for LookML emission.
// Field slices preserve source column order; dimension groups flatten to
// their grains at the position of their source column.
type ViewDefinition struct {
	// Name is the view name (the model name).
	Name string
	// SQLTableName is the physical relation the view selects from.
	SQLTableName string
	// Description is carried over from the model.
	Description string

	Dimensions      []Dimension
	DimensionGroups []DimensionGroup
	Measures        []Measure
}

// Dimension is a single queryable attribute derived from one column.
type Dimension struct {
	Name            string
	Type            AbstractType
	Label           string
	Description     string
	SQL             string
	Hidden          bool
	PrimaryKey      bool
	ValueFormatName ValueFormat

	// SourceColumn is the column the dimension was derived from. Empty for
	// synthesized dimensions (compound primary key). Not serialized.
	SourceColumn string
}

// DimensionGroup is a bundle of time-grain dimensions derived from one
// temporal column. It replaces the plain dimension for that column.
type DimensionGroup struct {
	Name        string
	Kind        AbstractType // TypeDate or TypeTime
	Label       string
	Description string
	SQL         string
	Hidden      bool
	Timeframes  []TimeGrain

	SourceColumn string
}

// GrainNames returns the flattened field names the group occupies in the
// view namespace, one per grain (e.g. "created_date", "created_week").
func (g *DimensionGroup) GrainNames() []string {
	names := make([]string, 0, len(g.Timeframes))
	for _, tf := range g.Timeframes {
		names = append(names, g.Name+"_"+string(tf))
	}
	return names
}

// MeasureFilter restricts a measure to rows matching an expression on one
// dimension. Exactly one dimension per filter.
type MeasureFilter struct {
	Dimension  string
	Expression string
}

// Measure is an aggregation exposed on a view. SourceColumn is empty for
// model-level measures such as the default row count.
type Measure struct {
	Name            string
	Type            AggregateType
	Label           string
	Description     string
	SQL             string
	Hidden          bool
	ValueFormatName ValueFormat
	Filters         []MeasureFilter

	SourceColumn string
}

// FieldNames returns every name the view occupies in the LookML namespace,
// with dimension groups flattened to their grains, in field order.
// Dimensions and measures share one namespace in LookML, so the assembler
// requires these to be unique case-insensitively.
func (v *ViewDefinition) FieldNames() []string {
	var names []string
	for _, d := range v.Dimensions {
		names = append(names, d.Name)
	}
	for _, g := range v.DimensionGroups {
		names = append(names, g.GrainNames()...)
	}
	for _, m := range v.Measures {
		names = append(names, m.Name)
	}
	return names
}

// ExploreJoin is one join declaration in a generated explore.
type ExploreJoin struct {
	Name         string
	Type         JoinType
	Relationship JoinRelationship
	SQLOn        string
}

// Explore describes a generated LookML model file: a connection, the view
// include, and one explore with optional joins.
type Explore struct {
	Connection  string
	Name        string
	Description string
	Joins       []ExploreJoin
}
