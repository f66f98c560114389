package core

// AbstractType is the result of mapping a warehouse column type through a
// dialect table. Every raw type string maps to exactly one AbstractType;
// TypeUnknown is a valid terminal state that degrades to a generic string
// dimension, never an error.
type AbstractType string

// Abstract column types.
const (
	TypeString  AbstractType = "string"
	TypeNumber  AbstractType = "number"
	TypeBoolean AbstractType = "boolean"
	TypeDate    AbstractType = "date"
	TypeTime    AbstractType = "time"
	TypeUnknown AbstractType = "unknown"
)

// Temporal reports whether the type derives a dimension group rather than a
// plain dimension.
func (t AbstractType) Temporal() bool {
	return t == TypeDate || t == TypeTime
}

// LookerType returns the LookML dimension type keyword for the abstract
// type. Unknown falls back to string, the generic LookML dimension kind.
func (t AbstractType) LookerType() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "yesno"
	case TypeString, TypeUnknown:
		return "string"
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	default:
		return "string"
	}
}

// TimeGrain is one generated dimension of a dimension group.
type TimeGrain string

// Time grains in canonical order.
const (
	GrainTime    TimeGrain = "time"
	GrainDate    TimeGrain = "date"
	GrainWeek    TimeGrain = "week"
	GrainMonth   TimeGrain = "month"
	GrainQuarter TimeGrain = "quarter"
	GrainYear    TimeGrain = "year"
)

// CanonicalGrains is the fixed grain set every dimension group expands to,
// in emission order.
func CanonicalGrains() []TimeGrain {
	return []TimeGrain{GrainTime, GrainDate, GrainWeek, GrainMonth, GrainQuarter, GrainYear}
}

// AggregateType is a closed enumeration of Looker measure aggregations.
type AggregateType string

// Measure aggregation kinds.
const (
	AggregateCount           AggregateType = "count"
	AggregateCountDistinct   AggregateType = "count_distinct"
	AggregateSum             AggregateType = "sum"
	AggregateSumDistinct     AggregateType = "sum_distinct"
	AggregateAverage         AggregateType = "average"
	AggregateAverageDistinct AggregateType = "average_distinct"
	AggregateMin             AggregateType = "min"
	AggregateMax             AggregateType = "max"
	AggregateMedian          AggregateType = "median"
	AggregateMedianDistinct  AggregateType = "median_distinct"
	AggregateList            AggregateType = "list"
)

// ParseAggregateType converts a string to an AggregateType.
// Returns the type and true if valid.
func ParseAggregateType(s string) (AggregateType, bool) {
	switch AggregateType(s) {
	case AggregateCount, AggregateCountDistinct, AggregateSum, AggregateSumDistinct,
		AggregateAverage, AggregateAverageDistinct, AggregateMin, AggregateMax,
		AggregateMedian, AggregateMedianDistinct, AggregateList:
		return AggregateType(s), true
	default:
		return "", false
	}
}

// ValueFormat is a closed enumeration of Looker value_format_name values.
type ValueFormat string

// Looker named value formats.
const (
	FormatDecimal0 ValueFormat = "decimal_0"
	FormatDecimal1 ValueFormat = "decimal_1"
	FormatDecimal2 ValueFormat = "decimal_2"
	FormatDecimal3 ValueFormat = "decimal_3"
	FormatDecimal4 ValueFormat = "decimal_4"
	FormatUSD0     ValueFormat = "usd_0"
	FormatUSD      ValueFormat = "usd"
	FormatGBP0     ValueFormat = "gbp_0"
	FormatGBP      ValueFormat = "gbp"
	FormatEUR0     ValueFormat = "eur_0"
	FormatEUR      ValueFormat = "eur"
	FormatID       ValueFormat = "id"
	FormatPercent0 ValueFormat = "percent_0"
	FormatPercent1 ValueFormat = "percent_1"
	FormatPercent2 ValueFormat = "percent_2"
	FormatPercent3 ValueFormat = "percent_3"
	FormatPercent4 ValueFormat = "percent_4"
)

// ParseValueFormat converts a string to a ValueFormat.
// Returns the format and true if valid.
func ParseValueFormat(s string) (ValueFormat, bool) {
	switch ValueFormat(s) {
	case FormatDecimal0, FormatDecimal1, FormatDecimal2, FormatDecimal3, FormatDecimal4,
		FormatUSD0, FormatUSD, FormatGBP0, FormatGBP, FormatEUR0, FormatEUR,
		FormatID, FormatPercent0, FormatPercent1, FormatPercent2, FormatPercent3,
		FormatPercent4:
		return ValueFormat(s), true
	default:
		return "", false
	}
}

// JoinType is a closed enumeration of Looker explore join types.
type JoinType string

// Explore join types.
const (
	JoinLeftOuter JoinType = "left_outer"
	JoinFullOuter JoinType = "full_outer"
	JoinInner     JoinType = "inner"
	JoinCross     JoinType = "cross"
)

// ParseJoinType converts a string to a JoinType.
func ParseJoinType(s string) (JoinType, bool) {
	switch JoinType(s) {
	case JoinLeftOuter, JoinFullOuter, JoinInner, JoinCross:
		return JoinType(s), true
	default:
		return "", false
	}
}

// JoinRelationship is a closed enumeration of Looker join cardinalities.
type JoinRelationship string

// Explore join relationships.
const (
	RelManyToOne  JoinRelationship = "many_to_one"
	RelManyToMany JoinRelationship = "many_to_many"
	RelOneToMany  JoinRelationship = "one_to_many"
	RelOneToOne   JoinRelationship = "one_to_one"
)

// ParseJoinRelationship converts a string to a JoinRelationship.
func ParseJoinRelationship(s string) (JoinRelationship, bool) {
	switch JoinRelationship(s) {
	case RelManyToOne, RelManyToMany, RelOneToMany, RelOneToOne:
		return JoinRelationship(s), true
	default:
		return "", false
	}
}
