// Package dialect maps warehouse-specific column type strings to abstract
// column types. Each supported warehouse has its own raw-type vocabulary,
// defined as a data table in a pkg/dialects subpackage and registered here
// via init().
package dialect

import (
	"strings"

	"github.com/leapstack-labs/lookgen/pkg/core"
)

// Dialect holds the type vocabulary for one warehouse adapter. The Types
// table is explicit configuration, not ambient state: tests build synthetic
// dialects without touching the registry.
type Dialect struct {
	// Name is the dbt adapter_type, e.g. "snowflake".
	Name string
	// Types maps upper-cased bare type names to abstract types.
	// Parameterized forms are reduced to their bare form before lookup.
	Types map[string]core.AbstractType
}

// MapType maps a raw warehouse type string to an abstract type. It is total:
// every input maps to some AbstractType, falling back to TypeUnknown rather
// than failing. Matching is case-insensitive and tolerant of parameterized
// types — "NUMERIC(10,2)" matches the same entry as "NUMERIC".
func (d *Dialect) MapType(raw string) core.AbstractType {
	bare := bareType(raw)
	if bare == "" {
		return core.TypeUnknown
	}
	if t, ok := d.Types[bare]; ok {
		return t
	}
	return core.TypeUnknown
}

// bareType strips a precision/scale suffix and normalizes case.
// "Numeric(10,2)" -> "NUMERIC", "array<string>" -> "ARRAY".
func bareType(raw string) string {
	if i := strings.IndexAny(raw, "(<"); i >= 0 {
		raw = raw[:i]
	}
	return strings.ToUpper(strings.TrimSpace(raw))
}
