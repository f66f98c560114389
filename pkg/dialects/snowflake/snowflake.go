// Package snowflake provides the Snowflake type table.
// This package is pure data with no warehouse driver dependencies.
package snowflake

import (
	"github.com/leapstack-labs/lookgen/pkg/core"
	"github.com/leapstack-labs/lookgen/pkg/dialect"
)

var types = map[string]core.AbstractType{
	"NUMBER":           core.TypeNumber,
	"DECIMAL":          core.TypeNumber,
	"NUMERIC":          core.TypeNumber,
	"INT":              core.TypeNumber,
	"INTEGER":          core.TypeNumber,
	"BIGINT":           core.TypeNumber,
	"SMALLINT":         core.TypeNumber,
	"FLOAT":            core.TypeNumber,
	"FLOAT4":           core.TypeNumber,
	"FLOAT8":           core.TypeNumber,
	"DOUBLE":           core.TypeNumber,
	"DOUBLE PRECISION": core.TypeNumber,
	"REAL":             core.TypeNumber,
	"VARCHAR":          core.TypeString,
	"CHAR":             core.TypeString,
	"CHARACTER":        core.TypeString,
	"STRING":           core.TypeString,
	"TEXT":             core.TypeString,
	"BINARY":           core.TypeString,
	"VARBINARY":        core.TypeString,
	"BOOLEAN":          core.TypeBoolean,
	"DATE":             core.TypeDate,
	"DATETIME":         core.TypeTime,
	"TIME":             core.TypeString,
	"TIMESTAMP":        core.TypeTime,
	"TIMESTAMP_NTZ":    core.TypeTime,
	// TIMESTAMP_LTZ and TIMESTAMP_TZ are not supported by Looker
	// dimension groups and are left unmapped.
	"VARIANT":   core.TypeString,
	"OBJECT":    core.TypeString,
	"ARRAY":     core.TypeString,
	"GEOGRAPHY": core.TypeString,
}

func init() {
	dialect.Register(&dialect.Dialect{Name: "snowflake", Types: types})
}
