// Package spark provides the Spark SQL type table.
// This package is pure data with no warehouse driver dependencies.
package spark

import (
	"github.com/leapstack-labs/lookgen/pkg/core"
	"github.com/leapstack-labs/lookgen/pkg/dialect"
)

// Spark reports parameterized forms like "decimal(10,0)"; the mapper
// reduces them to the bare name before lookup.
var types = map[string]core.AbstractType{
	"BYTE":      core.TypeNumber,
	"TINYINT":   core.TypeNumber,
	"SHORT":     core.TypeNumber,
	"SMALLINT":  core.TypeNumber,
	"INTEGER":   core.TypeNumber,
	"INT":       core.TypeNumber,
	"LONG":      core.TypeNumber,
	"BIGINT":    core.TypeNumber,
	"FLOAT":     core.TypeNumber,
	"DOUBLE":    core.TypeNumber,
	"DECIMAL":   core.TypeNumber,
	"STRING":    core.TypeString,
	"VARCHAR":   core.TypeString,
	"CHAR":      core.TypeString,
	"BOOLEAN":   core.TypeBoolean,
	"TIMESTAMP": core.TypeTime,
	"DATE":      core.TypeDate,
}

func init() {
	dialect.Register(&dialect.Dialect{Name: "spark", Types: types})
}
