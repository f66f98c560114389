// Package bigquery provides the BigQuery type table.
// This package is pure data with no warehouse driver dependencies.
package bigquery

import (
	"github.com/leapstack-labs/lookgen/pkg/core"
	"github.com/leapstack-labs/lookgen/pkg/dialect"
)

var types = map[string]core.AbstractType{
	"INT64":      core.TypeNumber,
	"INTEGER":    core.TypeNumber,
	"FLOAT":      core.TypeNumber,
	"FLOAT64":    core.TypeNumber,
	"NUMERIC":    core.TypeNumber,
	"BIGNUMERIC": core.TypeNumber,
	"BOOLEAN":    core.TypeBoolean,
	"BOOL":       core.TypeBoolean,
	"STRING":     core.TypeString,
	"TIMESTAMP":  core.TypeTime,
	"DATETIME":   core.TypeTime,
	"DATE":       core.TypeDate,
	// Time-only columns have no Looker dimension group equivalent.
	"TIME":      core.TypeString,
	"ARRAY":     core.TypeString,
	"GEOGRAPHY": core.TypeString,
}

func init() {
	dialect.Register(&dialect.Dialect{Name: "bigquery", Types: types})
}
