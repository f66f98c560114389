// Package redshift provides the Redshift type table.
// This package is pure data with no warehouse driver dependencies.
package redshift

import (
	"github.com/leapstack-labs/lookgen/pkg/core"
	"github.com/leapstack-labs/lookgen/pkg/dialect"
)

var types = map[string]core.AbstractType{
	"SMALLINT":                    core.TypeNumber,
	"INT2":                        core.TypeNumber,
	"INTEGER":                     core.TypeNumber,
	"INT":                         core.TypeNumber,
	"INT4":                        core.TypeNumber,
	"BIGINT":                      core.TypeNumber,
	"INT8":                        core.TypeNumber,
	"DECIMAL":                     core.TypeNumber,
	"NUMERIC":                     core.TypeNumber,
	"REAL":                        core.TypeNumber,
	"FLOAT4":                      core.TypeNumber,
	"DOUBLE PRECISION":            core.TypeNumber,
	"FLOAT8":                      core.TypeNumber,
	"FLOAT":                       core.TypeNumber,
	"BOOLEAN":                     core.TypeBoolean,
	"BOOL":                        core.TypeBoolean,
	"CHAR":                        core.TypeString,
	"CHARACTER":                   core.TypeString,
	"NCHAR":                       core.TypeString,
	"BPCHAR":                      core.TypeString,
	"VARCHAR":                     core.TypeString,
	"CHARACTER VARYING":           core.TypeString,
	"NVARCHAR":                    core.TypeString,
	"TEXT":                        core.TypeString,
	"DATE":                        core.TypeDate,
	"TIMESTAMP":                   core.TypeTime,
	"TIMESTAMP WITHOUT TIME ZONE": core.TypeTime,
	// TIMESTAMPTZ and TIMESTAMP WITH TIME ZONE are not supported by
	// Looker dimension groups and are left unmapped.
	"GEOMETRY":               core.TypeString,
	"TIME":                   core.TypeString,
	"TIME WITHOUT TIME ZONE": core.TypeString,
}

func init() {
	dialect.Register(&dialect.Dialect{Name: "redshift", Types: types})
}
