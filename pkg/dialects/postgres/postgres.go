// Package postgres provides the Postgres type table.
// This package is pure data with no warehouse driver dependencies.
package postgres

import (
	"github.com/leapstack-labs/lookgen/pkg/core"
	"github.com/leapstack-labs/lookgen/pkg/dialect"
)

var types = map[string]core.AbstractType{
	"XML":                         core.TypeString,
	"UUID":                        core.TypeString,
	"PG_LSN":                      core.TypeString,
	"MACADDR":                     core.TypeString,
	"JSON":                        core.TypeString,
	"JSONB":                       core.TypeString,
	"CIDR":                        core.TypeString,
	"INET":                        core.TypeString,
	"MONEY":                       core.TypeNumber,
	"SMALLINT":                    core.TypeNumber,
	"INT2":                        core.TypeNumber,
	"SMALLSERIAL":                 core.TypeNumber,
	"SERIAL2":                     core.TypeNumber,
	"INTEGER":                     core.TypeNumber,
	"INT":                         core.TypeNumber,
	"INT4":                        core.TypeNumber,
	"SERIAL":                      core.TypeNumber,
	"SERIAL4":                     core.TypeNumber,
	"BIGINT":                      core.TypeNumber,
	"INT8":                        core.TypeNumber,
	"BIGSERIAL":                   core.TypeNumber,
	"SERIAL8":                     core.TypeNumber,
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
	// TIMESTAMPTZ and the interval types are not supported by Looker
	// dimension groups and are left unmapped.
	"GEOMETRY":               core.TypeString,
	"TIME":                   core.TypeString,
	"TIME WITHOUT TIME ZONE": core.TypeString,
}

func init() {
	dialect.Register(&dialect.Dialect{Name: "postgres", Types: types})
}
