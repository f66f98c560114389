// Package dialects registers all built-in warehouse dialects.
// Import for side effects:
//
//	import _ "github.com/leapstack-labs/lookgen/pkg/dialects"
package dialects

import (
	_ "github.com/leapstack-labs/lookgen/pkg/dialects/bigquery"
	_ "github.com/leapstack-labs/lookgen/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/lookgen/pkg/dialects/redshift"
	_ "github.com/leapstack-labs/lookgen/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/lookgen/pkg/dialects/spark"
)
