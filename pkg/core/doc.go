// Package core defines the shared data model for lookgen: dbt models and
// columns on the input side, LookML view definitions on the output side,
// and the diagnostic/error types that connect the two.
//
// The package is pure data with validation behavior. It has no dependencies
// on loading, dialects, or serialization, making it safe to import from
// every other package.
package core
