package core

import (
	"fmt"
	"strings"
)

// FieldViolation is one structural problem at a specific field path.
type FieldViolation struct {
	// Path locates the offending field, e.g. "columns.user_id.data_type".
	Path string
	// Reason is a human-readable explanation.
	Reason string
}

func (v FieldViolation) String() string {
	return v.Path + ": " + v.Reason
}

// StructuralError reports malformed input metadata or an unresolvable naming
// collision. It is fatal for the affected model only; the generator carries
// on with the rest of the batch. All violations for one record are collected
// before the error is returned.
type StructuralError struct {
	ModelID    string
	Violations []FieldViolation
}

// Add records a violation.
func (e *StructuralError) Add(path, reason string) {
	e.Violations = append(e.Violations, FieldViolation{Path: path, Reason: reason})
}

func (e *StructuralError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("model %s: %s", e.ModelID, strings.Join(parts, "; "))
}

// AnnotationError reports a meta block that failed schema validation. It is
// fatal for that annotation's effect only: the generator falls back to
// default derivation for the affected column or model.
type AnnotationError struct {
	ModelID string
	Column  string // empty for model-level meta
	// Path locates the field inside the meta block, e.g. "measures.total.type".
	Path   string
	Reason string
}

func (e *AnnotationError) Error() string {
	loc := e.ModelID
	if e.Column != "" {
		loc += "." + e.Column
	}
	if e.Path != "" {
		loc += " meta." + e.Path
	}
	return fmt.Sprintf("invalid annotation at %s: %s", loc, e.Reason)
}

// UnsupportedDialectError is raised once at engine construction when the
// manifest declares a warehouse dialect lookgen has no type table for.
type UnsupportedDialectError struct {
	Dialect   string
	Supported []string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("%s is not a supported adapter (supported: %s)",
		e.Dialect, strings.Join(e.Supported, ", "))
}
