package core

import (
	"strconv"
	"strings"
)

// Model represents one dbt model (a transformed table or view) as read from
// the compiled manifest, with warehouse column types merged in from the
// catalog. Models are constructed once by the loader and are immutable
// afterwards; the generator never mutates them.
type Model struct {
	// UniqueID is the dbt node id, e.g. "model.jaffle_shop.orders".
	UniqueID string
	// Name is the model name (also the generated view name).
	Name string
	// RelationName is the physical relation, e.g. `"analytics"."orders"`.
	RelationName string
	// Description is a human-readable description of the model.
	Description string
	// Tags are metadata labels used for filtering models.
	Tags []string
	// Columns is the ordered column list. Names keep their manifest
	// spelling; the assembler treats names differing only in case as a
	// naming collision, never a silent merge.
	Columns []Column
	// Meta is the raw model-level meta block (model measures, primary key,
	// explore joins). Parsed by pkg/meta.
	Meta map[string]any
}

// Column belongs to exactly one Model.
type Column struct {
	// Name is the column name as spelled in the manifest.
	Name string
	// RawType is the warehouse type string from the catalog, e.g.
	// "NUMERIC(10,2)". Empty when the catalog carried no type.
	RawType string
	// Description is from the model's schema.yml; may be empty.
	Description string
	// Meta is the raw column-level meta block (dimension override, extra
	// measures). Parsed by pkg/meta.
	Meta map[string]any
}

// Validate checks structural correctness of a model record. It collects
// every violation before returning, so one pass over a manifest reports all
// malformed models completely. Returns nil or a *StructuralError.
func (m *Model) Validate() error {
	serr := &StructuralError{ModelID: m.UniqueID}
	if m.UniqueID == "" {
		serr.Add("unique_id", "missing model unique id")
	}
	if m.Name == "" {
		serr.Add("name", "missing model name")
	}
	if m.RelationName == "" {
		serr.Add("relation_name", "missing relation name")
	}
	if len(m.Columns) == 0 {
		serr.Add("columns", "model has no columns")
	}
	for i, col := range m.Columns {
		path := "columns." + col.Name
		if col.Name == "" {
			path = "columns[" + strconv.Itoa(i) + "]"
			serr.Add(path, "missing column name")
		}
		if col.RawType == "" {
			serr.Add(path+".data_type", "missing column type")
		}
	}
	if len(serr.Violations) > 0 {
		return serr
	}
	return nil
}

// HasTag reports whether the model carries the given tag.
func (m *Model) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeName lower-cases a column or field name for collision checks.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}
