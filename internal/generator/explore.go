package generator

import (
	"regexp"

	"github.com/go-openapi/inflect"

	"github.com/leapstack-labs/lookgen/pkg/core"
	"github.com/leapstack-labs/lookgen/pkg/meta"
)

// refPattern matches dbt ref() placeholders inside join expressions,
// e.g. "${ref('orders').customer_id} = ${ref('customers').id}".
var (
	refPattern    = regexp.MustCompile(`ref\(\s*'(\w*)'\s*\)`)
	equalsPattern = regexp.MustCompile(`\s*=\s*`)
)

// Explore builds the LookML model-file explore for one model: the view
// itself plus any joins declared in the model's looker meta. Join
// expressions may reference other models via ref('name'); the references
// resolve to view names, which assumes view names equal model names and
// models are unique across packages.
func (e *Engine) Explore(m *core.Model, connection string) (*core.Explore, []core.Diagnostic) {
	modelMeta, merrs := meta.ParseModelMeta(m.UniqueID, m.Meta)
	diags := annotationDiags(merrs)

	exp := &core.Explore{
		Connection:  connection,
		Name:        m.Name,
		Description: m.Description,
	}
	if exp.Description == "" {
		exp.Description = inflect.Humanize(m.Name)
	}
	for _, j := range modelMeta.Joins {
		exp.Joins = append(exp.Joins, core.ExploreJoin{
			Name:         resolveRefs(j.Name),
			Type:         j.Type,
			Relationship: j.Relationship,
			SQLOn:        resolveRefs(j.SQLOn),
		})
	}
	return exp, diags
}

// resolveRefs rewrites ref('model') placeholders to plain view names and
// normalizes the spacing of the surrounding expression.
func resolveRefs(expr string) string {
	if !refPattern.MatchString(expr) {
		return expr
	}
	out := refPattern.ReplaceAllString(expr, "$1")
	// Re-space comparison operators squeezed by the rewrite.
	out = equalsPattern.ReplaceAllString(out, " = ")
	return out
}

// ExtractRefs returns the model names referenced by ref() placeholders in
// an expression, or nil when there are none.
func ExtractRefs(expr string) []string {
	matches := refPattern.FindAllStringSubmatch(expr, -1)
	if len(matches) == 0 {
		return nil
	}
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}
