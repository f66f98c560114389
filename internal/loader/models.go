package loader

import (
	"sort"

	"github.com/leapstack-labs/lookgen/pkg/core"
)

// BuildModels joins manifest model nodes with catalog column types and
// returns the models for the generator, sorted by unique id for
// deterministic processing. Models missing from the catalog, and documented
// columns missing a catalog type, are skipped with warning diagnostics
// rather than failing the run.
func BuildModels(man *Manifest, cat *Catalog, tag string) ([]*core.Model, []core.Diagnostic) {
	var (
		models []*core.Model
		diags  []core.Diagnostic
	)

	ids := make([]string, 0, len(man.Nodes))
	for id := range man.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		node := man.Nodes[id]
		if node.ResourceType != "model" {
			continue
		}
		if tag != "" && !hasTag(node.Tags, tag) {
			continue
		}

		catNode, ok := cat.Nodes[id]
		if !ok {
			diags = append(diags, core.Warnf(id, "",
				"model not found in catalog; no view will be generated (has it been materialized in %s?)",
				man.Metadata.AdapterType))
			continue
		}

		m := &core.Model{
			UniqueID:     node.UniqueID,
			Name:         node.Name,
			RelationName: node.RelationName,
			Description:  node.Description,
			Tags:         node.Tags,
			Meta:         node.Meta,
		}
		if m.UniqueID == "" {
			m.UniqueID = id
		}

		columns, cdiags := mergeColumns(m.UniqueID, node, catNode)
		m.Columns = columns
		diags = append(diags, cdiags...)
		models = append(models, m)
	}
	return models, diags
}

// mergeColumns attaches catalog types to the manifest's documented columns,
// ordered by catalog column index.
func mergeColumns(modelID string, node ManifestNode, catNode CatalogNode) ([]core.Column, []core.Diagnostic) {
	byName := make(map[string]CatalogColumn, len(catNode.Columns))
	for _, cc := range catNode.Columns {
		byName[core.NormalizeName(cc.Name)] = cc
	}

	type ordered struct {
		col   core.Column
		index int
	}
	var (
		out   []ordered
		diags []core.Diagnostic
	)
	for _, mc := range node.Columns {
		cc, ok := byName[core.NormalizeName(mc.Name)]
		if !ok {
			diags = append(diags, core.Warnf(modelID, mc.Name,
				"column is documented but missing from the catalog; skipped"))
			continue
		}
		out = append(out, ordered{
			col: core.Column{
				Name:        mc.Name,
				RawType:     cc.Type,
				Description: mc.Description,
				Meta:        mc.Meta,
			},
			index: cc.Index,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].index != out[j].index {
			return out[i].index < out[j].index
		}
		return out[i].col.Name < out[j].col.Name
	})

	cols := make([]core.Column, 0, len(out))
	for _, o := range out {
		cols = append(cols, o.col)
	}
	return cols, diags
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
