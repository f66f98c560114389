package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionGroupGrainNames(t *testing.T) {
	g := DimensionGroup{Name: "created", Timeframes: CanonicalGrains()}

	assert.Equal(t, []string{
		"created_time", "created_date", "created_week",
		"created_month", "created_quarter", "created_year",
	}, g.GrainNames())
}

func TestViewDefinitionFieldNames(t *testing.T) {
	v := &ViewDefinition{
		Name: "orders",
		Dimensions: []Dimension{
			{Name: "id"},
			{Name: "status"},
		},
		DimensionGroups: []DimensionGroup{
			{Name: "created", Timeframes: []TimeGrain{GrainDate, GrainMonth}},
		},
		Measures: []Measure{
			{Name: "count"},
		},
	}

	assert.Equal(t, []string{"id", "status", "created_date", "created_month", "count"}, v.FieldNames())
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "column scoped",
			d:    Warnf("model.shop.orders", "geo", "unsupported type"),
			want: "warning: model.shop.orders.geo: unsupported type",
		},
		{
			name: "model scoped",
			d:    Errorf("model.shop.orders", "", "no columns"),
			want: "error: model.shop.orders: no columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}
