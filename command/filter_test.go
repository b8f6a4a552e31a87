package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4gshm/flatpath/struc"
)

func filterModel() *struc.Model {
	return &struc.Model{
		TypeName: "Entity",
		Shape:    struc.Record,
		Fields: []struc.Field{
			{Name: "Legacy", Flat: &struc.FlatTag{Path: []string{"old", "legacy"}}},
			{Name: "Depth", Flat: &struc.FlatTag{Path: []string{"a", "b"}}},
			{Name: "ID"},
		},
	}
}

func Test_ExcludeFields_ByName(t *testing.T) {
	model := filterModel()

	require.NoError(t, excludeFields(model, []string{`field == "Legacy"`}))

	assert.Nil(t, model.Fields[0].Flat)
	assert.NotNil(t, model.Fields[1].Flat)
}

func Test_ExcludeFields_ByPath(t *testing.T) {
	model := filterModel()

	require.NoError(t, excludeFields(model, []string{`path[0] == "old"`, `struct == "Other"`}))

	assert.Nil(t, model.Fields[0].Flat)
	assert.NotNil(t, model.Fields[1].Flat)
}

func Test_ExcludeFields_Variants(t *testing.T) {
	model := &struc.Model{
		TypeName: "Event",
		Shape:    struc.Union,
		Variants: []struc.Variant{
			{Name: "Created", Fields: []struc.Field{{Name: "By", Flat: &struc.FlatTag{Path: []string{"p", "q"}}}}},
			{Name: "Removed", Fields: []struc.Field{{Name: "By", Flat: &struc.FlatTag{Path: []string{"p", "q"}}}}},
		},
	}

	require.NoError(t, excludeFields(model, []string{`struct == "Removed"`}))

	assert.NotNil(t, model.Variants[0].Fields[0].Flat)
	assert.Nil(t, model.Variants[1].Fields[0].Flat)
}

func Test_ExcludeFields_BadExpression(t *testing.T) {
	err := excludeFields(filterModel(), []string{`field ==`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile exclude expression")
}

func Test_ExcludeFields_NoExpressions(t *testing.T) {
	model := filterModel()
	require.NoError(t, excludeFields(model, nil))
	assert.Equal(t, 2, model.Annotated())
}
