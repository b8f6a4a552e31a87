package generator

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4gshm/flatpath/struc"
)

func recordModel() *struc.Model {
	return &struc.Model{
		TypeName: "Entity",
		Package:  struc.Package{Name: "example", Path: "example"},
		Shape:    struc.Record,
		Fields: []struc.Field{
			{Name: "ID", Typ: types.Typ[types.String], Tag: `json:"id"`},
			{Name: "Depth", Typ: types.Typ[types.Int], Flat: &struc.FlatTag{Path: []string{"a", "b", "c"}}},
		},
		ScopeNames: []string{"Entity"},
	}
}

func generate(t *testing.T, model *struc.Model, marshal, unmarshal bool) string {
	t.Helper()
	g := New("flatpath", "example", "example")
	emitted, err := g.GenerateFlatView(model, marshal, unmarshal, false)
	require.NoError(t, err)
	require.True(t, emitted)
	src, err := g.FormatSrc()
	require.NoError(t, err, "emitted source must be well formed")
	return string(src)
}

func Test_GenerateFlatView_Record(t *testing.T) {
	src := generate(t, recordModel(), true, true)

	assert.Contains(t, src, "package example")
	assert.Contains(t, src, "\"encoding/json\"")
	assert.Contains(t, src, "\"unsafe\"")

	// one link per nesting level below the first key
	assert.Contains(t, src, "type flatEntityDepthL1 struct {")
	assert.Contains(t, src, "F flatEntityDepthL2 `json:\"b\"`")
	assert.Contains(t, src, "F int `json:\"c\"`")

	// the view renames the head field to the first key, the rest is verbatim
	assert.Contains(t, src, "type flatEntityView struct {")
	assert.Contains(t, src, "flatEntityDepthL1 `json:\"a\"`")
	assert.Contains(t, src, "`json:\"id\"`")

	assert.Contains(t, src, "const _ = unsafe.Sizeof(Entity{}) - unsafe.Sizeof(flatEntityView{})")
	assert.Contains(t, src, "const _ = unsafe.Sizeof(flatEntityView{}) - unsafe.Sizeof(Entity{})")

	assert.Contains(t, src, "func (e Entity) MarshalJSON() ([]byte, error) {")
	assert.Contains(t, src, "json.Marshal((*flatEntityView)(unsafe.Pointer(&e)))")
	assert.Contains(t, src, "func (e *Entity) UnmarshalJSON(data []byte) error {")
	assert.Contains(t, src, "json.Unmarshal(data, (*flatEntityView)(unsafe.Pointer(e)))")
}

func Test_GenerateFlatView_MarshalOnly(t *testing.T) {
	src := generate(t, recordModel(), true, false)

	assert.Contains(t, src, "MarshalJSON")
	assert.NotContains(t, src, "UnmarshalJSON")
}

func Test_GenerateFlatView_SingleKeyRenamesInPlace(t *testing.T) {
	model := recordModel()
	model.Fields[1].Flat = &struc.FlatTag{Path: []string{"a"}}

	src := generate(t, model, true, true)

	// no links at all, only the view field key changes
	assert.NotContains(t, src, "flatEntityDepthL1")
	assert.Contains(t, src, "Depth int")
	assert.Contains(t, src, "`json:\"a\"`")
}

func Test_GenerateFlatView_LeafCustomizations(t *testing.T) {
	model := recordModel()
	model.Fields[1].Flat = &struc.FlatTag{
		Path:     []string{"a", "b"},
		LeafName: "x",
		LeafOpts: []string{"omitempty"},
		Rest:     `xml:"y"`,
	}

	src := generate(t, model, true, true)

	// the pre-existing rename and options move to the innermost link,
	// the remaining tag keys stay on the view field
	assert.Contains(t, src, "F int `json:\"x,omitempty\"`")
	assert.Contains(t, src, "`json:\"a\" xml:\"y\"`")
}

func Test_GenerateFlatView_Nolint(t *testing.T) {
	g := New("flatpath", "example", "example")
	emitted, err := g.GenerateFlatView(recordModel(), true, true, true)
	require.NoError(t, err)
	require.True(t, emitted)
	src, err := g.FormatSrc()
	require.NoError(t, err)

	assert.Contains(t, string(src), "MarshalJSON() ([]byte, error) { //nolint")
}

func Test_GenerateFlatView_Union(t *testing.T) {
	byField := struc.Field{Name: "By", Typ: types.Typ[types.String], Flat: &struc.FlatTag{Path: []string{"p", "q"}}}
	model := &struc.Model{
		TypeName: "Event",
		Package:  struc.Package{Name: "example", Path: "example"},
		Shape:    struc.Union,
		Variants: []struc.Variant{
			{Name: "Created", Fields: []struc.Field{
				{Name: "At", Typ: types.Typ[types.String], Tag: `json:"at"`},
				byField,
			}},
			{Name: "Removed", Fields: []struc.Field{byField}},
		},
		ScopeNames: []string{"Created", "Event", "Removed"},
	}

	src := generate(t, model, true, true)

	// identical paths of different variants stay in separate namespaces
	assert.Contains(t, src, "type flatEventCreatedByL1 struct {")
	assert.Contains(t, src, "type flatEventRemovedByL1 struct {")
	assert.Contains(t, src, "type flatEventCreatedView struct {")
	assert.Contains(t, src, "type flatEventRemovedView struct {")
	assert.Contains(t, src, "func (c Created) MarshalJSON()")
	assert.Contains(t, src, "func (r *Removed) UnmarshalJSON(data []byte) error {")
}

func Test_GenerateFlatView_NothingAnnotated(t *testing.T) {
	model := &struc.Model{
		TypeName: "Entity",
		Package:  struc.Package{Name: "example", Path: "example"},
		Shape:    struc.Record,
		Fields:   []struc.Field{{Name: "ID", Typ: types.Typ[types.String], Tag: `json:"id"`}},
	}

	g := New("flatpath", "example", "example")
	emitted, err := g.GenerateFlatView(model, true, true, false)
	require.NoError(t, err)
	assert.False(t, emitted)
	assert.True(t, g.Empty())
}
