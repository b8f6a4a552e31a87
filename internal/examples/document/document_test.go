package document

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MetadataNestedShape(t *testing.T) {
	m := Metadata{ID: "doc-1", Score: 0.5, Region: "eu", Note: "first", Rev: 3}

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	expected := map[string]interface{}{
		"id":    "doc-1",
		"stats": map[string]interface{}{"score": 0.5},
		"geo":   map[string]interface{}{"region": map[string]interface{}{"name": "eu"}},
		"meta":  map[string]interface{}{"comment": "first"},
		"rev":   float64(3),
	}
	assert.Empty(t, cmp.Diff(expected, decoded))
}

func Test_MetadataRoundTrip(t *testing.T) {
	m := Metadata{ID: "doc-2", Score: 12.25, Region: "us", Note: "second", Rev: 7}

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var back Metadata
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, m, back)
}

func Test_MetadataOmitEmptyLeaf(t *testing.T) {
	m := Metadata{ID: "doc-3"}

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// intermediate objects are always present, omitempty acts on the leaf only
	geo, ok := decoded["geo"].(map[string]interface{})
	require.True(t, ok)
	region, ok := geo["region"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, region, "name")

	stats, ok := decoded["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), stats["score"])
}

func Test_MetadataLeafRename(t *testing.T) {
	raw, err := json.Marshal(Metadata{Note: "kept"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	meta, ok := decoded["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "kept", meta["comment"])
	assert.NotContains(t, meta, "note")
}

func Test_UnionVariantsIndependent(t *testing.T) {
	c := Created{At: "2026-08-29", By: "alice"}
	d := Deleted{By: "bob"}

	rawCreated, err := json.Marshal(c)
	require.NoError(t, err)
	rawDeleted, err := json.Marshal(d)
	require.NoError(t, err)

	var decodedCreated, decodedDeleted map[string]interface{}
	require.NoError(t, json.Unmarshal(rawCreated, &decodedCreated))
	require.NoError(t, json.Unmarshal(rawDeleted, &decodedDeleted))

	assert.Empty(t, cmp.Diff(map[string]interface{}{
		"at": "2026-08-29",
		"p":  map[string]interface{}{"q": "alice"},
	}, decodedCreated))
	assert.Empty(t, cmp.Diff(map[string]interface{}{
		"p": map[string]interface{}{"q": "bob"},
	}, decodedDeleted))

	var backCreated Created
	require.NoError(t, json.Unmarshal(rawCreated, &backCreated))
	assert.Equal(t, c, backCreated)

	var backDeleted Deleted
	require.NoError(t, json.Unmarshal(rawDeleted, &backDeleted))
	assert.Equal(t, d, backDeleted)
}
