package unique

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Names_Get(t *testing.T) {
	names := NewNames("Entity", "Event")

	assert.Equal(t, "View", names.Get("View"))
	assert.Equal(t, "View1", names.Get("View"))
	assert.Equal(t, "Entity1", names.Get("Entity"))
}

func Test_Names_Nil(t *testing.T) {
	var names *Names
	assert.Equal(t, "View", names.Get("View"))
}
