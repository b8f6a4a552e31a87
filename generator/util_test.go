package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FieldIdent(t *testing.T) {
	assert.Equal(t, "Depth", FieldIdent("Depth"))
	assert.Equal(t, "UserId", FieldIdent("user_id"))
}

func Test_ReceiverVar(t *testing.T) {
	assert.Equal(t, "e", ReceiverVar("Entity"))
	assert.Equal(t, "v", ReceiverVar(""))
}
