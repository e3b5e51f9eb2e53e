package zero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Value[int]())
	assert.Equal(t, "", Value[string]())
	assert.False(t, Value[bool]())
	assert.Nil(t, Value[*int]())
	assert.Nil(t, Value[[]string]())
}
