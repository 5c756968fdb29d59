package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAnyEmpty(t *testing.T) {
	assert.False(t, IsAnyEmpty())
	assert.False(t, IsAnyEmpty("a", "b"))
	assert.True(t, IsAnyEmpty("a", ""))
	assert.True(t, IsAnyEmpty(""))
}

func TestRandomBytesString(t *testing.T) {
	assert.NotEqual(t, RandomBytesString(32), RandomBytesString(32))
	assert.NotEmpty(t, RandomBytesString(1))
}
