package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("Shoes"))
	assert.False(t, IsValidCategory("trouser")) // categories are case-sensitive
	assert.False(t, IsValidCategory(""))
}
