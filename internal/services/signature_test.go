package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlankSignature(t *testing.T) {
	assert.True(t, IsBlankSignature(""))
	assert.True(t, IsBlankSignature("   "))
	assert.True(t, IsBlankSignature("data:image/png;base64,"))
	assert.True(t, IsBlankSignature(" data:, "))
	assert.False(t, IsBlankSignature("data:image/png;base64,iVBORw0KGgo="))
}
