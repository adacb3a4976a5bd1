package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateConfirmationCode(t *testing.T) {
	code := GenerateConfirmationCode(6)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9', "code must be numeric, got %q", code)
	}

	// Non-positive length falls back to the default
	assert.Len(t, GenerateConfirmationCode(0), 6)
	assert.Len(t, GenerateConfirmationCode(-3), 6)

	assert.Len(t, GenerateConfirmationCode(10), 10)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-7", 1))
}
