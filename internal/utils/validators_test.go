package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("clinician@example.com"))
	assert.True(t, IsValidEmail("first.last@clinic.org.br"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@dot"))
	assert.False(t, IsValidEmail("Name <clinician@example.com>"))
	assert.False(t, IsValidEmail(""))
}

func TestIsComplexPassword(t *testing.T) {
	assert.True(t, IsComplexPassword("Sw4llowing!"))
	assert.True(t, IsComplexPassword("swallowing-f3"))  // lower, digit, symbol
	assert.True(t, IsComplexPassword("SWALLOWINGf3x"))  // upper, lower, digit
	assert.False(t, IsComplexPassword("Short1!"))       // too short
	assert.False(t, IsComplexPassword("swallowingfff")) // one class only
	assert.False(t, IsComplexPassword("Swallowingf"))   // two classes
}
