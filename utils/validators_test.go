package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidZIP(t *testing.T) {
	valid := []string{"90210", "00501", "73301", "90210-1234"}
	for _, zip := range valid {
		assert.True(t, IsValidZIP(zip), "expected %q to be valid", zip)
	}

	invalid := []string{"", "1234", "123456", "9021a", "90210-", "90210-12", "90210-12345", " 90210", "90210 "}
	for _, zip := range invalid {
		assert.False(t, IsValidZIP(zip), "expected %q to be invalid", zip)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("driver@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidCalculatorInput(t *testing.T) {
	assert.True(t, IsValidCalculatorInput([]float64{3.50, 4.00, 0.12}, 30))
	assert.True(t, IsValidCalculatorInput(nil, 0))
	assert.False(t, IsValidCalculatorInput([]float64{-0.01}, 30))
	assert.False(t, IsValidCalculatorInput([]float64{3.50}, -1))
}
