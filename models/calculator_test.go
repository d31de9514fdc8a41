package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaggedFloatManualEditIsSticky(t *testing.T) {
	var field TaggedFloat

	field.SetAuto(3.8)
	assert.Equal(t, FieldOriginAuto, field.Origin)

	field.SetManual(4.1)
	assert.Equal(t, FieldOriginManual, field.Origin)
	assert.Equal(t, 4.1, field.Value)

	// Only a new lookup overwrites a manual edit
	field.SetAuto(3.3)
	assert.Equal(t, FieldOriginAuto, field.Origin)
	assert.Equal(t, 3.3, field.Value)
}

func TestSavedComparisonInputsRoundTrip(t *testing.T) {
	saved := SavedComparison{
		EVEfficiency:         3.5,
		GasEfficiency:        25,
		RegularGasPrice:      3.50,
		PremiumGasPrice:      4.00,
		HomeElectricityPrice: 0.12,
		FastChargingPrice:    0.40,
		BaseDistance:         30,
	}

	inputs := saved.Inputs()
	assert.Equal(t, 3.5, inputs.EVEfficiency)
	assert.Equal(t, 25.0, inputs.GasEfficiency)
	assert.Equal(t, 30.0, inputs.BaseDistance)
}
