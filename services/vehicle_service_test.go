package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chargecompare-api/models"
)

func TestPrefillTagsKnownClassesAsAuto(t *testing.T) {
	s := NewVehicleService()

	inputs := s.Prefill("Midsize EV Sedan", "SUV")

	assert.Equal(t, models.FieldOriginAuto, inputs.EVEfficiency.Origin)
	assert.Equal(t, 3.8, inputs.EVEfficiency.Value)
	assert.Equal(t, models.FieldOriginAuto, inputs.GasEfficiency.Origin)
	assert.Equal(t, 22.0, inputs.GasEfficiency.Value)

	assert.Equal(t, nationalGasRegular, inputs.RegularGasPrice)
	assert.Equal(t, nationalElectricityKWh, inputs.HomeElectricityPrice)
	assert.Equal(t, 30.0, inputs.BaseDistance)
}

func TestPrefillUnknownClassLeftForManualEntry(t *testing.T) {
	s := NewVehicleService()

	inputs := s.Prefill("Hovercraft", "")

	assert.Equal(t, models.FieldOriginManual, inputs.EVEfficiency.Origin)
	assert.Equal(t, 0.0, inputs.EVEfficiency.Value)
	assert.Equal(t, models.FieldOriginManual, inputs.GasEfficiency.Origin)
}
