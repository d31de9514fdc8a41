package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chargecompare-api/models"
)

func referenceInputs() models.CalculatorInputs {
	return models.CalculatorInputs{
		EVEfficiency:         3.5,
		GasEfficiency:        25,
		RegularGasPrice:      3.50,
		PremiumGasPrice:      4.00,
		HomeElectricityPrice: 0.12,
		FastChargingPrice:    0.40,
		BaseDistance:         30,
	}
}

func TestCostPerMile(t *testing.T) {
	s := NewCostService()

	assert.InDelta(t, 0.14, s.CostPerMile(3.50, 25), 1e-9)
	assert.InDelta(t, 0.12/3.5, s.CostPerMile(0.12, 3.5), 1e-9)
	assert.Equal(t, 0.0, s.CostPerMile(3.50, 0))
	assert.Equal(t, 0.0, s.CostPerMile(3.50, -25))
	assert.Equal(t, 0.0, s.CostPerMile(0, 0))
}

func TestBreakdownTotalIsLinearInDistance(t *testing.T) {
	s := NewCostService()

	b := s.Breakdown(0.14, 100)
	assert.InDelta(t, 14.0, b.TotalCost, 1e-9)
	assert.Equal(t, b.TotalCost, b.FuelCost)
	assert.Equal(t, 0.14, b.CostPerMile)

	zero := s.Breakdown(0.14, 0)
	assert.Equal(t, 0.0, zero.TotalCost)
	assert.Equal(t, zero.TotalCost, zero.FuelCost)
}

func TestScenarioSharesDistance(t *testing.T) {
	s := NewCostService()

	scenario := s.Scenario(referenceInputs(), 30)
	assert.Equal(t, 30.0, scenario.Distance)

	// Each strategy uses its own price but the shared distance
	assert.InDelta(t, 0.12/3.5*30, scenario.EVHome.TotalCost, 1e-9)
	assert.InDelta(t, 0.40/3.5*30, scenario.EVFast.TotalCost, 1e-9)
	assert.InDelta(t, 3.50/25*30, scenario.GasRegular.TotalCost, 1e-9)
	assert.InDelta(t, 4.00/25*30, scenario.GasPremium.TotalCost, 1e-9)
}

func TestAllScenariosHorizonMultiples(t *testing.T) {
	s := NewCostService()

	results := s.AllScenarios(referenceInputs())

	assert.Equal(t, results.Daily, results.BaseScenario)
	assert.Equal(t, 30.0, results.Daily.Distance)
	assert.Equal(t, 7*results.Daily.Distance, results.Weekly.Distance)
	assert.Equal(t, 30*results.Daily.Distance, results.Monthly.Distance)
	assert.Equal(t, 365*results.Daily.Distance, results.Yearly.Distance)
}

func TestAllScenariosReferenceExample(t *testing.T) {
	s := NewCostService()

	results := s.AllScenarios(referenceInputs())

	// Daily EV-home cost: 0.12/3.5 * 30 ≈ $1.03
	assert.InDelta(t, 1.0285714285714285, results.Daily.EVHome.TotalCost, 1e-9)
	// Daily gas-regular cost: 3.50/25 * 30 = $4.20
	assert.InDelta(t, 4.20, results.Daily.GasRegular.TotalCost, 1e-9)
	// Yearly gas-regular cost: $4.20 * 365 = $1533.00
	assert.InDelta(t, 1533.00, results.Yearly.GasRegular.TotalCost, 1e-6)
}

func TestAllScenariosZeroEfficiencyIsTotal(t *testing.T) {
	s := NewCostService()

	inputs := referenceInputs()
	inputs.EVEfficiency = 0
	inputs.GasEfficiency = -1

	results := s.AllScenarios(inputs)
	assert.Equal(t, 0.0, results.Yearly.EVHome.TotalCost)
	assert.Equal(t, 0.0, results.Yearly.GasRegular.TotalCost)
	assert.Equal(t, 0.0, results.Yearly.GasPremium.TotalCost)
}

func TestElectricityParityRate(t *testing.T) {
	s := NewCostService()

	// (3.50/25) * 3.5 = 0.49: home electricity at $0.49/kWh matches
	// $3.50/gal gas at these efficiencies
	rate := s.ElectricityParityRate(3.50, 25, 3.5)
	assert.InDelta(t, 0.49, rate, 1e-9)

	assert.Equal(t, 0.0, s.ElectricityParityRate(3.50, 0, 3.5))
	assert.Equal(t, 0.0, s.ElectricityParityRate(3.50, 25, -1))
}

func TestElectricityParityRateRoundTrip(t *testing.T) {
	s := NewCostService()

	cases := []struct {
		gasPrice, gasEff, evEff float64
	}{
		{3.50, 25, 3.5},
		{4.25, 18, 2.9},
		{2.99, 52, 4.4},
		{5.10, 33.3, 3.1},
	}

	for _, tc := range cases {
		parity := s.ElectricityParityRate(tc.gasPrice, tc.gasEff, tc.evEff)
		evCPM := s.CostPerMile(parity, tc.evEff)
		gasCPM := s.CostPerMile(tc.gasPrice, tc.gasEff)
		require.InDelta(t, gasCPM, evCPM, 1e-9,
			"parity rate should equalize cost per mile for gasPrice=%v gasEff=%v evEff=%v",
			tc.gasPrice, tc.gasEff, tc.evEff)
	}
}

func TestSavingsPercent(t *testing.T) {
	s := NewCostService()

	assert.InDelta(t, 50.0, s.SavingsPercent(1, 2), 1e-9)
	assert.InDelta(t, 75.51, s.SavingsPercent(1.0285714285714285, 4.20), 0.01)
	assert.Equal(t, 0.0, s.SavingsPercent(5, 0))
	assert.Equal(t, 0.0, s.SavingsPercent(0, 0))
}
