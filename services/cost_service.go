package services

import (
	"chargecompare-api/models"
)

// CostService is the pure calculation engine behind the EV-vs-gas
// comparison. Every method is deterministic, total over its numeric
// domain, and free of I/O: bad inputs produce safe zero-valued results
// instead of errors so callers can recompute on every keystroke.
type CostService struct{}

func NewCostService() *CostService {
	return &CostService{}
}

// CostPerMile returns the per-mile cost of driving at the given energy
// price and efficiency. Non-positive efficiency yields 0 by convention.
func (s *CostService) CostPerMile(energyPrice, efficiency float64) float64 {
	if efficiency <= 0 {
		return 0
	}
	return energyPrice / efficiency
}

// Breakdown scales a per-mile cost across a distance. FuelCost mirrors
// TotalCost until fee or tax modeling is added.
func (s *CostService) Breakdown(costPerMile, distance float64) models.CostBreakdown {
	total := costPerMile * distance
	return models.CostBreakdown{
		CostPerMile: costPerMile,
		TotalCost:   total,
		FuelCost:    total,
	}
}

// Scenario compares all four energy-sourcing strategies at one distance.
func (s *CostService) Scenario(inputs models.CalculatorInputs, distance float64) models.ScenarioResult {
	return models.ScenarioResult{
		Distance:   distance,
		EVHome:     s.Breakdown(s.CostPerMile(inputs.HomeElectricityPrice, inputs.EVEfficiency), distance),
		EVFast:     s.Breakdown(s.CostPerMile(inputs.FastChargingPrice, inputs.EVEfficiency), distance),
		GasRegular: s.Breakdown(s.CostPerMile(inputs.RegularGasPrice, inputs.GasEfficiency), distance),
		GasPremium: s.Breakdown(s.CostPerMile(inputs.PremiumGasPrice, inputs.GasEfficiency), distance),
	}
}

// AllScenarios computes the full set of time-horizon scenarios from the
// base daily distance. Results are rebuilt from scratch on every call,
// never mutated in place.
func (s *CostService) AllScenarios(inputs models.CalculatorInputs) models.CalculationResults {
	daily := s.Scenario(inputs, inputs.BaseDistance)
	return models.CalculationResults{
		BaseScenario: daily,
		Daily:        daily,
		Weekly:       s.Scenario(inputs, inputs.BaseDistance*7),
		Monthly:      s.Scenario(inputs, inputs.BaseDistance*30),
		Yearly:       s.Scenario(inputs, inputs.BaseDistance*365),
	}
}

// ElectricityParityRate returns the electricity price at which the EV
// costs exactly as much per mile as the gas vehicle. Returns 0 if
// either efficiency is non-positive.
func (s *CostService) ElectricityParityRate(gasPrice, gasEfficiency, evEfficiency float64) float64 {
	if gasEfficiency <= 0 || evEfficiency <= 0 {
		return 0
	}
	return (gasPrice / gasEfficiency) * evEfficiency
}

// SavingsPercent returns how much cheaper the first cost is, as a
// percentage of the more expensive one. Returns 0 when the denominator
// is 0.
func (s *CostService) SavingsPercent(cheaper, moreExpensive float64) float64 {
	if moreExpensive == 0 {
		return 0
	}
	return ((moreExpensive - cheaper) / moreExpensive) * 100
}
