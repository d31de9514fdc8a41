package services

import (
	"chargecompare-api/models"
)

// VehicleService serves efficiency reference data used to pre-fill the
// calculator. Values are EPA-style class averages; they seed inputs but
// play no part in resolver or engine correctness.
type VehicleService struct{}

func NewVehicleService() *VehicleService {
	return &VehicleService{}
}

// EVEfficiencies returns miles-per-kWh presets by vehicle class.
func (s *VehicleService) EVEfficiencies() map[string]float64 {
	return map[string]float64{
		"Compact EV":       4.2,
		"Midsize EV Sedan": 3.8,
		"EV Crossover":     3.3,
		"EV SUV":           2.9,
		"EV Pickup":        2.2,
		"Performance EV":   3.0,
	}
}

// GasEfficiencies returns miles-per-gallon presets by vehicle class.
func (s *VehicleService) GasEfficiencies() map[string]float64 {
	return map[string]float64{
		"Compact Car":   32.0,
		"Midsize Sedan": 28.0,
		"Crossover":     26.0,
		"SUV":           22.0,
		"Pickup Truck":  19.0,
		"Hybrid":        48.0,
		"Sports Car":    21.0,
	}
}

// Prefill builds calculator inputs from class presets, tagging the
// looked-up efficiency fields as auto-filled so the client can track
// user overrides.
func (s *VehicleService) Prefill(evClass, gasClass string) models.PrefilledInputs {
	inputs := models.PrefilledInputs{
		RegularGasPrice:      nationalGasRegular,
		PremiumGasPrice:      nationalGasPremium,
		HomeElectricityPrice: nationalElectricityKWh,
		FastChargingPrice:    nationalFastChargeKWh,
		BaseDistance:         30,
	}

	if eff, ok := s.EVEfficiencies()[evClass]; ok {
		inputs.EVEfficiency.SetAuto(eff)
	} else {
		inputs.EVEfficiency.SetManual(0)
	}

	if eff, ok := s.GasEfficiencies()[gasClass]; ok {
		inputs.GasEfficiency.SetAuto(eff)
	} else {
		inputs.GasEfficiency.SetManual(0)
	}

	return inputs
}
