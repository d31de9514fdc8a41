package models

import (
	"time"
)

// CalculatorInputs holds everything the cost engine needs to compare an
// electric vehicle against a gas vehicle. Prices are USD per unit
// (gallon or kWh), efficiencies are miles per unit, distance is miles
// per day.
type CalculatorInputs struct {
	EVEfficiency         float64 `json:"ev_efficiency"`
	GasEfficiency        float64 `json:"gas_efficiency"`
	RegularGasPrice      float64 `json:"regular_gas_price"`
	PremiumGasPrice      float64 `json:"premium_gas_price"`
	HomeElectricityPrice float64 `json:"home_electricity_price"`
	FastChargingPrice    float64 `json:"fast_charging_price"`
	BaseDistance         float64 `json:"base_distance"`
}

// CostBreakdown is the per-strategy result at a given distance.
// FuelCost currently always equals TotalCost; the field exists so that
// fees or taxes can be split out later without breaking consumers.
type CostBreakdown struct {
	CostPerMile float64 `json:"cost_per_mile"`
	TotalCost   float64 `json:"total_cost"`
	FuelCost    float64 `json:"fuel_cost"`
}

// ScenarioResult compares the four energy-sourcing strategies at one
// distance. All four breakdowns share the same distance.
type ScenarioResult struct {
	Distance   float64       `json:"distance"`
	EVHome     CostBreakdown `json:"ev_home"`
	EVFast     CostBreakdown `json:"ev_fast"`
	GasRegular CostBreakdown `json:"gas_regular"`
	GasPremium CostBreakdown `json:"gas_premium"`
}

// CalculationResults holds one scenario per time horizon. Daily and
// BaseScenario are always identical; both are populated for API symmetry.
type CalculationResults struct {
	BaseScenario ScenarioResult `json:"base_scenario"`
	Daily        ScenarioResult `json:"daily"`
	Weekly       ScenarioResult `json:"weekly"`
	Monthly      ScenarioResult `json:"monthly"`
	Yearly       ScenarioResult `json:"yearly"`
}

// SavedComparison is a named calculation a user chose to keep.
type SavedComparison struct {
	ID                   string    `json:"id" gorm:"primaryKey;size:191"`
	UserID               string    `json:"user_id" gorm:"not null;size:191;index"`
	Name                 string    `json:"name" gorm:"not null;size:255"`
	EVEfficiency         float64   `json:"ev_efficiency" gorm:"not null"`
	GasEfficiency        float64   `json:"gas_efficiency" gorm:"not null"`
	RegularGasPrice      float64   `json:"regular_gas_price" gorm:"not null"`
	PremiumGasPrice      float64   `json:"premium_gas_price" gorm:"not null"`
	HomeElectricityPrice float64   `json:"home_electricity_price" gorm:"not null"`
	FastChargingPrice    float64   `json:"fast_charging_price" gorm:"not null"`
	BaseDistance         float64   `json:"base_distance" gorm:"not null"`
	YearlyEVHomeCost     float64   `json:"yearly_ev_home_cost" gorm:"not null"`
	YearlyGasRegularCost float64   `json:"yearly_gas_regular_cost" gorm:"not null"`
	YearlySavings        float64   `json:"yearly_savings" gorm:"not null"`
	CreatedAt            time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// Inputs reconstructs the calculator inputs the comparison was saved with.
func (sc *SavedComparison) Inputs() CalculatorInputs {
	return CalculatorInputs{
		EVEfficiency:         sc.EVEfficiency,
		GasEfficiency:        sc.GasEfficiency,
		RegularGasPrice:      sc.RegularGasPrice,
		PremiumGasPrice:      sc.PremiumGasPrice,
		HomeElectricityPrice: sc.HomeElectricityPrice,
		FastChargingPrice:    sc.FastChargingPrice,
		BaseDistance:         sc.BaseDistance,
	}
}

// FieldOrigin tracks whether an input value came from a lookup or was
// typed by the user.
type FieldOrigin string

const (
	FieldOriginAuto   FieldOrigin = "auto"
	FieldOriginManual FieldOrigin = "manual"
)

// TaggedFloat is a numeric input annotated with its origin. A manual
// edit is sticky: only a new lookup (SetAuto) overwrites it.
type TaggedFloat struct {
	Value  float64     `json:"value"`
	Origin FieldOrigin `json:"origin"`
}

// SetManual records a direct user edit.
func (t *TaggedFloat) SetManual(v float64) {
	t.Value = v
	t.Origin = FieldOriginManual
}

// SetAuto records a looked-up value, overwriting any prior edit.
func (t *TaggedFloat) SetAuto(v float64) {
	t.Value = v
	t.Origin = FieldOriginAuto
}

// PrefilledInputs mirrors CalculatorInputs but tags the efficiency
// fields so a client can show which values were auto-filled.
type PrefilledInputs struct {
	EVEfficiency         TaggedFloat `json:"ev_efficiency"`
	GasEfficiency        TaggedFloat `json:"gas_efficiency"`
	RegularGasPrice      float64     `json:"regular_gas_price"`
	PremiumGasPrice      float64     `json:"premium_gas_price"`
	HomeElectricityPrice float64     `json:"home_electricity_price"`
	FastChargingPrice    float64     `json:"fast_charging_price"`
	BaseDistance         float64     `json:"base_distance"`
}
