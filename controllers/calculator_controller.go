package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chargecompare-api/models"
	"chargecompare-api/repositories"
	"chargecompare-api/services"
	"chargecompare-api/utils"
)

type CalculatorController struct {
	costService  *services.CostService
	comparisons  *repositories.ComparisonRepository
	emailService *services.EmailService
}

func NewCalculatorController(costService *services.CostService, comparisons *repositories.ComparisonRepository, emailService *services.EmailService) *CalculatorController {
	return &CalculatorController{
		costService:  costService,
		comparisons:  comparisons,
		emailService: emailService,
	}
}

type CalculateRequest struct {
	EVEfficiency         float64 `json:"ev_efficiency" binding:"gte=0"`
	GasEfficiency        float64 `json:"gas_efficiency" binding:"gte=0"`
	RegularGasPrice      float64 `json:"regular_gas_price" binding:"gte=0"`
	PremiumGasPrice      float64 `json:"premium_gas_price" binding:"gte=0"`
	HomeElectricityPrice float64 `json:"home_electricity_price" binding:"gte=0"`
	FastChargingPrice    float64 `json:"fast_charging_price" binding:"gte=0"`
	BaseDistance         float64 `json:"base_distance" binding:"gte=0"`
}

func (r *CalculateRequest) inputs() models.CalculatorInputs {
	return models.CalculatorInputs{
		EVEfficiency:         r.EVEfficiency,
		GasEfficiency:        r.GasEfficiency,
		RegularGasPrice:      r.RegularGasPrice,
		PremiumGasPrice:      r.PremiumGasPrice,
		HomeElectricityPrice: r.HomeElectricityPrice,
		FastChargingPrice:    r.FastChargingPrice,
		BaseDistance:         r.BaseDistance,
	}
}

// Calculate returns the full set of time-horizon scenarios for the
// given inputs.
func (cc *CalculatorController) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := cc.costService.AllScenarios(req.inputs())
	c.JSON(http.StatusOK, results)
}

type ParityRequest struct {
	GasPrice      float64 `json:"gas_price" binding:"gte=0"`
	GasEfficiency float64 `json:"gas_efficiency" binding:"gte=0"`
	EVEfficiency  float64 `json:"ev_efficiency" binding:"gte=0"`
}

// Parity returns the break-even electricity rate: the $/kWh at which
// the EV costs the same per mile as the gas vehicle.
func (cc *CalculatorController) Parity(c *gin.Context) {
	var req ParityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parityRate := cc.costService.ElectricityParityRate(req.GasPrice, req.GasEfficiency, req.EVEfficiency)
	gasCostPerMile := cc.costService.CostPerMile(req.GasPrice, req.GasEfficiency)

	c.JSON(http.StatusOK, gin.H{
		"parity_rate":       parityRate,
		"gas_cost_per_mile": gasCostPerMile,
	})
}

type SaveComparisonRequest struct {
	Name string `json:"name" binding:"required"`
	CalculateRequest
}

// SaveComparison persists a named comparison with its computed yearly
// totals for the authenticated user.
func (cc *CalculatorController) SaveComparison(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SaveComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := cc.costService.AllScenarios(req.inputs())
	yearlyEVHome := results.Yearly.EVHome.TotalCost
	yearlyGasRegular := results.Yearly.GasRegular.TotalCost

	comparison := models.SavedComparison{
		ID:                   uuid.New().String(),
		UserID:               userID,
		Name:                 req.Name,
		EVEfficiency:         req.EVEfficiency,
		GasEfficiency:        req.GasEfficiency,
		RegularGasPrice:      req.RegularGasPrice,
		PremiumGasPrice:      req.PremiumGasPrice,
		HomeElectricityPrice: req.HomeElectricityPrice,
		FastChargingPrice:    req.FastChargingPrice,
		BaseDistance:         req.BaseDistance,
		YearlyEVHomeCost:     yearlyEVHome,
		YearlyGasRegularCost: yearlyGasRegular,
		YearlySavings:        yearlyGasRegular - yearlyEVHome,
	}

	if err := cc.comparisons.Save(&comparison); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save comparison"})
		return
	}

	c.JSON(http.StatusCreated, comparison)
}

// GetHistory returns the user's most recent saved comparisons.
func (cc *CalculatorController) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	comparisons, err := cc.comparisons.ListByUser(userID, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comparison history"})
		return
	}

	c.JSON(http.StatusOK, comparisons)
}

// ClearHistory deletes all of the user's saved comparisons.
func (cc *CalculatorController) ClearHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := cc.comparisons.DeleteByUser(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear comparison history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comparison history cleared successfully"})
}

// EmailComparison sends a saved comparison summary to the account
// email address.
func (cc *CalculatorController) EmailComparison(c *gin.Context) {
	userID := c.GetString("user_id")
	comparisonID := c.Param("id")

	comparison, user, err := cc.comparisons.GetWithUser(comparisonID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comparison not found"})
		return
	}

	if err := cc.emailService.SendComparisonEmail(user.Email, user.Name, comparison); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send comparison email"})
		return
	}

	utils.SendSuccess(c, "Comparison sent to "+user.Email, nil)
}
