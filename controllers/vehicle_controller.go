package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chargecompare-api/services"
)

type VehicleController struct {
	vehicleService *services.VehicleService
}

func NewVehicleController(vehicleService *services.VehicleService) *VehicleController {
	return &VehicleController{vehicleService: vehicleService}
}

// GetEfficiencies returns the efficiency presets used to pre-fill the
// calculator.
func (vc *VehicleController) GetEfficiencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ev":  vc.vehicleService.EVEfficiencies(),
		"gas": vc.vehicleService.GasEfficiencies(),
	})
}

// Prefill returns calculator inputs seeded from vehicle class presets,
// with auto-filled fields tagged so the client can track user edits.
func (vc *VehicleController) Prefill(c *gin.Context) {
	evClass := c.Query("ev_class")
	gasClass := c.Query("gas_class")

	c.JSON(http.StatusOK, vc.vehicleService.Prefill(evClass, gasClass))
}
