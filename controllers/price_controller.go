package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chargecompare-api/models"
	"chargecompare-api/services"
	"chargecompare-api/utils"
)

type PriceController struct {
	priceService *services.PriceService
}

func NewPriceController(priceService *services.PriceService) *PriceController {
	return &PriceController{priceService: priceService}
}

// GetPrices resolves current energy prices for a ZIP code. Only a
// malformed ZIP is an error; upstream failures degrade silently to a
// broader source tier, visible in the per-price source label.
func (pc *PriceController) GetPrices(c *gin.Context) {
	zip := c.Query("zip")
	if zip == "" {
		utils.SendValidationError(c, "Query parameter 'zip' is required")
		return
	}

	var types []models.PriceType
	if raw := c.Query("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			switch models.PriceType(strings.TrimSpace(t)) {
			case models.PriceTypeGas:
				types = append(types, models.PriceTypeGas)
			case models.PriceTypeElectricity:
				types = append(types, models.PriceTypeElectricity)
			default:
				utils.SendValidationError(c, "Unknown price type: "+t)
				return
			}
		}
	}

	result, err := pc.priceService.LookupPrices(c.Request.Context(), c.ClientIP(), zip, types)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidZIP):
			utils.SendValidationError(c, err.Error())
		case errors.Is(err, services.ErrLookupSuperseded):
			utils.SendError(c, http.StatusConflict, "Superseded by a newer lookup")
		default:
			utils.SendError(c, http.StatusInternalServerError, "Price lookup failed")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
