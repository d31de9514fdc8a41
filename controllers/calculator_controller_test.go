package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chargecompare-api/models"
	"chargecompare-api/services"
)

func setupCalculatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCalculatorController(services.NewCostService(), nil, nil)

	r := gin.New()
	r.POST("/calculate", controller.Calculate)
	r.POST("/parity", controller.Parity)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculateEndpoint(t *testing.T) {
	r := setupCalculatorRouter()

	w := postJSON(t, r, "/calculate", CalculateRequest{
		EVEfficiency:         3.5,
		GasEfficiency:        25,
		RegularGasPrice:      3.50,
		PremiumGasPrice:      4.00,
		HomeElectricityPrice: 0.12,
		FastChargingPrice:    0.40,
		BaseDistance:         30,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var results models.CalculationResults
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))

	assert.Equal(t, results.Daily, results.BaseScenario)
	assert.InDelta(t, 4.20, results.Daily.GasRegular.TotalCost, 1e-9)
	assert.InDelta(t, 1533.00, results.Yearly.GasRegular.TotalCost, 1e-6)
	assert.Equal(t, results.Yearly.GasRegular.TotalCost, results.Yearly.GasRegular.FuelCost)
}

func TestCalculateEndpointRejectsNegativeInputs(t *testing.T) {
	r := setupCalculatorRouter()

	w := postJSON(t, r, "/calculate", map[string]float64{
		"ev_efficiency":     3.5,
		"gas_efficiency":    25,
		"regular_gas_price": -3.50,
		"base_distance":     30,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateEndpointZeroEfficiencyIsNotAnError(t *testing.T) {
	r := setupCalculatorRouter()

	w := postJSON(t, r, "/calculate", CalculateRequest{
		GasEfficiency:   25,
		RegularGasPrice: 3.50,
		BaseDistance:    30,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var results models.CalculationResults
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Equal(t, 0.0, results.Daily.EVHome.TotalCost)
}

func TestParityEndpoint(t *testing.T) {
	r := setupCalculatorRouter()

	w := postJSON(t, r, "/parity", ParityRequest{
		GasPrice:      3.50,
		GasEfficiency: 25,
		EVEfficiency:  3.5,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.InDelta(t, 0.49, response["parity_rate"], 1e-9)
	assert.InDelta(t, 0.14, response["gas_cost_per_mile"], 1e-9)
}
