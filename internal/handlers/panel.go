package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK         = "ok"
	statusTempSet    = "temperature_set"
	statusCalibrated = "calibrated"

	errCalibrate       = "failed to calibrate panel"
	errGetReadout      = "failed to load readout"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for setting the dial temperature.
// TempC is a pointer so a missing field is distinguishable from 0; the value
// itself is clamped into the dial range by the service.
type temperatureRequest struct {
	TempC *float64 `json:"temp_c" binding:"required"`
}

// SetTemperatureRequest is an exported model for Swagger docs of the setTemperature payload.
type SetTemperatureRequest struct {
	// New dial temperature in Celsius; out-of-range values are clamped.
	TempC float64 `json:"temp_c" example:"180"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Set dial temperature
// @Description  Out-of-range values are clamped into the configured dial range
// @Tags         panel
// @Accept       json
// @Produce      json
// @Param        body  body   SetTemperatureRequest  true  "Temperature payload"
// @Success      200   {object}  map[string]interface{}  "status, readout"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/panel/temperature [post]
// @Security     BearerAuth
func (h *Handler) setTemperature(c *gin.Context) {
	var req temperatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	readout, err := h.services.Panel.SetTemperature(ctx, *req.TempC)
	if err != nil {
		// Validation failures in the service map to bad request; everything
		// else would come from storage and is internal.
		h.logAndJSONError(c, http.StatusBadRequest, err.Error(), "panel_set_temperature_failed", err, "temp_c", *req.TempC)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusTempSet, "readout": readout})
}

// @Summary      Calibrate converters
// @Description  Wires the real Fahrenheit/Kelvin converters and the food recommender in
// @Tags         panel
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, readout"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/panel/calibrate [post]
// @Security     BearerAuth
func (h *Handler) calibrate(c *gin.Context) {
	ctx := c.Request.Context()
	readout, err := h.services.Panel.Calibrate(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCalibrate, "panel_calibrate_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusCalibrated, "readout": readout})
}

// @Summary      Get panel readout
// @Tags         panel
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/panel/readout [get]
// @Security     BearerAuth
func (h *Handler) getReadout(c *gin.Context) {
	ctx := c.Request.Context()
	readout, err := h.services.Monitoring.GetReadout(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetReadout, "panel_get_readout_failed", err)
		return
	}
	c.JSON(http.StatusOK, readout)
}
