package handlers

import (
	"net/http"

	"clinicbook/services/clinic"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler serves staff management of clinic-wide configuration.
type SettingsHandler struct {
	Svc clinic.SettingsService
}

func NewSettingsHandler(svc clinic.SettingsService) *SettingsHandler {
	return &SettingsHandler{Svc: svc}
}

// GetDailyLimit handles GET /api/staff/clinic-settings/daily-limit.
func (h *SettingsHandler) GetDailyLimit(c *gin.Context) {
	limit := h.Svc.GetDailyLimit(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"daily_appointment_limit_per_doctor": limit})
}

// UpdateDailyLimit handles PUT /api/staff/clinic-settings/daily-limit.
func (h *SettingsHandler) UpdateDailyLimit(c *gin.Context) {
	var input struct {
		DailyAppointmentLimitPerDoctor int `json:"daily_appointment_limit_per_doctor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateDailyLimit(c.Request.Context(), input.DailyAppointmentLimitPerDoctor); err != nil {
		if err == clinic.ErrLimitOutOfRange {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		utils.GetLogger().Error("failed to update daily limit", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update setting", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                            true,
		"daily_appointment_limit_per_doctor": input.DailyAppointmentLimitPerDoctor,
	})
}
