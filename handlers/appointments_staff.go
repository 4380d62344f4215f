package handlers

import (
	"net/http"

	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// StaffAppointmentHandler serves the staff appointment views and lifecycle
// transitions.
type StaffAppointmentHandler struct {
	Appointments appointmentRepo.AppointmentRepository
}

func NewStaffAppointmentHandler(appointments appointmentRepo.AppointmentRepository) *StaffAppointmentHandler {
	return &StaffAppointmentHandler{Appointments: appointments}
}

// ListAppointments handles GET /api/staff/appointments?date=YYYY-MM-DD.
func (h *StaffAppointmentHandler) ListAppointments(c *gin.Context) {
	date := c.Query("date")
	if date != "" && !utils.IsValidDate(date) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "date must be YYYY-MM-DD")
		return
	}

	appts, err := h.Appointments.ListForDate(c.Request.Context(), date)
	if err != nil {
		utils.GetLogger().Error("failed to list appointments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch appointments", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateAppointmentStatus handles PATCH /api/staff/appointments/:id/status.
// Only forward transitions are allowed; cancelled appointments release their
// slot and queue number implicitly since every count excludes them.
func (h *StaffAppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("failed to fetch appointment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch appointment", "")
		return
	}
	if appt == nil {
		utils.JSONError(c, http.StatusNotFound, "appointment not found", "")
		return
	}

	if !models.ValidStatusTransition(appt.Status, input.Status) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid status transition",
			appt.Status+" -> "+input.Status)
		return
	}

	if err := h.Appointments.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "appointment not found", "")
			return
		}
		utils.GetLogger().Error("failed to update appointment status", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update appointment", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Status})
}
