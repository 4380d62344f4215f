package handlers

import (
	"net/http"

	scheduleRepo "clinicbook/database/repository/schedule"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var weekdays = map[string]bool{
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
}

// ScheduleHandler serves staff management of weekly bands and exceptions.
type ScheduleHandler struct {
	Repo scheduleRepo.ScheduleRepository
}

func NewScheduleHandler(repo scheduleRepo.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{Repo: repo}
}

// ListDoctorSchedules handles GET /api/staff/schedules?doctor_id=...
func (h *ScheduleHandler) ListDoctorSchedules(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	if doctorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing required parameters", "doctor_id is required")
		return
	}
	schedules, err := h.Repo.ListForDoctor(c.Request.Context(), doctorID)
	if err != nil {
		utils.GetLogger().Error("failed to list schedules", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch schedules", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// CreateSchedule handles POST /api/staff/schedules.
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var input struct {
		DoctorID       string `json:"doctor_id" binding:"required"`
		DayOfWeek      string `json:"day_of_week" binding:"required"`
		StartTime      string `json:"start_time" binding:"required"`
		EndTime        string `json:"end_time" binding:"required"`
		Capacity       int    `json:"capacity"`
		EffectiveFrom  string `json:"effective_from" binding:"required"`
		EffectiveUntil string `json:"effective_until"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if !weekdays[input.DayOfWeek] {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "day_of_week must be a lowercase weekday name")
		return
	}
	start := utils.NormalizeClock(input.StartTime)
	end := utils.NormalizeClock(input.EndTime)
	if !utils.IsValidClock(start) || !utils.IsValidClock(end) || start >= end {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start_time must be before end_time, both HH:MM")
		return
	}
	if !utils.IsValidDate(input.EffectiveFrom) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "effective_from must be YYYY-MM-DD")
		return
	}
	if input.EffectiveUntil != "" && !utils.IsValidDate(input.EffectiveUntil) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "effective_until must be YYYY-MM-DD")
		return
	}
	if input.Capacity < 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "capacity cannot be negative")
		return
	}
	capacity := input.Capacity
	if capacity == 0 {
		capacity = 1
	}

	sched := &models.WeeklySchedule{
		ID:             uuid.New().String(),
		DoctorID:       input.DoctorID,
		DayOfWeek:      input.DayOfWeek,
		StartTime:      start,
		EndTime:        end,
		Capacity:       capacity,
		EffectiveFrom:  input.EffectiveFrom,
		EffectiveUntil: input.EffectiveUntil,
		IsActive:       true,
	}
	if err := h.Repo.CreateSchedule(c.Request.Context(), sched); err != nil {
		utils.GetLogger().Error("failed to create schedule", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create schedule", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule": sched})
}

// UpdateSchedule handles PUT /api/staff/schedules/:id.
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	var sched models.WeeklySchedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sched.ID = c.Param("id")

	if !weekdays[sched.DayOfWeek] {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "day_of_week must be a lowercase weekday name")
		return
	}
	sched.StartTime = utils.NormalizeClock(sched.StartTime)
	sched.EndTime = utils.NormalizeClock(sched.EndTime)
	if !utils.IsValidClock(sched.StartTime) || !utils.IsValidClock(sched.EndTime) || sched.StartTime >= sched.EndTime {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start_time must be before end_time, both HH:MM")
		return
	}
	if sched.Capacity < 1 {
		sched.Capacity = 1
	}

	if err := h.Repo.UpdateSchedule(c.Request.Context(), &sched); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "schedule not found", "")
			return
		}
		utils.GetLogger().Error("failed to update schedule", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update schedule", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": sched})
}

// DeactivateSchedule handles DELETE /api/staff/schedules/:id.
func (h *ScheduleHandler) DeactivateSchedule(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.DeactivateSchedule(c.Request.Context(), id); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "schedule not found", "")
			return
		}
		utils.GetLogger().Error("failed to deactivate schedule", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to deactivate schedule", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "is_active": false})
}

// CreateException handles POST /api/staff/schedules/exceptions.
func (h *ScheduleHandler) CreateException(c *gin.Context) {
	var input struct {
		DoctorID      string `json:"doctor_id" binding:"required"`
		ExceptionDate string `json:"exception_date" binding:"required"`
		IsAvailable   bool   `json:"is_available"`
		StartTime     string `json:"start_time"`
		EndTime       string `json:"end_time"`
		Reason        string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if !utils.IsValidDate(input.ExceptionDate) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "exception_date must be YYYY-MM-DD")
		return
	}
	// Times are optional but must come as a valid pair.
	if (input.StartTime == "") != (input.EndTime == "") {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start_time and end_time must be set together")
		return
	}
	if input.StartTime != "" {
		start := utils.NormalizeClock(input.StartTime)
		end := utils.NormalizeClock(input.EndTime)
		if !utils.IsValidClock(start) || !utils.IsValidClock(end) || start >= end {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "start_time must be before end_time, both HH:MM")
			return
		}
		input.StartTime = start
		input.EndTime = end
	}

	exc := &models.ScheduleException{
		ID:            uuid.New().String(),
		DoctorID:      input.DoctorID,
		ExceptionDate: input.ExceptionDate,
		IsAvailable:   input.IsAvailable,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Reason:        input.Reason,
	}
	if err := h.Repo.CreateException(c.Request.Context(), exc); err != nil {
		utils.GetLogger().Error("failed to create exception", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create exception", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"exception": exc})
}

// DeleteException handles DELETE /api/staff/schedules/exceptions/:id.
func (h *ScheduleHandler) DeleteException(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.DeleteException(c.Request.Context(), id); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.JSONError(c, http.StatusNotFound, "exception not found", "")
			return
		}
		utils.GetLogger().Error("failed to delete exception", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete exception", "")
		return
	}
	c.Status(http.StatusNoContent)
}
