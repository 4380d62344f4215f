package handlers

import (
	"net/http"

	appointmentRepo "clinicbook/database/repository/appointment"
	treatmentRepo "clinicbook/database/repository/treatment"
	"clinicbook/models"
	"clinicbook/services/booking"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves slot discovery and appointment creation.
type BookingHandler struct {
	Svc          booking.BookingService
	Appointments appointmentRepo.AppointmentRepository
	Treatments   treatmentRepo.TreatmentRepository
}

func NewBookingHandler(svc booking.BookingService, appointments appointmentRepo.AppointmentRepository, treatments treatmentRepo.TreatmentRepository) *BookingHandler {
	return &BookingHandler{Svc: svc, Appointments: appointments, Treatments: treatments}
}

// GetAvailableSlots handles GET /api/appointments/available-slots.
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	date := c.Query("date")
	treatmentID := c.Query("treatment_id")
	if doctorID == "" || date == "" || treatmentID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing required parameters", "doctor_id, date and treatment_id are required")
		return
	}

	slots, err := h.Svc.ListAvailableSlots(c.Request.Context(), doctorID, date, treatmentID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AvailableSlotsResponse{
		Date:           date,
		DoctorID:       doctorID,
		AvailableSlots: slots,
	})
}

// CreateAppointment handles POST /api/appointments. Routes through
// OptionalAuth: a signed-in caller books under their account, anonymous
// callers must flag a guest booking with contact details.
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if userID, ok := c.Get("userID"); ok {
		req.CustomerID, _ = userID.(string)
	}

	appt, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	// Consultations need an intake form before the visit.
	intakeRequired := false
	if treatment, err := h.Treatments.GetByID(c.Request.Context(), appt.TreatmentID); err == nil && treatment != nil {
		intakeRequired = treatment.IsConsultation
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment":          appt,
		"intake_form_required": intakeRequired,
	})
}

// GetMyAppointments handles GET /api/appointments for the signed-in customer.
func (h *BookingHandler) GetMyAppointments(c *gin.Context) {
	userID := c.GetString("userID")
	appts, err := h.Appointments.ListForCustomer(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("failed to list customer appointments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch appointments", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// respondBookingError maps booking error codes to HTTP statuses. Store errors
// keep their detail out of the response body.
func respondBookingError(c *gin.Context, err error) {
	switch booking.CodeOf(err) {
	case booking.CodeValidation:
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	case booking.CodeUnauthorized:
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", err.Error())
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case booking.CodeSlotUnavailable, booking.CodeDailyLimit:
		utils.JSONError(c, http.StatusConflict, "slot not available", err.Error())
	default:
		utils.GetLogger().Error("booking store error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
