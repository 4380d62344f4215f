package booking

import (
	"context"
	"errors"
	"net/mail"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates a booking request end to end and commits exactly
// one appointment on success. Gates run in order, each short-circuiting:
// input shape, identity, treatment resolution, daily cap, slot validation,
// then the transactional queue-number assignment and insert.
//
// Two concurrent requests for the same doctor/date can both pass every read
// gate on identical "before" state. The store serializes commits per
// doctor/day and re-runs the daily-cap and slot gates inside the commit
// transaction, so a writer that lands between this request's gates and its
// insert is still seen. A losing writer retries a bounded number of times,
// then reports the slot as unavailable.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	if req.CustomerID == "" && !req.IsGuest {
		return nil, NewUnauthorizedError("sign in or book as a guest")
	}

	doctor, err := s.Doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, NewStoreError(err)
	}
	if doctor == nil || !doctor.IsActive {
		return nil, NewNotFoundError("doctor not found")
	}

	treatment, err := s.Treatments.GetByID(ctx, req.TreatmentID)
	if err != nil {
		return nil, NewStoreError(err)
	}
	if treatment == nil || !treatment.IsActive {
		return nil, NewNotFoundError("treatment not found")
	}

	endTime, err := utils.AddMinutes(req.StartTime, treatment.DurationMinutes)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	// checkGates runs the daily-cap and slot gates. It runs once per attempt
	// as a cheap pre-check, and again inside the commit transaction where
	// concurrent writers have been serialized.
	checkGates := func(gctx context.Context) error {
		ok, err := s.HasDailyCapacity(gctx, req.DoctorID, req.AppointmentDate)
		if err != nil {
			return err
		}
		if !ok {
			return NewDailyLimitError("the doctor's daily appointment limit has been reached")
		}
		bookable, err := s.IsSlotBookable(gctx, req.DoctorID, req.AppointmentDate, req.StartTime, endTime)
		if err != nil {
			return err
		}
		if !bookable {
			return NewSlotUnavailableError("the selected slot is not available")
		}
		return nil
	}

	for attempt := 1; attempt <= s.maxAttempts(); attempt++ {
		if err := checkGates(ctx); err != nil {
			return nil, err
		}

		appt := &models.Appointment{
			ID:              uuid.New().String(),
			DoctorID:        req.DoctorID,
			CustomerID:      req.CustomerID,
			GuestName:       req.GuestName,
			GuestPhone:      req.GuestPhone,
			GuestEmail:      req.GuestEmail,
			TreatmentID:     req.TreatmentID,
			AppointmentDate: req.AppointmentDate,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			Status:          models.StatusPending,
			CustomerNotes:   req.CustomerNotes,
			CreatedAt:       time.Now(),
		}

		err = s.Appointments.CreateWithQueueNumber(ctx, appt, checkGates)
		if err == nil {
			logger.Info("appointment created",
				zap.String("appointmentID", appt.ID),
				zap.String("doctorID", appt.DoctorID),
				zap.String("date", appt.AppointmentDate),
				zap.String("start", appt.StartTime),
				zap.Int("queueNumber", appt.QueueNumber))
			return appt, nil
		}
		if errors.Is(err, appointmentRepo.ErrQueueConflict) {
			logger.Warn("booking commit conflict, re-validating",
				zap.String("doctorID", req.DoctorID),
				zap.String("date", req.AppointmentDate),
				zap.Int("attempt", attempt))
			continue
		}
		var bookingErr *BookingError
		if errors.As(err, &bookingErr) {
			// A gate failed at commit time; the verdict is final, not retryable.
			return nil, err
		}
		return nil, NewStoreError(err)
	}

	// A concurrent writer won every attempt; to this requester the slot is
	// simply gone.
	return nil, NewSlotUnavailableError("the selected slot is not available")
}

// validateBookingRequest checks input shape only; it performs no store reads.
func validateBookingRequest(req models.BookingRequest) error {
	if req.DoctorID == "" {
		return NewValidationError("doctor_id is required")
	}
	if req.TreatmentID == "" {
		return NewValidationError("treatment_id is required")
	}
	if !utils.IsValidDate(req.AppointmentDate) {
		return NewValidationError("appointment_date must be YYYY-MM-DD")
	}
	if !utils.IsValidClock(req.StartTime) {
		return NewValidationError("start_time must be HH:MM")
	}
	if req.IsGuest {
		if req.GuestName == "" {
			return NewValidationError("guest bookings require a name")
		}
		if req.GuestPhone == "" {
			return NewValidationError("guest bookings require a phone number")
		}
		if req.GuestEmail != "" {
			if _, err := mail.ParseAddress(req.GuestEmail); err != nil {
				return NewValidationError("guest email is not a valid address")
			}
		}
	}
	return nil
}
