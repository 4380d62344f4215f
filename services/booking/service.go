package booking

import (
	"context"

	appointmentRepo "clinicbook/database/repository/appointment"
	doctorRepo "clinicbook/database/repository/doctor"
	scheduleRepo "clinicbook/database/repository/schedule"
	treatmentRepo "clinicbook/database/repository/treatment"
)

// DailyLimitSource supplies the clinic-wide per-doctor daily appointment cap.
type DailyLimitSource interface {
	// GetDailyLimit returns the current limit, falling back to the default
	// when the setting is missing or unreadable.
	GetDailyLimit(ctx context.Context) int
}

// DefaultBookingService is the production booking engine. All state lives in
// the store; every check re-reads current state, so concurrent requests are
// only serialized at the commit (see CreateBooking).
type DefaultBookingService struct {
	Doctors      doctorRepo.DoctorRepository
	Treatments   treatmentRepo.TreatmentRepository
	Schedules    scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
	DailyLimits  DailyLimitSource

	// SlotStrideMinutes is the candidate-generation step; 0 means 30.
	SlotStrideMinutes int
	// MaxCommitAttempts bounds the retry loop on queue-number conflicts;
	// 0 means 3.
	MaxCommitAttempts int
}

func (s *DefaultBookingService) stride() int {
	if s.SlotStrideMinutes <= 0 {
		return 30
	}
	return s.SlotStrideMinutes
}

func (s *DefaultBookingService) maxAttempts() int {
	if s.MaxCommitAttempts <= 0 {
		return 3
	}
	return s.MaxCommitAttempts
}
