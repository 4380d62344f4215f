package scheduleRepo

import (
	"context"

	"clinicbook/models"
)

// ScheduleRepository provides access to recurring weekly schedules and
// date-specific exceptions.
type ScheduleRepository interface {
	// GetSchedulesInEffect returns the active bands for a doctor/weekday that
	// are in effect on the given date, sorted by start time.
	GetSchedulesInEffect(ctx context.Context, doctorID, dayOfWeek, date string) ([]models.WeeklySchedule, error)
	// GetException returns the exception record for a doctor/date, or nil.
	GetException(ctx context.Context, doctorID, date string) (*models.ScheduleException, error)
	// ListForDoctor returns all schedule bands for a doctor.
	ListForDoctor(ctx context.Context, doctorID string) ([]models.WeeklySchedule, error)
	// CreateSchedule persists a new weekly band.
	CreateSchedule(ctx context.Context, sched *models.WeeklySchedule) error
	// UpdateSchedule replaces a band by ID.
	UpdateSchedule(ctx context.Context, sched *models.WeeklySchedule) error
	// DeactivateSchedule marks a band inactive.
	DeactivateSchedule(ctx context.Context, id string) error
	// CreateException persists a date-specific override.
	CreateException(ctx context.Context, exc *models.ScheduleException) error
	// DeleteException removes an override by ID.
	DeleteException(ctx context.Context, id string) error
}
