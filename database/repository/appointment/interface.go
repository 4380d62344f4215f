package appointmentRepo

import (
	"context"
	"errors"

	"clinicbook/models"
)

// ErrQueueConflict is returned when a concurrent writer claimed the queue
// number first (unique index violation). Callers retry or surface the slot
// as unavailable.
var ErrQueueConflict = errors.New("queue number already taken for doctor/date")

// AppointmentRepository defines the data access methods used by the booking
// engine and the staff handlers. Queries that feed capacity and queue logic
// exclude cancelled appointments.
type AppointmentRepository interface {
	// GetByID retrieves a single appointment.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetBookedIntervals returns the non-cancelled [start,end) intervals for a
	// doctor on a date.
	GetBookedIntervals(ctx context.Context, doctorID, date string) ([]models.BookedInterval, error)
	// CountForDoctorDate counts non-cancelled appointments for a doctor/date.
	CountForDoctorDate(ctx context.Context, doctorID, date string) (int64, error)
	// CreateWithQueueNumber assigns the next queue number and inserts the
	// appointment in one transaction. Concurrent commits for the same
	// doctor/day are serialized, and revalidate (when non-nil) runs inside
	// the transaction so capacity gates see every committed writer; its
	// errors are returned unchanged. Returns ErrQueueConflict when a
	// concurrent booking won the race and the caller should re-check and
	// retry.
	CreateWithQueueNumber(ctx context.Context, appt *models.Appointment, revalidate func(ctx context.Context) error) error
	// ListForCustomer returns a customer's appointments, newest date first.
	ListForCustomer(ctx context.Context, customerID string) ([]models.Appointment, error)
	// ListForDate returns all appointments on a date (all doctors); empty date
	// means no date filter.
	ListForDate(ctx context.Context, date string) ([]models.Appointment, error)
	// UpdateStatus transitions an appointment's status.
	UpdateStatus(ctx context.Context, id, status string) error
	// EnsureIndexes creates the unique queue-number and booking-guard
	// indexes backing the concurrency guarantees.
	EnsureIndexes(ctx context.Context) error
}
