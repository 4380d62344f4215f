package booking

import (
	"context"

	"clinicbook/models"
)

// BookingService is the entry point for slot discovery and appointment
// creation. Slot generation and slot validation share the same rules so a
// slot shown to a client is never one the orchestrator would reject on
// identical state.
type BookingService interface {
	// ListAvailableSlots returns the bookable start times for a doctor, date
	// and treatment, in chronological order.
	ListAvailableSlots(ctx context.Context, doctorID, date, treatmentID string) ([]string, error)
	// IsSlotBookable validates a single candidate interval against schedule,
	// exceptions and capacity. Fails closed.
	IsSlotBookable(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error)
	// CreateBooking runs the full validation pipeline and commits exactly one
	// appointment on success.
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
}
