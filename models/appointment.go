package models

import "time"

// Appointment statuses. Cancelled appointments release their slot capacity,
// queue number and daily-limit count.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Appointment is a booked treatment slot with a per-doctor-per-day queue number.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	DoctorID        string    `bson:"doctor_id" json:"doctor_id"`
	CustomerID      string    `bson:"customer_id,omitempty" json:"customer_id,omitempty"` // empty for guest bookings
	GuestName       string    `bson:"guest_name,omitempty" json:"guest_name,omitempty"`
	GuestPhone      string    `bson:"guest_phone,omitempty" json:"guest_phone,omitempty"`
	GuestEmail      string    `bson:"guest_email,omitempty" json:"guest_email,omitempty"`
	TreatmentID     string    `bson:"treatment_id" json:"treatment_id"`
	AppointmentDate string    `bson:"appointment_date" json:"appointment_date"` // "YYYY-MM-DD"
	StartTime       string    `bson:"start_time" json:"start_time"`             // "HH:MM"
	EndTime         string    `bson:"end_time" json:"end_time"`                 // "HH:MM"
	Status          string    `bson:"status" json:"status"`
	QueueNumber     int       `bson:"queue_number" json:"queue_number"` // unique per doctor+date among non-cancelled
	CustomerNotes   string    `bson:"customer_notes,omitempty" json:"customer_notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// BookedInterval is the minimal view of an appointment used by capacity checks.
type BookedInterval struct {
	StartTime string `bson:"start_time" json:"start_time"`
	EndTime   string `bson:"end_time" json:"end_time"`
}

// ValidStatusTransition reports whether staff may move an appointment from one
// status to another. Terminal states cannot be left.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled || to == StatusNoShow
	default:
		return false
	}
}
