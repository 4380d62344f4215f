package models

// BookingRequest is the create-appointment payload. Either CustomerID is set
// by the auth layer, or IsGuest with guest contact fields must be present.
type BookingRequest struct {
	DoctorID        string `json:"doctor_id"`
	TreatmentID     string `json:"treatment_id"`
	AppointmentDate string `json:"appointment_date"` // "YYYY-MM-DD"
	StartTime       string `json:"start_time"`       // "HH:MM"
	CustomerID      string `json:"-"`
	IsGuest         bool   `json:"is_guest,omitempty"`
	GuestName       string `json:"guest_name,omitempty"`
	GuestPhone      string `json:"guest_phone,omitempty"`
	GuestEmail      string `json:"guest_email,omitempty"`
	CustomerNotes   string `json:"notes,omitempty"`
}

// AvailableSlotsResponse is returned by the available-slots endpoint.
type AvailableSlotsResponse struct {
	Date           string   `json:"date"`
	DoctorID       string   `json:"doctor_id"`
	AvailableSlots []string `json:"available_slots"`
}
