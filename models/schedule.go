package models

// WeeklySchedule is a recurring availability band for one doctor on one weekday.
// Multiple bands may exist per doctor/day (e.g., morning and evening sessions).
type WeeklySchedule struct {
	ID             string `bson:"id" json:"id"`
	DoctorID       string `bson:"doctor_id" json:"doctor_id"`
	DayOfWeek      string `bson:"day_of_week" json:"day_of_week"`   // "monday" ... "sunday"
	StartTime      string `bson:"start_time" json:"start_time"`     // "HH:MM", must be < EndTime
	EndTime        string `bson:"end_time" json:"end_time"`         // "HH:MM"
	Capacity       int    `bson:"capacity" json:"capacity"`         // simultaneous bookings allowed, default 1
	EffectiveFrom  string `bson:"effective_from" json:"effective_from"`                       // "YYYY-MM-DD"
	EffectiveUntil string `bson:"effective_until,omitempty" json:"effective_until,omitempty"` // inclusive; empty means open-ended
	IsActive       bool   `bson:"is_active" json:"is_active"`
}

// InEffectOn reports whether the band applies to the given date.
func (s WeeklySchedule) InEffectOn(date string) bool {
	if !s.IsActive {
		return false
	}
	if s.EffectiveFrom != "" && date < s.EffectiveFrom {
		return false
	}
	if s.EffectiveUntil != "" && date > s.EffectiveUntil {
		return false
	}
	return true
}

// ScheduleException overrides a doctor's recurring schedule on a single date.
// IsAvailable=false with no times blocks the whole day; with times, only that
// window. IsAvailable=true is an annotation and does not add capacity.
type ScheduleException struct {
	ID            string `bson:"id" json:"id"`
	DoctorID      string `bson:"doctor_id" json:"doctor_id"`
	ExceptionDate string `bson:"exception_date" json:"exception_date"` // "YYYY-MM-DD"
	IsAvailable   bool   `bson:"is_available" json:"is_available"`
	StartTime     string `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime       string `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Reason        string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// BlocksWholeDay reports whether the exception removes the entire date.
func (e ScheduleException) BlocksWholeDay() bool {
	return !e.IsAvailable && (e.StartTime == "" || e.EndTime == "")
}

// BlocksInterval reports whether the exception blocks any part of [start, end).
func (e ScheduleException) BlocksInterval(start, end string) bool {
	if e.IsAvailable {
		return false
	}
	if e.StartTime == "" || e.EndTime == "" {
		return true
	}
	return start < e.EndTime && end > e.StartTime
}
