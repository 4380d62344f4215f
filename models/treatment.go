package models

// Treatment is a bookable procedure; its duration drives appointment end times.
type Treatment struct {
	ID              string `bson:"id" json:"id"`
	Name            string `bson:"name" json:"name"`
	DurationMinutes int    `bson:"duration_minutes" json:"duration_minutes"`
	IsConsultation  bool   `bson:"is_consultation" json:"is_consultation"`
	IsActive        bool   `bson:"is_active" json:"is_active"`
}
