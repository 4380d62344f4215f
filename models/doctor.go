package models

// Doctor represents a practitioner customers can book with.
type Doctor struct {
	ID        string `bson:"id" json:"id"`
	FullName  string `bson:"full_name" json:"full_name"`
	Title     string `bson:"title,omitempty" json:"title,omitempty"`         // e.g., "Dermatologist"
	Specialty string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Bio       string `bson:"bio,omitempty" json:"bio,omitempty"`
	IsActive  bool   `bson:"is_active" json:"is_active"`
}
