package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

// User is a registered account (customer or staff member).
type User struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
