package userRepo

import (
	"context"

	"clinicbook/models"
)

// UserRepository provides access to registered accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
