package doctorRepo

import (
	"context"

	"clinicbook/models"
)

// DoctorRepository provides access to doctor records.
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	ListActive(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) error
	Update(ctx context.Context, doctor *models.Doctor) error
}
