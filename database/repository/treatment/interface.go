package treatmentRepo

import (
	"context"

	"clinicbook/models"
)

// TreatmentRepository provides access to treatment records.
type TreatmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Treatment, error)
	ListActive(ctx context.Context) ([]models.Treatment, error)
	Create(ctx context.Context, treatment *models.Treatment) error
	Update(ctx context.Context, treatment *models.Treatment) error
}
