package settingsRepo

import (
	"context"

	"clinicbook/models"
)

// SettingsRepository provides access to keyed clinic configuration records.
type SettingsRepository interface {
	// Get returns the setting for a key, or nil when unset.
	Get(ctx context.Context, key string) (*models.ClinicSetting, error)
	// Upsert writes the setting value for a key.
	Upsert(ctx context.Context, setting *models.ClinicSetting) error
}
