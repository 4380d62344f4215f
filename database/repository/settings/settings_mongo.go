package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettingsRepo implements SettingsRepository on MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

func NewMongoSettingsRepo() *MongoSettingsRepo {
	return &MongoSettingsRepo{coll: database.DB().Collection("clinic_settings")}
}

func (repo *MongoSettingsRepo) Get(ctx context.Context, key string) (*models.ClinicSetting, error) {
	var setting models.ClinicSetting
	err := repo.coll.FindOne(ctx, bson.M{"setting_key": key}).Decode(&setting)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch setting %s: %w", key, err)
	}
	return &setting, nil
}

func (repo *MongoSettingsRepo) Upsert(ctx context.Context, setting *models.ClinicSetting) error {
	setting.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx,
		bson.M{"setting_key": setting.SettingKey}, setting, opts); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", setting.SettingKey, err)
	}
	return nil
}
