package doctorRepo

import (
	"context"
	"fmt"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDoctorRepo implements DoctorRepository on MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo() *MongoDoctorRepo {
	return &MongoDoctorRepo{coll: database.DB().Collection("doctors")}
}

func (repo *MongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor %s: %w", id, err)
	}
	return &doctor, nil
}

func (repo *MongoDoctorRepo) ListActive(ctx context.Context) ([]models.Doctor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (repo *MongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	if _, err := repo.coll.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("failed to insert doctor: %w", err)
	}
	return nil
}

func (repo *MongoDoctorRepo) Update(ctx context.Context, doctor *models.Doctor) error {
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": doctor.ID}, doctor)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
