package treatmentRepo

import (
	"context"
	"fmt"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTreatmentRepo implements TreatmentRepository on MongoDB.
type MongoTreatmentRepo struct {
	coll *mongo.Collection
}

func NewMongoTreatmentRepo() *MongoTreatmentRepo {
	return &MongoTreatmentRepo{coll: database.DB().Collection("treatments")}
}

func (repo *MongoTreatmentRepo) GetByID(ctx context.Context, id string) (*models.Treatment, error) {
	var treatment models.Treatment
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&treatment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch treatment %s: %w", id, err)
	}
	return &treatment, nil
}

func (repo *MongoTreatmentRepo) ListActive(ctx context.Context) ([]models.Treatment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query treatments: %w", err)
	}
	defer cursor.Close(ctx)

	var treatments []models.Treatment
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, fmt.Errorf("failed to decode treatments: %w", err)
	}
	return treatments, nil
}

func (repo *MongoTreatmentRepo) Create(ctx context.Context, treatment *models.Treatment) error {
	if _, err := repo.coll.InsertOne(ctx, treatment); err != nil {
		return fmt.Errorf("failed to insert treatment: %w", err)
	}
	return nil
}

func (repo *MongoTreatmentRepo) Update(ctx context.Context, treatment *models.Treatment) error {
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": treatment.ID}, treatment)
	if err != nil {
		return fmt.Errorf("failed to update treatment: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
