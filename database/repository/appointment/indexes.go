package appointmentRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the booking engine relies on. The unique
// partial index on (doctor_id, appointment_date, queue_number) is the
// store-level constraint that makes concurrent queue allocation safe;
// cancelled appointments are excluded so their numbers can be reissued.
func (repo *MongoAppointmentRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "doctor_id", Value: 1},
				{Key: "appointment_date", Value: 1},
				{Key: "queue_number", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_doctor_date_queue").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": activeStatuses},
				}),
		},
		{
			Keys: bson.D{
				{Key: "doctor_id", Value: 1},
				{Key: "appointment_date", Value: 1},
				{Key: "start_time", Value: 1},
			},
			Options: options.Index().SetName("doctor_date_start"),
		},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_id"),
		},
		{
			Keys:    bson.D{{Key: "customer_id", Value: 1}},
			Options: options.Index().SetName("customer"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}

	// One guard document per doctor/day; every booking transaction bumps it
	// so concurrent commits conflict instead of interleaving.
	guardIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctor_id", Value: 1},
			{Key: "appointment_date", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_guard_doctor_date"),
	}
	if _, err := repo.guards.Indexes().CreateOne(ctx, guardIndex); err != nil {
		return fmt.Errorf("failed to create booking guard index: %w", err)
	}
	return nil
}
