package scheduleRepo

import (
	"context"
	"fmt"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository on MongoDB.
type MongoScheduleRepo struct {
	scheduleColl  *mongo.Collection
	exceptionColl *mongo.Collection
}

func NewMongoScheduleRepo() *MongoScheduleRepo {
	db := database.DB()
	return &MongoScheduleRepo{
		scheduleColl:  db.Collection("schedules"),
		exceptionColl: db.Collection("schedule_exceptions"),
	}
}

func (repo *MongoScheduleRepo) GetSchedulesInEffect(ctx context.Context, doctorID, dayOfWeek, date string) ([]models.WeeklySchedule, error) {
	filter := bson.M{
		"doctor_id":      doctorID,
		"day_of_week":    dayOfWeek,
		"is_active":      true,
		"effective_from": bson.M{"$lte": date},
		"$or": bson.A{
			bson.M{"effective_until": ""},
			bson.M{"effective_until": bson.M{"$exists": false}},
			bson.M{"effective_until": bson.M{"$gte": date}},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := repo.scheduleColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.WeeklySchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}
	return schedules, nil
}

func (repo *MongoScheduleRepo) GetException(ctx context.Context, doctorID, date string) (*models.ScheduleException, error) {
	var exc models.ScheduleException
	err := repo.exceptionColl.FindOne(ctx, bson.M{
		"doctor_id":      doctorID,
		"exception_date": date,
	}).Decode(&exc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule exception: %w", err)
	}
	return &exc, nil
}

func (repo *MongoScheduleRepo) ListForDoctor(ctx context.Context, doctorID string) ([]models.WeeklySchedule, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "day_of_week", Value: 1},
		{Key: "start_time", Value: 1},
	})
	cursor, err := repo.scheduleColl.Find(ctx, bson.M{"doctor_id": doctorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctor schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.WeeklySchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode doctor schedules: %w", err)
	}
	return schedules, nil
}

func (repo *MongoScheduleRepo) CreateSchedule(ctx context.Context, sched *models.WeeklySchedule) error {
	if _, err := repo.scheduleColl.InsertOne(ctx, sched); err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

func (repo *MongoScheduleRepo) UpdateSchedule(ctx context.Context, sched *models.WeeklySchedule) error {
	res, err := repo.scheduleColl.ReplaceOne(ctx, bson.M{"id": sched.ID}, sched)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *MongoScheduleRepo) DeactivateSchedule(ctx context.Context, id string) error {
	res, err := repo.scheduleColl.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"is_active": false}},
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate schedule: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *MongoScheduleRepo) CreateException(ctx context.Context, exc *models.ScheduleException) error {
	if _, err := repo.exceptionColl.InsertOne(ctx, exc); err != nil {
		return fmt.Errorf("failed to insert schedule exception: %w", err)
	}
	return nil
}

func (repo *MongoScheduleRepo) DeleteException(ctx context.Context, id string) error {
	res, err := repo.exceptionColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule exception: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
