package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository on MongoDB. The
// guards collection holds one document per doctor/day that every booking
// transaction writes, serializing concurrent commits.
type MongoAppointmentRepo struct {
	coll   *mongo.Collection
	guards *mongo.Collection
}

func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	db := database.DB()
	return &MongoAppointmentRepo{
		coll:   db.Collection("appointments"),
		guards: db.Collection("booking_guards"),
	}
}

// activeStatuses are the statuses that occupy capacity and queue numbers.
var activeStatuses = bson.A{
	models.StatusPending, models.StatusConfirmed,
	models.StatusCompleted, models.StatusNoShow,
}

func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (repo *MongoAppointmentRepo) GetBookedIntervals(ctx context.Context, doctorID, date string) ([]models.BookedInterval, error) {
	filter := bson.M{
		"doctor_id":        doctorID,
		"appointment_date": date,
		"status":           bson.M{"$in": activeStatuses},
	}
	opts := options.Find().
		SetProjection(bson.M{"start_time": 1, "end_time": 1}).
		SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query booked intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var intervals []models.BookedInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, fmt.Errorf("failed to decode booked intervals: %w", err)
	}
	return intervals, nil
}

func (repo *MongoAppointmentRepo) CountForDoctorDate(ctx context.Context, doctorID, date string) (int64, error) {
	filter := bson.M{
		"doctor_id":        doctorID,
		"appointment_date": date,
		"status":           bson.M{"$in": activeStatuses},
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

// maxQueueNumber takes the collection explicitly so the transactional create
// can run it inside its session.
func (repo *MongoAppointmentRepo) maxQueueNumber(ctx context.Context, coll *mongo.Collection, doctorID, date string) (int, error) {
	filter := bson.M{
		"doctor_id":        doctorID,
		"appointment_date": date,
		"status":           bson.M{"$in": activeStatuses},
	}
	opts := options.FindOne().
		SetProjection(bson.M{"queue_number": 1}).
		SetSort(bson.D{{Key: "queue_number", Value: -1}})

	var top struct {
		QueueNumber int `bson:"queue_number"`
	}
	err := coll.FindOne(ctx, filter, opts).Decode(&top)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch max queue number: %w", err)
	}
	return top.QueueNumber, nil
}

func (repo *MongoAppointmentRepo) ListForCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "appointment_date", Value: -1},
		{Key: "start_time", Value: -1},
	})
	cursor, err := repo.coll.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode customer appointments: %w", err)
	}
	return appts, nil
}

func (repo *MongoAppointmentRepo) ListForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	filter := bson.M{}
	if date != "" {
		filter["appointment_date"] = date
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "appointment_date", Value: 1},
		{Key: "doctor_id", Value: 1},
		{Key: "queue_number", Value: 1},
	})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

func (repo *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
