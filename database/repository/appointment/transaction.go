package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateWithQueueNumber commits one appointment inside a session transaction:
// bump the doctor/day guard document, re-run the caller's validation, read
// the current max queue number, insert. Two concurrent transactions for the
// same doctor/day both write the guard document, so the loser aborts with a
// transient write conflict instead of committing past a capacity check that
// no longer holds; the unique queue-number index from EnsureIndexes backs
// this up. Both failure shapes surface as ErrQueueConflict for the caller's
// bounded retry. Errors returned by revalidate pass through unchanged.
func (repo *MongoAppointmentRepo) CreateWithQueueNumber(ctx context.Context, appt *models.Appointment, revalidate func(ctx context.Context) error) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		res := repo.guards.FindOneAndUpdate(sc,
			bson.M{"doctor_id": appt.DoctorID, "appointment_date": appt.AppointmentDate},
			bson.M{"$inc": bson.M{"commits": 1}},
			options.FindOneAndUpdate().SetUpsert(true),
		)
		if err := res.Err(); err != nil && err != mongo.ErrNoDocuments {
			if mongo.IsDuplicateKeyError(err) {
				return ErrQueueConflict
			}
			return fmt.Errorf("failed to bump booking guard: %w", err)
		}

		// Re-run the capacity and daily-limit gates on the transaction's
		// snapshot; a writer that committed after the caller's first pass is
		// visible here.
		if revalidate != nil {
			if err := revalidate(sc); err != nil {
				return err
			}
		}

		maxQueue, err := repo.maxQueueNumber(sc, repo.coll, appt.DoctorID, appt.AppointmentDate)
		if err != nil {
			return err
		}
		appt.QueueNumber = maxQueue + 1

		if _, err := repo.coll.InsertOne(sc, appt); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrQueueConflict
			}
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrQueueConflict) || isTransientTxnError(err) {
		return ErrQueueConflict
	}
	return err
}

// isTransientTxnError matches the write-conflict aborts mongo raises when
// two transactions contend on the guard document.
func isTransientTxnError(err error) bool {
	var srvErr mongo.ServerError
	if errors.As(err, &srvErr) {
		return srvErr.HasErrorLabel("TransientTransactionError")
	}
	return false
}
