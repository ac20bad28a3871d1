package bookingRepo

import (
	"context"
	"fmt"

	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateNewBooking commits a reservation to both ledger views inside one
// Mongo session transaction, so a record is never visible in one projection
// and absent from the other. The unique (date, startTime) index on the
// global view makes this write the serialization point across sessions.
func (repo *MongoBookingRepo) CreateNewBooking(ctx context.Context, reservation *models.Reservation) error {
	client := repo.globalColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("%w: could not start mongo session: %v", ErrPersistence, err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.globalColl.InsertOne(sc, reservation.GlobalView()); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrBookingConflict
			}
			return fmt.Errorf("%w: insert global booking failed: %v", ErrPersistence, err)
		}
		if _, err := repo.userColl.InsertOne(sc, reservation); err != nil {
			return fmt.Errorf("%w: insert user booking failed: %v", ErrPersistence, err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		if err := sc.CommitTransaction(sc); err != nil {
			return fmt.Errorf("%w: commit failed: %v", ErrPersistence, err)
		}
		return nil
	}); err != nil {
		return err
	}

	return nil
}
