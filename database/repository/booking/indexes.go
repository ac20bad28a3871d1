package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the ledger indexes. The unique (date, startTime)
// index on the global view is the server-side guard against two concurrent
// commits of the same slot: the losing transaction aborts with a duplicate
// key error instead of double-booking.
func (repo *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	globalModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := repo.globalColl.Indexes().CreateMany(ctx, globalModels); err != nil {
		return fmt.Errorf("failed to create global booking indexes: %w", err)
	}

	userModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}}},
	}
	if _, err := repo.userColl.Indexes().CreateMany(ctx, userModels); err != nil {
		return fmt.Errorf("failed to create user booking indexes: %w", err)
	}
	return nil
}
