package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"slotwise/config"
	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB. Reservations
// are denormalized into two collections: "userBookings" holds the full
// per-user records, "globalBookings" holds the collision projection guarded
// by a unique (date, startTime) index.
type MongoBookingRepo struct {
	userColl   *mongo.Collection
	globalColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoBookingRepo{
		userColl:   db.Collection("userBookings"),
		globalColl: db.Collection("globalBookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetGlobalBookings returns all committed reservations' collision-relevant
// fields, unfiltered by user.
func (repo *MongoBookingRepo) GetGlobalBookings(ctx context.Context) ([]models.GlobalReservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.globalColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching global bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.GlobalReservation
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding global bookings: %w", err)
	}
	return bookings, nil
}

// GetUserBookings returns all reservations for one user.
func (repo *MongoBookingRepo) GetUserBookings(ctx context.Context, userID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.userColl.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Reservation
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}
