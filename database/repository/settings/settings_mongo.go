package settingsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotwise/config"
	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const availabilityDocID = "availability"

// MongoSettingsRepo implements SettingsRepository using a single settings
// document.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new instance of MongoSettingsRepo.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoSettingsRepo{coll: db.Collection("settings")}
}

type availabilityDoc struct {
	ID    string                    `bson:"_id"`
	Slots []models.AvailabilityRule `bson:"slots"`
}

// GetAvailabilityRules returns the stored weekly rule set. A missing
// document yields an empty slice, not an error.
func (repo *MongoSettingsRepo) GetAvailabilityRules(ctx context.Context) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc availabilityDoc
	err := repo.coll.FindOne(ctx, bson.M{"_id": availabilityDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching availability settings: %w", err)
	}
	return doc.Slots, nil
}

// SetAvailabilityRules validates and replaces the stored weekly rule set.
func (repo *MongoSettingsRepo) SetAvailabilityRules(ctx context.Context, rules []models.AvailabilityRule) error {
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("invalid availability rule: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := availabilityDoc{ID: availabilityDocID, Slots: rules}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": availabilityDocID}, doc, opts); err != nil {
		return fmt.Errorf("error saving availability settings: %w", err)
	}
	return nil
}
