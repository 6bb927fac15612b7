package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

const collectionPreferences = "user_preferences"

// PreferencesRepository keys each document on the owning user's ID.
type PreferencesRepository struct {
	col *mongo.Collection
}

func NewPreferencesRepository(db *mongo.Database) *PreferencesRepository {
	return &PreferencesRepository{col: db.Collection(collectionPreferences)}
}

// GetOrCreate upserts defaults with $setOnInsert, so concurrent first reads
// converge on a single document.
func (r *PreferencesRepository) GetOrCreate(ctx context.Context, defaults *domain.UserPreferences) (*domain.UserPreferences, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	fields, err := insertFields(defaults)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out domain.UserPreferences
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": defaults.UserID},
		bson.M{"$setOnInsert": fields},
		opts,
	).Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("get or create preferences: %w", err)
	}
	return &out, nil
}

func (r *PreferencesRepository) Save(ctx context.Context, p *domain.UserPreferences) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.UserID}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// insertFields renders p as an update document without _id, which the upsert
// takes from the filter.
func insertFields(p *domain.UserPreferences) (bson.M, error) {
	raw, err := bson.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	delete(fields, "_id")
	return fields, nil
}
