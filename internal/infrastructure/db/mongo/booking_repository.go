package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return insert(ctx, r.col, b)
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return replaceByID(ctx, r.col, b.ID, b, domain.ErrBookingNotFound)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrBookingNotFound)
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	return findByID[domain.Booking](ctx, r.col, id, domain.ErrBookingNotFound)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return findAll[domain.Booking](ctx, r.col, bson.M{"user_id": userID}, byDateDesc())
}

func (r *BookingRepository) ListByCoach(ctx context.Context, coachID string) ([]*domain.Booking, error) {
	filter := bson.M{}
	if coachID != "" {
		filter["coach_id"] = coachID
	}
	return findAll[domain.Booking](ctx, r.col, filter, byDateDesc())
}

func byDateDesc() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
}

// EnsureIndexes creates necessary indexes on the bookings collection.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "coach_id", Value: 1}, {Key: "date", Value: -1}}},
	})
	return err
}
