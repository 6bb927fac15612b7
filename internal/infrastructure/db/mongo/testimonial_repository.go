package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

const collectionTestimonials = "testimonials"

type TestimonialRepository struct {
	col *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return &TestimonialRepository{col: db.Collection(collectionTestimonials)}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return insert(ctx, r.col, t)
}

func (r *TestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	return replaceByID(ctx, r.col, t.ID, t, domain.ErrTestimonialNotFound)
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrTestimonialNotFound)
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	return findByID[domain.Testimonial](ctx, r.col, id, domain.ErrTestimonialNotFound)
}

func (r *TestimonialRepository) ListByApproval(ctx context.Context, approved bool) ([]*domain.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return findAll[domain.Testimonial](ctx, r.col, bson.M{"is_approved": approved}, opts)
}

// ApprovedStats aggregates count and mean rating server-side.
func (r *TestimonialRepository) ApprovedStats(ctx context.Context) (domain.TestimonialStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_approved": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"avg":   bson.M{"$avg": "$rating"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.TestimonialStats{}, fmt.Errorf("aggregate testimonials: %w", err)
	}

	var rows []struct {
		Total int64   `bson:"total"`
		Avg   float64 `bson:"avg"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return domain.TestimonialStats{}, fmt.Errorf("decode testimonial stats: %w", err)
	}
	if len(rows) == 0 {
		return domain.TestimonialStats{}, nil
	}
	return domain.TestimonialStats{Total: rows[0].Total, AverageRating: rows[0].Avg}, nil
}
