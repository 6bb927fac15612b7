package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

const collectionServices = "services"

type ServiceRepository struct {
	col *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{col: db.Collection(collectionServices)}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.CoachingService) error {
	return insert(ctx, r.col, s)
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.CoachingService) error {
	return replaceByID(ctx, r.col, s.ID, s, domain.ErrServiceNotFound)
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.CoachingService, error) {
	return findByID[domain.CoachingService](ctx, r.col, id, domain.ErrServiceNotFound)
}

// List returns matching services, popular first, then newest.
func (r *ServiceRepository) List(ctx context.Context, filter ports.ServiceFilter) ([]*domain.CoachingService, error) {
	q := bson.M{}
	if !filter.IncludeInactive {
		q["is_active"] = true
	}
	if filter.Type != "" {
		q["type"] = filter.Type
	}
	if filter.PopularOnly {
		q["is_popular"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "is_popular", Value: -1}, {Key: "created_at", Value: -1}})
	return findAll[domain.CoachingService](ctx, r.col, q, opts)
}

// EnsureIndexes creates necessary indexes on the services collection.
func (r *ServiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "coach_id", Value: 1}}},
	})
	return err
}
