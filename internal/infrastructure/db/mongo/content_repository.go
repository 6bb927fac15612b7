package mongo

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

const collectionContent = "content"

type ContentRepository struct {
	col *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{col: db.Collection(collectionContent)}
}

func (r *ContentRepository) Create(ctx context.Context, c *domain.Content) error {
	return insert(ctx, r.col, c)
}

func (r *ContentRepository) Update(ctx context.Context, c *domain.Content) error {
	return replaceByID(ctx, r.col, c.ID, c, domain.ErrContentNotFound)
}

func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) FindByID(ctx context.Context, id string) (*domain.Content, error) {
	return findByID[domain.Content](ctx, r.col, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) ListPublished(ctx context.Context, filter ports.ContentFilter) ([]*domain.Content, error) {
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	return findAll[domain.Content](ctx, r.col, publishedFilter(filter), opts)
}

func publishedFilter(filter ports.ContentFilter) bson.M {
	q := bson.M{"is_published": true}
	if filter.Type != "" {
		q["type"] = filter.Type
	}
	if filter.Premium != nil {
		q["is_premium"] = *filter.Premium
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	return q
}

// EnsureIndexes creates necessary indexes on the content collection.
func (r *ContentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "published_at", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	})
	return err
}
