package items

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errs "github.com/yucheng-lo/foundbot/pkg/errors"
)

// DefaultListLimit caps the open-item listing. It matches the carousel
// limit of the messaging platform, so listing and presentation together
// form a top-N view rather than real pagination.
const DefaultListLimit = 10

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("lost_items")

	// Create indexes
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "resolved", Value: 1}}},
		{Keys: bson.D{{Key: "reportDate", Value: -1}}},
	})

	return &Repository{collection: collection}
}

// Create inserts a fresh report holding only the reporter and the report
// date. The optional fields stay unset until the flow fills them.
func (r *Repository) Create(ctx context.Context, reporterID string) (string, error) {
	item := LostItem{
		ID:         uuid.NewString(),
		ReporterID: reporterID,
		ReportDate: time.Now(),
		Resolved:   false,
	}

	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}

	return item.ID, nil
}

func (r *Repository) SetImageURL(ctx context.Context, id, url string) error {
	return r.setField(ctx, id, "imageUrl", url)
}

func (r *Repository) SetDescription(ctx context.Context, id, text string) error {
	return r.setField(ctx, id, "description", text)
}

func (r *Repository) SetLocation(ctx context.Context, id, text string) error {
	return r.setField(ctx, id, "location", text)
}

// setField updates exactly one field by id. A missing id is a silent
// no-op: the reporting flow only ever passes ids it created.
func (r *Repository) setField(ctx context.Context, id, field, value string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}
	return nil
}

// ListOpen returns unresolved items, newest report first, capped at
// limit. An empty result is an empty slice, not an error.
func (r *Repository) ListOpen(ctx context.Context, limit int64) ([]LostItem, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	opts := options.Find()
	opts.SetSort(bson.D{{Key: "reportDate", Value: -1}})
	opts.SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"resolved": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var result []LostItem
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}

	if result == nil {
		result = []LostItem{}
	}

	return result, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*LostItem, error) {
	var item LostItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}

	return &item, nil
}

// Resolve marks an item as claimed so it drops out of the open listing.
func (r *Repository) Resolve(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"resolved": true}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
