package sessions

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errs "github.com/yucheng-lo/foundbot/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("user_sessions")}
}

// Get returns the user's flow position. No document means idle; readers
// must not distinguish the two.
func (r *Repository) Get(ctx context.Context, userID string) (State, string, error) {
	var doc sessionDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return StateIdle, "", nil
		}
		return StateIdle, "", fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}

	state, err := decodeState(doc.State)
	if err != nil {
		return StateIdle, "", err
	}

	return state, doc.CurrentItemID, nil
}

// Set upserts the session in a single statement so state and item id can
// never be observed half-written. Callers keep the invariant that
// reporting states carry an item id.
func (r *Repository) Set(ctx context.Context, userID string, state State, itemID string) error {
	code, err := encodeState(state)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"state": code, "currentItemId": itemID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}

	return nil
}

// Clear deletes the session row, the only way a user returns to idle.
// Deleting an absent row is fine.
func (r *Repository) Clear(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}
	return nil
}
