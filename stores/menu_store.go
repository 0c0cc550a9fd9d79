package stores

import (
	"context"
	"errors"

	"github.com/nasirmondol/bistro-boss-restaurant-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuStore wraps the menu collection.
//
// The read and update paths filter _id as a raw string while the delete
// path uses a generated ObjectID. The mismatch is inherited from the
// original API; callers must tolerate it.
type MenuStore struct {
	col *mongo.Collection
}

func NewMenuStore(col *mongo.Collection) *MenuStore {
	return &MenuStore{col: col}
}

func (s *MenuStore) All(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByRawID looks an item up with the id matched as a raw string, not an
// ObjectID. Returns nil when nothing matches.
func (s *MenuStore) FindByRawID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuStore) Insert(ctx context.Context, item models.MenuItem) (interface{}, error) {
	res, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

// UpdateByRawID applies a $set of the given fields, matching _id as a raw
// string like FindByRawID does.
func (s *MenuStore) UpdateByRawID(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	return s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
}

func (s *MenuStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
