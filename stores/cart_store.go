package stores

import (
	"context"

	"github.com/nasirmondol/bistro-boss-restaurant-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartStore wraps the carts collection. Rows are keyed by the owner's email.
type CartStore struct {
	col *mongo.Collection
}

func NewCartStore(col *mongo.Collection) *CartStore {
	return &CartStore{col: col}
}

func (s *CartStore) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := s.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartStore) Insert(ctx context.Context, item models.CartItem) (interface{}, error) {
	res, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (s *CartStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
