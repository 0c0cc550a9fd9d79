package stores

import (
	"context"

	"github.com/nasirmondol/bistro-boss-restaurant-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewStore wraps the reviews collection. Only the read path is exposed.
type ReviewStore struct {
	col *mongo.Collection
}

func NewReviewStore(col *mongo.Collection) *ReviewStore {
	return &ReviewStore{col: col}
}

func (s *ReviewStore) All(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
