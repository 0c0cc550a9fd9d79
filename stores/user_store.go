package stores

import (
	"context"
	"errors"

	"github.com/nasirmondol/bistro-boss-restaurant-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore wraps the user collection with filter-based CRUD.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(col *mongo.Collection) *UserStore {
	return &UserStore{col: col}
}

// FindByEmail returns the user with the given email, or nil when no such
// user exists.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) Insert(ctx context.Context, u models.User) (interface{}, error) {
	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

// Delete removes the user with the given id. Deleting an absent id is a
// no-op with a zero count.
func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Promote sets the admin role on the user with the given id.
func (s *UserStore) Promote(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	return s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
}
