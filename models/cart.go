package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a menu item placed in a user's cart, keyed by the owner's
// email rather than a user id.
type CartItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuID string             `bson:"menuId,omitempty" json:"menuId,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Price  float64            `bson:"price,omitempty" json:"price,omitempty"`
}
