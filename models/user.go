package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role defines the privilege level of a user. The zero value is an
// ordinary member and is persisted as an absent role field.
type Role string

const (
	RoleMember Role = ""
	RoleAdmin  Role = "admin"
)

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}
