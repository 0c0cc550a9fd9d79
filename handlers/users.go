package handlers

import (
	"context"
	"net/http"

	"github.com/nasirmondol/bistro-boss-restaurant-server/middleware"
	"github.com/nasirmondol/bistro-boss-restaurant-server/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore is the persistence surface the user handlers need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, u models.User) (interface{}, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Promote(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

type UserHandler struct {
	Users UserStore
}

// List returns all user records. Admin only.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminStatus reports whether the given email belongs to an admin. A user
// may only query their own status; the answer is how clients decide whether
// to show admin UI, so absence of the user is not an error.
func (h *UserHandler) AdminStatus(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.VerifiedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	admin := user != nil && user.Role.IsAdmin()
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// Create registers a user profile, idempotent on email. Open by design:
// this is the first-login profile sync path. The lookup and insert are not
// atomic; two racing registrations can both insert.
func (h *UserHandler) Create(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	existing, err := h.Users.FindByEmail(c.Request.Context(), user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "insertedId": nil})
		return
	}
	id, err := h.Users.Insert(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// Delete removes a user by id. Admin only.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	count, err := h.Users.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}

// Promote grants the admin role to a user by id. Admin only; there is no
// downgrade operation.
func (h *UserHandler) Promote(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	res, err := h.Users.Promote(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount})
}
