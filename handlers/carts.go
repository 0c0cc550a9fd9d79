package handlers

import (
	"context"
	"net/http"

	"github.com/nasirmondol/bistro-boss-restaurant-server/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartStore is the persistence surface the cart handlers need.
type CartStore interface {
	FindByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Insert(ctx context.Context, item models.CartItem) (interface{}, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type CartHandler struct {
	Carts CartStore
}

// List returns the cart rows for the email given as a query parameter.
// There is no ownership check beyond the filter itself.
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.Carts.FindByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Add inserts a cart row as submitted.
func (h *CartHandler) Add(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	id, err := h.Carts.Insert(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// Remove deletes a cart row by id. Any caller holding the id may delete it.
func (h *CartHandler) Remove(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	count, err := h.Carts.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}
