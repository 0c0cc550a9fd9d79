package handlers

import (
	"context"
	"net/http"

	"github.com/nasirmondol/bistro-boss-restaurant-server/models"

	"github.com/gin-gonic/gin"
)

// ReviewStore is the persistence surface the review handlers need.
// Reviews are read-only through the API.
type ReviewStore interface {
	All(ctx context.Context) ([]models.Review, error)
}

type ReviewHandler struct {
	Reviews ReviewStore
}

// List returns all reviews. Public.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.Reviews.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
