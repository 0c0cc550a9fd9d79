package handlers

import (
	"net/http"

	"github.com/nasirmondol/bistro-boss-restaurant-server/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Tokens *middleware.TokenService
}

// IssueToken signs the posted identity claim and returns the access token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var claim map[string]any
	if err := c.ShouldBindJSON(&claim); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	token, err := h.Tokens.Issue(claim)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
