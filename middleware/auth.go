package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/nasirmondol/bistro-boss-restaurant-server/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserFinder is the slice of the user store the admin check needs.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenService issues and verifies the access tokens guarding the API.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs the presented claim as-is with a 1-hour expiry. The claim is
// not validated; whatever identity the client asserts is what gets signed.
func (t *TokenService) Issue(claim map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range claim {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(time.Hour))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// VerifyToken validates the bearer token and stores the decoded email in the
// context for downstream handlers.
func (t *TokenService) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "forbidden access"})
			return
		}
		// The token is the second whitespace-delimited segment; the scheme
		// word itself is not inspected.
		parts := strings.Fields(header)
		if len(parts) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		token, err := jwt.Parse(parts[1], func(tk *jwt.Token) (interface{}, error) {
			return t.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if email, ok := claims["email"].(string); ok {
				c.Set("email", email)
			}
		}
		c.Next()
	}
}

// VerifyAdmin verifies the bearer token and then requires the verified
// identity to hold the admin role. The token check always runs first, so
// this middleware cannot be attached without it.
func (t *TokenService) VerifyAdmin(users UserFinder) gin.HandlerFunc {
	verify := t.VerifyToken()
	return func(c *gin.Context) {
		verify(c)
		if c.IsAborted() {
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), c.GetString("email"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		if user == nil || !user.Role.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// VerifiedEmail extracts the email placed in the context by VerifyToken.
func VerifiedEmail(c *gin.Context) string {
	return c.GetString("email")
}
