package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nasirmondol/bistro-boss-restaurant-server/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type fakeUserFinder struct {
	users map[string]models.User
}

func (f *fakeUserFinder) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return &u, nil
	}
	return nil, nil
}

// protectedRouter mounts a route that echoes the verified email.
func protectedRouter(tokens *TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", tokens.VerifyToken(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": VerifiedEmail(c)})
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret")
	token, err := tokens.Issue(map[string]any{"email": "alice@example.com"})
	assert.NoError(t, err)

	w := doGet(protectedRouter(tokens), "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"alice@example.com"}`, w.Body.String())
}

func TestMissingAuthorizationHeader(t *testing.T) {
	tokens := NewTokenService("test-secret")
	w := doGet(protectedRouter(tokens), "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"forbidden access"}`, w.Body.String())
}

func TestHeaderWithoutToken(t *testing.T) {
	tokens := NewTokenService("test-secret")
	w := doGet(protectedRouter(tokens), "/protected", "Bearer")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"unauthorized access"}`, w.Body.String())
}

func TestGarbageToken(t *testing.T) {
	tokens := NewTokenService("test-secret")
	w := doGet(protectedRouter(tokens), "/protected", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"unauthorized access"}`, w.Body.String())
}

func TestTokenSignedWithWrongSecret(t *testing.T) {
	other := NewTokenService("other-secret")
	token, err := other.Issue(map[string]any{"email": "alice@example.com"})
	assert.NoError(t, err)

	tokens := NewTokenService("test-secret")
	w := doGet(protectedRouter(tokens), "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	tokens := NewTokenService("test-secret")
	w := doGet(protectedRouter(tokens), "/protected", "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"unauthorized access"}`, w.Body.String())
}

func TestSchemeWordIsNotInspected(t *testing.T) {
	tokens := NewTokenService("test-secret")
	token, err := tokens.Issue(map[string]any{"email": "alice@example.com"})
	assert.NoError(t, err)

	// Any first segment is accepted; only the second segment is verified.
	w := doGet(protectedRouter(tokens), "/protected", "Token "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func adminRouter(tokens *TokenService, users UserFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", tokens.VerifyAdmin(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestVerifyAdmin(t *testing.T) {
	tokens := NewTokenService("test-secret")
	users := &fakeUserFinder{users: map[string]models.User{
		"admin@example.com":  {Email: "admin@example.com", Role: models.RoleAdmin},
		"member@example.com": {Email: "member@example.com"},
	}}
	r := adminRouter(tokens, users)

	adminToken, _ := tokens.Issue(map[string]any{"email": "admin@example.com"})
	w := doGet(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	memberToken, _ := tokens.Issue(map[string]any{"email": "member@example.com"})
	w = doGet(r, "/admin", "Bearer "+memberToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"forbidden access"}`, w.Body.String())

	// Unknown identity is forbidden, not an error.
	ghostToken, _ := tokens.Issue(map[string]any{"email": "ghost@example.com"})
	w = doGet(r, "/admin", "Bearer "+ghostToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyAdminRunsTokenCheckFirst(t *testing.T) {
	tokens := NewTokenService("test-secret")
	r := adminRouter(tokens, &fakeUserFinder{users: map[string]models.User{}})

	// No header hits the verifier, never the role lookup.
	w := doGet(r, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"forbidden access"}`, w.Body.String())

	w = doGet(r, "/admin", "Bearer bogus")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"unauthorized access"}`, w.Body.String())
}
