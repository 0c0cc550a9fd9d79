package routes

import (
	"github.com/nasirmondol/bistro-boss-restaurant-server/handlers"
	"github.com/nasirmondol/bistro-boss-restaurant-server/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the route table needs. Stores are passed as the
// handler-side interfaces so tests can wire fakes through the same paths.
type Deps struct {
	Tokens  *middleware.TokenService
	Users   handlers.UserStore
	Menu    handlers.MenuStore
	Reviews handlers.ReviewStore
	Carts   handlers.CartStore
}

func SetupRoutes(r *gin.Engine, d Deps) {
	authH := &handlers.AuthHandler{Tokens: d.Tokens}
	userH := &handlers.UserHandler{Users: d.Users}
	menuH := &handlers.MenuHandler{Menu: d.Menu}
	reviewH := &handlers.ReviewHandler{Reviews: d.Reviews}
	cartH := &handlers.CartHandler{Carts: d.Carts}

	verify := d.Tokens.VerifyToken()
	verifyAdmin := d.Tokens.VerifyAdmin(d.Users)

	// Auth
	r.POST("/jwt", authH.IssueToken)

	// Users
	r.GET("/users", verifyAdmin, userH.List)
	r.GET("/users/admin/:email", verify, userH.AdminStatus)
	r.POST("/users", userH.Create)
	r.DELETE("/users/:id", verifyAdmin, userH.Delete)
	r.PATCH("/users/admin/:id", verifyAdmin, userH.Promote)

	// Menu
	r.GET("/menu", menuH.List)
	r.GET("/menu/:id", menuH.Get)
	r.POST("/menu", verifyAdmin, menuH.Create)
	r.PATCH("/menu/:id", menuH.Update)
	r.DELETE("/menu/:id", verifyAdmin, menuH.Delete)

	// Reviews
	r.GET("/reviews", reviewH.List)

	// Carts
	r.GET("/carts", cartH.List)
	r.POST("/carts", cartH.Add)
	r.DELETE("/carts/:id", cartH.Remove)
}
