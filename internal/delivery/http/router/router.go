// Package router contains routing setup for the HTTP delivery.
package router

import (
	"moim/internal/delivery/http/middleware"
	"moim/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	FriendHandler   *handler.FriendHandler
	PlaceHandler    *handler.PlaceHandler
	CategoryHandler *handler.CategoryHandler
	GeocodeHandler  *handler.GeocodeHandler
	TravelHandler   *handler.TravelHandler
	SeedHandler     *handler.SeedHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.Refresh)
	}

	// Travel times allow anonymous demo requests; the handler enforces auth
	// for everything that touches stored data.
	e.POST("/api/travel-times", r.params.TravelHandler.ComputeTravelTimes,
		r.params.AuthMiddleware.AuthenticateOptional)

	// Everything else under /api requires a valid access token.
	apiGroup := e.Group("/api")
	apiGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		apiGroup.GET("/friends", r.params.FriendHandler.List)
		apiGroup.POST("/friends", r.params.FriendHandler.Create)
		apiGroup.PATCH("/friends/:id", r.params.FriendHandler.Update)
		apiGroup.DELETE("/friends/:id", r.params.FriendHandler.Delete)

		apiGroup.GET("/places", r.params.PlaceHandler.List)
		apiGroup.POST("/places", r.params.PlaceHandler.Create)
		apiGroup.PATCH("/places/:id", r.params.PlaceHandler.Update)
		apiGroup.DELETE("/places/:id", r.params.PlaceHandler.Delete)

		apiGroup.GET("/categories", r.params.CategoryHandler.List)
		apiGroup.POST("/categories", r.params.CategoryHandler.Create)
		apiGroup.PATCH("/categories/:id", r.params.CategoryHandler.Update)
		apiGroup.DELETE("/categories/:id", r.params.CategoryHandler.Delete)

		apiGroup.GET("/geocode", r.params.GeocodeHandler.Geocode)
		apiGroup.GET("/search-place", r.params.GeocodeHandler.SearchPlace)

		apiGroup.POST("/seed", r.params.SeedHandler.Seed)
	}
}
