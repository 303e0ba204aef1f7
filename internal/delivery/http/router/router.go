// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tickatch/internal/delivery/http/middleware"
	"tickatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	SellerHandler   *handler.SellerHandler
	AdminHandler    *handler.AdminHandler
	ActorMiddleware *middleware.ActorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	sellerHandler   *handler.SellerHandler
	adminHandler    *handler.AdminHandler
	actorMiddleware *middleware.ActorMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		sellerHandler:   params.SellerHandler,
		adminHandler:    params.AdminHandler,
		actorMiddleware: params.ActorMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1/user")

	customers := v1.Group("/customers")
	{
		customers.POST("", r.customerHandler.Register)
		customers.GET("", r.customerHandler.Search)
		customers.GET("/exists", r.customerHandler.Exists)
		customers.GET("/by-email", r.customerHandler.GetByEmail)
		customers.GET("/:id", r.customerHandler.Get)
		customers.PUT("/:id/profile", r.customerHandler.UpdateProfile)
		customers.PATCH("/:id/grade", r.customerHandler.ChangeGrade)
		customers.PATCH("/:id/suspend", r.customerHandler.Suspend)
		customers.PATCH("/:id/activate", r.customerHandler.Activate)
		customers.PATCH("/:id/withdraw", r.customerHandler.Withdraw)
	}

	sellers := v1.Group("/sellers")
	{
		sellers.POST("", r.sellerHandler.Register)
		sellers.GET("", r.sellerHandler.Search)
		sellers.GET("/exists", r.sellerHandler.Exists)
		sellers.GET("/by-email", r.sellerHandler.GetByEmail)
		sellers.GET("/:id", r.sellerHandler.Get)
		sellers.PUT("/:id/profile", r.sellerHandler.UpdateProfile)
		sellers.PUT("/:id/business", r.sellerHandler.UpdateBusinessInfo)
		sellers.PUT("/:id/settlement", r.sellerHandler.UpdateSettlementAccount)
		sellers.PATCH("/:id/suspend", r.sellerHandler.Suspend)
		sellers.PATCH("/:id/activate", r.sellerHandler.Activate)
		sellers.PATCH("/:id/withdraw", r.sellerHandler.Withdraw)

		// Approval decisions require an authenticated administrator.
		sellers.PATCH("/:id/approve", r.sellerHandler.Approve, r.actorMiddleware.RequireActor)
		sellers.PATCH("/:id/reject", r.sellerHandler.Reject, r.actorMiddleware.RequireActor)
	}

	admins := v1.Group("/admins")
	{
		admins.POST("", r.adminHandler.Register, r.actorMiddleware.RequireActor)
		admins.GET("", r.adminHandler.Search)
		admins.GET("/exists", r.adminHandler.Exists)
		admins.GET("/by-email", r.adminHandler.GetByEmail)
		admins.GET("/:id", r.adminHandler.Get)
		admins.PUT("/:id/profile", r.adminHandler.UpdateProfile)
		admins.PATCH("/:id/role", r.adminHandler.ChangeRole, r.actorMiddleware.RequireActor)
		admins.PATCH("/:id/suspend", r.adminHandler.Suspend)
		admins.PATCH("/:id/activate", r.adminHandler.Activate)
		admins.PATCH("/:id/withdraw", r.adminHandler.Withdraw)
	}
}
