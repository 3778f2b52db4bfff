// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobboard/config"
	"jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/router/handler"
	"jobboard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	JobHandler     *handler.JobHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	jobHandler     *handler.JobHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		jobHandler:     params.JobHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Every job route requires a valid bearer token
	jobsGroup := api.Group("/jobs")
	jobsGroup.Use(r.authMiddleware.Authenticate)
	{
		jobsGroup.POST("", r.jobHandler.CreateJob)
		jobsGroup.GET("", r.jobHandler.ListOwnJobs)
		jobsGroup.GET("/browse", r.jobHandler.BrowseJobs)
		jobsGroup.GET("/:id", r.jobHandler.GetJob)
		jobsGroup.PUT("/:id", r.jobHandler.UpdateJob)
		jobsGroup.DELETE("/:id", r.jobHandler.DeleteJob)
	}
}
