// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"studyhub/config"
	"studyhub/internal/delivery/api/middleware"
	"studyhub/internal/delivery/api/router/handler"
	"studyhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DepartmentHandler *handler.DepartmentHandler
	ResourceHandler   *handler.ResourceHandler
	FileHandler       *handler.FileHandler
	AuthHandler       *handler.AuthHandler
	ShareHandler      *handler.ShareHandler
	FeedbackHandler   *handler.FeedbackHandler
	AdminFileHandler  *handler.AdminFileHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	departmentHandler *handler.DepartmentHandler
	resourceHandler   *handler.ResourceHandler
	fileHandler       *handler.FileHandler
	authHandler       *handler.AuthHandler
	shareHandler      *handler.ShareHandler
	feedbackHandler   *handler.FeedbackHandler
	adminFileHandler  *handler.AdminFileHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		departmentHandler: params.DepartmentHandler,
		resourceHandler:   params.ResourceHandler,
		fileHandler:       params.FileHandler,
		authHandler:       params.AuthHandler,
		shareHandler:      params.ShareHandler,
		feedbackHandler:   params.FeedbackHandler,
		adminFileHandler:  params.AdminFileHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	e.GET("/departments", r.departmentHandler.List)

	// Browsing views: /resources/syllabus, /resources/notes, /resources/pyq
	e.GET("/resources/:kind", r.resourceHandler.Search)

	filesGroup := e.Group("/files")
	{
		filesGroup.GET("/notes", r.fileHandler.NotesLink)
		filesGroup.GET("/pyq", r.fileHandler.PyqLink)
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/google", r.authHandler.SignIn)
	}

	shareGroup := e.Group("/share")
	{
		shareGroup.GET("/:kind/:id", r.shareHandler.Link)
		shareGroup.GET("/:kind/:id/qr", r.shareHandler.QRCode)
	}

	e.POST("/feedback", r.feedbackHandler.Submit)

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/files", r.adminFileHandler.Upload)
		adminGroup.GET("/files", r.adminFileHandler.List)
		adminGroup.GET("/files/:id/content", r.adminFileHandler.Download)
		adminGroup.DELETE("/files/:id", r.adminFileHandler.Delete)
	}
}
