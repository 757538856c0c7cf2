package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/arioseno/contactbook-backend/internal/handlers"
	"github.com/arioseno/contactbook-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName    string
	AllowOrigins   []string
	TracingEnabled bool

	AuthMiddleware *middleware.AuthMiddleware
	UserHandler    *handlers.UserHandler
	ContactHandler *handlers.ContactHandler
	AddressHandler *handlers.AddressHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/users", cfg.UserHandler.Register)
		api.POST("/users/login", cfg.UserHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// User
	protected.GET("/users/current", cfg.UserHandler.Current)
	protected.PATCH("/users/current", cfg.UserHandler.Update)
	protected.DELETE("/users/current", cfg.UserHandler.Logout)
	// Contact
	protected.POST("/contacts", cfg.ContactHandler.Create)
	protected.GET("/contacts", cfg.ContactHandler.Search)
	protected.GET("/contacts/:contactId", cfg.ContactHandler.Get)
	protected.PUT("/contacts/:contactId", cfg.ContactHandler.Update)
	protected.DELETE("/contacts/:contactId", cfg.ContactHandler.Remove)
	// Address
	protected.POST("/contacts/:contactId/addresses", cfg.AddressHandler.Create)
	protected.GET("/contacts/:contactId/addresses", cfg.AddressHandler.List)
	protected.GET("/contacts/:contactId/addresses/:addressId", cfg.AddressHandler.Get)
	protected.PUT("/contacts/:contactId/addresses/:addressId", cfg.AddressHandler.Update)
	protected.DELETE("/contacts/:contactId/addresses/:addressId", cfg.AddressHandler.Remove)

	return router
}
