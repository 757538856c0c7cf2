package app

import (
	"github.com/gin-gonic/gin"

	"github.com/arioseno/contactbook-backend/internal/config"
	"github.com/arioseno/contactbook-backend/internal/handlers"
	"github.com/arioseno/contactbook-backend/internal/logger"
	"github.com/arioseno/contactbook-backend/internal/middleware"
	"github.com/arioseno/contactbook-backend/internal/observability"
	"github.com/arioseno/contactbook-backend/internal/server"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

type Handlers struct {
	User    *handlers.UserHandler
	Contact *handlers.ContactHandler
	Address *handlers.AddressHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		User:    handlers.NewUserHandler(serviceset.User),
		Contact: handlers.NewContactHandler(serviceset.Contact),
		Address: handlers.NewAddressHandler(serviceset.Address),
	}
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, serviceset.Auth),
	}
}

func wireRouter(cfg config.Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:    cfg.ServiceName,
		AllowOrigins:   cfg.AllowOrigins,
		TracingEnabled: observability.Enabled(),
		AuthMiddleware: middlewareset.Auth,
		UserHandler:    handlerset.User,
		ContactHandler: handlerset.Contact,
		AddressHandler: handlerset.Address,
	})
}
