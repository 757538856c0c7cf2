package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/logger"
	"github.com/arioseno/contactbook-backend/internal/requestdata"
	"github.com/arioseno/contactbook-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, authService: authService}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		ctx, err := am.authService.SetContextFromToken(c.Request.Context(), tokenString)
		if err != nil {
			status := apierr.StatusOf(err)
			if status == http.StatusInternalServerError {
				am.log.Error("auth resolution failed", "error", err)
				c.AbortWithStatusJSON(status, gin.H{"errors": "internal server error"})
				return
			}
			c.AbortWithStatusJSON(status, gin.H{"errors": err.Error()})
			return
		}
		c.Request = c.Request.WithContext(ctx)
		if rd := requestdata.GetRequestData(ctx); rd == nil || rd.Username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing or invalid token"})
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	// Some clients send the bare token without the Bearer prefix.
	if authHeader != "" {
		return authHeader
	}
	return c.Query("token")
}
