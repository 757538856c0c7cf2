package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/logger"
	"github.com/arioseno/contactbook-backend/internal/repos"
	"github.com/arioseno/contactbook-backend/internal/requestdata"
	"github.com/arioseno/contactbook-backend/internal/types"
)

// AuthService is the single authorization gate: it maps a presented bearer
// token to the user holding it. Missing, empty and stale tokens fail the
// same way, and the resolved username scopes every store call afterwards.
type AuthService interface {
	Resolve(ctx context.Context, tokenString string) (*types.User, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{db: db, log: serviceLog, userRepo: userRepo}
}

func (as *authService) Resolve(ctx context.Context, tokenString string) (*types.User, error) {
	if tokenString == "" {
		return nil, apierr.Unauthenticated("missing or invalid token")
	}
	users, err := as.userRepo.GetByTokens(ctx, nil, []string{tokenString})
	if err != nil {
		as.log.Warn("token lookup failed", "error", err)
		return nil, apierr.Internal(err)
	}
	if len(users) == 0 {
		return nil, apierr.Unauthenticated("missing or invalid token")
	}
	return users[0], nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	user, err := as.Resolve(ctx, tokenString)
	if err != nil {
		return ctx, err
	}
	rd := &requestdata.RequestData{
		Username:    user.Username,
		TokenString: tokenString,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}
