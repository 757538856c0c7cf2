package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/logger"
	"github.com/arioseno/contactbook-backend/internal/repos"
	"github.com/arioseno/contactbook-backend/internal/types"
	"github.com/arioseno/contactbook-backend/internal/validation"
)

// Wrong username and wrong password must be indistinguishable to the caller.
const loginFailedMessage = "username or password is wrong"

type UserService interface {
	Register(ctx context.Context, req types.RegisterUserRequest) (*types.UserResponse, error)
	Login(ctx context.Context, req types.LoginUserRequest) (*types.UserResponse, error)
	Current(ctx context.Context, username string) (*types.UserResponse, error)
	Update(ctx context.Context, username string, req types.UpdateUserRequest) (*types.UserResponse, error)
	Logout(ctx context.Context, username string) error
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func toUserResponse(user *types.User) *types.UserResponse {
	return &types.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

func (us *userService) Register(ctx context.Context, req types.RegisterUserRequest) (*types.UserResponse, error) {
	us.log.Debug("register user", "username", req.Username)
	if vErr := validation.RegisterUser(&req); vErr != nil {
		return nil, vErr
	}

	hashed, hErr := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if hErr != nil {
		return nil, apierr.Internal(hErr)
	}

	user := &types.User{
		Username: req.Username,
		Name:     req.Name,
		Password: string(hashed),
	}
	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, exErr := us.userRepo.UsernameExists(ctx, tx, req.Username)
		if exErr != nil {
			return apierr.Internal(exErr)
		}
		if exists {
			return apierr.Conflict("username already registered")
		}
		if _, cErr := us.userRepo.Create(ctx, tx, []*types.User{user}); cErr != nil {
			return apierr.Internal(cErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (us *userService) Login(ctx context.Context, req types.LoginUserRequest) (*types.UserResponse, error) {
	us.log.Debug("login user", "username", req.Username)
	if vErr := validation.LoginUser(&req); vErr != nil {
		return nil, vErr
	}

	users, uErr := us.userRepo.GetByUsernames(ctx, nil, []string{req.Username})
	if uErr != nil {
		return nil, apierr.Internal(uErr)
	}
	if len(users) == 0 {
		return nil, apierr.Unauthorized(loginFailedMessage)
	}
	user := users[0]

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return nil, apierr.Unauthorized(loginFailedMessage)
	}

	// A fresh token replaces whatever was stored, so a login on a second
	// device invalidates the first session (last write wins).
	token := uuid.NewString()
	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return us.userRepo.SetToken(ctx, tx, user.Username, &token)
	})
	if err != nil {
		return nil, apierr.Internal(err)
	}

	resp := toUserResponse(user)
	resp.Token = &token
	return resp, nil
}

func (us *userService) Current(ctx context.Context, username string) (*types.UserResponse, error) {
	users, err := us.userRepo.GetByUsernames(ctx, nil, []string{username})
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if len(users) == 0 {
		return nil, apierr.Unauthenticated("missing or invalid token")
	}
	return toUserResponse(users[0]), nil
}

func (us *userService) Update(ctx context.Context, username string, req types.UpdateUserRequest) (*types.UserResponse, error) {
	us.log.Debug("update user", "username", username)
	if vErr := validation.UpdateUser(&req); vErr != nil {
		return nil, vErr
	}

	var updated *types.User
	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users, uErr := us.userRepo.GetByUsernames(ctx, tx, []string{username})
		if uErr != nil {
			return apierr.Internal(uErr)
		}
		if len(users) == 0 {
			return apierr.Unauthenticated("missing or invalid token")
		}
		user := users[0]

		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Password != nil {
			hashed, hErr := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if hErr != nil {
				return apierr.Internal(hErr)
			}
			user.Password = string(hashed)
		}
		if sErr := us.userRepo.Save(ctx, tx, user); sErr != nil {
			return apierr.Internal(sErr)
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(updated), nil
}

// Logout clears the stored session token. Repeating it is harmless; the
// stale token simply stops resolving.
func (us *userService) Logout(ctx context.Context, username string) error {
	us.log.Debug("logout user", "username", username)
	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return us.userRepo.SetToken(ctx, tx, username, nil)
	})
	if err != nil {
		return apierr.Internal(err)
	}
	return nil
}
