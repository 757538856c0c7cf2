package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/requestdata"
	"github.com/arioseno/contactbook-backend/internal/services"
	"github.com/arioseno/contactbook-backend/internal/types"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) Register(c *gin.Context) {
	var req types.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation(errors.New("invalid request body")))
		return
	}
	result, err := uh.userService.Register(c.Request.Context(), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (uh *UserHandler) Login(c *gin.Context) {
	var req types.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation(errors.New("invalid request body")))
		return
	}
	result, err := uh.userService.Login(c.Request.Context(), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (uh *UserHandler) Current(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	result, err := uh.userService.Current(c.Request.Context(), username)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (uh *UserHandler) Update(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation(errors.New("invalid request body")))
		return
	}
	result, err := uh.userService.Update(c.Request.Context(), username, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (uh *UserHandler) Logout(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.Username == "" {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	if err := uh.userService.Logout(c.Request.Context(), rd.Username); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, true)
}
