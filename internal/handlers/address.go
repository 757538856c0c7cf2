package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/services"
	"github.com/arioseno/contactbook-backend/internal/types"
)

type AddressHandler struct {
	addressService services.AddressService
}

func NewAddressHandler(addressService services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// addressIDParam mirrors contactIDParam: a malformed id becomes the nil id
// and misses at the store, after the contact check has already run.
func addressIDParam(c *gin.Context) uuid.UUID {
	id, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (ah *AddressHandler) Create(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	var req types.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation(errors.New("invalid request body")))
		return
	}
	result, err := ah.addressService.Create(c.Request.Context(), username, contactIDParam(c), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ah *AddressHandler) Get(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	result, err := ah.addressService.Get(c.Request.Context(), username, contactIDParam(c), addressIDParam(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ah *AddressHandler) Update(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	var req types.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation(errors.New("invalid request body")))
		return
	}
	result, err := ah.addressService.Update(c.Request.Context(), username, contactIDParam(c), addressIDParam(c), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ah *AddressHandler) Remove(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	if err := ah.addressService.Remove(c.Request.Context(), username, contactIDParam(c), addressIDParam(c)); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, true)
}

func (ah *AddressHandler) List(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	result, err := ah.addressService.List(c.Request.Context(), username, contactIDParam(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}
