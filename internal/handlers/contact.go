package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/services"
	"github.com/arioseno/contactbook-backend/internal/types"
)

const (
	defaultSearchPage = 1
	defaultSearchSize = 10
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// contactIDParam treats an unparseable id like a missing contact: a malformed
// id can never name an owned row, so the nil id falls through to the store
// lookup and fails there.
func contactIDParam(c *gin.Context) uuid.UUID {
	id, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (ch *ContactHandler) Create(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	var req types.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation(errors.New("invalid request body")))
		return
	}
	result, err := ch.contactService.Create(c.Request.Context(), username, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ch *ContactHandler) Get(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	result, err := ch.contactService.Get(c.Request.Context(), username, contactIDParam(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ch *ContactHandler) Update(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	var req types.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation(errors.New("invalid request body")))
		return
	}
	result, err := ch.contactService.Update(c.Request.Context(), username, contactIDParam(c), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ch *ContactHandler) Remove(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}
	if err := ch.contactService.Remove(c.Request.Context(), username, contactIDParam(c)); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, true)
}

func (ch *ContactHandler) Search(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, WebResponse{Errors: "missing or invalid token"})
		return
	}

	req := types.SearchContactsRequest{
		Name:  optionalQuery(c, "name"),
		Email: optionalQuery(c, "email"),
		Phone: optionalQuery(c, "phone"),
		Page:  intQuery(c, "page", defaultSearchPage),
		Size:  intQuery(c, "size", defaultSearchSize),
	}
	items, paging, err := ch.contactService.Search(c.Request.Context(), username, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondPage(c, items, paging)
}

func optionalQuery(c *gin.Context, key string) *string {
	if value := c.Query(key); value != "" {
		return &value
	}
	return nil
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		// Leave the rejection to the search schema.
		return -1
	}
	return value
}
