package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/requestdata"
	"github.com/arioseno/contactbook-backend/internal/types"
)

// WebResponse is the envelope every endpoint answers with; paging appears
// only on contact search.
type WebResponse struct {
	Data   any           `json:"data,omitempty"`
	Errors string        `json:"errors,omitempty"`
	Paging *types.Paging `json:"paging,omitempty"`
}

func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, WebResponse{Data: data})
}

func RespondPage(c *gin.Context, data any, paging *types.Paging) {
	c.JSON(http.StatusOK, WebResponse{Data: data, Paging: paging})
}

// RespondError maps a typed failure to its status; anything untyped (or
// internal) surfaces as a generic 500 so storage detail stays out of the
// wire.
func RespondError(c *gin.Context, err error) {
	ae := apierr.From(err)
	if ae == nil || ae.Status == http.StatusInternalServerError {
		c.JSON(http.StatusInternalServerError, WebResponse{Errors: "internal server error"})
		return
	}
	c.JSON(ae.Status, WebResponse{Errors: ae.Error()})
}

// currentUsername returns the identity the auth middleware resolved.
func currentUsername(c *gin.Context) (string, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.Username == "" {
		return "", false
	}
	return rd.Username, true
}
