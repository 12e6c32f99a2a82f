// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshchain/pos-backend/internal/apperrors"
)

// ErrorBody is the wire shape for every failed request: a status marker and
// a message naming what was invalid and why.
type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func BadRequestResponse(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Status: "error", Message: message})
}

func InternalErrorResponse(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Status: "error", Message: message})
}

// ServiceErrorResponse maps an application error to its status code:
// validation failures are client errors, everything else surfaces as a
// store failure with the underlying message kept for operator visibility.
func ServiceErrorResponse(c *gin.Context, err error) {
	if apperrors.IsValidation(err) {
		BadRequestResponse(c, apperrors.MessageOf(err))
		return
	}
	InternalErrorResponse(c, apperrors.MessageOf(err))
}
