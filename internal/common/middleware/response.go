package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ahwlsqja/go-sigverify/internal/common/errors"
)

// ErrorResponse represents the standard error response format
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains error details
type ErrorBody struct {
	Code      string         `json:"code" example:"UNKNOWN_TYPE"`
	Message   string         `json:"message" example:"unknown type: type Person not found"`
	RequestID string         `json:"request_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// SuccessResponse represents the standard success response format
type SuccessResponse struct {
	Data any `json:"data"`
}

// RespondSuccess sends a successful JSON response
func RespondSuccess(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, SuccessResponse{Data: data})
}

// RespondOK sends a 200 OK response
func RespondOK(c *gin.Context, data any) {
	RespondSuccess(c, http.StatusOK, data)
}

// RespondError aborts the request with an error JSON response. The status and
// code come from apperrors.FromSignatureError.
func RespondError(c *gin.Context, err error) {
	appErr := apperrors.FromSignatureError(err)
	_ = c.Error(err)

	c.AbortWithStatusJSON(appErr.StatusCode, ErrorResponse{
		Error: ErrorBody{
			Code:      appErr.Code,
			Message:   appErr.Message,
			RequestID: GetRequestID(c),
			Details:   appErr.Details,
		},
	})
}
