package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ahwlsqja/go-sigverify/internal/common/errors"
)

// BodyLimit rejects requests whose declared length exceeds limit and caps the
// body reader for the rest. Handlers see *http.MaxBytesError when a body
// without a declared length overruns the cap.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			RespondError(c, apperrors.PayloadTooLarge(limit))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
