package middleware

import (
	"net/http"

	"country-limits/pkg/apperror"
	"country-limits/pkg/response"

	"github.com/gin-gonic/gin"
)

// MaxBodySize rejects declared oversize bodies with 413 and caps the reader
// for chunked ones, so binding fails once the limit is crossed.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	tooLarge := apperror.New(apperror.CodeInvalidField, "Request body too large", http.StatusRequestEntityTooLarge)
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, tooLarge)
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
