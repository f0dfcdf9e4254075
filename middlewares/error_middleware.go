package middlewares

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/abdulazeespr/HungryGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ErrorHandler is the single place errors become HTTP responses. Handlers
// push errors with c.Error and return; this runs after the chain and maps
// the last error to a status. Unknown errors leak their message only
// outside production.
func ErrorHandler(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		slog.Error("request failed", "path", c.FullPath(), "method", c.Request.Method, "error", err)

		var apiErr *utils.ApiError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]gin.H, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, gin.H{"field": fe.Field(), "rule": fe.Tag()})
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": details})
			return
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrInvalidData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Database error"})
			return
		}

		body := gin.H{"error": "Internal server error"}
		if env != "production" {
			body["message"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}
