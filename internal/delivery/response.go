package delivery

import (
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/validation"

	"github.com/gin-gonic/gin"
)

// ErrorResponse writes a failure body of the form {"detail": "..."}.
func ErrorResponse(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}

// ValidationErrorResponse writes a 422 with the per-field error list.
func ValidationErrorResponse(c *gin.Context, fields []validation.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": fields})
}

// mapErrorToStatus classifies application errors by kind. Anything
// unclassified is an infrastructure failure, not a client error.
func mapErrorToStatus(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindBadRequest:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
