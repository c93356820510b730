package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars/internal/domain"
)

const (
	CodeNotFound    = "NOT_FOUND"
	CodeEmpty       = "EMPTY"
	CodeValidation  = "VALIDATION_ERROR"
	CodeInvalidID   = "INVALID_ID"
	CodeInvalidJSON = "INVALID_JSON"
	CodeInternal    = "INTERNAL_ERROR"
)

// FromError writes the error envelope for err. Unknown errors are attached to
// the gin context so ErrorLogger reports them, and their text is not exposed.
func FromError(c *gin.Context, err error, notFound, empty string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		ErrorWithDetails(c, http.StatusBadRequest, CodeValidation, "Invalid request data", verr.Fields)
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, CodeNotFound, notFound)
	case errors.Is(err, domain.ErrEmpty):
		Error(c, http.StatusNotFound, CodeEmpty, empty)
	default:
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
	}
}
