package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	"plek-backend/pkg/apperr"
)

// Error maps a usecase error onto the envelope. Validation errors
// surface their own text; anything unrecognized is a 500 with a
// generic message so internals never leak to clients.
func Error(c *gin.Context, err error, message string) {
	switch {
	case apperr.IsValidation(err):
		BadRequest(c, err.Error(), message)
	case errors.Is(err, apperr.ErrNotFound):
		NotFound(c, err.Error(), message)
	case errors.Is(err, apperr.ErrForbidden):
		Forbidden(c, err.Error(), message)
	default:
		InternalError(c, "internal server error", message)
	}
}
