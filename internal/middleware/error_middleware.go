package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emreo/learnhub/internal/app/models/dto"
	"github.com/emreo/learnhub/internal/pkg/apperrors"
	"github.com/emreo/learnhub/internal/pkg/logger"
)

// HandleAPIError maps application errors to their HTTP status and the
// standard {error} JSON body. Unrecognized errors surface the underlying
// message with a 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Course not found"))
	case errors.Is(err, apperrors.ErrEnrollmentExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Enrollment failed due to database constraint"))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
	}
}
