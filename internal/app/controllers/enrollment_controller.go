package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emreo/learnhub/internal/app/models/dto"
	"github.com/emreo/learnhub/internal/app/services"
	"github.com/emreo/learnhub/internal/middleware"
)

// EnrollmentController handles enrollment operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll registers a user in a course
// @Summary Enroll a user in a course
// @Description Creates an enrollment for the (user, course) pair; repeating the call is a no-op
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Enrollment information"
// @Success 200 {object} dto.MessageResponse "Already enrolled"
// @Success 201 {object} dto.MessageResponse "Enrollment created"
// @Failure 400 {object} dto.ErrorResponse "Missing user_id or course_id"
// @Failure 409 {object} dto.ErrorResponse "Duplicate enrollment detected at insert time"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing user_id or course_id"))
		return
	}

	created, err := c.enrollmentService.Enroll(ctx, req.UserID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Already enrolled"})
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Enrollment successful!"})
}
