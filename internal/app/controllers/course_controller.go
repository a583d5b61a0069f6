package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emreo/learnhub/internal/app/models/dto"
	"github.com/emreo/learnhub/internal/app/services"
	"github.com/emreo/learnhub/internal/middleware"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourses lists the course catalog
// @Summary List all courses
// @Description Retrieves every course with its instructor name
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponse "Course list"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves a course with its lessons and enrollment status
// @Summary Get course detail
// @Description Retrieves a course, its lessons ordered by id, and the enrollment flag for the optional user_id query parameter
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Param user_id query int false "Requesting user ID"
// @Success 200 {object} dto.CourseDetailResponse "Course detail"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/course/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		// Non-numeric ids fall through to the not-found condition, the same
		// way a typed route converter would refuse to match.
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Course not found"))
		return
	}

	// A missing or non-numeric user_id yields is_enrolled=false; it is not
	// distinguished from "checked and not enrolled".
	var userID *int64
	if raw := ctx.Query("user_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			userID = &id
		}
	}

	detail, err := c.courseService.GetCourseDetail(ctx, courseID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}
