package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emreo/learnhub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
) {
	// Root redirects straight to the catalog
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api/courses")
	})

	api := router.Group("/api")
	{
		api.GET("/courses", courseController.GetCourses)
		api.GET("/course/:id", courseController.GetCourseByID)
		api.POST("/enroll", enrollmentController.Enroll)

		// Health check endpoint (public)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}
