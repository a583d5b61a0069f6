package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/emreo/learnhub/internal/app/models"
	"github.com/emreo/learnhub/internal/app/repositories"
	"github.com/emreo/learnhub/internal/db"
)

// CreateSampleData inserts the fixed demonstration rows: three instructors,
// one student, four courses and their lessons. Every insert skips rows whose
// primary key already exists, so repeated startup is a no-op. Enrollments are
// never seeded; they are created only through the enroll operation.
func CreateSampleData(ctx context.Context, database db.DB, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(database)
	courseRepo := repositories.NewCourseRepository(database)
	lessonRepo := repositories.NewLessonRepository(database)

	lgr.Info().Msg("Checking/Creating sample data...")
	var finalErr error

	users := []*models.User{
		{ID: 1, Name: "Dr. Aris Patel", Email: "aris@plat.edu", Role: models.RoleInstructor},
		{ID: 2, Name: "Prof. Lin Wang", Email: "lin@plat.edu", Role: models.RoleInstructor},
		{ID: 3, Name: "Dr. Anya Sharma", Email: "anya@plat.edu", Role: models.RoleInstructor},
		{ID: 4, Name: "Mock Student User", Email: "student@plat.edu", Role: models.RoleStudent},
	}
	for _, user := range users {
		if err := userRepo.Insert(ctx, user); err != nil {
			lgr.Error().Err(err).Int64("userID", user.ID).Msg("Error seeding user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	courses := []*models.Course{
		{ID: 101, Title: "Introduction to SQL and Relational Databases",
			Description:  ptr("Learn the fundamental concepts of database management, normalization, and SQL querying."),
			InstructorID: 1},
		{ID: 102, Title: "Python Web Development with Flask",
			Description:  ptr("A practical guide to building REST APIs using the Flask framework."),
			InstructorID: 2},
		{ID: 103, Title: "Data Structures & Algorithms in Python",
			Description:  ptr("Master core DSA concepts including trees, graphs, and dynamic programming for coding interviews."),
			InstructorID: 1},
		{ID: 104, Title: "Advanced Cloud Computing (AWS Focus)",
			Description:  ptr("Explore serverless architecture, microservices, and large-scale deployment using AWS."),
			InstructorID: 3},
	}
	for _, course := range courses {
		if err := courseRepo.Insert(ctx, course); err != nil {
			lgr.Error().Err(err).Int64("courseID", course.ID).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lessons := []*models.Lesson{
		{ID: 1, CourseID: 101, Title: "What is a Database?", Content: ptr("A database is an organized collection of data...")},
		{ID: 2, CourseID: 101, Title: "SQL Basic Queries", Content: ptr("SELECT, FROM, and WHERE clauses are the foundation of SQL.")},
		{ID: 3, CourseID: 102, Title: "Setting up the Flask Project", Content: ptr("Initialize your Python environment and install Flask.")},
		{ID: 4, CourseID: 102, Title: "Creating API Endpoints", Content: ptr("Define routes to handle GET and POST requests.")},
		{ID: 5, CourseID: 103, Title: "Big O Notation and Time Complexity", Content: ptr("Understanding how to measure algorithm efficiency.")},
		{ID: 6, CourseID: 103, Title: "Introduction to Binary Search Trees", Content: ptr("Balanced vs. unbalanced trees and common operations.")},
		{ID: 7, CourseID: 104, Title: "Serverless Functions (Lambda)", Content: ptr("Building and deploying FaaS functions.")},
		{ID: 8, CourseID: 104, Title: "Containerization with Docker and ECS", Content: ptr("Packaging applications for scalable cloud deployment.")},
	}
	for _, lesson := range lessons {
		if err := lessonRepo.Insert(ctx, lesson); err != nil {
			lgr.Error().Err(err).Int64("lessonID", lesson.ID).Msg("Error seeding lesson")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Sample data check/creation finished.")
	return finalErr
}

func ptr(s string) *string {
	return &s
}
