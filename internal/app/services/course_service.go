package services

import (
	"context"
	"fmt"

	"github.com/emreo/learnhub/internal/app/models/dto"
	"github.com/emreo/learnhub/internal/app/repositories"
)

// CourseService handles course catalog operations
type CourseService interface {
	// ListCourses returns every course with its instructor name.
	ListCourses(ctx context.Context) ([]dto.CourseResponse, error)
	// GetCourseDetail returns the course, its lessons ordered by id, and the
	// enrollment flag for userID. A nil userID yields is_enrolled=false.
	GetCourseDetail(ctx context.Context, courseID int64, userID *int64) (*dto.CourseDetailResponse, error)
}

type courseService struct {
	courseRepo     *repositories.CourseRepository
	lessonRepo     *repositories.LessonRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	lessonRepo *repositories.LessonRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// ListCourses returns the full catalog; no pagination or filtering exists.
func (s *courseService) ListCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.ListWithInstructor(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.CourseResponse{
			ID:             course.ID,
			Title:          course.Title,
			Description:    course.Description,
			InstructorName: course.InstructorName,
		})
	}

	return responses, nil
}

// GetCourseDetail assembles the course view. The enrollment flag does not
// distinguish "no user supplied" from "checked and not enrolled".
func (s *courseService) GetCourseDetail(ctx context.Context, courseID int64, userID *int64) (*dto.CourseDetailResponse, error) {
	course, err := s.courseRepo.GetByIDWithInstructor(ctx, courseID)
	if err != nil {
		return nil, err
	}

	isEnrolled := false
	if userID != nil {
		isEnrolled, err = s.enrollmentRepo.Exists(ctx, *userID, courseID)
		if err != nil {
			return nil, err
		}
	}

	lessons, err := s.lessonRepo.ListByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	lessonResponses := make([]dto.LessonResponse, 0, len(lessons))
	for _, lesson := range lessons {
		lessonResponses = append(lessonResponses, dto.LessonResponse{
			ID:      lesson.ID,
			Title:   lesson.Title,
			Content: lesson.Content,
		})
	}

	return &dto.CourseDetailResponse{
		ID:             course.ID,
		Title:          course.Title,
		Description:    course.Description,
		InstructorName: course.InstructorName,
		Lessons:        lessonResponses,
		IsEnrolled:     isEnrolled,
	}, nil
}
