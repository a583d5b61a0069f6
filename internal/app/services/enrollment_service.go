package services

import (
	"context"

	"github.com/emreo/learnhub/internal/app/models"
	"github.com/emreo/learnhub/internal/app/repositories"
)

// EnrollmentService handles enrollment operations
type EnrollmentService interface {
	// Enroll registers the user in the course. It returns created=false with
	// no error when the pair is already enrolled (idempotent no-op), and
	// apperrors.ErrEnrollmentExists when the insert itself hits the primary
	// key, i.e. a concurrent enroll won the race after the existence check.
	Enroll(ctx context.Context, userID, courseID int64) (created bool, err error)
}

type enrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, userID, courseID int64) (bool, error) {
	exists, err := s.enrollmentRepo.Exists(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	enrollment := &models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return false, err
	}

	return true, nil
}
