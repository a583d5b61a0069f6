package repositories

import (
	"context"
	"fmt"

	"github.com/emreo/learnhub/internal/app/models"
	"github.com/emreo/learnhub/internal/db"
	"github.com/emreo/learnhub/internal/pkg/apperrors"
	"github.com/emreo/learnhub/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db db.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db db.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Exists checks whether an enrollment row exists for the (user, course) pair.
func (r *EnrollmentRepository) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`,
		userID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// Create inserts an enrollment row; enroll_date defaults to the current date.
// The composite primary key is the sole safeguard against duplicate inserts,
// so a unique violation here means the pair was enrolled concurrently and is
// reported as apperrors.ErrEnrollmentExists.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (user_id, course_id)
		VALUES ($1, $2)
		RETURNING enroll_date
	`

	err := r.db.QueryRow(ctx, query, enrollment.UserID, enrollment.CourseID).Scan(&enrollment.EnrollDate)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEnrollmentExists
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}
