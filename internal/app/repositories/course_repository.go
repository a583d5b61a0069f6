package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emreo/learnhub/internal/app/models"
	"github.com/emreo/learnhub/internal/db"
	"github.com/emreo/learnhub/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db db.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db db.DB) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// ListWithInstructor retrieves every course joined with its instructor name.
func (r *CourseRepository) ListWithInstructor(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.title, c.description, c.instructor_id, u.name AS instructor_name
		FROM courses c
		JOIN users u ON c.instructor_id = u.id
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.InstructorID,
			&course.InstructorName,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByIDWithInstructor retrieves a course by ID joined with its instructor name.
// Returns apperrors.ErrCourseNotFound when no such course exists.
func (r *CourseRepository) GetByIDWithInstructor(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT c.id, c.title, c.description, c.instructor_id, u.name AS instructor_name
		FROM courses c
		JOIN users u ON c.instructor_id = u.id
		WHERE c.id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.InstructorID,
		&course.InstructorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// Insert creates a course with an explicit id, skipping rows whose primary
// key already exists. Used by the startup seeder.
func (r *CourseRepository) Insert(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (id, title, description, instructor_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, course.ID, course.Title, course.Description, course.InstructorID); err != nil {
		return fmt.Errorf("error inserting course: %w", err)
	}

	return nil
}
