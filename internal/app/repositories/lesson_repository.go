package repositories

import (
	"context"
	"fmt"

	"github.com/emreo/learnhub/internal/app/models"
	"github.com/emreo/learnhub/internal/db"
)

// LessonRepository handles database operations for lessons
type LessonRepository struct {
	db db.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db db.DB) *LessonRepository {
	return &LessonRepository{
		db: db,
	}
}

// ListByCourseID retrieves all lessons of a course ordered by id.
func (r *LessonRepository) ListByCourseID(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	query := `
		SELECT id, course_id, title, content
		FROM lessons
		WHERE course_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(
			&lesson.ID,
			&lesson.CourseID,
			&lesson.Title,
			&lesson.Content,
		); err != nil {
			return nil, err
		}
		lessons = append(lessons, &lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lessons, nil
}

// Insert creates a lesson with an explicit id, skipping rows whose primary
// key already exists. Used by the startup seeder.
func (r *LessonRepository) Insert(ctx context.Context, lesson *models.Lesson) error {
	query := `
		INSERT INTO lessons (id, course_id, title, content)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, lesson.ID, lesson.CourseID, lesson.Title, lesson.Content); err != nil {
		return fmt.Errorf("error inserting lesson: %w", err)
	}

	return nil
}
