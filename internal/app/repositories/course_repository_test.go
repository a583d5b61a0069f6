package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/emreo/learnhub/internal/db"
	"github.com/emreo/learnhub/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestCourseRepositoryListWithInstructor(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &db.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &db.FakeRows{Rows: [][]any{
					{int64(101), "Introduction to SQL and Relational Databases", strPtr("desc"), int64(1), "Dr. Aris Patel"},
					{int64(102), "Python Web Development with Flask", (*string)(nil), int64(2), "Prof. Lin Wang"},
				}}, nil
			},
		}

		courses, err := NewCourseRepository(fake).ListWithInstructor(context.Background())
		require.NoError(t, err)
		require.Len(t, courses, 2)
		require.Equal(t, int64(101), courses[0].ID)
		require.Equal(t, "Dr. Aris Patel", courses[0].InstructorName)
		require.Nil(t, courses[1].Description)
	})

	t.Run("query error", func(t *testing.T) {
		fake := &db.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}

		_, err := NewCourseRepository(fake).ListWithInstructor(context.Background())
		require.Error(t, err)
	})
}

func TestCourseRepositoryGetByIDWithInstructor(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &db.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, int64(101), args[0])
				return &db.FakeRow{Values: []any{int64(101), "Introduction to SQL and Relational Databases", strPtr("desc"), int64(1), "Dr. Aris Patel"}}
			},
		}

		course, err := NewCourseRepository(fake).GetByIDWithInstructor(context.Background(), 101)
		require.NoError(t, err)
		require.Equal(t, "Introduction to SQL and Relational Databases", course.Title)
		require.Equal(t, "Dr. Aris Patel", course.InstructorName)
	})

	t.Run("not found", func(t *testing.T) {
		fake := &db.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &db.FakeRow{ScanErr: pgx.ErrNoRows}
			},
		}

		_, err := NewCourseRepository(fake).GetByIDWithInstructor(context.Background(), 999)
		require.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestCourseRepositoryInsert(t *testing.T) {
	t.Run("conflict is a no-op", func(t *testing.T) {
		fake := &db.FakeDB{
			ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "ON CONFLICT (id) DO NOTHING")
				return pgconn.NewCommandTag("INSERT 0 0"), nil
			},
		}

		err := NewCourseRepository(fake).Insert(context.Background(), seedCourse())
		require.NoError(t, err)
	})

	t.Run("exec error", func(t *testing.T) {
		fake := &db.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
		}

		err := NewCourseRepository(fake).Insert(context.Background(), seedCourse())
		require.Error(t, err)
	})
}
