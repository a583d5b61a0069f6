package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/emreo/learnhub/internal/app/repositories"
	"github.com/emreo/learnhub/internal/db"
	"github.com/emreo/learnhub/internal/pkg/apperrors"
)

func newEnrollmentService(fake *db.FakeDB) EnrollmentService {
	return NewEnrollmentService(repositories.NewEnrollmentRepository(fake))
}

func TestEnrollmentServiceEnroll(t *testing.T) {
	t.Run("first enrollment inserts a row", func(t *testing.T) {
		inserted := false
		fake := &db.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				if strings.Contains(sql, "INSERT INTO enrollments") {
					inserted = true
					return &db.FakeRow{Values: []any{time.Now()}}
				}
				return &db.FakeRow{Values: []any{false}}
			},
		}

		created, err := newEnrollmentService(fake).Enroll(context.Background(), 4, 101)
		require.NoError(t, err)
		require.True(t, created)
		require.True(t, inserted)
	})

	t.Run("repeat enrollment is a no-op", func(t *testing.T) {
		fake := &db.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				// The insert must never run once the pair is found
				require.NotContains(t, sql, "INSERT INTO enrollments")
				return &db.FakeRow{Values: []any{true}}
			},
		}

		created, err := newEnrollmentService(fake).Enroll(context.Background(), 4, 101)
		require.NoError(t, err)
		require.False(t, created)
	})

	t.Run("insert race surfaces the constraint conflict", func(t *testing.T) {
		fake := &db.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				if strings.Contains(sql, "INSERT INTO enrollments") {
					return &db.FakeRow{ScanErr: &pgconn.PgError{Code: "23505", ConstraintName: "enrollments_pkey"}}
				}
				return &db.FakeRow{Values: []any{false}}
			},
		}

		_, err := newEnrollmentService(fake).Enroll(context.Background(), 4, 101)
		require.ErrorIs(t, err, apperrors.ErrEnrollmentExists)
	})
}
