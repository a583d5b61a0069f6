package repositories

import (
	"context"
	"fmt"

	"github.com/emreo/learnhub/internal/app/models"
	"github.com/emreo/learnhub/internal/db"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db db.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db db.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Insert creates a user with an explicit id, skipping rows whose primary
// key already exists. Used by the startup seeder.
func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.Role); err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}

	return nil
}
