package models

// RoleType distinguishes course owners from course consumers.
type RoleType string

const (
	// RoleInstructor marks a user who owns courses
	RoleInstructor RoleType = "I"
	// RoleStudent marks a user who enrolls in courses
	RoleStudent RoleType = "S"
)

// User defines the user model based on the 'users' table
type User struct {
	ID    int64    `json:"id" db:"id"`
	Name  string   `json:"name" db:"name"`
	Email string   `json:"email" db:"email"` // Unique
	Role  RoleType `json:"role" db:"role"`
}
