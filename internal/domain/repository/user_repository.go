package repository

import (
	"context"
	"errors"

	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername and ErrDuplicateEmail are returned both by
	// registration pre-checks and by the store's unique constraints, so a
	// losing racer still gets the right error.
	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateWithProfile persists u together with an empty role-appropriate
	// profile row as one atomic unit: either both exist afterwards or
	// neither does.
	CreateWithProfile(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ProfileRepository defines role-specific profile lookups and updates.
type ProfileRepository interface {
	GetStudentProfile(ctx context.Context, userID int64) (*entity.StudentProfile, error)
	GetFacultyProfile(ctx context.Context, userID int64) (*entity.FacultyProfile, error)
	UpdateStudentProfile(ctx context.Context, userID int64, upd entity.StudentProfileUpdate) (*entity.StudentProfile, error)
	UpdateFacultyProfile(ctx context.Context, userID int64, upd entity.FacultyProfileUpdate) (*entity.FacultyProfile, error)
}
