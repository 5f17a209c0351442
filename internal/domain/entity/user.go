package entity

import (
	"time"
)

// Role is the authorization role assigned to a user at registration.
// The set is closed: every account is either a student or a faculty member.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleFaculty
}

// User is the aggregate root for the user domain
// Passwords are stored as bcrypt hashes in HashedPassword
//
// IsActive is toggled by external administration; an inactive user
// cannot log in and any token held for it stops resolving.
type User struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	Role           Role
	FullName       string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
