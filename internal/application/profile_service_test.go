package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillfolio/skillfolio-api/internal/application"
	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
)

func strptr(s string) *string { return &s }

func TestProfileService_UpdateStudentProfile(t *testing.T) {
	authSvc, store := newAuthService()
	svc := application.NewProfileService(store)
	ctx := context.Background()

	u := register(t, authSvc, "john_student", "john@student.edu", entity.RoleStudent)

	p, err := svc.UpdateStudentProfile(ctx, u.ID, entity.StudentProfileUpdate{
		Major:      strptr("Computer Science"),
		University: strptr("State University"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", p.Major)
	assert.Equal(t, "State University", p.University)

	// unset fields stay untouched on a second partial update
	p, err = svc.UpdateStudentProfile(ctx, u.ID, entity.StudentProfileUpdate{
		GPA: strptr("3.8"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", p.Major)
	assert.Equal(t, "3.8", p.GPA)
}

func TestProfileService_UpdateFacultyProfile(t *testing.T) {
	authSvc, store := newAuthService()
	svc := application.NewProfileService(store)
	ctx := context.Background()

	u := register(t, authSvc, "jane_faculty", "jane@faculty.edu", entity.RoleFaculty)

	p, err := svc.UpdateFacultyProfile(ctx, u.ID, entity.FacultyProfileUpdate{
		Department: strptr("Mathematics"),
		Position:   strptr("Professor"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", p.Department)
	assert.Equal(t, "Professor", p.Position)
}

func TestProfileService_UpdateMissingProfile(t *testing.T) {
	authSvc, store := newAuthService()
	svc := application.NewProfileService(store)
	ctx := context.Background()

	// a student has no faculty profile row
	u := register(t, authSvc, "john_student", "john@student.edu", entity.RoleStudent)

	_, err := svc.UpdateFacultyProfile(ctx, u.ID, entity.FacultyProfileUpdate{
		Department: strptr("Mathematics"),
	})
	assert.ErrorIs(t, err, application.ErrProfileNotFound)
}

func TestProfileService_ProfileFor(t *testing.T) {
	authSvc, store := newAuthService()
	svc := application.NewProfileService(store)
	ctx := context.Background()

	student := register(t, authSvc, "john_student", "john@student.edu", entity.RoleStudent)
	faculty := register(t, authSvc, "jane_faculty", "jane@faculty.edu", entity.RoleFaculty)

	p, err := svc.ProfileFor(ctx, student)
	require.NoError(t, err)
	assert.IsType(t, &entity.StudentProfile{}, p)

	p, err = svc.ProfileFor(ctx, faculty)
	require.NoError(t, err)
	assert.IsType(t, &entity.FacultyProfile{}, p)
}
