package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillfolio/skillfolio-api/internal/application"
	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
	repo "github.com/skillfolio/skillfolio-api/internal/domain/repository"
	"github.com/skillfolio/skillfolio-api/internal/infrastructure/memory"
	"github.com/skillfolio/skillfolio-api/pkg/helpers"
)

func newAuthService() (*application.AuthService, *memory.Store) {
	store := memory.NewStore()
	hasher := helpers.NewPasswordHasher(bcrypt.MinCost)
	jwt := helpers.NewJWTManager("test-secret", 30*time.Minute)
	return application.NewAuthService(store, hasher, jwt, nil), store
}

func register(t *testing.T, svc *application.AuthService, username, email string, role entity.Role) *entity.User {
	t.Helper()
	u, err := svc.Register(context.Background(), application.RegisterInput{
		Username: username,
		Email:    email,
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func TestAuthService_Register(t *testing.T) {
	svc, store := newAuthService()
	ctx := context.Background()

	u := register(t, svc, "john_student", "john@student.edu", entity.RoleStudent)
	assert.Equal(t, entity.RoleStudent, u.Role)
	assert.True(t, u.IsActive)
	assert.NotZero(t, u.ID)

	// the stored credential is a hash, never the plaintext
	assert.NotEqual(t, "password123", u.HashedPassword)
	assert.NotContains(t, u.HashedPassword, "password123")

	// the empty profile row exists as part of the same unit
	p, err := store.GetStudentProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.UserID)
}

func TestAuthService_RegisterFacultyProfile(t *testing.T) {
	svc, store := newAuthService()

	u := register(t, svc, "jane_faculty", "jane@faculty.edu", entity.RoleFaculty)
	p, err := store.GetFacultyProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.UserID)
}

func TestAuthService_RegisterConflicts(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	register(t, svc, "john_student", "john@student.edu", entity.RoleStudent)

	_, err := svc.Register(ctx, application.RegisterInput{
		Username: "john_student",
		Email:    "other@student.edu",
		Password: "password123",
		Role:     entity.RoleStudent,
	})
	assert.ErrorIs(t, err, repo.ErrDuplicateUsername)

	_, err = svc.Register(ctx, application.RegisterInput{
		Username: "other_student",
		Email:    "john@student.edu",
		Password: "password123",
		Role:     entity.RoleStudent,
	})
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)
}

func TestAuthService_RegisterInvalidRole(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), application.RegisterInput{
		Username: "admin_user",
		Email:    "admin@school.edu",
		Password: "password123",
		Role:     entity.Role("admin"),
	})
	assert.ErrorIs(t, err, application.ErrInvalidRole)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	register(t, svc, "john_student", "john@student.edu", entity.RoleStudent)

	tok, err := svc.Login(ctx, "john_student", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.NotEmpty(t, tok.AccessToken)

	subject, err := svc.JWT.Verify(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "john_student", subject)
}

func TestAuthService_LoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	register(t, svc, "john_student", "john@student.edu", entity.RoleStudent)

	_, wrongPass := svc.Login(ctx, "john_student", "wrongpass")
	_, noUser := svc.Login(ctx, "nonexistent", "x")

	assert.ErrorIs(t, wrongPass, application.ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, application.ErrInvalidCredentials)
	// same error value: a caller cannot tell the cases apart
	assert.Equal(t, wrongPass, noUser)
}

func TestAuthService_LoginInactiveAccount(t *testing.T) {
	svc, store := newAuthService()
	ctx := context.Background()

	u := register(t, svc, "john_student", "john@student.edu", entity.RoleStudent)
	store.SetActive(u.ID, false)

	_, err := svc.Login(ctx, "john_student", "password123")
	assert.ErrorIs(t, err, application.ErrInactiveAccount)
}
