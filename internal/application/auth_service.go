package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
	repo "github.com/skillfolio/skillfolio-api/internal/domain/repository"
	"github.com/skillfolio/skillfolio-api/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveAccount    = errors.New("user account is inactive")
	ErrInvalidRole        = errors.New("role must be either 'student' or 'faculty'")
)

// Token is the bearer credential returned by a successful login.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// AuthService implements registration and login on top of the user store,
// the password hasher and the token codec.
type AuthService struct {
	Users  repo.UserRepository
	Hasher *helpers.PasswordHasher
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, hasher *helpers.PasswordHasher, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Hasher: hasher, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
	FullName string
}

// Register creates a new user and its empty role profile. Username and
// email conflicts are checked separately so the two stay distinguishable;
// the store's unique constraints back the checks up under races.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if _, err := s.Users.GetByUsername(ctx, in.Username); err == nil {
		return nil, repo.ErrDuplicateUsername
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Users.GetByEmail(ctx, in.Email); err == nil {
		return nil, repo.ErrDuplicateEmail
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: hash,
		Role:           in.Role,
		FullName:       in.FullName,
	}
	if err := s.Users.CreateWithProfile(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", in.Username).Error("user registration failed")
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"username": u.Username, "role": u.Role}).Info("user registered")
	}
	return u, nil
}

// Login verifies credentials and issues a bearer token with the
// configured TTL. The active check runs only after the password matched,
// so it never leaks whether an account exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (Token, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil || u == nil {
		return Token{}, ErrInvalidCredentials
	}
	if !s.Hasher.Verify(password, u.HashedPassword) {
		return Token{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		return Token{}, ErrInactiveAccount
	}

	access, exp, err := s.JWT.Issue(u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("token issuance failed")
		}
		return Token{}, err
	}
	return Token{AccessToken: access, TokenType: "bearer", ExpiresAt: exp}, nil
}
