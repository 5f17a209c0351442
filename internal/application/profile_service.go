package application

import (
	"context"
	"errors"

	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
	repo "github.com/skillfolio/skillfolio-api/internal/domain/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService reads and updates the role-specific profile records.
type ProfileService struct {
	Profiles repo.ProfileRepository
}

func NewProfileService(profiles repo.ProfileRepository) *ProfileService {
	return &ProfileService{Profiles: profiles}
}

// ProfileFor returns the profile record matching the user's role.
func (s *ProfileService) ProfileFor(ctx context.Context, u *entity.User) (any, error) {
	switch u.Role {
	case entity.RoleStudent:
		p, err := s.Profiles.GetStudentProfile(ctx, u.ID)
		if err != nil {
			return nil, ErrProfileNotFound
		}
		return p, nil
	case entity.RoleFaculty:
		p, err := s.Profiles.GetFacultyProfile(ctx, u.ID)
		if err != nil {
			return nil, ErrProfileNotFound
		}
		return p, nil
	}
	return nil, ErrProfileNotFound
}

func (s *ProfileService) UpdateStudentProfile(ctx context.Context, userID int64, upd entity.StudentProfileUpdate) (*entity.StudentProfile, error) {
	p, err := s.Profiles.UpdateStudentProfile(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) UpdateFacultyProfile(ctx context.Context, userID int64, upd entity.FacultyProfileUpdate) (*entity.FacultyProfile, error) {
	p, err := s.Profiles.UpdateFacultyProfile(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}
