// Package memory provides an in-memory implementation of the repository
// interfaces, used by tests and local experiments where Postgres is not
// available. It enforces the same uniqueness rules as the schema.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
	"github.com/skillfolio/skillfolio-api/internal/domain/repository"
)

type Store struct {
	mu              sync.RWMutex
	seq             int64
	users           map[int64]*entity.User
	studentProfiles map[int64]*entity.StudentProfile // keyed by user ID
	facultyProfiles map[int64]*entity.FacultyProfile
}

func NewStore() *Store {
	return &Store{
		users:           make(map[int64]*entity.User),
		studentProfiles: make(map[int64]*entity.StudentProfile),
		facultyProfiles: make(map[int64]*entity.FacultyProfile),
	}
}

func (s *Store) CreateWithProfile(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}

	s.seq++
	u.ID = s.seq
	u.IsActive = true
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt

	cp := *u
	s.users[u.ID] = &cp

	switch u.Role {
	case entity.RoleStudent:
		s.seq++
		s.studentProfiles[u.ID] = &entity.StudentProfile{ID: s.seq, UserID: u.ID}
	case entity.RoleFaculty:
		s.seq++
		s.facultyProfiles[u.ID] = &entity.FacultyProfile{ID: s.seq, UserID: u.ID}
	}
	return nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// SetActive toggles the active flag, standing in for the external
// administration that owns it in production.
func (s *Store) SetActive(id int64, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.IsActive = active
	}
}

func (s *Store) GetStudentProfile(_ context.Context, userID int64) (*entity.StudentProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.studentProfiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetFacultyProfile(_ context.Context, userID int64) (*entity.FacultyProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.facultyProfiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *Store) UpdateStudentProfile(_ context.Context, userID int64, upd entity.StudentProfileUpdate) (*entity.StudentProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.studentProfiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	setString(&p.StudentID, upd.StudentID)
	setString(&p.Major, upd.Major)
	setString(&p.YearOfStudy, upd.YearOfStudy)
	setString(&p.GPA, upd.GPA)
	setString(&p.University, upd.University)
	setString(&p.Bio, upd.Bio)
	cp := *p
	return &cp, nil
}

func (s *Store) UpdateFacultyProfile(_ context.Context, userID int64, upd entity.FacultyProfileUpdate) (*entity.FacultyProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.facultyProfiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	setString(&p.EmployeeID, upd.EmployeeID)
	setString(&p.Department, upd.Department)
	setString(&p.Position, upd.Position)
	setString(&p.University, upd.University)
	cp := *p
	return &cp, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

var (
	_ repository.UserRepository    = (*Store)(nil)
	_ repository.ProfileRepository = (*Store)(nil)
)
