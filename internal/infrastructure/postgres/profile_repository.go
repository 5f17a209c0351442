package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
	"github.com/skillfolio/skillfolio-api/internal/domain/repository"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) GetStudentProfile(ctx context.Context, userID int64) (*entity.StudentProfile, error) {
	p := &entity.StudentProfile{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, COALESCE(student_id, ''), COALESCE(major, ''),
		       COALESCE(year_of_study, ''), COALESCE(gpa, ''),
		       COALESCE(university, ''), COALESCE(bio, '')
		FROM student_profiles
		WHERE user_id = $1
	`, userID)
	if err := row.Scan(&p.ID, &p.UserID, &p.StudentID, &p.Major,
		&p.YearOfStudy, &p.GPA, &p.University, &p.Bio); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) GetFacultyProfile(ctx context.Context, userID int64) (*entity.FacultyProfile, error) {
	p := &entity.FacultyProfile{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, COALESCE(employee_id, ''), COALESCE(department, ''),
		       COALESCE(position, ''), COALESCE(university, '')
		FROM faculty_profiles
		WHERE user_id = $1
	`, userID)
	if err := row.Scan(&p.ID, &p.UserID, &p.EmployeeID, &p.Department,
		&p.Position, &p.University); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateStudentProfile applies only the fields set in upd; nil pointers
// keep the stored value (COALESCE on the bind parameter).
func (r *ProfileRepository) UpdateStudentProfile(ctx context.Context, userID int64, upd entity.StudentProfileUpdate) (*entity.StudentProfile, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE student_profiles
		SET student_id    = COALESCE($2, student_id),
		    major         = COALESCE($3, major),
		    year_of_study = COALESCE($4, year_of_study),
		    gpa           = COALESCE($5, gpa),
		    university    = COALESCE($6, university),
		    bio           = COALESCE($7, bio)
		WHERE user_id = $1
	`, userID, upd.StudentID, upd.Major, upd.YearOfStudy, upd.GPA, upd.University, upd.Bio)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetStudentProfile(ctx, userID)
}

func (r *ProfileRepository) UpdateFacultyProfile(ctx context.Context, userID int64, upd entity.FacultyProfileUpdate) (*entity.FacultyProfile, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE faculty_profiles
		SET employee_id = COALESCE($2, employee_id),
		    department  = COALESCE($3, department),
		    position    = COALESCE($4, position),
		    university  = COALESCE($5, university)
		WHERE user_id = $1
	`, userID, upd.EmployeeID, upd.Department, upd.Position, upd.University)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetFacultyProfile(ctx, userID)
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
