package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
	"github.com/skillfolio/skillfolio-api/internal/domain/repository"
)

const userColumns = `id, username, email, hashed_password, role, full_name, is_active, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// CreateWithProfile inserts the user and its empty role profile in one
// transaction. The schema's unique constraints are the last line of
// defense against registration races; their violations surface as the
// same duplicate errors the pre-checks produce.
func (r *UserRepository) CreateWithProfile(ctx context.Context, u *entity.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO users (username, email, hashed_password, role, full_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, updated_at
	`, u.Username, u.Email, u.HashedPassword, u.Role, u.FullName)
	if err := row.Scan(&u.ID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapUniqueViolation(err)
	}

	switch u.Role {
	case entity.RoleStudent:
		_, err = tx.Exec(ctx, `INSERT INTO student_profiles (user_id) VALUES ($1)`, u.ID)
	case entity.RoleFaculty:
		_, err = tx.Exec(ctx, `INSERT INTO faculty_profiles (user_id) VALUES ($1)`, u.ID)
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.Role,
		&u.FullName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case "users_username_key":
			return repository.ErrDuplicateUsername
		case "users_email_key":
			return repository.ErrDuplicateEmail
		}
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
