package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/skillfolio/skillfolio-api/config"
	"github.com/skillfolio/skillfolio-api/pkg/helpers"
)

// Seeds one demo student and one demo faculty account with their empty
// profile rows. Re-running is safe: existing usernames are left alone.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hasher := helpers.NewPasswordHasher(cfg.BcryptCost)

	seed(db, hasher, "john_student", "john@student.edu", "password123", "student", "John Student")
	seed(db, hasher, "jane_faculty", "jane@faculty.edu", "password123", "faculty", "Jane Faculty")
}

func seed(db *sql.DB, hasher *helpers.PasswordHasher, username, email, password, role, fullName string) {
	hash, err := hasher.Hash(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("failed to begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRow(`
		INSERT INTO users (username, email, hashed_password, role, full_name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`, username, email, hash, role, fullName).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		fmt.Printf("user %s already seeded\n", username)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", username, err)
	}

	table := "student_profiles"
	if role == "faculty" {
		table = "faculty_profiles"
	}
	if _, err := tx.Exec(`INSERT INTO `+table+` (user_id) VALUES ($1)`, id); err != nil {
		log.Fatalf("failed to seed %s for %s: %v", table, username, err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("failed to commit seed for %s: %v", username, err)
	}
	fmt.Printf("seeded user: id=%d username=%s role=%s password=%s\n", id, username, role, password)
}
