package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"fittrack-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const uniqueViolation = "23505"

var fitnessLevels = map[string]bool{
	"Beginner":     true,
	"Intermediate": true,
	"Advanced":     true,
}

func ValidFitnessLevel(level string) bool {
	return fitnessLevels[level]
}

// ProfileUpdate carries the mutable profile attributes. Nil numeric fields
// are stored as NULL; the caller has already applied the falsy-means-absent
// coercion.
type ProfileUpdate struct {
	Name         string
	Email        string
	Age          *int
	HeightCm     *float64
	CurrWeightKg *float64
	GoalWeightKg *float64
	FitnessLevel *string
}

// Register creates an account with a freshly hashed password and returns its
// id. The existence pre-check is best-effort; a concurrent registration for
// the same email loses at the unique index and is reported identically.
func Register(ctx context.Context, db *sqlx.DB, tokens TokenService, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return "", ErrBadRequest("Email and password are required")
	}
	var exists bool
	if err := db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email); err != nil {
		return "", WrapError(err, "check email")
	}
	if exists {
		return "", ErrConflict("Email already registered")
	}
	hash, err := tokens.HashPassword(password)
	if err != nil {
		return "", WrapError(err, "hash password")
	}
	userID := uuid.NewString()
	now := time.Now().UTC()
	_, err = db.ExecContext(ctx, `
INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
VALUES ($1,$2,$3,'user',$4,$4)
`, userID, email, hash, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", ErrConflict("Email already registered")
		}
		return "", WrapError(err, "insert user")
	}
	return userID, nil
}

// VerifyCredentials checks email and password and returns the account id.
// Unknown emails report 404, as the original API does; a dummy hash
// comparison keeps the timing close to the known-email path.
func VerifyCredentials(ctx context.Context, db *sqlx.DB, tokens TokenService, email, password string) (string, error) {
	row := struct {
		ID           string `db:"id"`
		PasswordHash string `db:"password_hash"`
	}{}
	err := db.GetContext(ctx, &row, `SELECT id, password_hash FROM users WHERE email = $1`, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			tokens.VerifyDummy(password)
			return "", ErrNotFound("User not found")
		}
		return "", WrapError(err, "lookup user")
	}
	if !tokens.VerifyPassword(password, row.PasswordHash) {
		return "", ErrUnauthorized("Invalid credentials")
	}
	_, _ = db.ExecContext(ctx, `UPDATE users SET last_login_at = $1 WHERE id = $2`, time.Now().UTC(), row.ID)
	return row.ID, nil
}

func GetUser(ctx context.Context, db *sqlx.DB, userID string) (models.User, error) {
	var user models.User
	err := db.GetContext(ctx, &user, `
SELECT id, email, password_hash, name, age, height_cm, curr_weight_kg, goal_weight_kg,
       fitness_level, role, created_at, updated_at, last_login_at
FROM users WHERE id = $1
`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound("User not found")
		}
		return models.User{}, WrapError(err, "lookup user")
	}
	return user, nil
}

// UpdateProfile overwrites the mutable profile attributes. Name and email
// must be non-empty; everything else may be NULL.
func UpdateProfile(ctx context.Context, db *sqlx.DB, userID string, update ProfileUpdate) (models.User, error) {
	name := strings.TrimSpace(update.Name)
	email := strings.TrimSpace(update.Email)
	if name == "" || email == "" {
		return models.User{}, ErrBadRequest("Name and email are required")
	}
	if update.FitnessLevel != nil && !ValidFitnessLevel(*update.FitnessLevel) {
		return models.User{}, ErrBadRequest("Invalid fitness level")
	}
	result, err := db.ExecContext(ctx, `
UPDATE users
SET name = $2,
    email = $3,
    age = $4,
    height_cm = $5,
    curr_weight_kg = $6,
    goal_weight_kg = $7,
    fitness_level = $8,
    updated_at = $9
WHERE id = $1
`, userID, name, email, update.Age, update.HeightCm, update.CurrWeightKg, update.GoalWeightKg, update.FitnessLevel, time.Now().UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.User{}, ErrConflict("Email already registered")
		}
		return models.User{}, WrapError(err, "update profile")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.User{}, ErrNotFound("User not found")
	}
	return GetUser(ctx, db, userID)
}

// AccountInfo is the admin listing row.
type AccountInfo struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func ListAccounts(ctx context.Context, db *sqlx.DB) ([]AccountInfo, error) {
	accounts := []AccountInfo{}
	err := db.SelectContext(ctx, &accounts, `SELECT id, email, created_at FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, WrapError(err, "list accounts")
	}
	return accounts, nil
}

func UpdateAccountEmail(ctx context.Context, db *sqlx.DB, userID, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrBadRequest("Email is required")
	}
	result, err := db.ExecContext(ctx, `UPDATE users SET email = $2, updated_at = $3 WHERE id = $1`, userID, email, time.Now().UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrConflict("Email already registered")
		}
		return WrapError(err, "update email")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound("User not found")
	}
	return nil
}

// DeleteAccount removes the account row; metrics and workouts go with it via
// the cascading foreign keys.
func DeleteAccount(ctx context.Context, db *sqlx.DB, userID string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return WrapError(err, "delete account")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound("User not found")
	}
	return nil
}

func IsAdmin(user models.User) bool {
	return user.Role == "admin"
}
