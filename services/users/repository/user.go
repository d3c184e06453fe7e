package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/models"
)

// UserRepo implements the users.UserRepo interface over Postgres
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser creates a new user in the database. Email uniqueness is enforced
// by the database; a duplicate surfaces as a Conflict domain error.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, fullname, email, phone, password_hash, role,
			is_available, latitude, longitude, created_at, updated_at
		) VALUES (:id, :fullname, :email, :phone, :password_hash, :role,
			:is_available, :latitude, :longitude, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return domainerrors.Conflict("email already registered")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, fullname, email, phone, password_hash, role,
			is_available, latitude, longitude, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, fullname, email, phone, password_hash, role,
			is_available, latitude, longitude, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateAvailability sets a user's availability flag and, when a location is
// supplied, their last reported coordinates. Going available is refused while
// the user holds an Accepted or En Route request; the guard sits in the
// UPDATE itself so a racing accept cannot slip through between a read and
// the write.
func (r *UserRepo) UpdateAvailability(ctx context.Context, userID uuid.UUID, isAvailable bool, location *models.Location) error {
	var (
		result sql.Result
		err    error
	)

	if location != nil {
		query := `
			UPDATE users
			SET is_available = $1, latitude = $2, longitude = $3, updated_at = $4
			WHERE id = $5
		`
		args := []interface{}{isAvailable, location.Latitude, location.Longitude, time.Now(), userID}
		if isAvailable {
			query += `
			AND NOT EXISTS (
				SELECT 1 FROM service_requests
				WHERE mechanic_id = $5 AND status IN ($6, $7)
			)
		`
			args = append(args, models.RequestStatusAccepted, models.RequestStatusEnRoute)
		}
		result, err = r.db.ExecContext(ctx, query, args...)
	} else {
		query := `
			UPDATE users
			SET is_available = $1, updated_at = $2
			WHERE id = $3
		`
		args := []interface{}{isAvailable, time.Now(), userID}
		if isAvailable {
			query += `
			AND NOT EXISTS (
				SELECT 1 FROM service_requests
				WHERE mechanic_id = $3 AND status IN ($4, $5)
			)
		`
			args = append(args, models.RequestStatusAccepted, models.RequestStatusEnRoute)
		}
		result, err = r.db.ExecContext(ctx, query, args...)
	}

	if err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		if isAvailable {
			busy, berr := r.hasActiveJob(ctx, userID)
			if berr != nil {
				return berr
			}
			if busy {
				return domainerrors.InvalidState("cannot go available while on an active job")
			}
		}
		return domainerrors.NotFound("user not found")
	}

	return nil
}

// hasActiveJob reports whether the user is the assigned mechanic of an
// Accepted or En Route request.
func (r *UserRepo) hasActiveJob(ctx context.Context, userID uuid.UUID) (bool, error) {
	var busy bool
	err := r.db.GetContext(ctx, &busy, `
		SELECT EXISTS (
			SELECT 1 FROM service_requests
			WHERE mechanic_id = $1 AND status IN ($2, $3)
		)
	`, userID, models.RequestStatusAccepted, models.RequestStatusEnRoute)
	if err != nil {
		return false, fmt.Errorf("failed to check active job: %w", err)
	}
	return busy, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	type sqlStater interface {
		SQLState() string
	}
	var stater sqlStater
	if errors.As(err, &stater) {
		return stater.SQLState() == "23505"
	}
	return false
}
