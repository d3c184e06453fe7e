package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/montirku/montirku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/montirku/montirku/services/users UserRepo

// UserRepo represents the user repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// UpdateAvailability sets a mechanic's availability flag, and their last
	// reported location when one is supplied.
	UpdateAvailability(ctx context.Context, userID uuid.UUID, isAvailable bool, location *models.Location) error
}
