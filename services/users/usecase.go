package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/montirku/montirku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/montirku/montirku/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// mechanic availability beacon
	UpdateBeaconStatus(ctx context.Context, mechanicID uuid.UUID, req *models.BeaconRequest) (*models.User, error)
}
