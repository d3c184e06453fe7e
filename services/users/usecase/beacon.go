package usecase

import (
	"context"

	"github.com/google/uuid"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
)

// UpdateBeaconStatus records a mechanic's availability and current location.
// This is the only path that writes a user's location.
func (u *UserUC) UpdateBeaconStatus(ctx context.Context, mechanicID uuid.UUID, req *models.BeaconRequest) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleMechanic {
		return nil, domainerrors.Unauthorized("only mechanics can report availability")
	}

	location := &models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := u.userRepo.UpdateAvailability(ctx, mechanicID, req.IsAvailable, location); err != nil {
		return nil, err
	}

	user.IsAvailable = req.IsAvailable
	user.Latitude = &location.Latitude
	user.Longitude = &location.Longitude

	logger.Info("Updated mechanic beacon",
		logger.String("mechanic_id", mechanicID.String()),
		logger.Bool("is_available", req.IsAvailable),
		logger.String("geohash", utils.EncodeLocation(*location, 6)))

	return user, nil
}

// GetUserByID returns a user by id
func (u *UserUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}
