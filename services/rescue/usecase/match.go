package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/internal/utils"
)

// FindNearbyRequests returns the Pending requests within the configured
// search radius of the mechanic's last reported location, nearest first.
// A mechanic who has never reported a location gets an empty result, not an
// error.
func (uc *RescueUC) FindNearbyRequests(ctx context.Context, mechanicID uuid.UUID) ([]models.NearbyRequest, error) {
	mechanic, err := uc.userRepo.GetUserByID(ctx, mechanicID)
	if err != nil {
		return nil, err
	}
	if mechanic.Role != models.RoleMechanic {
		return nil, domainerrors.Unauthorized("only mechanics can browse nearby requests")
	}

	if !mechanic.HasLocation() {
		logger.Debug("Mechanic has no reported location",
			logger.String("mechanic_id", mechanicID.String()))
		return []models.NearbyRequest{}, nil
	}

	origin := mechanic.Location()
	radiusKm := uc.cfg.Match.SearchRadiusKm

	candidates, err := uc.requestRepo.ListPendingNear(ctx, origin, radiusKm)
	if err != nil {
		return nil, err
	}

	// The candidate lookup is a coarse pre-filter; the haversine distance
	// computed here is authoritative.
	nearby := make([]models.NearbyRequest, 0, len(candidates))
	for _, req := range candidates {
		distance := utils.CalculateDistance(
			utils.GeoPointFromLocation(origin),
			utils.GeoPointFromLocation(req.Location()),
		)
		if distance < radiusKm {
			nearby = append(nearby, models.NearbyRequest{
				ServiceRequest: *req,
				DistanceKm:     distance,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	logger.Debug("Nearby request lookup",
		logger.String("mechanic_id", mechanicID.String()),
		logger.Int("candidates", len(candidates)),
		logger.Int("within_radius", len(nearby)),
		logger.Float64("radius_km", radiusKm))

	return nearby, nil
}
