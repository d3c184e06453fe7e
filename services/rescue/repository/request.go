package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/montirku/montirku/internal/pkg/constants"
	"github.com/montirku/montirku/internal/pkg/database"
	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/models"
)

const requestColumns = `id, customer_id, mechanic_id, vehicle_type, problem_desc,
		latitude, longitude, status, created_at, updated_at`

// geoIndex is the slice of the Redis client the repository uses for the
// Pending request geo set.
type geoIndex interface {
	GeoAdd(ctx context.Context, key string, longitude, latitude float64, member string) error
	GeoRemove(ctx context.Context, key string, member string) error
	GeoRadius(ctx context.Context, key string, longitude, latitude, radius float64, unit string) ([]redis.GeoLocation, error)
}

// RequestRepo implements the rescue.RequestRepo interface over Postgres, with
// a Redis geo index of Pending requests for candidate lookups. The index is
// only trusted while every indexing write has succeeded; a failed GeoAdd
// marks it stale, which routes lookups through the authoritative status scan
// until the scan has re-added every Pending request. Stale members the other
// way around (a failed removal) are harmless: candidates are re-checked
// against status in Postgres.
type RequestRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	geo geoIndex

	// stale != healed means the index is missing members
	geoStaleSeq  atomic.Int64
	geoHealedSeq atomic.Int64
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *RequestRepo {
	r := &RequestRepo{
		cfg: cfg,
		db:  db,
	}
	if redisClient != nil {
		r.geo = redisClient
	}
	return r
}

// CreateRequest inserts a new Pending request and indexes its location
func (r *RequestRepo) CreateRequest(ctx context.Context, req *models.ServiceRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	req.Status = models.RequestStatusPending

	query := `
		INSERT INTO service_requests (id, customer_id, mechanic_id, vehicle_type,
			problem_desc, latitude, longitude, status, created_at, updated_at
		) VALUES (:id, :customer_id, :mechanic_id, :vehicle_type,
			:problem_desc, :latitude, :longitude, :status, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("failed to insert service request: %w", err)
	}

	r.indexPending(ctx, req)
	return nil
}

// GetRequestByID retrieves a request by id
func (r *RequestRepo) GetRequestByID(ctx context.Context, id uuid.UUID) (*models.ServiceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_requests WHERE id = $1`, requestColumns)

	var req models.ServiceRequest
	err := r.db.GetContext(ctx, &req, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainerrors.NotFound("request not found")
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return &req, nil
}

// ListRequestsByCustomer returns a customer's requests, newest first
func (r *RequestRepo) ListRequestsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.ServiceRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM service_requests
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, requestColumns)

	var requests []*models.ServiceRequest
	if err := r.db.SelectContext(ctx, &requests, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return requests, nil
}

// ListPendingNear returns Pending requests around a location. Candidates come
// from the Redis geo index only while the index is complete; a stale index,
// an empty one (cold cache) or a failed lookup all fall back to the status
// scan on Postgres, which is authoritative.
func (r *RequestRepo) ListPendingNear(ctx context.Context, location models.Location, radiusKm float64) ([]*models.ServiceRequest, error) {
	if r.geo == nil {
		return r.listPending(ctx)
	}
	if r.geoStaleSeq.Load() != r.geoHealedSeq.Load() {
		return r.listPendingAndReindex(ctx)
	}

	ids := r.pendingCandidatesFromGeo(ctx, location, radiusKm)
	if len(ids) == 0 {
		return r.listPending(ctx)
	}

	query, args, err := sqlx.In(fmt.Sprintf(`
		SELECT %s FROM service_requests
		WHERE status = ? AND id IN (?)
	`, requestColumns), models.RequestStatusPending, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build candidate query: %w", err)
	}
	query = r.db.Rebind(query)

	var requests []*models.ServiceRequest
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load candidate requests: %w", err)
	}

	return requests, nil
}

// AcceptRequest is the one transition where a read-then-write race is a
// correctness bug: the UPDATE only matches while the request is still Pending
// and the mechanic has no active job, and the affected-row count decides the
// winner. The mechanic's availability flips in the same transaction.
func (r *RequestRepo) AcceptRequest(ctx context.Context, requestID, mechanicID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE service_requests
		SET status = $1, mechanic_id = $2, updated_at = $3
		WHERE id = $4 AND status = $5
		AND NOT EXISTS (
			SELECT 1 FROM service_requests
			WHERE mechanic_id = $2 AND status IN ($6, $7)
		)
	`
	result, err := tx.ExecContext(ctx, query,
		models.RequestStatusAccepted, mechanicID, time.Now(),
		requestID, models.RequestStatusPending,
		models.RequestStatusAccepted, models.RequestStatusEnRoute,
	)
	if err != nil {
		return fmt.Errorf("failed to accept request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return domainerrors.Conflict("request already taken")
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET is_available = false, updated_at = $1 WHERE id = $2`,
		time.Now(), mechanicID,
	); err != nil {
		return fmt.Errorf("failed to update mechanic availability: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.unindexPending(ctx, requestID)
	return nil
}

// CancelRequest moves a Pending request to Cancelled
func (r *RequestRepo) CancelRequest(ctx context.Context, requestID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE service_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`, models.RequestStatusCancelled, time.Now(), requestID, models.RequestStatusPending)
	if err != nil {
		return fmt.Errorf("failed to cancel request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return domainerrors.Conflict("request is no longer pending")
	}

	r.unindexPending(ctx, requestID)
	return nil
}

// RejectRequest moves a Pending request to Rejected and frees the mechanic
func (r *RequestRepo) RejectRequest(ctx context.Context, requestID, mechanicID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE service_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`, models.RequestStatusRejected, time.Now(), requestID, models.RequestStatusPending)
	if err != nil {
		return fmt.Errorf("failed to reject request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return domainerrors.Conflict("request is no longer pending")
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET is_available = true, updated_at = $1 WHERE id = $2`,
		time.Now(), mechanicID,
	); err != nil {
		return fmt.Errorf("failed to update mechanic availability: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.unindexPending(ctx, requestID)
	return nil
}

// StartRequest moves an Accepted request to En Route for its assigned mechanic
func (r *RequestRepo) StartRequest(ctx context.Context, requestID, mechanicID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE service_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4 AND mechanic_id = $5
	`, models.RequestStatusEnRoute, time.Now(), requestID, models.RequestStatusAccepted, mechanicID)
	if err != nil {
		return fmt.Errorf("failed to start request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return domainerrors.Conflict("request is not accepted by this mechanic")
	}

	return nil
}

// CompleteRequest moves an Accepted or En Route request to Completed for its
// assigned mechanic and frees the mechanic in the same transaction.
func (r *RequestRepo) CompleteRequest(ctx context.Context, requestID, mechanicID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE service_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status IN ($4, $5) AND mechanic_id = $6
	`, models.RequestStatusCompleted, time.Now(), requestID,
		models.RequestStatusAccepted, models.RequestStatusEnRoute, mechanicID)
	if err != nil {
		return fmt.Errorf("failed to complete request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return domainerrors.Conflict("request is not active for this mechanic")
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET is_available = true, updated_at = $1 WHERE id = $2`,
		time.Now(), mechanicID,
	); err != nil {
		return fmt.Errorf("failed to update mechanic availability: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetActiveRequestByMechanic returns the mechanic's Accepted or En Route
// request, or nil when there is none. The accept transition guarantees at
// most one such row exists.
func (r *RequestRepo) GetActiveRequestByMechanic(ctx context.Context, mechanicID uuid.UUID) (*models.ServiceRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM service_requests
		WHERE mechanic_id = $1 AND status IN ($2, $3)
		LIMIT 1
	`, requestColumns)

	var req models.ServiceRequest
	err := r.db.GetContext(ctx, &req, query, mechanicID,
		models.RequestStatusAccepted, models.RequestStatusEnRoute)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active request: %w", err)
	}

	return &req, nil
}

// listPending is the authoritative status scan used when the geo index has
// no candidates.
func (r *RequestRepo) listPending(ctx context.Context) ([]*models.ServiceRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM service_requests
		WHERE status = $1
		ORDER BY created_at DESC
	`, requestColumns)

	var requests []*models.ServiceRequest
	if err := r.db.SelectContext(ctx, &requests, query, models.RequestStatusPending); err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	return requests, nil
}

// listPendingAndReindex serves the status scan while the geo index is
// missing members and re-adds every Pending request it finds. The index is
// trusted again only once a re-add pass completes without failures and no
// new indexing failure happened meanwhile.
func (r *RequestRepo) listPendingAndReindex(ctx context.Context) ([]*models.ServiceRequest, error) {
	staleSeq := r.geoStaleSeq.Load()

	requests, err := r.listPending(ctx)
	if err != nil {
		return nil, err
	}

	healed := true
	for _, req := range requests {
		if err := r.geo.GeoAdd(ctx, constants.KeyPendingRequestsGeo,
			req.Longitude, req.Latitude, req.ID.String()); err != nil {
			logger.Warn("Failed to reindex pending request",
				logger.String("request_id", req.ID.String()),
				logger.Err(err))
			healed = false
			break
		}
	}
	if healed {
		r.geoHealedSeq.Store(staleSeq)
	}

	return requests, nil
}

// pendingCandidatesFromGeo queries the Redis geo index. Index failures are
// logged, never surfaced: the Postgres scan covers for a broken index.
func (r *RequestRepo) pendingCandidatesFromGeo(ctx context.Context, location models.Location, radiusKm float64) []uuid.UUID {
	locations, err := r.geo.GeoRadius(ctx, constants.KeyPendingRequestsGeo,
		location.Longitude, location.Latitude, radiusKm, "km")
	if err != nil {
		logger.Warn("Pending request geo lookup failed", logger.Err(err))
		return nil
	}

	ids := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (r *RequestRepo) indexPending(ctx context.Context, req *models.ServiceRequest) {
	if r.geo == nil {
		return
	}
	if err := r.geo.GeoAdd(ctx, constants.KeyPendingRequestsGeo,
		req.Longitude, req.Latitude, req.ID.String()); err != nil {
		// the request exists in Postgres but not in the index: stop
		// trusting the index until it has been rebuilt
		r.geoStaleSeq.Add(1)
		logger.Warn("Failed to index pending request",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}
}

func (r *RequestRepo) unindexPending(ctx context.Context, requestID uuid.UUID) {
	if r.geo == nil {
		return
	}
	if err := r.geo.GeoRemove(ctx, constants.KeyPendingRequestsGeo, requestID.String()); err != nil {
		logger.Warn("Failed to remove request from geo index",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}
}
