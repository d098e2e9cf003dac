package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/segyhp/affordability-engine/internal/domain"
)

// CalculationRepository defines the interface for persisted affordability runs
type CalculationRepository interface {
	// EnsureSchema creates the calculations table if it does not exist
	EnsureSchema(ctx context.Context) error

	// Save stores a calculation
	Save(ctx context.Context, calc *domain.Calculation) error

	// GetByID retrieves a calculation by ID. Returns ErrCalculationNotFound
	// when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error)

	// List returns the most recent calculations, newest first
	List(ctx context.Context, limit int) ([]*domain.CalculationSummary, error)

	// DeleteOlderThan removes calculations created before cutoff
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Cache stores serialized results by key
type Cache interface {
	// Get returns the cached value and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key for ttl. A zero ttl means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	Ping(ctx context.Context) error
}
