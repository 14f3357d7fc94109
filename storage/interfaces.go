package storage

import (
	"context"

	"github.com/poiesic/vecshuffle/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// SimilarMatch pairs a placeholder with its similarity score.
type SimilarMatch struct {
	Placeholder *core.Placeholder
	Score       float32
}

// PlaceholderRepository provides operations for managing placeholder records.
type PlaceholderRepository interface {
	Repository

	// AddPlaceholders adds one or more placeholders to storage.
	// For records with ID=0, derives a content ID from the token.
	// Sets InsertedAt timestamp.
	// Returns ErrDuplicateToken if another record already uses a token.
	AddPlaceholders(ctx context.Context, placeholders ...*core.Placeholder) ([]*core.Placeholder, error)

	// UpdatePlaceholders updates existing placeholders.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdatePlaceholders(ctx context.Context, placeholders ...*core.Placeholder) ([]*core.Placeholder, error)

	// DeletePlaceholders removes placeholders by their IDs, along with the
	// token index entries and any snapshots.
	// Returns ErrNotFound if any record doesn't exist.
	DeletePlaceholders(ctx context.Context, ids ...core.ID) error

	// GetPlaceholder retrieves a single placeholder by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetPlaceholder(ctx context.Context, id core.ID) (*core.Placeholder, error)

	// GetPlaceholderByToken retrieves a placeholder by its token.
	// Returns ErrNotFound if no record uses the token.
	GetPlaceholderByToken(ctx context.Context, token string) (*core.Placeholder, error)

	// ListPlaceholders retrieves all placeholders, ordered by token.
	ListPlaceholders(ctx context.Context) ([]*core.Placeholder, error)

	// FindSimilar finds placeholders whose first embedding row is similar to
	// the given vector (cosine over normalized vectors). Returns matches
	// with similarity >= minSimilarity, up to limit results, ordered by
	// score descending.
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*SimilarMatch, error)
}

// SnapshotRepository provides operations for per-step training snapshots.
type SnapshotRepository interface {
	Repository

	// SaveSnapshot persists a snapshot of a placeholder at a training step.
	// Saving the same (placeholder, step) twice overwrites the earlier one.
	SaveSnapshot(ctx context.Context, snapshot *core.Snapshot) error

	// GetSnapshot retrieves the snapshot for a placeholder at a step.
	// Returns ErrNotFound if no snapshot exists for that step.
	GetSnapshot(ctx context.Context, placeholderID core.ID, step int) (*core.Snapshot, error)

	// ListSnapshots retrieves all snapshots for a placeholder, ordered by
	// step ascending.
	ListSnapshots(ctx context.Context, placeholderID core.ID) ([]*core.Snapshot, error)

	// LatestSnapshot retrieves the snapshot with the highest step for a
	// placeholder. Returns ErrNotFound if none exist.
	LatestSnapshot(ctx context.Context, placeholderID core.ID) (*core.Snapshot, error)
}
