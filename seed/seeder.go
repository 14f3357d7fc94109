package seed

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/poiesic/vecshuffle/ai"
	"github.com/poiesic/vecshuffle/core"
)

const (
	defaultMaxRetries     = 3
	defaultRetryBaseDelay = 1 * time.Second
	defaultJitterScale    = 0.01
)

// Seeder builds initial placeholder embeddings from initializer text.
//
// Textual-inversion training starts a new token's vectors from the embedding
// of an existing word. Row 0 is the initializer's embedding itself; further
// rows add small deterministic jitter per row so multi-vector placeholders
// don't start as identical copies.
type Seeder struct {
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
	jitterScale    float32
	logger         *slog.Logger
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithMaxRetries sets the maximum number of embedding attempts.
// Default is 3.
func WithMaxRetries(n int) Option {
	return func(s *Seeder) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// WithRetryBaseDelay sets the base delay for exponential backoff.
// Default is 1 second.
func WithRetryBaseDelay(d time.Duration) Option {
	return func(s *Seeder) {
		if d > 0 {
			s.retryBaseDelay = d
		}
	}
}

// WithJitterScale sets the magnitude of the per-row jitter applied to rows
// after the first. Default is 0.01.
func WithJitterScale(scale float32) Option {
	return func(s *Seeder) {
		if scale > 0 {
			s.jitterScale = scale
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Seeder) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSeeder creates a Seeder around an embedder.
func NewSeeder(embedder ai.Embedder, opts ...Option) (*Seeder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Seeder{
		embedder:       embedder,
		maxRetries:     defaultMaxRetries,
		retryBaseDelay: defaultRetryBaseDelay,
		jitterScale:    defaultJitterScale,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Seed creates a placeholder whose embedding is derived from the
// initializer text. The result has exactly numVectors rows, each
// unit-normalized; the placeholder is not persisted.
func (s *Seeder) Seed(ctx context.Context, token, initializer string, numVectors int) (*core.Placeholder, error) {
	if numVectors < 1 {
		return nil, ErrInvalidVectorCount
	}
	if initializer == "" {
		return nil, ErrEmptyInitializer
	}

	s.logger.Debug("seeding placeholder", "token", token, "initializer", initializer, "vectors", numVectors)

	// Embed the initializer text with retry
	var vector []float32
	err := retryEmbed(ctx, s.logger, func(ctx context.Context) error {
		var err error
		vector, err = s.embedder.EmbedText(ctx, initializer)
		return err
	}, s.maxRetries, s.retryBaseDelay)
	if err != nil {
		return nil, fmt.Errorf("seeding %q: %w", token, err)
	}
	if len(vector) == 0 {
		return nil, ErrEmptyEmbedding
	}

	base := core.NormalizeRow(vector)

	embedding := make(core.Embedding, numVectors)
	embedding[0] = base
	for i := 1; i < numVectors; i++ {
		embedding[i] = core.NormalizeRow(s.jitterRow(base, token, i))
	}

	placeholder := &core.Placeholder{
		Token:           token,
		InitializerText: initializer,
		Embedding:       embedding,
	}
	if err := core.ValidatePlaceholder(placeholder); err != nil {
		return nil, err
	}
	return placeholder, nil
}

// jitterRow returns a copy of base perturbed deterministically for
// (token, row). The same token always seeds the same rows.
func (s *Seeder) jitterRow(base []float32, token string, row int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(token))
	h.Write([]byte{byte(row), byte(row >> 8)})
	state := h.Sum32()

	out := make([]float32, len(base))
	for i, v := range base {
		state = state*1664525 + 1013904223 // LCG constants
		// Map to [-1, 1) before scaling
		noise := float32(int32(state%2000)-1000) / 1000.0
		out[i] = v + noise*s.jitterScale
	}
	return out
}
