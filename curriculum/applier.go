package curriculum

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/vecshuffle/core"
	"github.com/poiesic/vecshuffle/shuffle"
)

// Applier applies a shuffle policy to batches of placeholders concurrently.
// During training every batch draws fresh permutations, so large runs with
// many placeholders fan the work out over a worker pool.
type Applier struct {
	pool     *ants.Pool
	shuffler *shuffle.Shuffler
	mode     shuffle.Mode
	logger   *slog.Logger
	released bool
	mu       sync.Mutex
}

// Option configures an Applier.
type Option func(*Applier) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(a *Applier) error {
		if size < 1 {
			size = 1
		}

		if a.pool != nil {
			a.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		a.pool = pool
		return nil
	}
}

// WithShuffler sets a custom shuffler, e.g. one with a seeded source.
// Default is a fresh shuffler with a random source.
func WithShuffler(s *shuffle.Shuffler) Option {
	return func(a *Applier) error {
		if s == nil {
			return ErrShufflerRequired
		}
		a.shuffler = s
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Applier) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewApplier creates an Applier for a shuffle mode.
// The mode value accepts everything shuffle.ParseMode accepts.
func NewApplier(mode any, opts ...Option) (*Applier, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	a := &Applier{
		pool:     pool,
		shuffler: shuffle.New(),
		mode:     shuffle.ParseMode(mode),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(a); optErr != nil {
			a.Release()
			return nil, optErr
		}
	}

	return a, nil
}

// Mode returns the canonical mode the applier was built with.
func (a *Applier) Mode() shuffle.Mode {
	return a.mode
}

// Apply reorders every placeholder's embedding with the applier's policy.
// numVectors has shuffle.Func semantics (<= 0 means all rows) and applies
// to every placeholder in the batch. Results are returned in input order;
// inputs are never mutated.
func (a *Applier) Apply(ctx context.Context, placeholders []*core.Placeholder, numVectors int) ([]core.Embedding, error) {
	return a.apply(ctx, placeholders, func(*core.Placeholder) int {
		return numVectors
	})
}

// ApplyAt is Apply with the active count taken from a schedule at a step.
// The schedule's count can exceed a short placeholder's rows; it is
// clamped per placeholder rather than failing the batch.
func (a *Applier) ApplyAt(ctx context.Context, sched Schedule, step int, placeholders []*core.Placeholder) ([]core.Embedding, error) {
	if err := sched.Validate(); err != nil {
		return nil, err
	}

	count := sched.VectorsAt(step)
	return a.apply(ctx, placeholders, func(p *core.Placeholder) int {
		if rows := p.Embedding.NumVectors(); count > rows {
			return rows
		}
		return count
	})
}

func (a *Applier) apply(ctx context.Context, placeholders []*core.Placeholder, countFor func(*core.Placeholder) int) ([]core.Embedding, error) {
	a.mu.Lock()
	if a.released {
		a.mu.Unlock()
		return nil, ErrApplierReleased
	}
	pool := a.pool
	a.mu.Unlock()

	if len(placeholders) == 0 {
		return nil, nil
	}

	fn := a.shuffler.Get(a.mode)
	results := make([]core.Embedding, len(placeholders))

	var wg sync.WaitGroup
	for i, placeholder := range placeholders {
		if err := ctx.Err(); err != nil {
			break
		}

		i, placeholder := i, placeholder
		n := countFor(placeholder)
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i] = fn(placeholder.Embedding, n)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.logger.Debug("applied shuffle batch", "mode", a.mode, "count", len(placeholders))
	return results, nil
}

// Release shuts down the worker pool. The applier cannot be used afterwards.
func (a *Applier) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return
	}
	a.released = true
	if a.pool != nil {
		a.pool.Release()
	}
}
