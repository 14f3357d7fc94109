package shuffle

import (
	"github.com/poiesic/vecshuffle/core"
)

// Func applies a reordering policy to an embedding.
//
// numVectors selects how many leading rows are active; values <= 0 mean all
// rows. The result always has exactly numVectors rows (row content is
// shared with the input, never copied or mutated). Passing a count larger
// than the embedding's row count violates the policy precondition and
// panics.
type Func func(emb core.Embedding, numVectors int) core.Embedding

// Shuffler holds the permutation source used by its policies.
// The zero value is not usable; create one with New.
type Shuffler struct {
	src Source
}

// Option configures a Shuffler.
type Option func(*Shuffler)

// WithSource sets the permutation source.
// Default is a randomly seeded thread-safe PCG source.
func WithSource(src Source) Option {
	return func(s *Shuffler) {
		if src != nil {
			s.src = src
		}
	}
}

// New creates a Shuffler.
func New(opts ...Option) *Shuffler {
	s := &Shuffler{src: NewRandomSource()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the policy function for a canonical mode.
// Unrecognized modes map to Off, mirroring ParseMode's fallback.
func (s *Shuffler) Get(mode Mode) Func {
	switch mode {
	case ModeAll:
		return s.All
	case ModeDynamic:
		return s.Dynamic
	case ModeProgressive:
		return s.Progressive
	case ModeBetween:
		return s.Between
	case ModeTrailing:
		return s.Trailing
	case ModeLeading:
		return s.Leading
	}
	return s.Off
}

// Off performs no shuffling, but will still trim to the active count.
func (s *Shuffler) Off(emb core.Embedding, numVectors int) core.Embedding {
	n := resolveCount(emb, numVectors)
	if n == len(emb) {
		return emb
	}
	return emb[:n]
}

// All shuffles all active rows.
func (s *Shuffler) All(emb core.Embedding, numVectors int) core.Embedding {
	n := resolveCount(emb, numVectors)
	if n < 2 {
		// No effect with fewer than 2 vectors.
		return s.Off(emb, numVectors)
	}

	trim := emb[:n]
	return gather(trim, s.src.Perm(n))
}

// Trailing shuffles everything after the first row.
func (s *Shuffler) Trailing(emb core.Embedding, numVectors int) core.Embedding {
	n := resolveCount(emb, numVectors)
	if n < 3 {
		// No effect with fewer than 3 vectors.
		return s.Off(emb, numVectors)
	}

	trim := emb[:n]
	idx := make([]int, 0, n)
	idx = append(idx, 0)
	for _, j := range s.src.Perm(n - 1) {
		idx = append(idx, j+1)
	}
	return gather(trim, idx)
}

// Leading shuffles everything before the last active row.
func (s *Shuffler) Leading(emb core.Embedding, numVectors int) core.Embedding {
	n := resolveCount(emb, numVectors)
	if n < 3 {
		// No effect with fewer than 3 vectors.
		return s.Off(emb, numVectors)
	}

	trim := emb[:n]
	idx := append(s.src.Perm(n-1), n-1)
	return gather(trim, idx)
}

// Between shuffles between the first and last active rows.
func (s *Shuffler) Between(emb core.Embedding, numVectors int) core.Embedding {
	n := resolveCount(emb, numVectors)
	if n < 4 {
		// No effect with fewer than 4 vectors.
		return s.Off(emb, numVectors)
	}

	trim := emb[:n]
	idx := make([]int, 0, n)
	idx = append(idx, 0)
	for _, j := range s.src.Perm(n - 2) {
		idx = append(idx, j+1)
	}
	idx = append(idx, n-1)
	return gather(trim, idx)
}

// Progressive always includes the first row and the final row of the FULL
// embedding (not the trimmed prefix) while shuffling the rows in between.
// Unlike Dynamic, this establishes stable intro and outro vectors as soon
// as two rows are active, which is what progressive-words training wants:
// the active count grows over time but the true last vector should settle
// early.
func (s *Shuffler) Progressive(emb core.Embedding, numVectors int) core.Embedding {
	n := resolveCount(emb, numVectors)
	if n < 2 {
		// No effect with fewer than 2 vectors.
		return s.Off(emb, numVectors)
	}

	lastIdx := len(emb) - 1
	if n == 2 {
		// Only [<first>, <last>].
		return gather(emb, []int{0, lastIdx})
	}

	// Now [<first>, ...<random 1..n-1>, <last>].
	idx := make([]int, 0, n)
	idx = append(idx, 0)
	for _, j := range s.src.Perm(n - 2) {
		idx = append(idx, j+1)
	}
	idx = append(idx, lastIdx)
	return gather(emb, idx)
}

// Dynamic tries to always perform a shuffle when possible.
//
// The policy depends on the active count:
//   - 4 or more uses Between
//   - 3 uses Trailing
//   - 2 or fewer uses All
func (s *Shuffler) Dynamic(emb core.Embedding, numVectors int) core.Embedding {
	n := resolveCount(emb, numVectors)
	if n >= 4 {
		return s.Between(emb, n)
	}
	if n == 3 {
		return s.Trailing(emb, n)
	}
	return s.All(emb, n)
}

// defaultShuffler backs the package-level Get.
var defaultShuffler = New()

// Get returns the policy function for a mode value, accepting everything
// ParseMode accepts (bools, mode names, the "on" alias). Unrecognized
// values yield the Off policy.
func Get(v any) Func {
	return defaultShuffler.Get(ParseMode(v))
}

// resolveCount maps the optional count to a concrete row count.
func resolveCount(emb core.Embedding, numVectors int) int {
	if numVectors <= 0 {
		return len(emb)
	}
	return numVectors
}

// gather builds a new embedding whose row i is src row idx[i].
// Rows are shared, not copied; policies never write through them.
func gather(src core.Embedding, idx []int) core.Embedding {
	out := make(core.Embedding, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}
	return out
}
