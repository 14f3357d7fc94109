package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Embedding is an ordered sequence of fixed-width float32 rows. Each row is
// one learned vector of a placeholder token; row order is the order the
// vectors are fed to the consuming model.
type Embedding [][]float32

// NumVectors returns the number of rows.
func (e Embedding) NumVectors() int {
	return len(e)
}

// Dim returns the row width, or 0 for an empty embedding.
func (e Embedding) Dim() int {
	if len(e) == 0 {
		return 0
	}
	return len(e[0])
}

// Clone returns a deep copy of the embedding.
func (e Embedding) Clone() Embedding {
	if e == nil {
		return nil
	}
	out := make(Embedding, len(e))
	for i, row := range e {
		out[i] = make([]float32, len(row))
		copy(out[i], row)
	}
	return out
}

// Row returns row i. Panics if i is out of range, like any slice index.
func (e Embedding) Row(i int) []float32 {
	return e[i]
}

// Placeholder represents a learned multi-vector token: a short sequence of
// embedding vectors substituting for a rare or new token in a generative
// model's input representation.
type Placeholder struct {
	Id              ID
	Token           string
	InitializerText string            // Text whose embedding seeded the vectors (may be empty)
	Embedding       Embedding         // Learned vectors, row 0 first in token order
	InsertedAt      time.Time         // When the placeholder was inserted into the database
	UpdatedAt       time.Time         // When the placeholder was last updated
	Metadata        map[string]string // Optional metadata (e.g., "model", "run")
}

// Snapshot captures a placeholder's embedding at a training step.
// NumVectors records how many rows were active at that step, which may be
// fewer than the full embedding during progressive-words training.
type Snapshot struct {
	PlaceholderId ID
	Step          int
	NumVectors    int
	Embedding     Embedding
	UpdatedAt     time.Time
}
