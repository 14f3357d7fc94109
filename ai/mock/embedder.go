package mock

import (
	"context"
	"hash/fnv"

	"github.com/poiesic/vecshuffle/core"
)

// DefaultDim is the row width of generated test embeddings. Placeholder
// tests care about row identity and ordering, not realistic widths.
const DefaultDim = 8

// MockEmbedder is a test double for ai.Embedder.
// It allows custom behavior injection via function fields; without
// injection it derives a stable unit row from the input text, so the same
// initializer always seeds the same placeholder base vector.
type MockEmbedder struct {
	// EmbedTextFunc is called by EmbedText if set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc is called by EmbedTexts if set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	// Dim is the width of generated rows. Zero means DefaultDim.
	Dim int

	callCount int
}

// NewMockEmbedder creates a mock embedder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockEmbedder().
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// NewMockEmbedderWithDim creates a mock embedder producing rows of the
// given width, for tests that pin a placeholder's vector dimension.
func NewMockEmbedderWithDim(dim int) *MockEmbedder {
	return &MockEmbedder{Dim: dim}
}

func (m *MockEmbedder) dim() int {
	if m.Dim > 0 {
		return m.Dim
	}
	return DefaultDim
}

// EmbedText returns a deterministic unit row derived from the text.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}

	return initializerRow(text, m.dim()), nil
}

// EmbedTexts returns deterministic unit rows for multiple texts.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	rows := make([][]float32, len(texts))
	for i, text := range texts {
		rows[i] = initializerRow(text, m.dim())
	}
	return rows, nil
}

// CallCount returns the number of times any method was called.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// initializerRow derives a stable unit row from text. An FNV hash seeds an
// LCG stream, so equal text always yields equal rows and different texts
// diverge immediately.
func initializerRow(text string, dim int) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	state := h.Sum64()

	row := make([]float32, dim)
	for i := range row {
		state = state*6364136223846793005 + 1442695040888963407
		// Map to [-0.5, 0.5) so rows aren't all-positive
		row[i] = float32(state>>33%1000)/1000.0 - 0.5
	}
	return core.NormalizeRow(row)
}
