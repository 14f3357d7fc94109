package openai

import (
	"context"
	"log/slog"

	"github.com/poiesic/vecshuffle/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder fetches initializer-text embeddings from an OpenAI-compatible
// endpoint. Placeholder seeding embeds single words or short phrases, so
// every call goes through the documents API in one batch.
type Embedder struct {
	client embeddings.Embedder
	logger *slog.Logger
}

// newEmbedder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Local OpenAI-compatible services accept any token
	llm, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	client, err := embeddings.NewEmbedder(llm, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Embedder{
		client: client,
		logger: slog.Default().With("component", "openai-embedder", "model", config.EmbeddingModel),
	}, nil
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// EmbedText generates the embedding for one initializer text.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	rows, err := e.client.EmbedDocuments(ctx, []string{text})
	if err != nil {
		e.logger.Error("initializer embedding failed", "err", err)
		return nil, err
	}

	if len(rows) == 0 {
		// Callers treat an empty vector as a seeding failure
		e.logger.Warn("endpoint returned no embedding", "length", len(text))
		return []float32{}, nil
	}

	return rows[0], nil
}

// EmbedTexts generates embeddings for multiple texts in a batch.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	rows, err := e.client.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("batch embedding failed", "count", len(texts), "err", err)
		return nil, err
	}

	return rows, nil
}
