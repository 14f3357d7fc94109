package seed

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrInvalidMaxAttempts is returned when retry attempts is not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")

	// ErrRetriesExhausted wraps the last embedder error after every retry
	// attempt has failed.
	ErrRetriesExhausted = errors.New("embedding retries exhausted")

	// ErrInvalidVectorCount is returned when the requested vector count is
	// not positive.
	ErrInvalidVectorCount = errors.New("vector count must be greater than zero")

	// ErrEmptyInitializer is returned when the initializer text is empty.
	ErrEmptyInitializer = errors.New("initializer text cannot be empty")

	// ErrEmptyEmbedding is returned when the embedder produces no vector.
	ErrEmptyEmbedding = errors.New("embedder returned an empty vector")
)
