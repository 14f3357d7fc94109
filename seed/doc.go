// Package seed builds initial placeholder embeddings from initializer text.
//
// Textual-inversion training starts a new token's vectors from the
// embedding of an existing word: the Seeder embeds the initializer through
// an ai.Embedder (with exponential-backoff retry), unit-normalizes it, and
// expands it to the requested vector count with small deterministic
// per-row jitter so multi-vector placeholders don't start as identical
// copies.
package seed
