// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateEmbedding validates an Embedding according to domain rules.
//
// Validation rules:
//   - Every row must be non-empty
//   - Every row must have the same width
//
// An empty embedding (zero rows) is valid; it occurs before seeding.
func ValidateEmbedding(e Embedding) error {
	if len(e) == 0 {
		return nil
	}

	width := len(e[0])
	for i, row := range e {
		if len(row) == 0 {
			return fmt.Errorf("%w: %w (row %d)", ErrInvalidEmbedding, ErrEmptyRow, i)
		}
		if len(row) != width {
			return fmt.Errorf("%w: %w (row %d has width %d, expected %d)",
				ErrInvalidEmbedding, ErrRaggedEmbedding, i, len(row), width)
		}
	}

	return nil
}

// ValidatePlaceholder validates a Placeholder according to domain rules.
//
// Validation rules:
//   - Token must not be empty
//   - Embedding must be well formed (uniform row width)
//
// NOT validated:
//   - InitializerText (optional)
//   - ID (0 is valid from database sequences)
func ValidatePlaceholder(p *Placeholder) error {
	if p == nil {
		return fmt.Errorf("%w: placeholder is nil", ErrInvalidPlaceholder)
	}

	if p.Token == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPlaceholder, ErrEmptyToken)
	}

	if err := ValidateEmbedding(p.Embedding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlaceholder, err)
	}

	return nil
}

// ValidateSnapshot validates a Snapshot according to domain rules.
//
// Validation rules:
//   - Step must not be negative
//   - NumVectors must be between 1 and the embedding's row count
//   - Embedding must be well formed
func ValidateSnapshot(s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrInvalidSnapshot)
	}

	if s.Step < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, ErrInvalidStep)
	}

	if err := ValidateEmbedding(s.Embedding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	if s.NumVectors < 1 || s.NumVectors > len(s.Embedding) {
		return fmt.Errorf("%w: %w (%d of %d)", ErrInvalidSnapshot, ErrInvalidVectorCount,
			s.NumVectors, len(s.Embedding))
	}

	return nil
}
