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

import "errors"

// Domain validation errors
var (
	// ErrInvalidPlaceholder indicates a Placeholder failed validation.
	ErrInvalidPlaceholder = errors.New("invalid placeholder")

	// ErrInvalidEmbedding indicates an Embedding failed validation.
	ErrInvalidEmbedding = errors.New("invalid embedding")

	// ErrInvalidSnapshot indicates a Snapshot failed validation.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrEmptyToken indicates the Token field is empty.
	ErrEmptyToken = errors.New("token cannot be empty")

	// ErrEmptyRow indicates an embedding row has zero width.
	ErrEmptyRow = errors.New("embedding row cannot be empty")

	// ErrRaggedEmbedding indicates embedding rows have differing widths.
	ErrRaggedEmbedding = errors.New("embedding rows must have the same width")

	// ErrInvalidStep indicates a negative training step.
	ErrInvalidStep = errors.New("step cannot be negative")

	// ErrInvalidVectorCount indicates a snapshot vector count outside the
	// embedding's row range.
	ErrInvalidVectorCount = errors.New("vector count out of range")
)
