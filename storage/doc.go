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


// Package storage defines the persistence interfaces for placeholder
// embeddings and their training snapshots.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - PlaceholderRepository: Operations for placeholder records
//   - SnapshotRepository: Operations for per-step training snapshots
//
// Serialization uses MUS-format codecs generated for the core types; the
// wrappers in this package are the only place the generated code is
// touched directly.
//
// # Usage
//
// Create repositories over a badger backend:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	repo, err := badger.NewPlaceholderRepository(backend)
//
// Use in tests with in-memory storage:
//
//	repo, snapRepo, backend, err := badger.NewMemoryRepositories()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support. Pass context.Background() for operations
// without specific timeout requirements.
package storage
