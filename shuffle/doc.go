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


// Package shuffle implements reordering policies for placeholder embeddings.
//
// A placeholder embedding is a short ordered sequence of learned vectors.
// Shuffling the vector order during training reduces overfitting to a
// particular ordering; anchoring the first and/or last vector preserves a
// stable intro or outro signal while the interior is randomized.
//
// # Policies
//
// Each policy takes an embedding and a vector count and returns a reordered
// copy of the first count rows:
//
//   - Off: identity, only trims to count
//   - All: permutes all count rows
//   - Trailing: keeps row 0 fixed, permutes the rest
//   - Leading: permutes all but the final row
//   - Between: keeps the first and final rows fixed, permutes the interior
//   - Progressive: like Between, but the outro anchor is the final row of
//     the full embedding rather than row count-1, so the true last vector
//     stabilizes early while the active prefix grows during training
//   - Dynamic: picks Between, Trailing, or All based on count
//
// Policies that need more rows than they are given degrade to Off rather
// than failing.
//
// # Usage
//
//	s := shuffle.New(shuffle.WithSource(shuffle.NewPCGSource(1, 2)))
//	fn := s.Get(shuffle.ParseMode("between"))
//	reordered := fn(placeholder.Embedding, numVectors)
//
// Or with the package-level default shuffler:
//
//	reordered := shuffle.Get("dynamic")(placeholder.Embedding, 0)
//
// # Count semantics
//
// numVectors <= 0 means "all rows". Callers must not pass a count larger
// than the embedding's row count; this precondition is not validated and
// the trim will panic on violation.
//
// # Concurrency
//
// Policies are stateless and never mutate their input. A Shuffler is safe
// for concurrent use when its Source is; the default source is locked.
package shuffle
