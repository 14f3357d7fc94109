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


package curriculum

import "fmt"

// Schedule describes progressive-words training: the number of active
// placeholder vectors grows over training steps, so early steps train a
// short prefix and later steps the full embedding.
type Schedule struct {
	// InitialVectors is the active count at step 0. Must be >= 1.
	InitialVectors int

	// MaxVectors is the count the schedule grows toward. Must be >= InitialVectors.
	MaxVectors int

	// StepsPerVector is how many steps pass before one more vector
	// activates. Must be >= 1.
	StepsPerVector int
}

// Validate checks the schedule parameters.
func (s Schedule) Validate() error {
	if s.InitialVectors < 1 {
		return fmt.Errorf("%w: InitialVectors must be >= 1, got %d", ErrInvalidSchedule, s.InitialVectors)
	}
	if s.MaxVectors < s.InitialVectors {
		return fmt.Errorf("%w: MaxVectors %d below InitialVectors %d", ErrInvalidSchedule, s.MaxVectors, s.InitialVectors)
	}
	if s.StepsPerVector < 1 {
		return fmt.Errorf("%w: StepsPerVector must be >= 1, got %d", ErrInvalidSchedule, s.StepsPerVector)
	}
	return nil
}

// VectorsAt returns the active vector count at a training step.
// Steps before 0 are treated as step 0; the count never exceeds MaxVectors.
func (s Schedule) VectorsAt(step int) int {
	if step < 0 {
		step = 0
	}
	n := s.InitialVectors + step/s.StepsPerVector
	if n > s.MaxVectors {
		return s.MaxVectors
	}
	return n
}

// Complete reports whether the schedule has reached MaxVectors at a step.
func (s Schedule) Complete(step int) bool {
	return s.VectorsAt(step) == s.MaxVectors
}
