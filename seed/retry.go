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


package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// retryEmbed runs an embedding call with exponential backoff. Seeding hits
// the embedding endpoint once per placeholder, so a transient failure there
// fails the whole placeholder; retrying locally is cheaper than retrying a
// training run.
//
// The delay doubles after each failed attempt. When every attempt fails the
// last error is wrapped in ErrRetriesExhausted.
func retryEmbed(ctx context.Context, logger *slog.Logger, call func(ctx context.Context) error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error
	delay := baseDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = call(ctx)
		if lastErr == nil {
			if attempt > 1 {
				logger.Debug("embedding call recovered", "attempt", attempt)
			}
			return nil
		}

		if attempt == maxAttempts {
			break
		}

		logger.Debug("embedding call failed, backing off",
			"attempt", attempt, "maxAttempts", maxAttempts, "delay", delay, "err", lastErr)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, maxAttempts, lastErr)
}
