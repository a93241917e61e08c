package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/safekids/app-safekids/internal/logging"
	"go.uber.org/zap"
)

// OptimisticLockError represents an optimistic locking conflict
type OptimisticLockError struct {
	Resource string
	Message  string
}

func (e OptimisticLockError) Error() string {
	return fmt.Sprintf("optimistic lock conflict for %s: %s", e.Resource, e.Message)
}

// IsOptimisticLockError reports whether err wraps an OptimisticLockError
func IsOptimisticLockError(err error) bool {
	var lockErr OptimisticLockError
	return errors.As(err, &lockErr)
}

// RetryBaseBackoff is the first retry delay; it doubles on every attempt.
var RetryBaseBackoff = 100 * time.Millisecond

// RetryWithOptimisticLock retries an operation with exponential backoff on optimistic lock conflicts
func RetryWithOptimisticLock(ctx context.Context, maxRetries int, operation func() error) error {
	logger := logging.Logger.With(zap.String("operation", "retry_with_optimistic_lock"))

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		if !IsOptimisticLockError(err) {
			return err
		}

		if attempt == maxRetries {
			logger.Error("max retries reached for optimistic lock",
				zap.Int("attempts", attempt+1),
				zap.Error(err))
			return err
		}

		backoff := time.Duration(1<<attempt) * RetryBaseBackoff
		logger.Info("optimistic lock conflict, retrying",
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", backoff))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("max retries exceeded")
}
