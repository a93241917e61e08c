package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimisticLockError(t *testing.T) {
	err := OptimisticLockError{Resource: "cultos", Message: "expected version 1"}
	assert.Equal(t, "optimistic lock conflict for cultos: expected version 1", err.Error())

	wrapped := errors.Join(errors.New("context"), err)
	assert.True(t, IsOptimisticLockError(wrapped))
	assert.False(t, IsOptimisticLockError(errors.New("other")))
}

func TestRetryWithOptimisticLock(t *testing.T) {
	orig := RetryBaseBackoff
	RetryBaseBackoff = time.Millisecond
	defer func() { RetryBaseBackoff = orig }()

	t.Run("succeeds after conflicts", func(t *testing.T) {
		calls := 0
		err := RetryWithOptimisticLock(context.Background(), 3, func() error {
			calls++
			if calls < 3 {
				return OptimisticLockError{Resource: "cultos"}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := RetryWithOptimisticLock(context.Background(), 3, func() error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryWithOptimisticLock(context.Background(), 2, func() error {
			calls++
			return OptimisticLockError{Resource: "cultos"}
		})
		assert.True(t, IsOptimisticLockError(err))
		assert.Equal(t, 3, calls)
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := RetryWithOptimisticLock(ctx, 5, func() error {
			return OptimisticLockError{Resource: "cultos"}
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
