package requester

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("Loading Is True Only While The Request Runs", func(t *testing.T) {
		executor := NewRequestExecutor()
		assert.False(t, executor.Loading())

		err := executor.Run(ctx, func(ctx context.Context) error {
			assert.True(t, executor.Loading(), "loading should be true inside the request")
			return nil
		})

		assert.NoError(t, err)
		assert.False(t, executor.Loading())
	})

	t.Run("Error Is Returned And Loading Resets", func(t *testing.T) {
		executor := NewRequestExecutor()
		failure := errors.New("backend down")

		err := executor.Run(ctx, func(ctx context.Context) error {
			return failure
		})

		assert.ErrorIs(t, err, failure)
		assert.False(t, executor.Loading(), "loading should reset after a failure")
	})

	t.Run("Panic Propagates And Loading Resets", func(t *testing.T) {
		executor := NewRequestExecutor()

		assert.Panics(t, func() {
			executor.Run(ctx, func(ctx context.Context) error {
				panic("boom")
			})
		})
		assert.False(t, executor.Loading(), "loading should reset after a panic")
	})

	t.Run("Overlapping Requests Keep Loading Until The Last Settles", func(t *testing.T) {
		executor := NewRequestExecutor()
		firstStarted := make(chan struct{})
		releaseFirst := make(chan struct{})
		firstDone := make(chan struct{})

		go func() {
			defer close(firstDone)
			executor.Run(ctx, func(ctx context.Context) error {
				close(firstStarted)
				<-releaseFirst
				return nil
			})
		}()
		<-firstStarted

		executor.Run(ctx, func(ctx context.Context) error {
			return nil
		})
		assert.True(t, executor.Loading(), "first request is still in flight")

		close(releaseFirst)
		<-firstDone
		assert.False(t, executor.Loading())
	})
}
