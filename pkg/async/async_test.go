package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchkit/punchkit/pkg/async"
)

func TestGo(t *testing.T) {
	t.Parallel()

	t.Run("resolves with the function result", func(t *testing.T) {
		t.Parallel()
		f := async.Go(context.Background(), func(context.Context) (int, error) {
			return 42, nil
		})

		result, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("resolves with the function error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		f := async.Go(context.Background(), func(context.Context) (int, error) {
			return 0, boom
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context short-circuits", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		f := async.Go(ctx, func(context.Context) (int, error) {
			ran = true
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran)
	})

	t.Run("await can be called more than once", func(t *testing.T) {
		t.Parallel()
		f := async.Go(context.Background(), func(context.Context) (string, error) {
			return "ok", nil
		})

		for i := 0; i < 3; i++ {
			result, err := f.Await()
			require.NoError(t, err)
			assert.Equal(t, "ok", result)
		}
	})
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("returns before the timeout", func(t *testing.T) {
		t.Parallel()
		f := async.Go(context.Background(), func(context.Context) (int, error) {
			return 7, nil
		})

		result, err := f.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, 7, result)
	})

	t.Run("times out on a slow computation", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		defer close(release)

		f := async.Go(context.Background(), func(context.Context) (int, error) {
			<-release
			return 7, nil
		})

		_, err := f.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
	})
}

func TestDone(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := async.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	assert.False(t, f.Done())
	close(release)

	_, err := f.Await()
	require.NoError(t, err)
	assert.True(t, f.Done())
}

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("preserves argument order", func(t *testing.T) {
		t.Parallel()
		futures := make([]*async.Future[int], 4)
		for i := range futures {
			i := i
			futures[i] = async.Go(context.Background(), func(context.Context) (int, error) {
				return i * 10, nil
			})
		}

		results, err := async.All(futures...)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 10, 20, 30}, results)
	})

	t.Run("returns the first error and all results", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		futures := []*async.Future[int]{
			async.Go(context.Background(), func(context.Context) (int, error) { return 1, nil }),
			async.Go(context.Background(), func(context.Context) (int, error) { return 0, boom }),
			async.Go(context.Background(), func(context.Context) (int, error) { return 3, nil }),
		}

		results, err := async.All(futures...)
		assert.ErrorIs(t, err, boom)
		assert.Len(t, results, 3)
		assert.Equal(t, 3, results[2])
	})

	t.Run("no futures", func(t *testing.T) {
		t.Parallel()
		results, err := async.All[int]()
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
