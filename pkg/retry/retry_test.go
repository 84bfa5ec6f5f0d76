package retry

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	policy := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}

	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	policy := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2}

	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return eris.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	policy := Policy{MaxAttempts: 4, BaseDelay: time.Millisecond}
	failure := eris.New("permanent")

	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return failure
	})

	require.Error(t, err)
	assert.Equal(t, failure, err)
	assert.Equal(t, 4, calls)
}

func TestDoZeroValueRunsOnce(t *testing.T) {
	calls := 0
	var policy Policy

	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return eris.New("nope")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	policy := Policy{MaxAttempts: 5, BaseDelay: time.Hour}

	err := policy.Do(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return eris.New("fail then wait")
	})

	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 1, calls)
}
