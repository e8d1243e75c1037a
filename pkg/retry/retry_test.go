package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy() Policy {
	return Policy{
		MaxTries:        3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
	}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := fastPolicy().Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsTries(t *testing.T) {
	boom := errors.New("still broken")

	calls := 0
	err := fastPolicy().Do(context.Background(), func() error {
		calls++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentStopsImmediately(t *testing.T) {
	boom := errors.New("no such table")

	calls := 0
	err := fastPolicy().Do(context.Background(), func() error {
		calls++
		return Permanent(boom)
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestDo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fastPolicy().Do(ctx, func() error {
		return errors.New("temporary")
	})

	require.Error(t, err)
}
