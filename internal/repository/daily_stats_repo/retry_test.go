package daily_stats_repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheel_backend/internal/model"
	"wheel_backend/pkg/retry"
)

type flakyRepo struct {
	failures int
	calls    int
}

func (r *flakyRepo) GetToday(_ context.Context) (*model.DailyStats, error) {
	r.calls++
	if r.calls <= r.failures {
		return nil, errors.New("connection refused")
	}
	return &model.DailyStats{TotalWins: 100}, nil
}

func (r *flakyRepo) IncrementToday(_ context.Context, _ int) error {
	r.calls++
	if r.calls <= r.failures {
		return errors.New("connection refused")
	}
	return nil
}

func testPolicy() retry.Policy {
	return retry.Policy{
		MaxTries:        3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
	}
}

func TestRetrying_GetTodayRecovers(t *testing.T) {
	inner := &flakyRepo{failures: 2}
	repo := NewRetrying(inner, testPolicy())

	stats, err := repo.GetToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(100), stats.TotalWins)
	assert.Equal(t, 3, inner.calls)
}

func TestRetrying_IncrementGivesUp(t *testing.T) {
	inner := &flakyRepo{failures: 10}
	repo := NewRetrying(inner, testPolicy())

	err := repo.IncrementToday(context.Background(), 500)
	require.Error(t, err)
	assert.Equal(t, 3, inner.calls)
}
