package daily_stats_repo

import (
	"context"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
	"wheel_backend/pkg/retry"
)

// retryingRepo - декоратор с повторами вокруг репозитория дневной статистики.
// Кратковременные сбои хранилища не должны ронять прокрут
type retryingRepo struct {
	inner  repository.DailyStatsRepository
	policy retry.Policy
}

func NewRetrying(inner repository.DailyStatsRepository, policy retry.Policy) repository.DailyStatsRepository {
	return &retryingRepo{
		inner:  inner,
		policy: policy,
	}
}

func (r *retryingRepo) GetToday(ctx context.Context) (*model.DailyStats, error) {
	var stats *model.DailyStats
	err := r.policy.Do(ctx, func() error {
		var err error
		stats, err = r.inner.GetToday(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *retryingRepo) IncrementToday(ctx context.Context, amount int) error {
	return r.policy.Do(ctx, func() error {
		return r.inner.IncrementToday(ctx, amount)
	})
}
