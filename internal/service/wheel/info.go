package wheel

import (
	"context"
	"errors"
	"time"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
)

// Timer - билеты пользователя и время до следующего бесплатного прокрута
func (s *serv) Timer(ctx context.Context, userID int64) (*model.TimerInfo, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	cfg := s.cfgProvider.Current()
	now := time.Now()

	info := &model.TimerInfo{
		Tickets:        user.Tickets,
		CanGetFreeSpin: user.CanGetFreeSpin(cfg.FreeSpinInterval, now),
	}
	if info.CanGetFreeSpin {
		info.TimeUntilNextSpin = "00:00"
	} else {
		info.TimeUntilNextSpin = user.TimeUntilFreeSpin(cfg.FreeSpinInterval, now)
	}

	return info, nil
}

// Probabilities - текущее распределение секторов и состояние дневного лимита
func (s *serv) Probabilities(ctx context.Context) (*model.ProbabilitiesInfo, error) {
	cfg := s.cfgProvider.Current()

	stats, err := s.todayStats(ctx)
	if err != nil {
		return nil, err
	}

	fraction, err := s.fractionUsed(ctx, cfg.DailyCap)
	if err != nil {
		return nil, err
	}

	return &model.ProbabilitiesInfo{
		Stats:         *stats,
		DailyCap:      cfg.DailyCap,
		FractionUsed:  fraction,
		Probabilities: CalculateProbabilities(cfg.Sectors, fraction),
	}, nil
}

// History - последние прокруты пользователя
func (s *serv) History(ctx context.Context, userID int64, limit int) ([]model.Game, error) {
	return s.gameRepo.GetGamesByUser(ctx, userID, limit)
}

// UpdateConfig - применяет новую конфигурацию колеса и сохраняет ее в файл
func (s *serv) UpdateConfig(_ context.Context, cfg model.WheelConfig) error {
	return s.cfgProvider.Rewrite(cfg)
}
