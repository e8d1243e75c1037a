package wheel

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
)

const statsCacheTTL = time.Minute

// Spin - выполняет один прокрут колеса для пользователя.
//
// Весь процесс идет в одной транзакции: чтение билетов, выбор сектора,
// списание билета с начислением выигрыша, инкремент дневного агрегата
// и запись истории. Откат транзакции означает, что выигрыш не состоялся
// и клиенту он не показывается.
//
// Дневной лимит - мягкая гарантия: агрегат может читаться чуть устаревшим
// при параллельных прокрутах, сами инкременты при этом не теряются
func (s *serv) Spin(ctx context.Context, userID int64) (*model.SpinResult, error) {
	// Конфигурация перечитывается на каждом прокруте: админ мог поменять
	// сектора или лимит на лету
	cfg := s.cfgProvider.Current()

	var res *model.SpinResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUser(txCtx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		now := time.Now()

		// Билетов нет - либо выдаем бесплатный по таймеру, либо отказываем
		if !user.CanSpin() {
			if !user.CanGetFreeSpin(cfg.FreeSpinInterval, now) {
				return ErrNoTickets
			}

			if err := s.userRepo.AddTickets(txCtx, userID, 1); err != nil {
				return err
			}
			if err := s.userRepo.MarkFreeSpinGranted(txCtx, userID); err != nil {
				return err
			}
			user.Tickets++
			user.LastFreeSpin = now

			zap.L().Info("granted free spin", zap.Int64("user_id", userID))
		}

		// Сколько дневного лимита уже выплачено
		fraction, err := s.fractionUsed(txCtx, cfg.DailyCap)
		if err != nil {
			return err
		}

		// КЛЮЧЕВОЙ ВЫЗОВ
		// Распределение с учетом расхода лимита и взвешенный выбор сектора
		probs := CalculateProbabilities(cfg.Sectors, fraction)
		result := SelectWinningSector(probs, s.rnd)

		// Списание билета и начисление выигрыша одним условным UPDATE.
		// ok=false - билет успели потратить в параллельном запросе
		remaining, ok, err := s.userRepo.ConsumeTicketAndCredit(txCtx, userID, result)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoTickets
		}

		if err := s.dailyRepo.IncrementToday(txCtx, result); err != nil {
			return err
		}

		if err := s.gameRepo.CreateGame(txCtx, userID, result); err != nil {
			return err
		}

		user.Tickets = remaining
		if remaining == 0 {
			user.LastFreeSpin = now
		}

		res = &model.SpinResult{
			Result:            result,
			Tickets:           remaining,
			TimeUntilNextSpin: user.TimeUntilFreeSpin(cfg.FreeSpinInterval, now),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Агрегат за день изменился - кэшированное значение больше не актуально
	s.cache.Delete(ctx, statsCacheKey())

	zap.L().Info("spin resolved",
		zap.Int64("user_id", userID),
		zap.Int("result", res.Result),
		zap.Int("tickets_left", res.Tickets))

	return res, nil
}

// fractionUsed - доля выплаченного дневного лимита, обрезанная до [0, 1]
func (s *serv) fractionUsed(ctx context.Context, dailyCap int) (float64, error) {
	stats, err := s.todayStats(ctx)
	if err != nil {
		return 0, err
	}

	fraction := float64(stats.TotalWins) / float64(dailyCap)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	return fraction, nil
}

// todayStats - агрегат за сегодня через кэш.
// Минутное устаревание допустимо: лимит мягкий
func (s *serv) todayStats(ctx context.Context) (*model.DailyStats, error) {
	key := statsCacheKey()

	if data, ok := s.cache.Get(ctx, key); ok {
		var stats model.DailyStats
		if err := json.Unmarshal(data, &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := s.dailyRepo.GetToday(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		s.cache.Set(ctx, key, data, statsCacheTTL)
	}

	return stats, nil
}

func statsCacheKey() string {
	return "daily_stats:" + time.Now().Format("2006-01-02")
}
