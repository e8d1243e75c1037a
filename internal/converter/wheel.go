package converter

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	dto "wheel_backend/internal/api/dto/wheel"
	"wheel_backend/internal/model"
)

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	result := res.Result
	return dto.SpinResponse{
		Success:           true,
		Tickets:           res.Tickets,
		Result:            &result,
		TimeUntilNextSpin: res.TimeUntilNextSpin,
	}
}

// ToNoTicketsResponse - ответ на прокрут без билетов: не ошибка протокола,
// а отказ с таймером до бесплатного прокрута
func ToNoTicketsResponse(info model.TimerInfo) dto.SpinResponse {
	return dto.SpinResponse{
		Success:           false,
		Tickets:           info.Tickets,
		TimeUntilNextSpin: info.TimeUntilNextSpin,
		Message:           "Недостаточно билетов для прокрутки",
	}
}

func ToTimerResponse(info model.TimerInfo) dto.TimerResponse {
	return dto.TimerResponse{
		Tickets:           info.Tickets,
		CanGetFreeSpin:    info.CanGetFreeSpin,
		TimeUntilNextSpin: info.TimeUntilNextSpin,
	}
}

func ToProbabilitiesResponse(info model.ProbabilitiesInfo) dto.ProbabilitiesResponse {
	probs := make(map[string]string, len(info.Probabilities))
	for amount, p := range info.Probabilities {
		probs[strconv.Itoa(amount)] = fmt.Sprintf("%.1f%%", p*100)
	}

	return dto.ProbabilitiesResponse{
		DailyStats: dto.DailyStatsInfo{
			TotalWins:      info.Stats.TotalWins,
			SpinsCount:     info.Stats.SpinsCount,
			MaxWinPerDay:   info.DailyCap,
			PercentageUsed: fmt.Sprintf("%.1f%%", info.FractionUsed*100),
		},
		Probabilities: probs,
	}
}

func ToHistoryResponse(games []model.Game) dto.HistoryResponse {
	result := dto.HistoryResponse{
		Games: make([]dto.GameInfo, 0, len(games)),
	}
	for _, g := range games {
		result.Games = append(result.Games, dto.GameInfo{
			Result:    g.Result,
			CreatedAt: g.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}

// ToWheelConfig - конфигурация колеса из запроса админа
func ToWheelConfig(req dto.UpdateConfigRequest) (model.WheelConfig, error) {
	interval, err := time.ParseDuration(req.FreeSpinInterval)
	if err != nil {
		return model.WheelConfig{}, fmt.Errorf("invalid free spin interval: %w", err)
	}

	cfg := model.WheelConfig{
		DailyCap:         req.DailyCap,
		FreeSpinInterval: interval,
	}
	for _, s := range req.Sectors {
		cfg.Sectors = append(cfg.Sectors, model.PrizeTier{
			Amount:          s.Amount,
			BaseProbability: s.BaseProbability,
			MaxProbability:  s.MaxProbability,
		})
	}

	// Стабильный порядок секторов в файле конфигурации
	sort.Slice(cfg.Sectors, func(i, j int) bool {
		return cfg.Sectors[i].Amount < cfg.Sectors[j].Amount
	})

	return cfg, nil
}
