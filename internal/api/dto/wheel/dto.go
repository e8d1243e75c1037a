package wheel

type SpinResponse struct {
	Success           bool   `json:"success"`                        // Успешность прокрута
	Tickets           int    `json:"tickets"`                        // Остаток билетов
	Result            *int   `json:"result,omitempty"`               // Выпавший сектор
	TimeUntilNextSpin string `json:"time_until_next_spin,omitempty"` // Время до бесплатного прокрута
	Message           string `json:"message,omitempty"`              // Сообщение для пользователя
}

type TimerResponse struct {
	Tickets           int    `json:"tickets"`              // Остаток билетов
	CanGetFreeSpin    bool   `json:"can_get_free_spin"`    // Доступен ли бесплатный прокрут
	TimeUntilNextSpin string `json:"time_until_next_spin"` // ЧЧ:ММ до бесплатного прокрута
}

type DailyStatsInfo struct {
	TotalWins      int64  `json:"total_wins"`      // Сумма выплат за день
	SpinsCount     int    `json:"spins_count"`     // Количество прокрутов за день
	MaxWinPerDay   int    `json:"max_win_per_day"` // Дневной лимит выплат
	PercentageUsed string `json:"percentage_used"` // Доля выбранного лимита
}

type ProbabilitiesResponse struct {
	DailyStats    DailyStatsInfo    `json:"daily_stats"`
	Probabilities map[string]string `json:"probabilities"` // Сектор -> вероятность в процентах
}

type GameInfo struct {
	Result    int    `json:"result"`     // Выпавший сектор
	CreatedAt string `json:"created_at"` // Время прокрута, RFC3339
}

type HistoryResponse struct {
	Games []GameInfo `json:"games"`
}

type SectorConfig struct {
	Amount          int     `json:"amount"`
	BaseProbability float64 `json:"base_probability"`
	MaxProbability  float64 `json:"max_probability"`
}

type UpdateConfigRequest struct {
	DailyCap         int            `json:"daily_cap"`
	FreeSpinInterval string         `json:"free_spin_interval"` // Например "24h"
	Sectors          []SectorConfig `json:"sectors"`
}
