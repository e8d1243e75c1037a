package model

import "time"

// PrizeTier - сектор колеса. Amount = 0 означает "без выигрыша".
// Вероятности заданы в процентах: Base при нулевом расходе дневного лимита,
// Max при полностью выбранном лимите
type PrizeTier struct {
	Amount          int
	BaseProbability float64
	MaxProbability  float64
}

// WheelConfig - конфигурация колеса: сектора, дневной лимит выплат
// и интервал бесплатного прокрута
type WheelConfig struct {
	Sectors          []PrizeTier
	DailyCap         int
	FreeSpinInterval time.Duration
}

// SpinResult - результат прокрутки колеса
type SpinResult struct {
	Result            int
	Tickets           int
	TimeUntilNextSpin string
}

// TimerInfo - информация о билетах и времени до бесплатного прокрута
type TimerInfo struct {
	Tickets           int
	CanGetFreeSpin    bool
	TimeUntilNextSpin string
}

// ProbabilitiesInfo - текущее состояние дневного лимита и вероятности секторов
type ProbabilitiesInfo struct {
	Stats         DailyStats
	DailyCap      int
	FractionUsed  float64
	Probabilities map[int]float64
}
