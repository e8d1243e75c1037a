package model

import "time"

// DailyStats - агрегат выплат за календарный день.
// Ровно одна запись на дату, TotalWins в пределах дня только растет
type DailyStats struct {
	Date       time.Time
	TotalWins  int64
	SpinsCount int
}

// Game - запись истории прокрутов. После создания не изменяется
type Game struct {
	ID        int64
	UserID    int64
	Result    int
	CreatedAt time.Time
}

// LeaderboardEntry - строка таблицы лидеров
type LeaderboardEntry struct {
	Position int
	UserID   int64
	Name     string
	Balance  int
}

// ReferralInfo - приглашенный пользователь в списке рефералов
type ReferralInfo struct {
	UserID   int64
	Name     string
	JoinedAt time.Time
}
