package repository

import (
	"context"
	"errors"

	"wheel_backend/internal/model"
)

// ErrNotFound - запрашиваемой записи нет в хранилище
var ErrNotFound = errors.New("not found")

// DailyStatsRepository - агрегат выплат за день.
// IncrementToday обязан быть одним атомарным UPDATE-ом:
// конкурентные прокруты не должны терять инкременты
type DailyStatsRepository interface {
	GetToday(ctx context.Context) (*model.DailyStats, error)
	IncrementToday(ctx context.Context, amount int) error
}

type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error

	// ConsumeTicketAndCredit - списывает один билет и начисляет amount к балансу
	// одним условным UPDATE-ом. Возвращает остаток билетов и false,
	// если билетов уже не было
	ConsumeTicketAndCredit(ctx context.Context, id int64, amount int) (remaining int, ok bool, err error)
	AddTickets(ctx context.Context, id int64, count int) error
	MarkFreeSpinGranted(ctx context.Context, id int64) error

	UpdateNickname(ctx context.Context, id int64, nickname string) error
	GetLeaders(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
	GetReferrals(ctx context.Context, id int64, limit, offset int) ([]model.ReferralInfo, error)
}

type GameRepository interface {
	CreateGame(ctx context.Context, userID int64, result int) error
	GetGamesByUser(ctx context.Context, userID int64, limit int) ([]model.Game, error)
}

type AuthRepository interface {
	GetAdminByLogin(ctx context.Context, login string) (*model.Admin, error)
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	GetAdminBySessionID(ctx context.Context, sessionID string) (*model.Admin, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
