package service

import (
	"context"

	"wheel_backend/internal/model"
)

type WheelService interface {
	Spin(ctx context.Context, userID int64) (*model.SpinResult, error)
	Timer(ctx context.Context, userID int64) (*model.TimerInfo, error)
	Probabilities(ctx context.Context) (*model.ProbabilitiesInfo, error)
	History(ctx context.Context, userID int64, limit int) ([]model.Game, error)
	UpdateConfig(ctx context.Context, cfg model.WheelConfig) error
}

type UserService interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
	Register(ctx context.Context, user *model.User) (*model.User, error)
	UpdateNickname(ctx context.Context, userID int64, nickname string) error
	Leaders(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
	Referrals(ctx context.Context, userID int64, limit, offset int) ([]model.ReferralInfo, error)
}

type AuthService interface {
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
