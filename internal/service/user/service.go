package user

import (
	"context"
	"strings"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/service"
)

const maxNicknameLen = 32

type serv struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) service.UserService {
	return &serv{
		userRepo: userRepo,
	}
}

// Profile - профиль пользователя
func (s *serv) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return s.userRepo.GetUser(ctx, userID)
}

// Register - заводит пользователя при первом заходе из мини-приложения.
// Повторный вызов для того же Telegram ID безопасен: вставка идемпотентна
func (s *serv) Register(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetUser(ctx, user.ID)
}

// UpdateNickname - сохраняет никнейм из мини-приложения
func (s *serv) UpdateNickname(ctx context.Context, userID int64, nickname string) error {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return ErrEmptyNickname
	}
	if len([]rune(nickname)) > maxNicknameLen {
		return ErrNicknameTooLong
	}

	return s.userRepo.UpdateNickname(ctx, userID, nickname)
}

// Leaders - таблица лидеров по балансу
func (s *serv) Leaders(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.userRepo.GetLeaders(ctx, limit)
}

// Referrals - список приглашенных пользователем
func (s *serv) Referrals(ctx context.Context, userID int64, limit, offset int) ([]model.ReferralInfo, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.GetReferrals(ctx, userID, limit, offset)
}
