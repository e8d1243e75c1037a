package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
	"wheel_backend/pkg/pass"
	"wheel_backend/pkg/token"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	// Получение администратора из бд по логину
	admin, err := s.authRepo.GetAdminByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(admin.Password, password) {
		return nil, ErrInvalidCredentials
	}

	// Генерация sessionID
	sessionID := uuid.NewString()

	// Генерация refresh токена
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	// Создать сессию
	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			AdminID:      admin.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		admin,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
