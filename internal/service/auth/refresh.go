package auth

import (
	"context"
	"errors"

	"wheel_backend/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, sessionID, refreshToken string) (string, error) {
	// Получение хэша refresh токена из хранилища по sessionID
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, sessionID)
	if err != nil {
		return "", err
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(refreshToken, refreshTokenHash) {
		return "", errors.New("invalid refresh token")
	}

	// Получение администратора по sessionID
	admin, err := s.authRepo.GetAdminBySessionID(ctx, sessionID)
	if err != nil {
		return "", err
	}

	// Генерация нового access токена
	newAccessToken, err := token.GenerateAccessToken(
		admin,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return "", err
	}

	return newAccessToken, nil
}
