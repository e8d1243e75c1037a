package auth

import (
	"wheel_backend/internal/config"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/service"
)

type serv struct {
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
}

// NewAuthService - сервис авторизации администраторов
func NewAuthService(authRepo repository.AuthRepository, jwtConfig config.JWTConfig) service.AuthService {
	return &serv{
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
	}
}
