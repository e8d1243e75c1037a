package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Admin - учетная запись администратора панели управления колесом
type Admin struct {
	ID       int
	Login    string
	Password string
}

type Session struct {
	ID           string
	AdminID      int
	RefreshToken string
	ExpiresAt    time.Time
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

type AdminClaims struct {
	jwt.RegisteredClaims
}
