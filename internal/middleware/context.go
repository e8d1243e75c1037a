package middleware

import "context"

type ctxKey int

const (
	userIDKey ctxKey = iota
	tgUserKey
	adminIDKey
)

// TelegramUser - данные пользователя из проверенной initData
type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserIDFromContext - Telegram ID пользователя, положенный auth-middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// TelegramUserFromContext - профиль Telegram из проверенной initData
func TelegramUserFromContext(ctx context.Context) (TelegramUser, bool) {
	u, ok := ctx.Value(tgUserKey).(TelegramUser)
	return u, ok
}

// AdminIDFromContext - ID администратора из проверенного access токена
func AdminIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(adminIDKey).(int)
	return id, ok
}
