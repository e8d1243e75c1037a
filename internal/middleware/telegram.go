package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	initDataHeader = "X-Telegram-Init-Data"
	// Подпись initData старше суток не принимаем
	maxInitDataAge = 24 * time.Hour
)

// NewTelegramAuth - проверка подписи Telegram WebApp initData.
// Валидный запрос получает Telegram ID пользователя в контекст,
// невалидный отбивается 401
func NewTelegramAuth(botToken string) func(http.Handler) http.Handler {
	// Секрет выводится из токена бота один раз
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))
	secretKey := mac.Sum(nil)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initData := r.Header.Get(initDataHeader)
			if initData == "" {
				http.Error(w, "telegram authorization required", http.StatusUnauthorized)
				return
			}

			tgUser, err := validateInitData(initData, secretKey)
			if err != nil {
				zap.L().Warn("init data validation failed", zap.Error(err))
				http.Error(w, "invalid telegram init data", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, tgUser.ID)
			ctx = context.WithValue(ctx, tgUserKey, tgUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateInitData - проверка initData по схеме из документации Telegram:
// пары key=value без hash сортируются, склеиваются через \n
// и подписываются HMAC-SHA256 секретом из токена бота
func validateInitData(initData string, secretKey []byte) (TelegramUser, error) {
	var none TelegramUser

	values, err := url.ParseQuery(initData)
	if err != nil {
		return none, err
	}

	hash := values.Get("hash")
	if hash == "" {
		return none, errors.New("hash is missing")
	}
	values.Del("hash")

	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	dataCheckString := strings.Join(pairs, "\n")

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(dataCheckString))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(hash)) {
		return none, errors.New("hash mismatch")
	}

	authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return none, errors.New("invalid auth_date")
	}
	if time.Since(time.Unix(authDate, 0)) > maxInitDataAge {
		return none, errors.New("init data is expired")
	}

	var user TelegramUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil {
		return none, errors.New("invalid user payload")
	}
	if user.ID == 0 {
		return none, errors.New("user id is missing")
	}

	return user, nil
}
