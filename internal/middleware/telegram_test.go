package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "12345:test-bot-token"

// signInitData - собирает initData, подписанную так, как это делает Telegram
func signInitData(t *testing.T, botToken string, fields map[string]string) string {
	t.Helper()

	pairs := make([]string, 0, len(fields))
	for k, v := range fields {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)

	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))
	secret := mac.Sum(nil)

	mac = hmac.New(sha256.New, secret)
	mac.Write([]byte(strings.Join(pairs, "\n")))
	hash := hex.EncodeToString(mac.Sum(nil))

	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	values.Set("hash", hash)
	return values.Encode()
}

func freshFields() map[string]string {
	return map[string]string{
		"auth_date": strconv.FormatInt(time.Now().Unix(), 10),
		"user":      `{"id":42,"first_name":"Test"}`,
		"query_id":  "AAE42",
	}
}

func runTelegramAuth(t *testing.T, initData string) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	var gotID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = UserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	if initData != "" {
		req.Header.Set("X-Telegram-Init-Data", initData)
	}
	rec := httptest.NewRecorder()

	NewTelegramAuth(testBotToken)(next).ServeHTTP(rec, req)
	return rec, gotID, gotOK
}

func TestTelegramAuth_ValidInitData(t *testing.T) {
	initData := signInitData(t, testBotToken, freshFields())

	rec, userID, ok := runTelegramAuth(t, initData)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestTelegramAuth_PutsProfileInContext(t *testing.T) {
	fields := freshFields()
	fields["user"] = `{"id":42,"username":"neo","first_name":"Томас","last_name":"Андерсон"}`
	initData := signInitData(t, testBotToken, fields)

	var tg TelegramUser
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tg, ok = TelegramUserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("X-Telegram-Init-Data", initData)
	rec := httptest.NewRecorder()
	NewTelegramAuth(testBotToken)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, TelegramUser{ID: 42, Username: "neo", FirstName: "Томас", LastName: "Андерсон"}, tg)
}

func TestTelegramAuth_MissingHeader(t *testing.T) {
	rec, _, ok := runTelegramAuth(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestTelegramAuth_WrongBotToken(t *testing.T) {
	initData := signInitData(t, "999:other-token", freshFields())

	rec, _, _ := runTelegramAuth(t, initData)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTelegramAuth_TamperedUser(t *testing.T) {
	initData := signInitData(t, testBotToken, freshFields())

	// Подменяем ID пользователя после подписи
	tampered := strings.Replace(initData, "%22id%22%3A42", "%22id%22%3A43", 1)

	rec, _, _ := runTelegramAuth(t, tampered)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTelegramAuth_ExpiredAuthDate(t *testing.T) {
	fields := freshFields()
	fields["auth_date"] = strconv.FormatInt(time.Now().Add(-25*time.Hour).Unix(), 10)

	rec, _, _ := runTelegramAuth(t, signInitData(t, testBotToken, fields))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTelegramAuth_MissingHash(t *testing.T) {
	values := url.Values{}
	values.Set("auth_date", strconv.FormatInt(time.Now().Unix(), 10))
	values.Set("user", `{"id":42}`)

	rec, _, _ := runTelegramAuth(t, values.Encode())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
