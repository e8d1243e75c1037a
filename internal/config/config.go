package config

import (
	"time"

	"github.com/joho/godotenv"

	"wheel_backend/internal/model"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// WheelProvider - источник конфигурации колеса.
// Current вызывается на каждом прокруте: админ может поменять сектора
// и дневной лимит на лету без рестарта сервиса
type WheelProvider interface {
	Current() model.WheelConfig
	Rewrite(cfg model.WheelConfig) error
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

// RedisConfig - адрес Redis для кэша. Если адрес не задан,
// используется кэш в памяти процесса
type RedisConfig interface {
	Addr() string
	Password() string
	Enabled() bool
}

// BotConfig - токен Telegram бота для проверки подписи initData
type BotConfig interface {
	Token() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
