package env

import (
	"os"

	"wheel_backend/internal/config"
)

const (
	redisAddrEnvName     = "REDIS_ADDR"
	redisPasswordEnvName = "REDIS_PASSWORD"
)

type redisConfig struct {
	addr     string
	password string
}

// NewRedisConfig - конфигурация Redis. Пустой REDIS_ADDR не ошибка:
// кэш тогда живет в памяти процесса
func NewRedisConfig() config.RedisConfig {
	return &redisConfig{
		addr:     os.Getenv(redisAddrEnvName),
		password: os.Getenv(redisPasswordEnvName),
	}
}

func (cfg *redisConfig) Addr() string {
	return cfg.addr
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) Enabled() bool {
	return len(cfg.addr) > 0
}
