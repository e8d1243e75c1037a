package env

import (
	"errors"
	"os"

	"wheel_backend/internal/config"
)

const (
	botTokenEnvName = "BOT_TOKEN"
)

type botConfig struct {
	token string
}

func NewBotConfig() (config.BotConfig, error) {
	token := os.Getenv(botTokenEnvName)
	if len(token) == 0 {
		return nil, errors.New("bot token not found")
	}

	return &botConfig{
		token: token,
	}, nil
}

func (cfg *botConfig) Token() string {
	return cfg.token
}
