package app

import (
	"context"
	"net/http"
	"os"

	"go.uber.org/zap"

	"wheel_backend/internal/config"
	"wheel_backend/pkg/logger"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	loadErr := config.Load(".env")

	l, err := logger.Init(os.Getenv("DEBUG") == "true")
	if err != nil {
		return err
	}
	defer l.Sync() //nolint:errcheck

	if loadErr != nil {
		zap.L().Warn("error loading .env file", zap.Error(loadErr))
	}

	s.initServiceProvider()

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	zap.L().Info("starting server", zap.String("address", s.ServiceProvider.HTTPCfg().Address()))
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}
