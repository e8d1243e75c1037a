package wheel

import (
	"errors"
	"math/rand"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"wheel_backend/internal/config"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/service"
	"wheel_backend/pkg/cache"
)

var (
	// ErrNoTickets - у пользователя нет билета на прокрут, состояние не менялось
	ErrNoTickets = errors.New("no tickets available")
	// ErrUserNotFound - пользователь не зарегистрирован
	ErrUserNotFound = errors.New("user not found")
)

type serv struct {
	cfgProvider config.WheelProvider
	dailyRepo   repository.DailyStatsRepository
	userRepo    repository.UserRepository
	gameRepo    repository.GameRepository
	txManager   trm.Manager
	cache       cache.Cache
	rnd         func() float64
}

// NewWheelService - сервис колеса фортуны
func NewWheelService(
	cfgProvider config.WheelProvider,
	dailyRepo repository.DailyStatsRepository,
	userRepo repository.UserRepository,
	gameRepo repository.GameRepository,
	txManager trm.Manager,
	c cache.Cache,
) service.WheelService {
	return &serv{
		cfgProvider: cfgProvider,
		dailyRepo:   dailyRepo,
		userRepo:    userRepo,
		gameRepo:    gameRepo,
		txManager:   txManager,
		cache:       c,
		rnd:         rand.Float64,
	}
}
