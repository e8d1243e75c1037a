package app

import (
	"context"
	"os"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	adminAPI "wheel_backend/internal/api/admin"
	authAPI "wheel_backend/internal/api/auth"
	userAPI "wheel_backend/internal/api/user"
	wheelAPI "wheel_backend/internal/api/wheel"
	"wheel_backend/internal/config"
	"wheel_backend/internal/config/env"
	"wheel_backend/internal/config/wheelcfg"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/repository/auth_repo"
	"wheel_backend/internal/repository/daily_stats_repo"
	"wheel_backend/internal/repository/game_repo"
	"wheel_backend/internal/repository/user_repo"
	"wheel_backend/internal/service"
	"wheel_backend/internal/service/auth"
	userServ "wheel_backend/internal/service/user"
	"wheel_backend/internal/service/wheel"
	"wheel_backend/pkg/cache"
	"wheel_backend/pkg/retry"
)

const (
	wheelConfigPathEnvName = "WHEEL_CONFIG_PATH"
	defaultWheelConfigPath = "config.yaml"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Cache
	redisCfg config.RedisConfig
	cache    cache.Cache

	// Wheel config
	wheelProvider config.WheelProvider

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository
	userServ service.UserService
	userHand *userAPI.Handler

	// Wheel bits
	dailyRepo repository.DailyStatsRepository
	gameRepo  repository.GameRepository
	wheelServ service.WheelService
	wheelHand *wheelAPI.Handler
	adminHand *adminAPI.Handler

	// Telegram auth
	botCfg config.BotConfig

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		sp.redisCfg = env.NewRedisConfig()
	}
	return sp.redisCfg
}

// Cache - Redis, если задан REDIS_ADDR, иначе кэш в памяти процесса
func (sp *ServiceProvider) Cache() cache.Cache {
	if sp.cache == nil {
		if sp.RedisCfg().Enabled() {
			client := redis.NewClient(&redis.Options{
				Addr:     sp.RedisCfg().Addr(),
				Password: sp.RedisCfg().Password(),
			})
			sp.cache = cache.NewRedis(client)
		} else {
			sp.cache = cache.NewMemory()
		}
	}
	return sp.cache
}

func (sp *ServiceProvider) WheelProvider() config.WheelProvider {
	if sp.wheelProvider == nil {
		path := os.Getenv(wheelConfigPathEnvName)
		if len(path) == 0 {
			path = defaultWheelConfigPath
		}

		p, err := wheelcfg.NewProvider(path)
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelProvider = p
	}
	return sp.wheelProvider
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) BotCfg() config.BotConfig {
	if sp.botCfg == nil {
		cfg, err := env.NewBotConfig()
		if err != nil {
			panic("failed to get bot config: " + err.Error())
		}
		sp.botCfg = cfg
	}
	return sp.botCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

// DailyStatsRepo - репозиторий дневного агрегата, обернутый политикой повторов
func (sp *ServiceProvider) DailyStatsRepo(ctx context.Context) repository.DailyStatsRepository {
	if sp.dailyRepo == nil {
		sp.dailyRepo = daily_stats_repo.NewRetrying(
			daily_stats_repo.NewDailyStatsRepository(sp.DBClient(ctx)),
			retry.DefaultPolicy(),
		)
	}
	return sp.dailyRepo
}

func (sp *ServiceProvider) GameRepo(ctx context.Context) repository.GameRepository {
	if sp.gameRepo == nil {
		sp.gameRepo = game_repo.NewGameRepository(sp.DBClient(ctx))
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(
			sp.WheelProvider(),
			sp.DailyStatsRepo(ctx),
			sp.UserRepo(ctx),
			sp.GameRepo(ctx),
			sp.TXManager(ctx),
			sp.Cache(),
		)
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) UserService(ctx context.Context) service.UserService {
	if sp.userServ == nil {
		sp.userServ = userServ.NewUserService(sp.UserRepo(ctx))
	}
	return sp.userServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv: sp.WheelService(ctx),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{
			Serv: sp.UserService(ctx),
		})
	}
	return sp.userHand
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			WheelServ: sp.WheelService(ctx),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"https://telegram.org", "https://t.me"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Telegram-Init-Data"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Эндпоинты мини-приложения, за проверкой подписи Telegram
		wheelHandler := sp.WheelHandler(ctx)
		userHandler := sp.UserHandler(ctx)
		r.Route("/api", func(rr chi.Router) {
			rr.Use(middleware.NewTelegramAuth(sp.BotCfg().Token()))

			rr.Post("/spin", wheelHandler.Spin)
			rr.Get("/spin/timer", wheelHandler.Timer)
			rr.Get("/spin/probabilities", wheelHandler.Probabilities)
			rr.Get("/spin/history", wheelHandler.History)

			rr.Get("/user", userHandler.Profile)
			rr.Patch("/user/nickname", userHandler.UpdateNickname)
			rr.Get("/user/referrals", userHandler.Referrals)
			rr.Get("/leaders", userHandler.Leaders)
		})

		// Вход в админ-панель
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Админские эндпоинты, за проверкой access токена
		adminHandler := sp.AdminHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(middleware.NewAdminAuth(sp.JWTCfg().AccessTokenSecretKey()))

			rr.Get("/stats", adminHandler.Stats)
			rr.Put("/wheel-config", adminHandler.UpdateConfig)
		})

		sp.router = r
	}

	return sp.router
}
