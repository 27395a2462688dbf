package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blaizn/config"
	"blaizn/internal/application/usecase"
	"blaizn/internal/coach"
	"blaizn/internal/infrastructure/repository"
	"blaizn/internal/infrastructure/security"
	"blaizn/internal/infrastructure/store"
	"blaizn/internal/middleware"
	handlers "blaizn/internal/transport/http"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	}

	st, err := buildStore(cfg, rdb, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}

	var comparer security.PasswordComparer = security.NewPlainComparer()
	if cfg.PasswordHashing {
		comparer = security.NewBcryptComparer()
	}

	users := repository.NewUserRepository(st, comparer, logger)
	tokens := security.NewTokenManager(cfg.SessionSecret)
	engine := coach.NewEngine(rand.New(rand.NewSource(time.Now().UnixNano())))

	authUseCase := usecase.NewAuthUseCase(users, tokens, logger)
	trackerUseCase := usecase.NewTrackerUseCase(users, engine, logger)

	var limiter *middleware.RateLimiter
	if rdb != nil {
		limiter = middleware.NewRateLimiter(rdb)
	}

	router := handlers.NewRouter(
		handlers.NewAuthHandler(authUseCase),
		handlers.NewTrackerHandler(trackerUseCase),
		tokens,
		limiter,
	)

	srv := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("blaizn is running", zap.String("addr", cfg.HTTPPort), zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func buildStore(cfg config.Config, rdb *redis.Client, logger *zap.Logger) (store.Store, error) {
	switch cfg.StoreBackend {
	case "", "memory":
		return store.NewMemoryStore(logger), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("store backend redis requires REDIS_ADDR")
		}
		return store.NewRedisStore(rdb, logger), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return store.NewPostgresStore(db, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
