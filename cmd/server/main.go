package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/dalanakids/shop-api/internal/config"
	"github.com/dalanakids/shop-api/internal/database"
	"github.com/dalanakids/shop-api/internal/handler"
	"github.com/dalanakids/shop-api/internal/mailer"
	"github.com/dalanakids/shop-api/internal/middleware"
	"github.com/dalanakids/shop-api/internal/queue"
	"github.com/dalanakids/shop-api/internal/repository"
	"github.com/dalanakids/shop-api/internal/router"
	"github.com/dalanakids/shop-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env always wins

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		slog.Error("database connect failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		slog.Error("database migrate failed", "err", err)
		os.Exit(1)
	}

	// Redis backs revocation and rate limiting; nil means both degrade.
	rdb := config.NewRedisClient()
	if rdb == nil {
		slog.Warn("redis unavailable; token revocation and rate limiting disabled")
	}
	revoker := middleware.NewRevoker(rdb)

	users := repository.NewUserRepo(db)
	tokens := repository.NewResetTokenRepo(db)
	products := repository.NewProductRepo(db)
	categories := repository.NewCategoryRepo(db)
	carousel := repository.NewCarouselRepo(db)

	mail, err := mailer.New(cfg.SMTP, cfg.ResetURL)
	if err != nil {
		slog.Error("mailer setup failed", "err", err)
		os.Exit(1)
	}

	auth := service.NewAuthService(users, tokens, mail, queue.Publish, service.AuthConfig{
		JWTSecret:       cfg.JWTSecret,
		AccessTTL:       cfg.AccessTTL,
		BcryptCost:      cfg.BcryptCost,
		ResetTokenTTL:   cfg.ResetTokenTTL,
		ResetMaxAttempt: cfg.ResetMaxAttempt,
	})

	// Record auth events in the background; reconnects on its own.
	go queue.StartConsumer()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Deps{
		Auth:      handler.NewAuthHandler(auth, revoker),
		Users:     handler.NewUserHandler(users, cfg.BcryptCost),
		Products:  handler.NewProductHandler(products, cfg.ImagesService),
		Category:  handler.NewCategoryHandler(categories),
		Carousel:  handler.NewCarouselHandler(carousel),
		UserRepo:  users,
		Revoker:   revoker,
		JWTSecret: cfg.JWTSecret,
		RateLimit: config.LoadRateLimitConfig(),
		Redis:     rdb,
		Origins:   cfg.AllowedOrigins,
	})

	addr := ":" + cfg.Port
	slog.Info("listening", "addr", addr, "env", cfg.Env)
	if err := e.Start(addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
