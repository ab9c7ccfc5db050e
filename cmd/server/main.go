package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/library-seat-reservation/internal/assistant"
	"github.com/iliyamo/library-seat-reservation/internal/auth"
	"github.com/iliyamo/library-seat-reservation/internal/booking"
	"github.com/iliyamo/library-seat-reservation/internal/config"
	"github.com/iliyamo/library-seat-reservation/internal/handler"
	"github.com/iliyamo/library-seat-reservation/internal/logger"
	appmw "github.com/iliyamo/library-seat-reservation/internal/middleware"
	"github.com/iliyamo/library-seat-reservation/internal/queue"
	"github.com/iliyamo/library-seat-reservation/internal/router"
	"github.com/iliyamo/library-seat-reservation/internal/session"
	"github.com/iliyamo/library-seat-reservation/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// The local fallback prefers Redis; when Redis is unreachable at
	// startup the process still comes up on an in-memory KV and loses
	// durability, not availability.
	rdb := config.NewRedisClient()
	var kv store.KV
	if rdb != nil {
		kv = store.NewRedisKV(rdb, "libseat")
	} else {
		zlog.Warn("redis unavailable, local fallback store is in-memory only")
		kv = store.NewMemoryKV()
	}

	local := store.NewLocalStore(kv)
	var remote *store.RemoteStore
	if cfg.RemoteBaseURL != "" {
		remote = store.NewRemoteStore(cfg.RemoteBaseURL, cfg.RemoteTimeout)
	} else {
		zlog.Info("no remote API configured, starting in local mode")
	}
	st := store.NewFallbackStore(remote, local, zlog)

	engine := booking.NewEngine(st)
	accounts := auth.NewController(st)
	sessions := session.NewHolder(kv, cfg.JWTSecret, cfg.AccessTTLMin)
	helper := assistant.NewClient(cfg.AssistantURL, cfg.AssistantKey, cfg.AssistantWindow)

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			zlog.Warn("booking consumer stopped", zap.Error(err))
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(appmw.RequestLogger(zlog))

	router.RegisterRoutes(e)
	router.RegisterAPI(e, router.Handlers{
		Auth:      handler.NewAuthHandler(accounts, sessions, st),
		Booking:   handler.NewBookingHandler(engine, st),
		Seat:      handler.NewSeatHandler(st),
		Admin:     handler.NewAdminHandler(accounts, st),
		Assistant: handler.NewAssistantHandler(helper),
	}, cfg, config.LoadRateLimitConfig(), rdb)

	addr := ":" + cfg.Port
	zlog.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
