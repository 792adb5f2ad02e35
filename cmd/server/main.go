package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/erevald/fantasy-names/internal/config"
	"github.com/erevald/fantasy-names/internal/database"
	"github.com/erevald/fantasy-names/internal/handler"
	"github.com/erevald/fantasy-names/internal/middleware"
	"github.com/erevald/fantasy-names/internal/queue"
	"github.com/erevald/fantasy-names/internal/repository"
	"github.com/erevald/fantasy-names/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// One pool per process, opened here and handed to every component.
	var pool database.Pool
	err := pool.Open(database.Config{
		Driver:          "mysql",
		DSN:             database.MySQLDSN(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName),
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		AcquireTimeout:  cfg.DBAcquireTimeout,
	})
	if err != nil {
		log.Fatalf("open pool: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, &pool); err != nil {
		cancel()
		log.Fatalf("ensure schema: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and caching disabled")
	}

	if queue.BrokerURL() != "" {
		go func() {
			if err := queue.StartNameAuditConsumer(); err != nil {
				log.Printf("name-audit consumer stopped: %v", err)
			}
		}()
	}

	h := handler.NewNameHandler(repository.NewNameRepo(&pool))

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterNames(e, h,
		middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb),
		middleware.NewResponseCache(config.LoadCacheConfig(), rdb),
		middleware.AdminAuth(cfg.AdminJWTSecret),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then tear down the pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if err := pool.Close(); err != nil {
		log.Printf("pool close: %v", err)
	}
}
