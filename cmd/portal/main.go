package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resource-portal/internal/audit"
	"resource-portal/internal/config"
	"resource-portal/internal/gateway"
	"resource-portal/internal/guard"
	"resource-portal/internal/profile"
	"resource-portal/internal/reporting"
	"resource-portal/internal/session"
	"resource-portal/pkg/logger"
	"resource-portal/pkg/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Token storage: Redis when configured, process memory otherwise.
	var tokens session.TokenStore = session.NewMemoryTokenStore()
	if cfg.HasRedis() {
		rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
		if err != nil {
			log.Error("redis init failed", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		tokens = session.NewRedisTokenStore(rdb)
	}

	// Auth-event audit: Postgres when configured, memory otherwise.
	var auditRepo audit.Repository = audit.NewMemoryRepo()
	if cfg.HasDB() {
		db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
		if err != nil {
			log.Error("postgres init failed", "err", err)
			os.Exit(1)
		}
		defer db.Close()

		auditRepo, err = audit.NewPostgresRepo(db)
		if err != nil {
			log.Error("audit init failed", "err", err)
			os.Exit(1)
		}
	}
	auditSvc := audit.NewService(auditRepo)

	profiles := profile.NewClient(cfg.Services.SettingsBaseURL, nil)
	sessions := session.NewProvider(tokens, profiles,
		session.WithAuditor(auditSvc),
		session.WithLogger(log),
	)

	// Local decode first, then the one automatic enrichment cycle.
	sessions.Init(rootCtx)
	sessions.Refresh(rootCtx)

	routeGuard := guard.New(sessions, guard.WithAuditor(auditSvc))

	proxy, err := gateway.New(cfg.Services.APIBaseURL, "/api", sessions)
	if err != nil {
		log.Error("gateway init failed", "err", err)
		os.Exit(1)
	}

	reports := reporting.NewService(reporting.NewHTTPRepo(cfg.Services.APIBaseURL, nil, sessions))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	registerRoutes(r, sessions, routeGuard, proxy, reports, auditSvc)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("portal listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
