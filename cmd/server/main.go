package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hirokishimizu39/ThisIsJapan/internal/config"
	"github.com/hirokishimizu39/ThisIsJapan/internal/middleware"
	"github.com/hirokishimizu39/ThisIsJapan/internal/rest"
	"github.com/hirokishimizu39/ThisIsJapan/internal/router"
	"github.com/hirokishimizu39/ThisIsJapan/internal/seed"
	"github.com/hirokishimizu39/ThisIsJapan/internal/service"
	"github.com/hirokishimizu39/ThisIsJapan/internal/session"
	"github.com/hirokishimizu39/ThisIsJapan/internal/store"
)

func run(ctx context.Context) error {
	slog.Info("starting thisisjapan server")

	cfg := config.FromEnv()
	st, err := store.NewPostgresStore(store.PostgresConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DB:       cfg.DB.Name,
	})
	if err != nil {
		return fmt.Errorf("connect to db: %w", err)
	}
	defer st.Close()

	if err := runMigrations(st, cfg.DB.MigrationsDir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if cfg.SeedDemo {
		if err := seed.Run(ctx, st); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	sessions := session.NewRedis(session.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.SessionTTL,
	})
	defer sessions.Close()

	api := rest.NewAPI(rest.APIConfig{
		Accounts:    service.NewAccounts(st),
		Photos:      service.NewPhotos(st),
		Words:       service.NewWords(st),
		Experiences: service.NewExperiences(st),
		Auth:        service.NewAuth(st),
		Sessions:    sessions,
	})

	rt := router.New()
	rt.Use(middleware.Log(), middleware.Recover())
	rt.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	rt.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	api.Register(rt)

	httpSrv := &http.Server{
		Addr:         cfg.HTTP.ListenAddr,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		Handler:      rt,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func runMigrations(st *store.PostgresStore, folder string) error {
	driver, err := postgres.WithInstance(st.DB(), &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	migrator, err := migrate.NewWithDatabaseInstance("file://"+folder, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("server terminated with error", "error", err)
		os.Exit(1)
	}
}
