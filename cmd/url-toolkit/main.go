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

	"url-toolkit/internal/config"
	"url-toolkit/internal/http-server/handlers/codec"
	"url-toolkit/internal/http-server/handlers/endpoint/delete"
	"url-toolkit/internal/http-server/handlers/endpoint/get"
	"url-toolkit/internal/http-server/handlers/endpoint/list"
	"url-toolkit/internal/http-server/handlers/endpoint/save"
	"url-toolkit/internal/http-server/handlers/inspect"
	"url-toolkit/internal/http-server/handlers/redirect"
	mwLogger "url-toolkit/internal/http-server/middleware/logger"
	mwMetrics "url-toolkit/internal/http-server/middleware/metrics"
	"url-toolkit/internal/lib/logger/slogcute"
	"url-toolkit/internal/service/registry"
	"url-toolkit/internal/storage/instrumented"
	"url-toolkit/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := SetupLogger(cfg.Env)

	log.Info("starting url-toolkit", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	sqliteStorage, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	storage := instrumented.New(sqliteStorage)
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	endpoints := registry.New(log, storage, cfg.Aliases.Length)

	router := NewRouter(log, endpoints)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting HTTP server", slog.String("addr", cfg.HTTPServer.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped")
}

// Registry is the endpoint service surface used by the HTTP API.
type Registry interface {
	save.EndpointRegistrar
	get.EndpointResolver
	list.EndpointLister
	delete.EndpointDeleter
	redirect.RedirectResolver
}

func NewRouter(log *slog.Logger, endpoints Registry) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(mwMetrics.New("/metrics"))

	router.Route("/endpoints", func(r chi.Router) {
		r.Post("/", save.New(log, endpoints))
		r.Get("/", list.New(log, endpoints))
		r.Get("/{alias}", get.New(log, endpoints))
		r.Delete("/{alias}", delete.New(log, endpoints))
	})

	router.Get("/r/{alias}", redirect.New(log, endpoints))
	router.Post("/inspect", inspect.New(log))
	router.Post("/codec/{op}", codec.New(log))

	router.Handle("/metrics", promhttp.Handler())

	return router
}

func SetupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = SetupCuteSlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func SetupCuteSlog() *slog.Logger {
	opts := slogcute.CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewCuteHandler(os.Stdout)

	return slog.New(handler)
}
