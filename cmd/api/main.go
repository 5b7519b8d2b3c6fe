package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/httpx"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	bookRepository := book.NewMemoryRepository()
	bookService := book.NewService(bookRepository)

	if cfg.SeedBooks {
		ids, err := book.Seed(ctx, bookService, book.SeedData())
		if err != nil {
			return err
		}
		logger.Info("seeded books", "count", len(ids))
	}

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rateLimiter.Sweep(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newHandler(cfg, logger, registry, bookRepository, bookService, rateLimiter),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Addr)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newHandler(
	cfg config.Config,
	logger *slog.Logger,
	registry *prometheus.Registry,
	bookRepository *book.MemoryRepository,
	bookService *book.Service,
	rateLimiter *httpx.RateLimitMiddleware,
) http.Handler {
	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "bookshelf",
		Name:      "books_stored",
		Help:      "Number of books currently held in the store.",
	}, func() float64 { return float64(bookRepository.Len()) }))
	metrics := httpx.NewMetrics(registry)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	book.NewHTTPHandler(bookService, logger).Register(router)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
		metrics.Middleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		rateLimiter.Middleware,
	)
}
