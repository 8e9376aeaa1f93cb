// Conforma assessment server: wiring and lifecycle only. Backends are
// selected by configuration presence; anything not configured falls back
// to an in-memory implementation so a bare `go run ./cmd/server` works.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"conforma/internal/assessment/catalogue"
	"conforma/internal/assessment/handler"
	"conforma/internal/assessment/metrics"
	"conforma/internal/assessment/ports"
	"conforma/internal/assessment/service"
	"conforma/internal/assessment/store/result"
	"conforma/internal/assessment/store/session"
	"conforma/internal/platform/config"
	"conforma/internal/platform/httpserver"
	"conforma/internal/platform/logger"
	platformredis "conforma/internal/platform/redis"
	"conforma/pkg/platform/audit/publisher"
	"conforma/pkg/platform/middleware/auth"
	"conforma/pkg/platform/middleware/metadata"
	"conforma/pkg/platform/middleware/requestid"
	"conforma/pkg/platform/middleware/requesttime"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	// Session store: Redis when configured, memory otherwise.
	var sessions service.SessionStore
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		sessions = session.NewRedisSessionStore(redisClient.Client, cfg.SessionTTL)
		log.Info("session store: redis", "ttl", cfg.SessionTTL)
	} else {
		sessions = session.NewInMemorySessionStore()
		log.Info("session store: memory")
	}

	// Result store: Postgres when configured, memory otherwise.
	var results service.ResultStore
	var pool *pgxpool.Pool
	if cfg.PostgresURL != "" {
		pool, err = pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			return err
		}
		store := result.NewPostgresResultStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		results = store
		log.Info("result store: postgres")
	} else {
		results = result.NewInMemoryResultStore()
		log.Info("result store: memory")
	}

	// Audit publisher: Kafka when brokers are configured.
	var auditPublisher ports.AuditPublisher
	if len(cfg.KafkaBrokers) > 0 {
		opts := []publisher.KafkaOption{publisher.WithLogger(log)}
		if cfg.KafkaTopic != "" {
			opts = append(opts, publisher.WithTopic(cfg.KafkaTopic))
		}
		kafka, err := publisher.NewKafka(cfg.KafkaBrokers, opts...)
		if err != nil {
			return err
		}
		defer kafka.Close()
		auditPublisher = kafka
		log.Info("audit publisher: kafka", "brokers", cfg.KafkaBrokers)
	} else {
		auditPublisher = publisher.NewMemory()
		log.Info("audit publisher: memory")
	}

	svc, err := service.New(
		catalogue.NewStatic(),
		sessions,
		results,
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithAuditPublisher(auditPublisher),
	)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(req.Context()); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		if pool != nil {
			if err := pool.Ping(req.Context()); err != nil {
				http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(cfg.JWTSigningKey, log))
		handler.New(svc, log).Register(r)
	})

	server := httpserver.New(cfg.Addr, r)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
