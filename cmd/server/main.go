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

	"instructhub/internal/audit"
	"instructhub/internal/casebook/handler"
	"instructhub/internal/casebook/ingest"
	"instructhub/internal/casebook/namecache"
	"instructhub/internal/casebook/service"
	"instructhub/internal/casebook/store"
	"instructhub/internal/platform/config"
	"instructhub/internal/platform/httpserver"
	"instructhub/internal/platform/logger"
	"instructhub/internal/platform/metrics"
	"instructhub/internal/platform/middleware"
	"instructhub/internal/platform/redis"
	transport "instructhub/internal/transport/http"
)

func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	cache, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}

	prospectStore, closeStore, err := newStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher, err := newPublisher(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer publisher.Close()

	auditWorker := audit.NewWorker(publisher, log, 256)
	go auditWorker.Run(ctx)

	names := namecache.New(cfg.NameCacheTTL, cacheOptions(cache)...)

	svc := service.New(prospectStore,
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithNameCache(names),
		service.WithEventSink(auditWorker),
	)

	router := transport.NewRouter(transport.Deps{
		Logger:   log,
		Casebook: handler.New(svc, log),
		Auth:     middleware.NewHMACValidator(cfg.JWTSigningKey),
		Redis:    cache,
	})

	srv := httpserver.New(cfg.Addr, router, cfg.HTTP)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	auditWorker.Wait()
	return nil
}

// newStore picks postgres when configured, otherwise an in-memory store
// optionally seeded from a prospects file.
func newStore(ctx context.Context, cfg config.Server, log *slog.Logger) (store.ProspectStore, func(), error) {
	if cfg.PostgresURL != "" {
		pg, err := store.NewPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using postgres prospect store")
		return pg, pg.Close, nil
	}

	mem := store.NewMemory()
	if cfg.ProspectsFile != "" {
		raw, err := os.ReadFile(cfg.ProspectsFile)
		if err != nil {
			return nil, nil, err
		}
		prospects, err := ingest.Prospects(raw)
		if err != nil {
			return nil, nil, err
		}
		mem.Replace(prospects)
		log.Info("seeded in-memory prospect store",
			"file", cfg.ProspectsFile,
			"prospects", len(prospects))
	} else {
		log.Warn("no postgres url or prospects file configured, store is empty")
	}
	return mem, func() {}, nil
}

func newPublisher(ctx context.Context, cfg config.Server, log *slog.Logger) (audit.Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		return audit.NewLogPublisher(log), nil
	}
	return audit.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.AuditTopic, log)
}

func cacheOptions(cache *redis.Client) []namecache.Option {
	if cache == nil {
		return nil
	}
	return []namecache.Option{namecache.WithRedis(cache)}
}
