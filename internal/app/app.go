package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/avstrong/tripplan/internal/config"
	"github.com/avstrong/tripplan/internal/idgen/uid"
	"github.com/avstrong/tripplan/internal/logger"
	"github.com/avstrong/tripplan/internal/normalize"
	"github.com/avstrong/tripplan/internal/search"
	"github.com/avstrong/tripplan/internal/seed"
	"github.com/avstrong/tripplan/internal/storage/file"
	"github.com/avstrong/tripplan/internal/storage/memory"
	"github.com/avstrong/tripplan/internal/storage/redis"
	"github.com/avstrong/tripplan/internal/transport/web"
	"github.com/avstrong/tripplan/internal/trip"
)

func newStateStore(ctx context.Context, conf *config.Config) (trip.StateStore, func(), error) {
	switch conf.StorageBackend {
	case "memory":
		return memory.New(), func() {}, nil
	case "file":
		db, err := file.New(conf.StorageDir)
		if err != nil {
			return nil, nil, err
		}

		return db, func() {}, nil
	case "redis":
		db, err := redis.New(ctx, conf.RedisAddr)
		if err != nil {
			return nil, nil, err
		}

		return db, func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", conf.StorageBackend)
	}
}

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, closeStore, err := newStateStore(ctx, conf)
	if err != nil {
		return fmt.Errorf("init %s state store: %w", conf.StorageBackend, err)
	}
	defer closeStore()

	trips := trip.New(ctx, l, store, uid.New())

	if conf.SeedDemo {
		if err := seed.Up(ctx, l, trips); err != nil {
			return fmt.Errorf("seed demo itinerary: %w", err)
		}

		l.LogInfo("Demo seed has been applied")
	}

	normalizer := normalize.New(rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint:gosec

	//nolint:exhaustruct
	searchClient := search.NewClient(l, search.Conf{APIKey: conf.RapidAPIKey}, normalizer)

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		LivenessEndpoint:  "/liveness",
		AllowedOrigins:    conf.AllowedOrigins,
	}

	srv, err := web.New(ctx, webConf, trips, searchClient)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
