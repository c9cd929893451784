package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/co2-monitor/pkg/api"
	"liyu1981.xyz/co2-monitor/pkg/common"
	"liyu1981.xyz/co2-monitor/pkg/db"
	iotHttp "liyu1981.xyz/co2-monitor/pkg/http"
	"liyu1981.xyz/co2-monitor/pkg/iot"
	"liyu1981.xyz/co2-monitor/pkg/live"
	"liyu1981.xyz/co2-monitor/pkg/metrics"
	"liyu1981.xyz/co2-monitor/pkg/store"
)

func openStore(cfg *common.Config) (store.KV, func(), error) {
	switch cfg.LedgerStore {
	case common.LedgerStoreDB:
		dbInstance, err := db.Open(db.UseSqliteFileDialector(cfg.DbPath))
		if err != nil {
			return nil, nil, err
		}
		return store.NewDB(dbInstance), func() { _ = dbInstance.Close() }, nil
	case common.LedgerStoreFile:
		return store.NewFile(cfg.LedgerFile), func() {}, nil
	case common.LedgerStoreMemory:
		return store.NewMemory(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown ledger store %q", cfg.LedgerStore)
	}
}

func refreshLoop(ctx context.Context, iotCore *iot.IOT, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// failures are logged by the inventory, the last good list stays
			_ = iotCore.Inventory.Refresh(ctx)
		}
	}
}

func main() {
	var err error

	if err = godotenv.Load(); err != nil {
		log.Println("No .env file loaded, reading configuration from the environment")
	}

	cfg, err := common.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := common.GetLogger()
	defer common.SyncLogger()

	kv, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open ledger store: %v", err)
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend := api.New(cfg.ApiBaseURL, api.StaticToken(cfg.AuthToken), cfg.RequestTimeout)
	feed := live.New(cfg.StreamURL, live.Options{DialTimeout: cfg.RequestTimeout})

	// the feed becomes the registrar once Watch owns it
	iotCore := iot.New(backend, nil, kv, iot.Options{
		WarningThreshold: cfg.WarningThreshold,
		Metrics:          metrics.Monitor(),
	})

	if err := iotCore.Ledger.Initialize(ctx); err != nil {
		log.Fatalf("failed to load warnings: %v", err)
	}

	if err := iotCore.Inventory.Refresh(ctx); err != nil {
		logger.Warn("Initial device refresh failed, will retry", zap.Error(err))
	}

	go refreshLoop(ctx, iotCore, cfg.RefreshInterval)

	go func() {
		logger.Info("Starting live feed on " + cfg.StreamURL)
		if err := iotCore.Watch(ctx, feed); err != nil {
			logger.Error("Live feed stopped", zap.Error(err))
		}
	}()

	httpLogger := common.GetLoggerWith(common.LoggerNameRestfulServer)
	engine := gin.New()
	engine.Use(ginzap.GinzapWithConfig(httpLogger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/healthz", "/metrics"},
	}))
	engine.Use(ginzap.RecoveryWithZap(httpLogger, true))

	rs := &iotHttp.RestfulServer{
		Server:           engine,
		Iot:              iotCore,
		RateLimiterStore: iot.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst)),
		zap.String("ledger_store", string(cfg.LedgerStore)),
		zap.Stringer("kv", kv))

	srv := &http.Server{
		Addr:    cfg.HttpHostPort,
		Handler: rs.Server,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server failed to serve: %v", err)
	}
	logger.Info("Monitor stopped")
}
