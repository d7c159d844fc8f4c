package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/joho/godotenv"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/app"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/config"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/observability"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	otelShutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("otel shutdown", "error", err)
		}
	}()

	profilerStop, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		return 1
	}
	defer func() {
		if err := profilerStop(); err != nil {
			logger.Error("pyroscope stop", "error", err)
		}
	}()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("close app", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, runErr := application.Run(ctx)

	for _, report := range result.Reports {
		logger.Info("entity load finished", "run_id", result.RunID, "summary", report.Summary())
	}

	encoded, err := sonic.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode load result", "error", err)
		return 1
	}
	fmt.Println(string(encoded))

	if runErr != nil {
		logger.Error("warehouse load failed", "run_id", result.RunID, "error", runErr)
		return 1
	}

	logger.Info("warehouse load complete", "run_id", result.RunID)
	return 0
}
