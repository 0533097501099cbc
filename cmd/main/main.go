package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/UnknownOlympus/employee-api/internal/config"
	"github.com/UnknownOlympus/employee-api/internal/lib/logger/sl"
	"github.com/UnknownOlympus/employee-api/internal/metrics"
	"github.com/UnknownOlympus/employee-api/internal/repository"
	"github.com/UnknownOlympus/employee-api/internal/server"
	"github.com/UnknownOlympus/employee-api/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "employee-api",
		Short:         "In-memory employee records over HTTP",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, setupLogger(cfg.Env))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"),
		"path to the YAML config file (defaults to $CONFIG_PATH)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var wgr sync.WaitGroup
	delta := 2

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	employeeRepo := repository.NewEmployeeRepository(appMetrics)
	if cfg.Store.Seed {
		if err := repository.Seed(ctx, employeeRepo, repository.MockEmployees(time.Now())); err != nil {
			return fmt.Errorf("failed to seed employees: %w", err)
		}
	}

	staff := employees.NewStaff(logger, employeeRepo, appMetrics)
	staff.SyncGauge(ctx)

	// Either listener failing stops the other one.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, delta)
	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		health := server.NewHealthChecker(employeeRepo, logger)
		if err := server.StartMonitoringServer(ctx, logger, reg, health, cfg.Monitoring.Port); err != nil {
			logger.ErrorContext(ctx, "Monitoring server failed", sl.Err(err))
			errs <- err
			cancel()
		}
	}()

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting Employee API", "address", cfg.HTTP.Address)
		router := server.NewRouter(logger, staff, appMetrics)
		if err := server.StartAPIServer(ctx, logger, router, cfg.HTTP); err != nil {
			logger.ErrorContext(ctx, "Employee API failed", sl.Err(err))
			errs <- err
			cancel()
		}
		logger.InfoContext(ctx, "Employee API stopped.")
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	wgr.Wait()
	close(errs)

	if err, ok := <-errs; ok {
		return err
	}

	logger.InfoContext(ctx, "Application stopped gracefully...")

	return nil
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{Key: "", Value: slog.Value{}}
	}
	return a
}
