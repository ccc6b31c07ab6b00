package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"investreports/internal/config"
	apperrors "investreports/internal/errors"
	"investreports/internal/infrastructure"
)

// Application holds the shared dependencies of one tool run
type Application struct {
	Tool    string
	Config  *config.Config
	Paths   *config.Paths
	Logger  *slog.Logger
	OTel    *infrastructure.OTelProviders
	Metrics *infrastructure.RunMetrics
}

// NewApplication resolves the executable-relative layout and wires the
// application for tool
func NewApplication(tool string) (*Application, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, apperrors.NewConfigError("failed to resolve paths", err)
	}
	return NewApplicationWithPaths(tool, paths)
}

// NewApplicationWithPaths loads configuration, then initializes logging and
// telemetry in that order. Output and log directories are created.
func NewApplicationWithPaths(tool string, paths *config.Paths) (*Application, error) {
	cfg, err := config.LoadWithPaths(paths)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to load configuration", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, apperrors.NewStorageError("failed to ensure directories", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to initialize logger", err)
	}
	logger = logger.With(slog.String("tool", tool))

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("executable_dir", paths.ExecutableDir))

	otelCfg := infrastructure.NewOTelConfig(cfg.Telemetry, tool)
	var traceFile io.Closer
	if otelCfg.EnableTracing {
		traceFile, err = otelCfg.OpenTraceFile(cfg.Telemetry.TraceFile)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to open trace file", err)
		}
	}

	providers, err := infrastructure.InitializeOTel(otelCfg, logger)
	if err != nil {
		if traceFile != nil {
			traceFile.Close()
		}
		return nil, apperrors.NewConfigError("failed to initialize OpenTelemetry", err)
	}
	providers.CloseOnShutdown(traceFile)

	metrics, err := infrastructure.CreateRunMetrics(providers.Meter)
	if err != nil {
		_ = providers.Shutdown(context.Background())
		return nil, apperrors.NewConfigError("failed to create run metrics", err)
	}

	return &Application{
		Tool:    tool,
		Config:  cfg,
		Paths:   paths,
		Logger:  logger,
		OTel:    providers,
		Metrics: metrics,
	}, nil
}

// Shutdown writes the metrics textfile, flushes telemetry and closes the log
// file. The metrics file is written first because the meter provider stops
// reporting once shut down.
func (a *Application) Shutdown(ctx context.Context) error {
	var errs []error

	if err := a.OTel.WriteMetricsFile(a.Config.Telemetry.MetricsFile); err != nil {
		errs = append(errs, err)
	}
	if err := a.OTel.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("telemetry shutdown: %w", err))
	}

	a.Logger.InfoContext(ctx, "Application stopped")

	if err := infrastructure.CloseLogFile(); err != nil {
		errs = append(errs, fmt.Errorf("close log file: %w", err))
	}
	return errors.Join(errs...)
}
