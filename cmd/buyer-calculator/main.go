package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"investreports/internal/app"
	"investreports/internal/calculator"
	"investreports/internal/config"
	"investreports/internal/infrastructure"
)

func main() {
	fs := newFlagSet()
	fs.Parse(os.Args[1:])

	application, err := app.NewApplication(calculator.ToolName)
	if err != nil {
		slog.Error("Failed to initialize", "error", err)
		os.Exit(1)
	}
	applyFlags(fs, &application.Config.Calculator)

	ctx := infrastructure.EnsureTraceID(context.Background())
	runErr := run(ctx, application)

	if err := application.Shutdown(ctx); err != nil {
		slog.Warn("Shutdown finished with errors", "error", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, application *app.Application) error {
	logger := application.Logger
	gen := calculator.NewGenerator(logger, application.Config.Calculator,
		calculator.WithPaths(application.Paths),
		calculator.WithTracer(application.OTel.Tracer),
		calculator.WithMetrics(application.Metrics))

	result, err := gen.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Buyer calculator failed", slog.String("error", err.Error()))
		return err
	}

	attrs := []any{
		slog.String("workbook", result.WorkbookPath),
		slog.Int("properties", result.Properties),
	}
	if result.SnapshotPath != "" {
		attrs = append(attrs, slog.String("snapshot", result.SnapshotPath))
	}
	logger.InfoContext(ctx, "Buyer calculator complete", attrs...)
	return nil
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(calculator.ToolName, flag.ExitOnError)
	fs.String("out", "", "workbook path (defaults to output/"+config.CalculatorFileName+" next to the executable)")
	fs.String("properties", "", "YAML property file (defaults to the built-in listings)")
	fs.String("snapshot", "", "also write a CSV snapshot of the computed values to this path")
	return fs
}

// applyFlags overrides cfg with the flags given on the command line only
func applyFlags(fs *flag.FlagSet, cfg *config.CalculatorConfig) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "out":
			cfg.OutputFile = v
		case "properties":
			cfg.PropertiesFile = v
		case "snapshot":
			cfg.SnapshotCSV = v
		}
	})
}
