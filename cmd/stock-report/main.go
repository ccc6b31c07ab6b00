package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"investreports/internal/app"
	"investreports/internal/config"
	"investreports/internal/infrastructure"
	"investreports/internal/stockreport"
)

func main() {
	fs := newFlagSet()
	fs.Parse(os.Args[1:])

	application, err := app.NewApplication(stockreport.ToolName)
	if err != nil {
		slog.Error("Failed to initialize", "error", err)
		os.Exit(1)
	}
	applyFlags(fs, &application.Config.Stock)

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
	gen := stockreport.NewGenerator(logger, application.Config.Stock,
		stockreport.WithTracer(application.OTel.Tracer),
		stockreport.WithMetrics(application.Metrics))

	result, err := gen.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Stock report failed", slog.String("error", err.Error()))
		return err
	}

	logger.InfoContext(ctx, "Stock report complete",
		slog.String("report", result.ReportPath),
		slog.String("chart", result.ChartPath),
		slog.Int("data_points", result.Summary.Count),
		slog.Bool("shown", result.Shown))
	return nil
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(stockreport.ToolName, flag.ExitOnError)
	fs.String("in", "", "input CSV with a Close column (defaults to data/"+config.StockCSVFileName+" next to the executable)")
	fs.String("report", "", "text report path (defaults to output/"+config.StockReportFileName+")")
	fs.String("chart", "", "chart PNG path (defaults to output/"+config.StockChartFileName+")")
	fs.String("title", "", "report title (defaults to \""+config.DefaultStockTitle+"\")")
	fs.Bool("show", true, "open the chart when a display is available")
	return fs
}

// applyFlags overrides cfg with the flags given on the command line only
func applyFlags(fs *flag.FlagSet, cfg *config.StockConfig) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "in":
			cfg.InputCSV = v
		case "report":
			cfg.ReportFile = v
		case "chart":
			cfg.ChartFile = v
		case "title":
			cfg.Title = v
		case "show":
			if show, err := strconv.ParseBool(v); err == nil {
				cfg.Show = show
			}
		}
	})
}
