package stockreport

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"investreports/internal/config"
	"investreports/internal/infrastructure"
	"investreports/internal/validation"
	"investreports/pkg/contracts/domain"
)

// ToolName labels this tool in logs and metrics
const ToolName = "stock-report"

// Generator runs the stock report pipeline once
type Generator struct {
	cfg     config.StockConfig
	chart   ChartOptions
	files   *validation.FileValidator
	viewer  Viewer
	tracer  trace.Tracer
	metrics *infrastructure.RunMetrics
	logger  *slog.Logger
}

// Option customizes a Generator
type Option func(*Generator)

// WithViewer replaces the platform viewer; nil disables display
func WithViewer(v Viewer) Option {
	return func(g *Generator) {
		if v == nil {
			v = noopViewer{}
		}
		g.viewer = v
	}
}

// WithTracer sets the tracer used for the run span
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) { g.tracer = t }
}

// WithMetrics records each run on m
func WithMetrics(m *infrastructure.RunMetrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// WithChartOptions overrides the chart canvas and labels
func WithChartOptions(o ChartOptions) Option {
	return func(g *Generator) { g.chart = o }
}

// Result describes what a run produced
type Result struct {
	Summary    domain.StockSummary
	ReportPath string
	ChartPath  string
	Shown      bool
}

// NewGenerator creates a generator for cfg
func NewGenerator(logger *slog.Logger, cfg config.StockConfig, opts ...Option) *Generator {
	logger = infrastructure.WithComponent(logger, "stockreport")

	chart := DefaultChartOptions()
	if cfg.ChartTitle != "" {
		chart.Title = cfg.ChartTitle
	}

	g := &Generator{
		cfg:    cfg,
		chart:  chart,
		files:  validation.NewFileValidator(logger),
		viewer: NewSystemViewer(),
		tracer: otel.Tracer(infrastructure.MeterName),
		logger: logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run loads the input, writes the report and chart, and optionally shows the
// chart. Any failure aborts the run.
func (g *Generator) Run(ctx context.Context) (result *Result, err error) {
	start := time.Now()
	ctx, span := g.tracer.Start(ctx, "stockreport.Run",
		trace.WithAttributes(attribute.String("input", g.cfg.InputCSV)))
	records := 0
	defer func() {
		if err != nil {
			infrastructure.RecordError(ctx, err)
		}
		span.End()
		g.metrics.RecordRun(ctx, ToolName, records, time.Since(start), err)
	}()

	g.logger.InfoContext(ctx, "Generating stock report",
		slog.String("span_trace_id", infrastructure.TraceIDFromContext(ctx)),
		slog.String("input", g.cfg.InputCSV),
		slog.String("report", g.cfg.ReportFile),
		slog.String("chart", g.cfg.ChartFile))

	if err := g.files.ValidateCSVFile(g.cfg.InputCSV); err != nil {
		return nil, err
	}
	if err := g.files.ValidateOutputFile(g.cfg.ReportFile); err != nil {
		return nil, err
	}
	if err := g.files.ValidateOutputFile(g.cfg.ChartFile, ".png"); err != nil {
		return nil, err
	}

	series, err := LoadSeriesFile(g.cfg.InputCSV)
	if err != nil {
		return nil, err
	}
	records = len(series)
	span.SetAttributes(attribute.Int("records", records))

	summary, err := Summarize(series.Closes())
	if err != nil {
		return nil, err
	}

	if err := WriteReportFile(g.cfg.ReportFile, g.cfg.Title, summary); err != nil {
		return nil, err
	}
	g.logger.InfoContext(ctx, "Report written",
		slog.String("path", g.cfg.ReportFile),
		slog.Int("data_points", summary.Count))

	if err := SaveChart(g.cfg.ChartFile, series, g.chart); err != nil {
		return nil, err
	}
	w, h := g.chart.PixelSize()
	g.logger.InfoContext(ctx, "Chart saved",
		slog.String("path", g.cfg.ChartFile),
		slog.Int("width", w),
		slog.Int("height", h))

	result = &Result{
		Summary:    summary,
		ReportPath: g.cfg.ReportFile,
		ChartPath:  g.cfg.ChartFile,
	}
	result.Shown = g.show(ctx)
	return result, nil
}

// show opens the chart when enabled and a display exists; failures only warn
func (g *Generator) show(ctx context.Context) bool {
	if !g.cfg.Show {
		return false
	}
	if !g.viewer.Available() {
		g.logger.DebugContext(ctx, "No display available, chart not shown")
		return false
	}
	if err := g.viewer.Show(ctx, g.cfg.ChartFile); err != nil {
		g.logger.WarnContext(ctx, "Failed to display chart",
			slog.String("path", g.cfg.ChartFile),
			slog.String("error", err.Error()))
		return false
	}
	return true
}
