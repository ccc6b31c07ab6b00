package calculator

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"investreports/internal/config"
	"investreports/internal/exporter"
	"investreports/internal/infrastructure"
	"investreports/internal/validation"
)

// ToolName labels this tool in logs and metrics
const ToolName = "buyer-calculator"

// Generator builds and saves the calculator workbook once per Run
type Generator struct {
	cfg     config.CalculatorConfig
	now     func() time.Time
	files   *validation.FileValidator
	structs *validation.StructValidator
	csv     *exporter.CSVWriter
	tracer  trace.Tracer
	metrics *infrastructure.RunMetrics
	logger  *slog.Logger
}

// Option customizes a Generator
type Option func(*Generator)

// WithClock sets the time source for the instructions creation date
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithPaths places relative snapshot paths under the output directory
func WithPaths(paths *config.Paths) Option {
	return func(g *Generator) { g.csv = exporter.NewCSVWriter(paths, g.logger) }
}

// WithTracer sets the tracer used for the run span
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) { g.tracer = t }
}

// WithMetrics records each run on m
func WithMetrics(m *infrastructure.RunMetrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// Result describes what a run produced
type Result struct {
	Properties   int
	WorkbookPath string
	SnapshotPath string
}

// NewGenerator creates a generator for cfg
func NewGenerator(logger *slog.Logger, cfg config.CalculatorConfig, opts ...Option) *Generator {
	logger = infrastructure.WithComponent(logger, "calculator")

	g := &Generator{
		cfg:     cfg,
		now:     time.Now,
		files:   validation.NewFileValidator(logger),
		structs: validation.NewStructValidator(),
		csv:     exporter.NewCSVWriter(nil, logger),
		tracer:  otel.Tracer(infrastructure.MeterName),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run loads the properties, writes the workbook and, when configured, the
// snapshot CSV
func (g *Generator) Run(ctx context.Context) (result *Result, err error) {
	start := time.Now()
	ctx, span := g.tracer.Start(ctx, "calculator.Run",
		trace.WithAttributes(attribute.String("output", g.cfg.OutputFile)))
	records := 0
	defer func() {
		if err != nil {
			infrastructure.RecordError(ctx, err)
		}
		span.End()
		g.metrics.RecordRun(ctx, ToolName, records, time.Since(start), err)
	}()

	props, err := LoadProperties(g.cfg.PropertiesFile, g.structs)
	if err != nil {
		return nil, err
	}
	records = len(props)
	span.SetAttributes(attribute.Int("properties", records))

	source := g.cfg.PropertiesFile
	if source == "" {
		source = "built-in"
	}
	g.logger.InfoContext(ctx, "Building investment calculator",
		slog.String("span_trace_id", infrastructure.TraceIDFromContext(ctx)),
		slog.String("source", source),
		slog.Int("properties", records),
		slog.String("output", g.cfg.OutputFile))

	if err := g.files.ValidateOutputFile(g.cfg.OutputFile, ".xlsx"); err != nil {
		return nil, err
	}

	wb, err := BuildWorkbook(props, g.now())
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if err := SaveWorkbook(wb, g.cfg.OutputFile); err != nil {
		return nil, err
	}
	g.logger.InfoContext(ctx, "Workbook saved",
		slog.String("path", g.cfg.OutputFile),
		slog.Any("sheets", wb.GetSheetList()))

	result = &Result{Properties: records, WorkbookPath: g.cfg.OutputFile}

	if g.cfg.SnapshotCSV != "" {
		path, err := ExportSnapshot(g.csv, g.cfg.SnapshotCSV, props)
		if err != nil {
			return nil, err
		}
		result.SnapshotPath = path
		g.logger.InfoContext(ctx, "Snapshot written",
			slog.String("path", path),
			slog.Int("rows", records))
	}

	return result, nil
}
