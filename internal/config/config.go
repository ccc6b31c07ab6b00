package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" envconfig:"TELEMETRY"`
	Stock      StockConfig      `yaml:"stock" envconfig:"STOCK"`
	Calculator CalculatorConfig `yaml:"calculator" envconfig:"CALCULATOR"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// TelemetryConfig controls OpenTelemetry tracing and the metrics textfile
type TelemetryConfig struct {
	Enabled       bool    `yaml:"enabled" envconfig:"ENABLED"`
	Environment   string  `yaml:"environment" envconfig:"ENVIRONMENT"`
	TraceExporter string  `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER"` // "stdout", "none"
	TraceFile     string  `yaml:"trace_file" envconfig:"TRACE_FILE"`         // empty writes spans to stdout
	MetricsFile   string  `yaml:"metrics_file" envconfig:"METRICS_FILE"`     // node-exporter textfile, empty disables
	SampleRatio   float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO"`
}

// StockConfig configures the stock report generator
type StockConfig struct {
	InputCSV   string `yaml:"input_csv" envconfig:"INPUT_CSV"`
	ReportFile string `yaml:"report_file" envconfig:"REPORT_FILE"`
	ChartFile  string `yaml:"chart_file" envconfig:"CHART_FILE"`
	Title      string `yaml:"title" envconfig:"TITLE"`
	ChartTitle string `yaml:"chart_title" envconfig:"CHART_TITLE"`
	Show       bool   `yaml:"show" envconfig:"SHOW"`
}

// CalculatorConfig configures the buyer investment calculator
type CalculatorConfig struct {
	OutputFile     string `yaml:"output_file" envconfig:"OUTPUT_FILE"`
	PropertiesFile string `yaml:"properties_file" envconfig:"PROPERTIES_FILE"` // empty uses the built-in list
	SnapshotCSV    string `yaml:"snapshot_csv" envconfig:"SNAPSHOT_CSV"`       // empty disables the snapshot
}

// LoadWithPaths builds the configuration from defaults, then the config file,
// then environment variables, and fills unset file locations from paths.
// Later sources win.
func LoadWithPaths(paths *Paths) (*Config, error) {
	cfg := Default()

	if configFile := getConfigFilePath(); configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", configFile, err)
		}
	}

	// No default tags: envconfig only touches fields whose variable is set
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.resolvePaths(paths)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays a YAML file onto cfg; keys absent from the file keep their value
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// resolvePaths fills unset file locations from the executable-relative layout
func (c *Config) resolvePaths(paths *Paths) {
	if c.Stock.InputCSV == "" {
		c.Stock.InputCSV = paths.StockCSV
	}
	if c.Stock.ReportFile == "" {
		c.Stock.ReportFile = paths.StockReport
	}
	if c.Stock.ChartFile == "" {
		c.Stock.ChartFile = paths.StockChart
	}
	if c.Calculator.OutputFile == "" {
		c.Calculator.OutputFile = paths.CalculatorXLSX
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = paths.GetLogPath(DefaultLogFileName)
	}

	c.Stock.InputCSV = paths.Resolve(c.Stock.InputCSV)
	c.Stock.ReportFile = paths.Resolve(c.Stock.ReportFile)
	c.Stock.ChartFile = paths.Resolve(c.Stock.ChartFile)
	c.Calculator.OutputFile = paths.Resolve(c.Calculator.OutputFile)
	c.Calculator.PropertiesFile = paths.Resolve(c.Calculator.PropertiesFile)
	c.Calculator.SnapshotCSV = paths.Resolve(c.Calculator.SnapshotCSV)
	c.Logging.FilePath = paths.Resolve(c.Logging.FilePath)
	c.Telemetry.TraceFile = paths.Resolve(c.Telemetry.TraceFile)
	c.Telemetry.MetricsFile = paths.Resolve(c.Telemetry.MetricsFile)
}

// validate validates the configuration
func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, "warning", LogLevelError:
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Output) {
	case LogOutputConsole, LogOutputFile, LogOutputBoth:
	default:
		return fmt.Errorf("invalid log output: %q", c.Logging.Output)
	}

	switch c.Telemetry.TraceExporter {
	case "stdout", "none":
	default:
		return fmt.Errorf("unsupported trace exporter: %q", c.Telemetry.TraceExporter)
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("telemetry sample ratio must be within [0,1], got %v", c.Telemetry.SampleRatio)
	}

	if strings.TrimSpace(c.Stock.Title) == "" {
		return fmt.Errorf("stock report title must not be empty")
	}

	return nil
}

// getConfigFilePath returns the path to the config file, or "" when there is none
func getConfigFilePath() string {
	if explicit := os.Getenv(ConfigFileEnv); explicit != "" {
		return explicit
	}

	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Output: LogOutputBoth,
		},
		Telemetry: TelemetryConfig{
			Enabled:       false,
			Environment:   "development",
			TraceExporter: "none",
			SampleRatio:   1.0,
		},
		Stock: StockConfig{
			Title:      DefaultStockTitle,
			ChartTitle: DefaultStockChartTitle,
			Show:       true,
		},
	}
}
