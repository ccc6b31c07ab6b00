package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithPaths(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func(t *testing.T)
		fileContent string
		wantErr     bool
		validateCfg func(*testing.T, *Config, *Paths)
	}{
		{
			name: "defaults resolve to executable layout",
			validateCfg: func(t *testing.T, cfg *Config, p *Paths) {
				assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
				assert.Equal(t, LogOutputBoth, cfg.Logging.Output)
				assert.Equal(t, p.GetLogPath(DefaultLogFileName), cfg.Logging.FilePath)

				assert.Equal(t, p.StockCSV, cfg.Stock.InputCSV)
				assert.Equal(t, p.StockReport, cfg.Stock.ReportFile)
				assert.Equal(t, p.StockChart, cfg.Stock.ChartFile)
				assert.Equal(t, DefaultStockTitle, cfg.Stock.Title)
				assert.Equal(t, DefaultStockChartTitle, cfg.Stock.ChartTitle)
				assert.True(t, cfg.Stock.Show)

				assert.Equal(t, p.CalculatorXLSX, cfg.Calculator.OutputFile)
				assert.Empty(t, cfg.Calculator.PropertiesFile)
				assert.Empty(t, cfg.Calculator.SnapshotCSV)

				assert.False(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "none", cfg.Telemetry.TraceExporter)
				assert.Equal(t, 1.0, cfg.Telemetry.SampleRatio)
			},
		},
		{
			name: "environment overrides defaults",
			setupEnv: func(t *testing.T) {
				t.Setenv("INVREPORT_LOGGING_LEVEL", "debug")
				t.Setenv("INVREPORT_STOCK_SHOW", "false")
				t.Setenv("INVREPORT_STOCK_INPUT_CSV", "prices/aapl.csv")
				t.Setenv("INVREPORT_TELEMETRY_ENABLED", "true")
			},
			validateCfg: func(t *testing.T, cfg *Config, p *Paths) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.False(t, cfg.Stock.Show)
				assert.Equal(t, filepath.Join(p.ExecutableDir, "prices", "aapl.csv"), cfg.Stock.InputCSV)
				assert.True(t, cfg.Telemetry.Enabled)
			},
		},
		{
			name: "file overrides defaults and env overrides file",
			setupEnv: func(t *testing.T) {
				t.Setenv("INVREPORT_LOGGING_LEVEL", "error")
			},
			fileContent: `
logging:
  level: warn
  output: console
stock:
  title: AAPL Stock Report
calculator:
  properties_file: /etc/investreports/properties.yaml
  snapshot_csv: snapshot.csv
`,
			validateCfg: func(t *testing.T, cfg *Config, p *Paths) {
				assert.Equal(t, "error", cfg.Logging.Level)
				assert.Equal(t, LogOutputConsole, cfg.Logging.Output)
				assert.Equal(t, "AAPL Stock Report", cfg.Stock.Title)
				assert.Equal(t, DefaultStockChartTitle, cfg.Stock.ChartTitle)
				assert.Equal(t, "/etc/investreports/properties.yaml", cfg.Calculator.PropertiesFile)
				assert.Equal(t, filepath.Join(p.ExecutableDir, "snapshot.csv"), cfg.Calculator.SnapshotCSV)
			},
		},
		{
			name: "invalid log level rejected",
			setupEnv: func(t *testing.T) {
				t.Setenv("INVREPORT_LOGGING_LEVEL", "verbose")
			},
			wantErr: true,
		},
		{
			name: "unsupported trace exporter rejected",
			setupEnv: func(t *testing.T) {
				t.Setenv("INVREPORT_TELEMETRY_TRACE_EXPORTER", "otlp")
			},
			wantErr: true,
		},
		{
			name:        "malformed file rejected",
			fileContent: "logging: [unterminated",
			wantErr:     true,
		},
		{
			name:        "empty title rejected",
			fileContent: "stock:\n  title: \"  \"\n",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			paths := NewPaths(base)

			t.Setenv(ConfigFileEnv, "")
			if tt.fileContent != "" {
				file := filepath.Join(base, "config.yaml")
				require.NoError(t, os.WriteFile(file, []byte(tt.fileContent), 0644))
				t.Setenv(ConfigFileEnv, file)
			}
			if tt.setupEnv != nil {
				tt.setupEnv(t)
			}

			cfg, err := LoadWithPaths(paths)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg, paths)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)
	assert.NoError(t, cfg.validate())
}
