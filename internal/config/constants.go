package config

// Application constants
const (
	AppName    = "investreports"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. INVREPORT_LOGGING_LEVEL
	EnvPrefix = "INVREPORT"

	// ConfigFileEnv points at an explicit YAML config file
	ConfigFileEnv = "INVREPORT_CONFIG"

	// File Paths (relative to executable)
	DefaultDataDir   = "data"
	DefaultOutputDir = "output"
	DefaultLogsDir   = "logs"

	// Well-known file names
	StockCSVFileName       = "nvda_stock.csv"
	StockReportFileName    = "NVDA_Stock_Report.txt"
	StockChartFileName     = "NVDA_Stock_Chart.png"
	CalculatorFileName     = "Buyer_Investment_Calculator.xlsx"
	DefaultLogFileName     = "app.log"
	DefaultStockTitle      = "NVDA Stock Report (2023-2024)"
	DefaultStockChartTitle = "NVDA Stock Price Trend"

	// Log levels
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	// Log outputs
	LogOutputConsole = "console"
	LogOutputFile    = "file"
	LogOutputBoth    = "both"
)
