// Package config provides centralized configuration for the report tools.
//
// # Configuration Sources
//
// Configuration is assembled in this order, later sources winning:
//
//	1. Default values (Default)
//	2. A YAML file: $INVREPORT_CONFIG, ./config.yaml or ./configs/config.yaml
//	3. Environment variables
//
// # Environment Variables
//
// All environment variables follow the pattern INVREPORT_<SECTION>_<KEY>:
//
//	INVREPORT_LOGGING_LEVEL=debug
//	INVREPORT_STOCK_INPUT_CSV=/data/nvda.csv
//	INVREPORT_STOCK_SHOW=false
//	INVREPORT_CALCULATOR_PROPERTIES_FILE=properties.yaml
//	INVREPORT_TELEMETRY_METRICS_FILE=/var/lib/node_exporter/investreports.prom
//
// # Paths
//
// Relative locations are resolved against the executable directory, never the
// working directory. See GetPaths for the layout.
package config
