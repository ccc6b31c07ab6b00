// Package app wires the shared dependencies of the command line tools.
//
// Every tool follows the same lifecycle:
//
//	1. Resolve the executable-relative layout (config.GetPaths)
//	2. Load configuration: defaults, then config file, then environment
//	3. Create the output and log directories
//	4. Initialize the slog logger and OpenTelemetry providers
//	5. Run the tool's generator
//	6. Shutdown: write the metrics textfile, flush spans, close the log file
//
// Initialization errors are returned to main, which decides the exit code.
package app
