// Package stockreport turns a closing-price CSV into a text summary and a
// line chart.
//
// The pipeline is linear and runs once per invocation:
//
//	series  := LoadSeriesFile(path)        // "Close" column, input order kept
//	summary := Summarize(series.Closes())  // count, mean, max, min, sample std
//	FormatReport(title, summary)           // fixed labels and precision
//	SaveChart(chartPath, series, opts)     // close vs row index, 1200x600 PNG
//
// Generator wires these steps together with logging, tracing and run metrics.
package stockreport
