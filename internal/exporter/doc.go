// Package exporter provides CSV export functionality for the report tools.
//
// CSVWriter writes header plus records, optionally prefixed with a UTF-8 BOM
// so Excel opens non-ASCII text correctly. Relative paths land in the
// configured output directory.
//
//	w := exporter.NewCSVWriter(paths, logger)
//	path, err := w.WriteSimpleCSV("calculator_snapshot.csv", headers, rows)
package exporter
