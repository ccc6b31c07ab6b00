package stockreport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "investreports/internal/errors"
	"investreports/pkg/contracts/domain"
)

const (
	// CloseColumn is the header of the price column the report is computed over
	CloseColumn = "Close"
	// DateColumn is captured verbatim when present
	DateColumn = "Date"
)

// LoadSeriesFile opens path and parses it with LoadSeries
func LoadSeriesFile(path string) (domain.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("input file %s", path), err)
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	series, err := LoadSeries(f)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			appErr.WithContext("file", path)
		}
		return nil, err
	}
	return series, nil
}

// LoadSeries parses a CSV with a header row and a Close column. Rows keep
// their input order; blank lines are skipped.
func LoadSeries(r io.Reader) (domain.PriceSeries, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.NewParsingError("csv has no header row", nil)
	}
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read csv header", err)
	}

	closeIdx, dateIdx := findColumns(header)
	if closeIdx < 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("column %q not found in header %v", CloseColumn, header), nil).
			WithContext("column", CloseColumn)
	}

	var series domain.PriceSeries
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read csv row %d", row), err)
		}

		if closeIdx >= len(record) {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("row %d has no %s value", row, CloseColumn), nil).
				WithContext("row", row)
		}

		price, err := parsePrice(record[closeIdx])
		if err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("invalid %s price on row %d", CloseColumn, row), err).
				WithContext("row", row).
				WithContext("value", record[closeIdx])
		}

		point := domain.PricePoint{Index: len(series), Close: price}
		if dateIdx >= 0 && dateIdx < len(record) {
			point.Date = record[dateIdx]
		}
		series = append(series, point)
	}

	return series, nil
}

// findColumns returns the Close and Date column positions, -1 when absent
func findColumns(header []string) (closeIdx, dateIdx int) {
	closeIdx, dateIdx = -1, -1
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		switch strings.TrimSpace(name) {
		case CloseColumn:
			if closeIdx < 0 {
				closeIdx = i
			}
		case DateColumn:
			if dateIdx < 0 {
				dateIdx = i
			}
		}
	}
	return closeIdx, dateIdx
}

func parsePrice(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, errors.New("empty value")
	}
	return strconv.ParseFloat(s, 64)
}
