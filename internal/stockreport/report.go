package stockreport

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	apperrors "investreports/internal/errors"
	"investreports/pkg/contracts/domain"
)

const separatorWidth = 30

// FormatReport renders the summary as the fixed seven-line text report.
// Min price carries one decimal where the other prices carry two.
func FormatReport(title string, s domain.StockSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", separatorWidth))
	fmt.Fprintf(&b, "Data points: %d\n", s.Count)
	fmt.Fprintf(&b, "Average price: %.2f\n", s.Mean)
	fmt.Fprintf(&b, "Max price: %.2f\n", s.Max)
	fmt.Fprintf(&b, "Min price: %.1f\n", s.Min)
	fmt.Fprintf(&b, "Standard deviation: %s\n", formatStdDev(s.StdDev))
	return b.String()
}

// formatStdDev prints an undefined deviation as "nan"
func formatStdDev(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return fmt.Sprintf("%.2f", v)
}

// WriteReport writes the formatted report to w
func WriteReport(w io.Writer, title string, s domain.StockSummary) error {
	_, err := io.WriteString(w, FormatReport(title, s))
	return err
}

// WriteReportFile creates or truncates path and writes the report
func WriteReportFile(path, title string, s domain.StockSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create report %s", path), err)
	}

	if err := WriteReport(f, title, s); err != nil {
		f.Close()
		return apperrors.NewStorageError(fmt.Sprintf("failed to write report %s", path), err)
	}

	if err := f.Close(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to close report %s", path), err)
	}
	return nil
}
