package stockreport

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	apperrors "investreports/internal/errors"
	"investreports/pkg/contracts/domain"
)

// Summarize computes count, mean, max, min and the sample standard deviation
// (N-1 denominator). A single price has an undefined deviation and yields NaN.
func Summarize(closes []float64) (domain.StockSummary, error) {
	if len(closes) == 0 {
		return domain.StockSummary{}, apperrors.NewValidationError("price series is empty", nil)
	}

	return domain.StockSummary{
		Count:  len(closes),
		Mean:   stat.Mean(closes, nil),
		Max:    floats.Max(closes),
		Min:    floats.Min(closes),
		StdDev: stat.StdDev(closes, nil),
	}, nil
}
