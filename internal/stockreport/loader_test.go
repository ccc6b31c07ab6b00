package stockreport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "investreports/internal/errors"
)

func TestLoadSeries(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantCloses []float64
		wantDates  []string
	}{
		{
			name:       "date and close",
			input:      "Date,Open,Close\n2023-01-03,14.85,14.31\n2023-01-04,14.56,14.75\n",
			wantCloses: []float64{14.31, 14.75},
			wantDates:  []string{"2023-01-03", "2023-01-04"},
		},
		{
			name:       "close only keeps input order",
			input:      "Close\n30\n10\n20\n",
			wantCloses: []float64{30, 10, 20},
			wantDates:  []string{"", "", ""},
		},
		{
			name:       "bom and padded header",
			input:      "\ufeffDate, Close \n2024-01-02,48.17\n",
			wantCloses: []float64{48.17},
			wantDates:  []string{"2024-01-02"},
		},
		{
			name:       "blank lines skipped",
			input:      "Close\n1\n\n2\n",
			wantCloses: []float64{1, 2},
			wantDates:  []string{"", ""},
		},
		{
			name:       "header only",
			input:      "Date,Close\n",
			wantCloses: []float64{},
			wantDates:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := LoadSeries(strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.wantCloses, series.Closes())
			for i, p := range series {
				assert.Equal(t, i, p.Index)
				assert.Equal(t, tt.wantDates[i], p.Date)
			}
		})
	}
}

func TestLoadSeriesErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantMessage string
	}{
		{
			name:        "missing close column",
			input:       "Date,Price\n2023-01-03,14.31\n",
			wantMessage: `column "Close" not found`,
		},
		{
			name:        "close column name is case sensitive",
			input:       "Date,close\n2023-01-03,14.31\n",
			wantMessage: `column "Close" not found`,
		},
		{
			name:        "non numeric value names the row",
			input:       "Close\n10\n20\nabc\n",
			wantMessage: "row 3",
		},
		{
			name:        "empty value",
			input:       "Date,Close\n2023-01-03,\n",
			wantMessage: "row 1",
		},
		{
			name:        "short row",
			input:       "Date,Close\n2023-01-03\n",
			wantMessage: "row 1 has no Close value",
		},
		{
			name:        "empty input",
			input:       "",
			wantMessage: "no header row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeries(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestLoadSeriesFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "prices.csv")
		require.NoError(t, os.WriteFile(path, []byte("Date,Close\n2023-01-03,10\n2023-01-04,20\n"), 0644))

		series, err := LoadSeriesFile(path)
		require.NoError(t, err)
		assert.Equal(t, []float64{10, 20}, series.Closes())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeriesFile(filepath.Join(dir, "missing.csv"))
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	})

	t.Run("parse error carries file context", func(t *testing.T) {
		path := filepath.Join(dir, "bad.csv")
		require.NoError(t, os.WriteFile(path, []byte("Close\nx\n"), 0644))

		_, err := LoadSeriesFile(path)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, path, appErr.Context["file"])
		assert.Equal(t, 1, appErr.Context["row"])
	})
}
