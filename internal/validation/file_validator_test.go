package validation

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "investreports/internal/errors"
)

func TestFileValidator_ValidateFile(t *testing.T) {
	tests := []struct {
		name          string
		setupFunc     func(t *testing.T) string
		wantType      apperrors.ErrorType
		errorContains string
	}{
		{
			name: "readable file",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "prices.csv")
				require.NoError(t, os.WriteFile(file, []byte("Close\n1\n"), 0644))
				return file
			},
		},
		{
			name: "missing file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantType:      apperrors.ErrTypeNotFound,
			errorContains: "not found",
		},
		{
			name: "directory instead of file",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantType:      apperrors.ErrTypeValidation,
			errorContains: "is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewFileValidator(slog.Default())
			err := v.ValidateFile(tt.setupFunc(t))

			if tt.wantType == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType))
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestFileValidator_ValidateCSVFile(t *testing.T) {
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "nvda.CSV")
	txtFile := filepath.Join(dir, "nvda.txt")
	require.NoError(t, os.WriteFile(csvFile, []byte("Close\n"), 0644))
	require.NoError(t, os.WriteFile(txtFile, []byte("Close\n"), 0644))

	v := NewFileValidator(nil)
	assert.NoError(t, v.ValidateCSVFile(csvFile))

	err := v.ValidateCSVFile(txtFile)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))

	err = v.ValidateCSVFile(filepath.Join(dir, "absent.csv"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestFileValidator_ValidateOutputDirectory(t *testing.T) {
	v := NewFileValidator(nil)

	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, v.ValidateOutputDirectory(dir))
	assert.DirExists(t, dir)
	assert.NoFileExists(t, filepath.Join(dir, ".write_test"))

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	err := v.ValidateOutputDirectory(filepath.Join(blocker, "sub"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}

func TestFileValidator_ValidateOutputFile(t *testing.T) {
	v := NewFileValidator(nil)
	dir := t.TempDir()

	assert.NoError(t, v.ValidateOutputFile(filepath.Join(dir, "out", "book.xlsx"), ".xlsx"))
	assert.DirExists(t, filepath.Join(dir, "out"))
	assert.NoError(t, v.ValidateOutputFile(filepath.Join(dir, "report.txt")))

	err := v.ValidateOutputFile(filepath.Join(dir, "chart.jpg"), ".png")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))

	err = v.ValidateOutputFile("  ")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}
