package calculator

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "investreports/internal/errors"
	"investreports/pkg/contracts/domain"
)

const (
	headerFill    = "D7E4BC"
	highlightFill = "FFE6CC"
	moneyFormat   = "$#,##0"

	instructionsWidth = 60
)

// styleIDs holds the registered workbook styles
type styleIDs struct {
	header    int
	money     int
	highlight int
}

func (s styleIDs) forCell(style CellStyle) int {
	switch style {
	case StyleMoney:
		return s.money
	case StyleHighlight:
		return s.highlight
	default:
		return 0
	}
}

func registerStyles(f *excelize.File) (styleIDs, error) {
	var ids styleIDs
	var err error

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	ids.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Border:    border,
	})
	if err != nil {
		return ids, fmt.Errorf("header style: %w", err)
	}

	numFmt := moneyFormat
	ids.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return ids, fmt.Errorf("money style: %w", err)
	}

	ids.highlight, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{highlightFill}, Pattern: 1},
	})
	if err != nil {
		return ids, fmt.Errorf("highlight style: %w", err)
	}

	return ids, nil
}

// BuildWorkbook lays out props on the calculator sheet and adds the
// instructions sheet. The workbook has exactly these two sheets. The caller
// owns the returned file and must Close it.
func BuildWorkbook(props []domain.Property, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := buildWorkbook(f, props, now); err != nil {
		f.Close()
		return nil, apperrors.NewRenderError("failed to build workbook", err)
	}
	return f, nil
}

func buildWorkbook(f *excelize.File, props []domain.Property, now time.Time) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetCalculator); err != nil {
		return err
	}

	styles, err := registerStyles(f)
	if err != nil {
		return err
	}

	if err := writeCalculatorSheet(f, props, styles); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetInstructions); err != nil {
		return err
	}
	if err := writeInstructionsSheet(f, now); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return nil
}

func writeCalculatorSheet(f *excelize.File, props []domain.Property, styles styleIDs) error {
	cols := Columns()

	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, HeaderRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetCalculator, cell, col.Header); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetCalculator, cell, cell, styles.header); err != nil {
			return err
		}
	}

	for i, p := range props {
		row := HeaderRow + 1 + i
		for j, col := range cols {
			if err := writeCell(f, j+1, row, col, p, styles); err != nil {
				return fmt.Errorf("row %d %s: %w", row, col.Header, err)
			}
		}
	}

	for i, col := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetCalculator, name, name, col.Width); err != nil {
			return err
		}
	}
	return nil
}

func writeCell(f *excelize.File, colNum, row int, col Column, p domain.Property, styles styleIDs) error {
	cell, err := excelize.CoordinatesToCellName(colNum, row)
	if err != nil {
		return err
	}

	if col.Kind == KindLiteral {
		err = f.SetCellValue(SheetCalculator, cell, col.Value(p))
	} else {
		err = f.SetCellFormula(SheetCalculator, cell, col.Formula(row))
	}
	if err != nil {
		return err
	}

	if id := styles.forCell(col.Style); id != 0 {
		return f.SetCellStyle(SheetCalculator, cell, cell, id)
	}
	return nil
}

func writeInstructionsSheet(f *excelize.File, now time.Time) error {
	for i, line := range InstructionLines(now) {
		if line == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetInstructions, cell, line); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetInstructions, "A", "A", instructionsWidth)
}

// SaveWorkbook writes f to path, replacing any existing file
func SaveWorkbook(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to save workbook %s", path), err)
	}
	return nil
}
