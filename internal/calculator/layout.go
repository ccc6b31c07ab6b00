package calculator

import (
	"fmt"
	"math"
	"strconv"

	"investreports/pkg/contracts/domain"
)

const (
	// SheetCalculator holds the property rows
	SheetCalculator = "calculator"
	// SheetInstructions holds the usage notes
	SheetInstructions = "instructions"

	// OccupancyWeeks is the let weeks per year; six weeks are assumed vacant
	OccupancyWeeks = 46
	// HeaderRow is the 1-based sheet row of the column labels
	HeaderRow = 1
)

// TargetYields are the net yields fair prices are back-calculated from
var TargetYields = []float64{0.06, 0.065, 0.07, 0.08}

// ColumnKind says how a cell value is produced
type ColumnKind int

const (
	// KindLiteral cells copy a property field
	KindLiteral ColumnKind = iota
	// KindFormula cells hold a formula over the same row
	KindFormula
	// KindHighlight cells hold a formula and carry the highlight style
	KindHighlight
)

// CellStyle names the number style applied to a column's data cells
type CellStyle int

const (
	StyleNone CellStyle = iota
	StyleMoney
	StyleHighlight
)

// Column describes one column of the calculator sheet
type Column struct {
	Header string
	Kind   ColumnKind
	Style  CellStyle
	Width  float64
	// Value returns the literal written for KindLiteral columns
	Value func(p domain.Property) interface{}
	// Formula returns the formula, without a leading "=", for sheet row r
	Formula func(r int) string
}

func literal(header string, style CellStyle, width float64, value func(p domain.Property) interface{}) Column {
	return Column{Header: header, Kind: KindLiteral, Style: style, Width: width, Value: value}
}

func formula(header string, kind ColumnKind, width float64, f func(r int) string) Column {
	style := StyleMoney
	if kind == KindHighlight {
		style = StyleHighlight
	}
	return Column{Header: header, Kind: kind, Style: style, Width: width, Formula: f}
}

// AnnualRentFormula is weekly rent times the occupied weeks
func AnnualRentFormula(r int) string {
	return fmt.Sprintf("B%d*%d", r, OccupancyWeeks)
}

// TotalExpensesFormula sums the five annual cost columns
func TotalExpensesFormula(r int) string {
	return fmt.Sprintf("SUM(D%d:H%d)", r, r)
}

// NetIncomeFormula is annual rent less total expenses
func NetIncomeFormula(r int) string {
	return fmt.Sprintf("C%d-I%d", r, r)
}

// FairPriceFormula divides net income by yield
func FairPriceFormula(r int, yield float64) string {
	return fmt.Sprintf("J%d/%s", r, strconv.FormatFloat(yield, 'f', -1, 64))
}

// YieldLabel renders a yield as a percentage to one decimal, e.g. 0.065 as "6.5%"
func YieldLabel(yield float64) string {
	return strconv.FormatFloat(math.Round(yield*1000)/10, 'f', -1, 64) + "%"
}

// Columns returns the sheet layout in column order A..T
func Columns() []Column {
	cols := []Column{
		literal("Property Address", StyleNone, 40, func(p domain.Property) interface{} { return p.Address }),
		literal("Weekly Rent (NZD)", StyleMoney, 15, func(p domain.Property) interface{} { return p.WeeklyRent }),
		formula("Annual Rent Income (NZD)", KindFormula, 15, AnnualRentFormula),
		literal("Body Corp Fee (Annual)", StyleMoney, 15, func(p domain.Property) interface{} { return p.BodyCorp }),
		literal("Council Rates (Annual)", StyleMoney, 15, func(p domain.Property) interface{} { return p.Rates }),
		literal("Landlord Insurance (Annual)", StyleMoney, 15, func(p domain.Property) interface{} { return p.Insurance }),
		literal("Property Management (Annual)", StyleMoney, 15, func(p domain.Property) interface{} { return p.PropertyManagement }),
		literal("Maintenance Reserve (Annual)", StyleMoney, 15, func(p domain.Property) interface{} { return p.MaintenanceReserve }),
		formula("Total Annual Expenses", KindFormula, 15, TotalExpensesFormula),
		formula("Net Annual Income", KindFormula, 15, NetIncomeFormula),
	}

	for _, y := range TargetYields {
		yield := y
		cols = append(cols, formula("Fair Price @"+YieldLabel(yield), KindHighlight, 18,
			func(r int) string { return FairPriceFormula(r, yield) }))
	}

	return append(cols,
		literal("Build Year", StyleNone, 10, func(p domain.Property) interface{} { return p.BuildYear }),
		literal("RV (Government Valuation)", StyleMoney, 15, func(p domain.Property) interface{} { return p.RV }),
		literal("Asking Price/Layout", StyleNone, 25, func(p domain.Property) interface{} { return p.AskingLayout }),
		literal("Rental Status", StyleNone, 20, func(p domain.Property) interface{} { return p.RentalStatus }),
		literal("Property Link", StyleNone, 30, func(p domain.Property) interface{} { return p.Link }),
		literal("Notes", StyleNone, 30, func(p domain.Property) interface{} { return p.Notes }),
	)
}

// Headers returns the column labels in order
func Headers() []string {
	cols := Columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	return headers
}
