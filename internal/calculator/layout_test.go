package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	want := []string{
		"Property Address",
		"Weekly Rent (NZD)",
		"Annual Rent Income (NZD)",
		"Body Corp Fee (Annual)",
		"Council Rates (Annual)",
		"Landlord Insurance (Annual)",
		"Property Management (Annual)",
		"Maintenance Reserve (Annual)",
		"Total Annual Expenses",
		"Net Annual Income",
		"Fair Price @6%",
		"Fair Price @6.5%",
		"Fair Price @7%",
		"Fair Price @8%",
		"Build Year",
		"RV (Government Valuation)",
		"Asking Price/Layout",
		"Rental Status",
		"Property Link",
		"Notes",
	}
	assert.Equal(t, want, Headers())
}

func TestColumnsKindsAndWidths(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, 20)

	wantWidths := []float64{40, 15, 15, 15, 15, 15, 15, 15, 15, 15, 18, 18, 18, 18, 10, 15, 25, 20, 30, 30}
	for i, c := range cols {
		assert.Equal(t, wantWidths[i], c.Width, c.Header)

		switch c.Kind {
		case KindLiteral:
			assert.NotNil(t, c.Value, c.Header)
			assert.Nil(t, c.Formula, c.Header)
		default:
			assert.NotNil(t, c.Formula, c.Header)
			assert.Nil(t, c.Value, c.Header)
		}
	}

	for _, i := range []int{2, 8, 9} {
		assert.Equal(t, KindFormula, cols[i].Kind, cols[i].Header)
		assert.Equal(t, StyleMoney, cols[i].Style, cols[i].Header)
	}
	for i := 10; i <= 13; i++ {
		assert.Equal(t, KindHighlight, cols[i].Kind, cols[i].Header)
		assert.Equal(t, StyleHighlight, cols[i].Style, cols[i].Header)
	}
	assert.Equal(t, StyleNone, cols[0].Style)
	assert.Equal(t, StyleMoney, cols[1].Style)
	assert.Equal(t, StyleNone, cols[14].Style)
	assert.Equal(t, StyleMoney, cols[15].Style)
}

func TestFormulas(t *testing.T) {
	assert.Equal(t, "B2*46", AnnualRentFormula(2))
	assert.Equal(t, "SUM(D7:H7)", TotalExpensesFormula(7))
	assert.Equal(t, "C3-I3", NetIncomeFormula(3))

	cols := Columns()
	assert.Equal(t, "J4/0.06", cols[10].Formula(4))
	assert.Equal(t, "J4/0.065", cols[11].Formula(4))
	assert.Equal(t, "J4/0.07", cols[12].Formula(4))
	assert.Equal(t, "J4/0.08", cols[13].Formula(4))
}

func TestYieldLabel(t *testing.T) {
	tests := map[float64]string{
		0.06:  "6%",
		0.065: "6.5%",
		0.07:  "7%",
		0.08:  "8%",
	}
	for in, want := range tests {
		assert.Equal(t, want, YieldLabel(in))
	}
}
