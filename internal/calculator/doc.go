// Package calculator builds the buyer investment workbook.
//
// Each property becomes one row on the "calculator" sheet. Input columns hold
// literal values; derived columns hold spreadsheet formulas so a buyer can
// edit rents or costs and see fair prices recalculate:
//
//	C  annual rent     = B*46          (46 occupied weeks)
//	I  total expenses  = SUM(D:H)
//	J  net income      = C-I
//	K-N fair price     = J/yield       (6%, 6.5%, 7%, 8%)
//
// A second "instructions" sheet carries static guidance text.
package calculator
