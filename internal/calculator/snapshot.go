package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "investreports/internal/errors"
	"investreports/internal/exporter"
	"investreports/pkg/contracts/domain"
)

// Projection is the workbook arithmetic for one property, computed once
type Projection struct {
	Address       string
	AnnualRent    decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
	// FairPrices follow TargetYields order
	FairPrices []decimal.Decimal
}

// Project evaluates the workbook formulas for p in decimal arithmetic
func Project(p domain.Property) Projection {
	annualRent := decimal.NewFromFloat(p.WeeklyRent).Mul(decimal.NewFromInt(OccupancyWeeks))

	total := decimal.Zero
	for _, c := range append(p.FixedCosts(), p.EditableCosts()...) {
		total = total.Add(decimal.NewFromFloat(c))
	}
	net := annualRent.Sub(total)

	prices := make([]decimal.Decimal, len(TargetYields))
	for i, y := range TargetYields {
		prices[i] = net.Div(decimal.NewFromFloat(y))
	}

	return Projection{
		Address:       p.Address,
		AnnualRent:    annualRent,
		TotalExpenses: total,
		NetIncome:     net,
		FairPrices:    prices,
	}
}

// SnapshotHeaders labels the snapshot CSV. Every computed column is marked
// as a snapshot because, unlike the workbook, it does not recalculate.
func SnapshotHeaders() []string {
	headers := []string{
		"Property Address",
		"Annual Rent Income (NZD) (snapshot)",
		"Total Annual Expenses (snapshot)",
		"Net Annual Income (snapshot)",
	}
	for _, y := range TargetYields {
		headers = append(headers, fmt.Sprintf("Fair Price @%s (snapshot)", YieldLabel(y)))
	}
	return headers
}

// Record renders the projection as a CSV row matching SnapshotHeaders
func (pr Projection) Record() []string {
	record := []string{
		pr.Address,
		exporter.FormatDecimal(pr.AnnualRent),
		exporter.FormatDecimal(pr.TotalExpenses),
		exporter.FormatDecimal(pr.NetIncome),
	}
	for _, price := range pr.FairPrices {
		record = append(record, exporter.FormatDecimal(price))
	}
	return record
}

// ExportSnapshot writes one projected row per property and returns the path
// written
func ExportSnapshot(w *exporter.CSVWriter, path string, props []domain.Property) (string, error) {
	records := make([][]string, 0, len(props))
	for _, p := range props {
		records = append(records, Project(p).Record())
	}
	written, err := w.WriteSimpleCSV(path, SnapshotHeaders(), records)
	if err != nil {
		return written, apperrors.NewStorageError(fmt.Sprintf("failed to write snapshot %s", written), err)
	}
	return written, nil
}
