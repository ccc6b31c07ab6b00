package domain

// PricePoint is one observed row of a closing-price series
type PricePoint struct {
	Index int     `json:"index"`
	Date  string  `json:"date,omitempty"`
	Close float64 `json:"close"`
}

// PriceSeries is an ordered sequence of price points, kept in input order.
// Callers supply chronological order; nothing here re-sorts.
type PriceSeries []PricePoint

// Closes returns the closing prices in series order
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// Positions returns the 0-based row positions used as the chart X axis
func (s PriceSeries) Positions() []float64 {
	xs := make([]float64, len(s))
	for i, p := range s {
		xs[i] = float64(p.Index)
	}
	return xs
}

// StockSummary holds descriptive statistics over the close column
type StockSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
	StdDev float64 `json:"std_dev"` // sample standard deviation, N-1 denominator
}
