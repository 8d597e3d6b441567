package models

import "time"

// PricePoint is one daily close for a symbol. Date is a UTC calendar day.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// Closes extracts the close values of points, preserving order.
func Closes(points []PricePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Close
	}
	return out
}
