package util

import "math"

// SVPPoints derives a product's loyalty points from its price: one
// hundredth of the price, rounded to two decimals.
func SVPPoints(price float64) float64 {
	return math.Round(price) / 100
}
