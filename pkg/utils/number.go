package utils

import "math"

// RoundWithTwoDecimalPlace redondea a dos decimales (mitad hacia arriba),
// el formato monetario usado en todas las tablas de ventas.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
