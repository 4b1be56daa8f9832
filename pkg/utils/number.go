package utils

import "math"

// RoundWithTwoDecimalPlace arredonda métricas derivadas (eCPM, CTR, PMR)
// para as duas casas exibidas no dashboard
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
