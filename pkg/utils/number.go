package utils

import "math"

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// RatioToPercent converte uma razão (0.933) em percentual com uma casa decimal (93.3)
func RatioToPercent(ratio float64) float64 {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0
	}

	return RoundWithOneDecimalPlace(ratio * 100)
}
