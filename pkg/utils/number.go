package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// HoursFromSeconds converte segundos em horas com duas casas decimais
func HoursFromSeconds(seconds int64) float64 {
	return RoundWithTwoDecimalPlace(float64(seconds) / 3600)
}
