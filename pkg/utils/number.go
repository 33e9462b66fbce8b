package utils

import "github.com/shopspring/decimal"

// Round arredonda para a quantidade de casas informada, metade para longe do zero
func Round(f float64, places int32) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}
