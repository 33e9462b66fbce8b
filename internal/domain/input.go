package domain

import (
	"math"
	"strconv"
	"strings"
)

var amountReplacer = strings.NewReplacer(
	"R$", "",
	"US$", "",
	"$", "",
	"€", "",
	"%", "",
)

// ParseAmount converte o texto digitado em um número.
// Aceita os formatos 1234.56, 1234,56 e 1.234,56; qualquer valor inválido vira 0.
func ParseAmount(text string) float64 {
	// espaços que sobram entre o símbolo e o número saem em um segundo passo
	s := strings.Join(strings.Fields(amountReplacer.Replace(text)), "")
	if s == "" {
		return 0
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
