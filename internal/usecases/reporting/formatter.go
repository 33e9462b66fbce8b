package reporting

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/pkg/utils"
)

const percentPlaces = 2

// Formatter apresenta valores no padrão brasileiro (1.234,56) com o símbolo da moeda escolhida
type Formatter struct {
	Currency      string
	DecimalPlaces int
}

func NewFormatter(settings *domain.Settings) Formatter {
	if settings == nil {
		settings = domain.DefaultSettings()
	}
	return Formatter{Currency: settings.Currency, DecimalPlaces: settings.DecimalPlaces}
}

func (f Formatter) Symbol() string {
	if symbol, ok := domain.CurrencySymbols[f.Currency]; ok {
		return symbol
	}
	return domain.CurrencySymbols[domain.CurrencyBRL]
}

func (f Formatter) places() int {
	if f.DecimalPlaces <= 0 {
		return 2
	}
	return f.DecimalPlaces
}

// Number arredonda metade para longe do zero e aplica os separadores pt-BR
func (f Formatter) Number(v float64, places int) string {
	rounded := utils.Round(v, int32(places))
	return humanize.FormatFloat("#.###,"+strings.Repeat("#", places), rounded)
}

func (f Formatter) Money(v float64) string {
	return f.Symbol() + " " + f.Number(v, f.places())
}

func (f Formatter) Percent(v float64) string {
	return f.Number(v, percentPlaces) + "%"
}
