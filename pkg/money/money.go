// Package money da formato a montos decimales con símbolo de moneda y separadores del idioma.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter es seguro para uso concurrente: no guarda estado entre llamadas.
type Formatter struct {
	symbol  string
	tag     language.Tag
	decimal string
}

// New símbolo (ej. "Bs.") y etiqueta de idioma (ej. es-BO) para los separadores.
func New(symbol string, tag language.Tag) *Formatter {
	// el separador decimal se toma de cómo el idioma imprime 0.5
	sep := message.NewPrinter(tag).Sprintf("%.1f", 0.5)
	dec := "."
	if len(sep) >= 3 {
		dec = sep[1 : len(sep)-1]
	}
	return &Formatter{symbol: symbol, tag: tag, decimal: dec}
}

// Format "Bs. 1.234,50". Siempre dos decimales, redondeo half-up.
func (f *Formatter) Format(d decimal.Decimal) string {
	return f.symbol + " " + f.Number(d)
}

// Number monto sin símbolo.
func (f *Formatter) Number(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(f.group(intPart))
	b.WriteString(f.decimal)
	b.WriteString(frac)
	return b.String()
}

// Symbol símbolo configurado.
func (f *Formatter) Symbol() string { return f.symbol }

// group agrega separadores de miles según el idioma (la parte entera cabe en int64 para montos reales).
func (f *Formatter) group(intPart string) string {
	n, err := decimal.NewFromString(intPart)
	if err != nil || !n.LessThan(decimal.New(1, 18)) {
		return intPart
	}
	return message.NewPrinter(f.tag).Sprintf("%d", n.IntPart())
}
