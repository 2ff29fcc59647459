package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amount es un monto en pesos colombianos enteros (COP no usa decimales en la práctica).
// Todos los cálculos internos son enteros exactos; el formateo es solo presentación.
type Amount int64

// Percent devuelve el p% del monto, truncado hacia abajo.
func (a Amount) Percent(p int64) Amount {
	return a * Amount(p) / 100
}

// printer con locale es-CO para separadores de miles (180000 => "180.000").
var printer = message.NewPrinter(language.MustParse("es-CO"))

// Format devuelve el monto para mostrar, sin decimales.
// No usar el resultado para cálculos.
func (a Amount) Format() string {
	return printer.Sprintf("$ %v", number.Decimal(int64(a)))
}
