package bookings

import "cat-daycare/internal/platform/money"

// Tarifas por visita según número de gatos del cliente.
const (
	priceOneCat  money.Amount = 40000
	priceTwoCats money.Amount = 60000
	priceCeiling money.Amount = 80000
)

// PricePerVisit devuelve la tarifa por visita para un cliente con catCount gatos.
// El tope (3 a 5 gatos) es también el fallback para 0 gatos o conteos mayores.
func PricePerVisit(catCount int) money.Amount {
	switch {
	case catCount == 1:
		return priceOneCat
	case catCount == 2:
		return priceTwoCats
	case catCount >= 3 && catCount <= 5:
		return priceCeiling
	}
	return priceCeiling
}

// TotalCharge calcula el cobro total: visitas × tarifa por visita.
// El número de gatos sale del cliente de la guardería, no de la guardería.
func TotalCharge(b Booking) money.Amount {
	return money.Amount(len(b.Visits)) * PricePerVisit(len(b.Client.Cats))
}

// Split es el reparto fijo del total: 10% gasolina, 40% cuidador, 50% negocio.
type Split struct {
	Fuel      money.Amount
	Caretaker money.Amount
	Business  money.Amount
}

// SplitCharge reparte el total. Gasolina y cuidador se calculan directo del
// total; el negocio se lleva el resto, así Fuel+Caretaker+Business == total
// exacto para cualquier monto (los totales reales son múltiplos de 20000,
// donde el resto coincide con el 50%).
func SplitCharge(total money.Amount) Split {
	fuel := total.Percent(10)
	caretaker := total.Percent(40)
	return Split{
		Fuel:      fuel,
		Caretaker: caretaker,
		Business:  total - fuel - caretaker,
	}
}
