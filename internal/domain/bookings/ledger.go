package bookings

import "cat-daycare/internal/platform/money"

// TotalPaid suma todos los abonos de la guardería. Independiente del orden.
func TotalPaid(b Booking) money.Amount {
	var sum money.Amount
	for _, p := range b.Payments {
		sum += p.Amount
	}
	return sum
}

// PendingBalance es el saldo pendiente: total cobrado menos total abonado.
// Puede ser negativo (sobrepago); se reporta tal cual, no se recorta a cero.
func PendingBalance(b Booking) money.Amount {
	return TotalCharge(b) - TotalPaid(b)
}

// IsSettled indica saldo exactamente en cero. Los montos son enteros,
// así que la igualdad exacta es correcta (sin tolerancia epsilon).
func IsSettled(b Booking) bool {
	return PendingBalance(b) == 0
}
