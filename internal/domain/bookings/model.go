package bookings

import (
	"time"

	"cat-daycare/internal/domain/clients"
	"cat-daycare/internal/platform/money"
)

// Booking representa una guardería: un encargo de cuidado para un cliente,
// compuesto por una o más visitas con fecha, más los abonos registrados.
type Booking struct {
	ID       string
	ClientID string

	// Client viene cargado con sus gatos (eager). Si el cliente fue eliminado
	// el booking queda huérfano y Client llega vacío; no hay cascada desde clientes.
	Client clients.Client

	Visits   []Visit
	Payments []Payment

	CreatedAt time.Time
}

// Visit es un día agendado dentro de una guardería. Inmutable salvo borrado.
type Visit struct {
	ID        string
	BookingID string

	Date time.Time // truncada a medianoche local
	Time string    // "HH:MM" opcional; vacío = solo fecha
}

// Payment es un abono contra el total de la guardería. Append-only:
// nunca se edita ni se borra individualmente, solo se re-suma.
type Payment struct {
	ID        string
	BookingID string

	Amount money.Amount
	Method PaymentMethod
	PaidAt time.Time
}
