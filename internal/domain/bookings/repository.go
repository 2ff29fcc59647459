package bookings

import "context"

type Repository interface {
	// Create inserta la guardería y sus visitas.
	Create(ctx context.Context, b Booking) error

	// GetByID y ListWithDetails devuelven el modelo completo:
	// cliente con gatos, visitas y abonos (eager).
	GetByID(ctx context.Context, id string) (Booking, error)
	ListWithDetails(ctx context.Context) ([]Booking, error)

	AddPayment(ctx context.Context, p Payment) error

	// Delete elimina visitas y abonos junto con la guardería (cascada).
	Delete(ctx context.Context, id string) error
}
