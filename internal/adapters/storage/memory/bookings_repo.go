package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"cat-daycare/internal/domain/bookings"
)

type BookingsRepo struct {
	mu       sync.RWMutex
	clients  *ClientsRepo
	byID     map[string]bookings.Booking // campos base, sin nested
	visits   map[string][]bookings.Visit
	payments map[string][]bookings.Payment
}

// NewBookingsRepo compone el modelo de lectura contra el repo de clientes,
// igual que el select anidado del store real.
func NewBookingsRepo(clients *ClientsRepo) *BookingsRepo {
	return &BookingsRepo{
		clients:  clients,
		byID:     make(map[string]bookings.Booking),
		visits:   make(map[string][]bookings.Visit),
		payments: make(map[string][]bookings.Payment),
	}
}

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("booking id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return errors.New("booking already exists")
	}

	visits := append([]bookings.Visit(nil), b.Visits...)
	b.Visits = nil
	b.Payments = nil
	r.byID[b.ID] = b
	r.visits[b.ID] = visits
	return nil
}

func (r *BookingsRepo) GetByID(ctx context.Context, id string) (bookings.Booking, error) {
	r.mu.RLock()
	b, ok := r.byID[id]
	if ok {
		b.Visits = append([]bookings.Visit(nil), r.visits[id]...)
		b.Payments = append([]bookings.Payment(nil), r.payments[id]...)
	}
	r.mu.RUnlock()

	if !ok {
		return bookings.Booking{}, bookings.ErrNotFound
	}
	return r.attachClient(ctx, b), nil
}

func (r *BookingsRepo) ListWithDetails(ctx context.Context) ([]bookings.Booking, error) {
	r.mu.RLock()
	out := make([]bookings.Booking, 0, len(r.byID))
	for id, b := range r.byID {
		b.Visits = append([]bookings.Visit(nil), r.visits[id]...)
		b.Payments = append([]bookings.Payment(nil), r.payments[id]...)
		out = append(out, b)
	}
	r.mu.RUnlock()

	for i := range out {
		out[i] = r.attachClient(ctx, out[i])
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *BookingsRepo) AddPayment(ctx context.Context, p bookings.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.BookingID]; !exists {
		return bookings.ErrNotFound
	}
	r.payments[p.BookingID] = append(r.payments[p.BookingID], p)
	return nil
}

func (r *BookingsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return bookings.ErrNotFound
	}
	delete(r.visits, id)
	delete(r.payments, id)
	delete(r.byID, id)
	return nil
}

// attachClient carga el cliente con gatos. Si el cliente fue eliminado la
// guardería queda huérfana y viaja con cliente vacío.
func (r *BookingsRepo) attachClient(ctx context.Context, b bookings.Booking) bookings.Booking {
	c, err := r.clients.GetByID(ctx, b.ClientID)
	if err == nil {
		b.Client = c
	}
	return b
}
