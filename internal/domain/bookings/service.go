package bookings

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cat-daycare/internal/domain/clients"
	"cat-daycare/internal/platform/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("booking not found")
)

// ClientLookup es lo mínimo que este módulo necesita del módulo de clientes.
type ClientLookup interface {
	GetByID(ctx context.Context, id string) (clients.Client, error)
}

type Service struct {
	repo    Repository
	clients ClientLookup
	now     func() time.Time
}

func NewService(repo Repository, cl ClientLookup) *Service {
	return &Service{
		repo:    repo,
		clients: cl,
		now:     time.Now,
	}
}

type VisitInput struct {
	Date time.Time
	Time string // "HH:MM" opcional
}

// Create registra una guardería para un cliente existente con sus fechas.
// Cliente vacío o sin fechas es error de validación, no llega al store.
func (s *Service) Create(ctx context.Context, clientID string, visits []VisitInput) (Booking, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" || len(visits) == 0 {
		return Booking{}, ErrInvalidInput
	}
	for _, vi := range visits {
		if vi.Date.IsZero() {
			return Booking{}, ErrInvalidInput
		}
	}

	c, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return Booking{}, err
	}

	b := Booking{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Client:    c,
		CreatedAt: s.now(),
	}
	for _, vi := range visits {
		b.Visits = append(b.Visits, Visit{
			ID:        uuid.NewString(),
			BookingID: b.ID,
			Date:      dayStart(vi.Date),
			Time:      strings.TrimSpace(vi.Time),
		})
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Booking{}, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Booking{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Buckets particiona todas las guarderías en exactamente un estado cada una.
type Buckets struct {
	Today     []Booking
	Pending   []Booking
	Completed []Booking
}

// ListBuckets carga todo y particiona por estado. "now" se captura una sola
// vez para el pase completo: dos visitas evaluadas en el mismo listado nunca
// pueden discrepar sobre qué día es hoy.
func (s *Service) ListBuckets(ctx context.Context) (Buckets, error) {
	items, err := s.repo.ListWithDetails(ctx)
	if err != nil {
		return Buckets{}, err
	}

	sortByEarliestVisit(items)

	now := s.now()
	var out Buckets
	for _, b := range items {
		switch Classify(b, now) {
		case StatusToday:
			out.Today = append(out.Today, b)
		case StatusPending:
			out.Pending = append(out.Pending, b)
		default:
			out.Completed = append(out.Completed, b)
		}
	}
	return out, nil
}

// FinanceRow es una fila del resumen financiero por guardería.
type FinanceRow struct {
	BookingID  string
	ClientName string

	VisitCount int
	CatCount   int

	PricePerVisit money.Amount
	Total         money.Amount
	Split         Split

	TotalPaid      money.Amount
	PendingBalance money.Amount
	Debt           bool

	Status Status
}

type FinanceSummary struct {
	Pending   []FinanceRow
	Completed []FinanceRow
}

// Finance arma el resumen financiero. La agrupación terminada/pendiente usa
// el chequeo de instante completo contra la medianoche de hoy (allVisitsPast),
// que es el criterio histórico de esta vista; una guardería con visita hoy
// cuenta como pendiente.
func (s *Service) Finance(ctx context.Context) (FinanceSummary, error) {
	items, err := s.repo.ListWithDetails(ctx)
	if err != nil {
		return FinanceSummary{}, err
	}

	now := s.now()
	var out FinanceSummary
	for _, b := range items {
		row := buildFinanceRow(b, now)
		if allVisitsPast(b, now) {
			out.Completed = append(out.Completed, row)
		} else {
			out.Pending = append(out.Pending, row)
		}
	}
	return out, nil
}

func buildFinanceRow(b Booking, now time.Time) FinanceRow {
	total := TotalCharge(b)
	balance := PendingBalance(b)
	return FinanceRow{
		BookingID:      b.ID,
		ClientName:     b.Client.Name,
		VisitCount:     len(b.Visits),
		CatCount:       len(b.Client.Cats),
		PricePerVisit:  PricePerVisit(len(b.Client.Cats)),
		Total:          total,
		Split:          SplitCharge(total),
		TotalPaid:      TotalPaid(b),
		PendingBalance: balance,
		Debt:           balance != 0,
		Status:         Classify(b, now),
	}
}

// AddPayment registra un abono. Monto no positivo es rechazo de validación
// (visible al usuario, no un fallo); método vacío default a transferencia.
func (s *Service) AddPayment(ctx context.Context, bookingID string, amount money.Amount, method PaymentMethod) (Payment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" || amount <= 0 {
		return Payment{}, ErrInvalidInput
	}
	if method == "" {
		method = MethodTransfer
	}
	if !validMethod(method) {
		return Payment{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, bookingID); err != nil {
		return Payment{}, err
	}

	p := Payment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Amount:    amount,
		Method:    method,
		PaidAt:    s.now(),
	}
	if err := s.repo.AddPayment(ctx, p); err != nil {
		return Payment{}, err
	}
	return p, nil
}

// Delete elimina la guardería con sus visitas y abonos. El cliente nunca
// se toca. Un fallo parcial se reporta tal cual; no hay rollback.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// sortByEarliestVisit ordena ascendente por la visita más temprana.
// Sin visitas la fecha más temprana es el cero de time.Time, así que esas
// guarderías ordenan primero.
func sortByEarliestVisit(items []Booking) {
	sort.SliceStable(items, func(i, j int) bool {
		return earliestVisit(items[i]).Before(earliestVisit(items[j]))
	})
}

func earliestVisit(b Booking) time.Time {
	var min time.Time
	for i, v := range b.Visits {
		if i == 0 || v.Date.Before(min) {
			min = v.Date
		}
	}
	return min
}
