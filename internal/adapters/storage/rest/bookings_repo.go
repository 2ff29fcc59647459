package rest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"cat-daycare/internal/domain/bookings"
	"cat-daycare/internal/platform/money"
)

type BookingsRepo struct {
	store *Store
}

func NewBookingsRepo(store *Store) *BookingsRepo {
	return &BookingsRepo{store: store}
}

type visitRow struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time,omitempty"`
}

type paymentRow struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	PaidAt    time.Time `json:"paid_at"`
}

type bookingRow struct {
	ID        string       `json:"id"`
	ClientID  string       `json:"client_id"`
	Client    *clientRow   `json:"clients,omitempty"`
	Visits    []visitRow   `json:"booking_visits,omitempty"`
	Payments  []paymentRow `json:"booking_payments,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// selectDetails pide el modelo anidado completo en un solo round-trip.
const selectDetails = "select=*,clients(*,cats(*)),booking_visits(*),booking_payments(*)"

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) error {
	row := bookingRow{ID: b.ID, ClientID: b.ClientID, CreatedAt: b.CreatedAt}
	if err := r.store.http.DoJSON(ctx, http.MethodPost, "/bookings", r.store.headers(), []bookingRow{row}, nil); err != nil {
		return err
	}

	visits := make([]visitRow, 0, len(b.Visits))
	for _, v := range b.Visits {
		visits = append(visits, visitRow{
			ID:        v.ID,
			BookingID: v.BookingID,
			Date:      formatDate(v.Date),
			Time:      v.Time,
		})
	}
	return r.store.http.DoJSON(ctx, http.MethodPost, "/booking_visits", r.store.headers(), visits, nil)
}

func (r *BookingsRepo) GetByID(ctx context.Context, id string) (bookings.Booking, error) {
	var rows []bookingRow
	path := "/bookings?" + selectDetails + "&id=eq." + url.QueryEscape(id)
	if err := r.store.http.DoJSON(ctx, http.MethodGet, path, r.store.headers(), nil, &rows); err != nil {
		return bookings.Booking{}, err
	}
	if len(rows) == 0 {
		return bookings.Booking{}, bookings.ErrNotFound
	}
	return toBooking(rows[0]), nil
}

func (r *BookingsRepo) ListWithDetails(ctx context.Context) ([]bookings.Booking, error) {
	var rows []bookingRow
	path := "/bookings?" + selectDetails + "&order=created_at.asc"
	if err := r.store.http.DoJSON(ctx, http.MethodGet, path, r.store.headers(), nil, &rows); err != nil {
		return nil, err
	}

	out := make([]bookings.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBooking(row))
	}
	return out, nil
}

func (r *BookingsRepo) AddPayment(ctx context.Context, p bookings.Payment) error {
	row := paymentRow{
		ID:        p.ID,
		BookingID: p.BookingID,
		Amount:    int64(p.Amount),
		Method:    string(p.Method),
		PaidAt:    p.PaidAt,
	}
	return r.store.http.DoJSON(ctx, http.MethodPost, "/booking_payments", r.store.headers(), []paymentRow{row}, nil)
}

// Delete borra primero visitas y abonos y al final la guardería (cascada explícita).
func (r *BookingsRepo) Delete(ctx context.Context, id string) error {
	eq := url.QueryEscape(id)
	if err := r.store.http.DoJSON(ctx, http.MethodDelete, "/booking_visits?booking_id=eq."+eq, r.store.headers(), nil, nil); err != nil {
		return err
	}
	if err := r.store.http.DoJSON(ctx, http.MethodDelete, "/booking_payments?booking_id=eq."+eq, r.store.headers(), nil, nil); err != nil {
		return err
	}
	return r.store.http.DoJSON(ctx, http.MethodDelete, "/bookings?id=eq."+eq, r.store.headers(), nil, nil)
}

func toBooking(row bookingRow) bookings.Booking {
	b := bookings.Booking{
		ID:        row.ID,
		ClientID:  row.ClientID,
		CreatedAt: row.CreatedAt,
	}
	if row.Client != nil {
		b.Client = toClient(*row.Client)
	}
	for _, v := range row.Visits {
		b.Visits = append(b.Visits, bookings.Visit{
			ID:        v.ID,
			BookingID: v.BookingID,
			Date:      parseDate(v.Date),
			Time:      v.Time,
		})
	}
	for _, p := range row.Payments {
		b.Payments = append(b.Payments, bookings.Payment{
			ID:        p.ID,
			BookingID: p.BookingID,
			Amount:    money.Amount(p.Amount),
			Method:    bookings.PaymentMethod(p.Method),
			PaidAt:    p.PaidAt,
		})
	}
	return b
}
