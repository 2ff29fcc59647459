package postgres

import (
	"context"
	"database/sql"
	"strings"

	"cat-daycare/internal/domain/bookings"
	"cat-daycare/internal/domain/clients"
	"cat-daycare/internal/platform/money"
)

type BookingsRepo struct {
	db      *sql.DB
	clients *ClientsRepo
}

func NewBookingsRepo(db *sql.DB) *BookingsRepo {
	return &BookingsRepo{db: db, clients: NewClientsRepo(db)}
}

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (id, client_id, created_at)
		VALUES ($1,$2,$3)
	`, b.ID, b.ClientID, b.CreatedAt)
	if err != nil {
		return err
	}

	for _, v := range b.Visits {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO booking_visits (id, booking_id, date, time)
			VALUES ($1,$2,$3,$4)
		`, v.ID, v.BookingID, v.Date, toNullString(v.Time))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *BookingsRepo) GetByID(ctx context.Context, id string) (bookings.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return bookings.Booking{}, bookings.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, client_id, created_at
		FROM bookings
		WHERE id = $1
	`, id)

	var b bookings.Booking
	if err := row.Scan(&b.ID, &b.ClientID, &b.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return bookings.Booking{}, bookings.ErrNotFound
		}
		return bookings.Booking{}, err
	}

	list, err := r.loadDetails(ctx, []bookings.Booking{b})
	if err != nil {
		return bookings.Booking{}, err
	}
	return list[0], nil
}

func (r *BookingsRepo) ListWithDetails(ctx context.Context) ([]bookings.Booking, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_id, created_at
		FROM bookings
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]bookings.Booking, 0)
	for rows.Next() {
		var b bookings.Booking
		if err := rows.Scan(&b.ID, &b.ClientID, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.loadDetails(ctx, out)
}

func (r *BookingsRepo) AddPayment(ctx context.Context, p bookings.Payment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO booking_payments (id, booking_id, amount, method, paid_at)
		VALUES ($1,$2,$3,$4,$5)
	`, p.ID, p.BookingID, int64(p.Amount), string(p.Method), p.PaidAt)
	return err
}

// Delete borra visitas y abonos antes que la guardería; el orden es parte
// del contrato de cascada, no se delega a FKs.
func (r *BookingsRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM booking_visits WHERE booking_id = $1`, id); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM booking_payments WHERE booking_id = $1`, id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return bookings.ErrNotFound
	}
	return nil
}

// loadDetails cuelga cliente+gatos, visitas y abonos de cada guardería.
func (r *BookingsRepo) loadDetails(ctx context.Context, items []bookings.Booking) ([]bookings.Booking, error) {
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(items))
	for _, b := range items {
		ids = append(ids, b.ID)
	}

	visits, err := r.visitsByBooking(ctx, ids)
	if err != nil {
		return nil, err
	}
	payments, err := r.paymentsByBooking(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Visits = visits[items[i].ID]
		items[i].Payments = payments[items[i].ID]

		// cliente eliminado => guardería huérfana, viaja con cliente vacío
		c, err := r.clients.GetByID(ctx, items[i].ClientID)
		if err != nil && err != clients.ErrNotFound {
			return nil, err
		}
		items[i].Client = c
	}

	return items, nil
}

func (r *BookingsRepo) visitsByBooking(ctx context.Context, bookingIDs []string) (map[string][]bookings.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, booking_id, date, time
		FROM booking_visits
		WHERE booking_id = ANY($1)
		ORDER BY date ASC
	`, bookingIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]bookings.Visit)
	for rows.Next() {
		var v bookings.Visit
		var t sql.NullString
		if err := rows.Scan(&v.ID, &v.BookingID, &v.Date, &t); err != nil {
			return nil, err
		}
		if t.Valid {
			v.Time = t.String
		}
		out[v.BookingID] = append(out[v.BookingID], v)
	}
	return out, rows.Err()
}

func (r *BookingsRepo) paymentsByBooking(ctx context.Context, bookingIDs []string) (map[string][]bookings.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, booking_id, amount, method, paid_at
		FROM booking_payments
		WHERE booking_id = ANY($1)
		ORDER BY paid_at ASC
	`, bookingIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]bookings.Payment)
	for rows.Next() {
		var p bookings.Payment
		var amount int64
		var method string
		if err := rows.Scan(&p.ID, &p.BookingID, &amount, &method, &p.PaidAt); err != nil {
			return nil, err
		}
		p.Amount = money.Amount(amount)
		p.Method = bookings.PaymentMethod(method)
		out[p.BookingID] = append(out[p.BookingID], p)
	}
	return out, rows.Err()
}

// time es TEXT nullable ("HH:MM"); vacío se guarda como NULL.
func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
