package bookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cat-daycare/internal/domain/clients"
	"cat-daycare/internal/platform/money"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/bookings", func(br chi.Router) {
		br.Post("/", createBookingHandler(svc))
		br.Get("/", listBucketsHandler(svc))
		br.Get("/finance", financeHandler(svc))
		br.Get("/{bookingID}", getBookingHandler(svc))
		br.Delete("/{bookingID}", deleteBookingHandler(svc))
		br.Post("/{bookingID}/payments", addPaymentHandler(svc))
	})
}

type visitRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM opcional
}

type createBookingRequest struct {
	ClientID string         `json:"client_id"`
	Visits   []visitRequest `json:"visits"`
}

type addPaymentRequest struct {
	Amount int64  `json:"amount"`
	Method string `json:"method"` // cash | transfer; vacío = transfer
}

type visitResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Time string `json:"time,omitempty"`
}

type paymentResponse struct {
	ID     string    `json:"id"`
	Amount int64     `json:"amount"`
	Method string    `json:"method"`
	PaidAt time.Time `json:"paid_at"`
}

type bookingClientResponse struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Cats []string `json:"cats"`
}

type bookingResponse struct {
	ID             string                `json:"id"`
	Client         bookingClientResponse `json:"client"`
	Visits         []visitResponse       `json:"visits"`
	Payments       []paymentResponse     `json:"payments"`
	Status         Status                `json:"status"`
	Total          int64                 `json:"total"`
	TotalPaid      int64                 `json:"total_paid"`
	PendingBalance int64                 `json:"pending_balance"`
	Settled        bool                  `json:"settled"`
}

type bucketsResponse struct {
	Today     []bookingResponse `json:"today"`
	Pending   []bookingResponse `json:"pending"`
	Completed []bookingResponse `json:"completed"`
}

type financeRowResponse struct {
	BookingID  string `json:"booking_id"`
	ClientName string `json:"client_name"`

	VisitCount int `json:"visit_count"`
	CatCount   int `json:"cat_count"`

	PricePerVisit int64 `json:"price_per_visit"`
	Total         int64 `json:"total"`
	Fuel          int64 `json:"fuel"`
	Caretaker     int64 `json:"caretaker"`
	Business      int64 `json:"business"`

	TotalPaid      int64 `json:"total_paid"`
	PendingBalance int64 `json:"pending_balance"`
	Debt           bool  `json:"debt"`

	Status Status `json:"status"`

	// Columnas ya formateadas para mostrar (es-CO, sin decimales).
	TotalDisplay   string `json:"total_display"`
	BalanceDisplay string `json:"pending_balance_display"`
}

type financeResponse struct {
	Pending   []financeRowResponse `json:"pending"`
	Completed []financeRowResponse `json:"completed"`
}

func createBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		visits := make([]VisitInput, 0, len(req.Visits))
		for _, v := range req.Visits {
			d, err := time.ParseInLocation("2006-01-02", v.Date, time.Local)
			if err != nil {
				http.Error(w, "visit date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			visits = append(visits, VisitInput{Date: d, Time: v.Time})
		}

		b, err := svc.Create(r.Context(), req.ClientID, visits)
		if err != nil {
			writeBookingError(w, err)
			return
		}

		// estado calculado con el instante actual, solo para la respuesta
		writeJSON(w, http.StatusCreated, toBookingResponse(b, svc.now()))
	}
}

func listBucketsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buckets, err := svc.ListBuckets(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := svc.now()
		writeJSON(w, http.StatusOK, bucketsResponse{
			Today:     toBookingResponses(buckets.Today, now),
			Pending:   toBookingResponses(buckets.Pending, now),
			Completed: toBookingResponses(buckets.Completed, now),
		})
	}
}

func financeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Finance(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, financeResponse{
			Pending:   toFinanceRows(summary.Pending),
			Completed: toFinanceRows(summary.Completed),
		})
	}
}

func getBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "bookingID"))
		if err != nil {
			writeBookingError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBookingResponse(b, svc.now()))
	}
}

func deleteBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "bookingID")); err != nil {
			writeBookingError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func addPaymentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.AddPayment(r.Context(),
			chi.URLParam(r, "bookingID"),
			money.Amount(req.Amount),
			PaymentMethod(req.Method),
		)
		if err != nil {
			writeBookingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPaymentResponse(p))
	}
}

func writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, clients.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "booking not found", http.StatusNotFound)
	case errors.Is(err, clients.ErrNotFound):
		http.Error(w, "client not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toBookingResponses(items []Booking, now time.Time) []bookingResponse {
	out := make([]bookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, toBookingResponse(b, now))
	}
	return out
}

func toBookingResponse(b Booking, now time.Time) bookingResponse {
	catNames := make([]string, 0, len(b.Client.Cats))
	for _, c := range b.Client.Cats {
		catNames = append(catNames, c.Name)
	}

	visits := make([]visitResponse, 0, len(b.Visits))
	for _, v := range b.Visits {
		visits = append(visits, visitResponse{
			ID:   v.ID,
			Date: v.Date.Format("2006-01-02"),
			Time: v.Time,
		})
	}

	payments := make([]paymentResponse, 0, len(b.Payments))
	for _, p := range b.Payments {
		payments = append(payments, toPaymentResponse(p))
	}

	return bookingResponse{
		ID: b.ID,
		Client: bookingClientResponse{
			ID:   b.Client.ID,
			Name: b.Client.Name,
			Cats: catNames,
		},
		Visits:         visits,
		Payments:       payments,
		Status:         Classify(b, now),
		Total:          int64(TotalCharge(b)),
		TotalPaid:      int64(TotalPaid(b)),
		PendingBalance: int64(PendingBalance(b)),
		Settled:        IsSettled(b),
	}
}

func toPaymentResponse(p Payment) paymentResponse {
	return paymentResponse{
		ID:     p.ID,
		Amount: int64(p.Amount),
		Method: string(p.Method),
		PaidAt: p.PaidAt,
	}
}

func toFinanceRows(rows []FinanceRow) []financeRowResponse {
	out := make([]financeRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, financeRowResponse{
			BookingID:      row.BookingID,
			ClientName:     row.ClientName,
			VisitCount:     row.VisitCount,
			CatCount:       row.CatCount,
			PricePerVisit:  int64(row.PricePerVisit),
			Total:          int64(row.Total),
			Fuel:           int64(row.Split.Fuel),
			Caretaker:      int64(row.Split.Caretaker),
			Business:       int64(row.Split.Business),
			TotalPaid:      int64(row.TotalPaid),
			PendingBalance: int64(row.PendingBalance),
			Debt:           row.Debt,
			Status:         row.Status,
			TotalDisplay:   row.Total.Format(),
			BalanceDisplay: row.PendingBalance.Format(),
		})
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (clients/bookings) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
