package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cat-daycare/internal/domain/bookings"
	"cat-daycare/internal/domain/clients"
)

// fakeTableStore emula lo justo de un table store estilo PostgREST:
// responde filas por path y registra cada request que recibe.
type fakeTableStore struct {
	mux *http.ServeMux

	// method + path de cada request, en orden
	calls []string

	lastAPIKey string
	lastPrefer string
}

func newFakeTableStore() *fakeTableStore {
	f := &fakeTableStore{mux: http.NewServeMux()}
	return f
}

func (f *fakeTableStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	f.lastAPIKey = r.Header.Get("apikey")
	f.lastPrefer = r.Header.Get("Prefer")
	f.mux.ServeHTTP(w, r)
}

func (f *fakeTableStore) respond(pattern string, rows any) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rows)
	})
}

func (f *fakeTableStore) accept(pattern string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
}

func newTestStore(t *testing.T, f *fakeTableStore, apiKey string) *Store {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	store, err := NewStore(srv.URL, apiKey)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestBookingsRepo_GetByID_DecodesNestedRow(t *testing.T) {
	paid := time.Date(2025, 6, 14, 15, 30, 0, 0, time.UTC)
	fake := newFakeTableStore()
	fake.respond("/bookings", []bookingRow{{
		ID:       "b1",
		ClientID: "c1",
		Client: &clientRow{
			ID:   "c1",
			Name: "Laura",
			Cats: []catRow{{ID: "g1", ClientID: "c1", Name: "Mishi"}, {ID: "g2", ClientID: "c1", Name: "Luna"}},
		},
		Visits: []visitRow{
			{ID: "v1", BookingID: "b1", Date: "2025-06-10"},
			{ID: "v2", BookingID: "b1", Date: "2025-06-11", Time: "14:30"},
		},
		Payments: []paymentRow{
			{ID: "p1", BookingID: "b1", Amount: 60000, Method: "transfer", PaidAt: paid},
		},
	}})

	repo := NewBookingsRepo(newTestStore(t, fake, "secret"))

	b, err := repo.GetByID(context.Background(), "b1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if b.ID != "b1" || b.Client.Name != "Laura" || len(b.Client.Cats) != 2 {
		t.Fatalf("booking = %+v", b)
	}
	if len(b.Visits) != 2 {
		t.Fatalf("visits = %+v", b.Visits)
	}
	want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)
	if !b.Visits[0].Date.Equal(want) {
		t.Fatalf("visit date = %v, want %v", b.Visits[0].Date, want)
	}
	if b.Visits[1].Time != "14:30" {
		t.Fatalf("visit time = %q", b.Visits[1].Time)
	}
	if len(b.Payments) != 1 || b.Payments[0].Amount != 60000 || b.Payments[0].Method != bookings.MethodTransfer {
		t.Fatalf("payments = %+v", b.Payments)
	}

	if fake.lastAPIKey != "secret" {
		t.Fatalf("apikey header = %q", fake.lastAPIKey)
	}
	if fake.lastPrefer != "return=minimal" {
		t.Fatalf("Prefer header = %q", fake.lastPrefer)
	}
}

func TestBookingsRepo_GetByID_EmptyResultIsNotFound(t *testing.T) {
	fake := newFakeTableStore()
	fake.respond("/bookings", []bookingRow{})

	repo := NewBookingsRepo(newTestStore(t, fake, ""))

	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, bookings.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookingsRepo_Create_PostsBookingThenVisits(t *testing.T) {
	fake := newFakeTableStore()
	fake.accept("/bookings")
	fake.accept("/booking_visits")

	repo := NewBookingsRepo(newTestStore(t, fake, ""))

	err := repo.Create(context.Background(), bookings.Booking{
		ID:       "b1",
		ClientID: "c1",
		Visits: []bookings.Visit{
			{ID: "v1", BookingID: "b1", Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	want := []string{"POST /bookings", "POST /booking_visits"}
	if len(fake.calls) != 2 || fake.calls[0] != want[0] || fake.calls[1] != want[1] {
		t.Fatalf("calls = %v, want %v", fake.calls, want)
	}
}

func TestBookingsRepo_Delete_CascadeOrder(t *testing.T) {
	fake := newFakeTableStore()
	fake.accept("/booking_visits")
	fake.accept("/booking_payments")
	fake.accept("/bookings")

	repo := NewBookingsRepo(newTestStore(t, fake, ""))

	if err := repo.Delete(context.Background(), "b1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// visitas y abonos caen antes que la guardería
	want := []string{"DELETE /booking_visits", "DELETE /booking_payments", "DELETE /bookings"}
	if len(fake.calls) != 3 {
		t.Fatalf("calls = %v", fake.calls)
	}
	for i := range want {
		if fake.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", fake.calls, want)
		}
	}
}

func TestClientsRepo_GetByID_EmptyResultIsNotFound(t *testing.T) {
	fake := newFakeTableStore()
	fake.respond("/clients", []clientRow{})

	repo := NewClientsRepo(newTestStore(t, fake, ""))

	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, clients.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
