package bookings

import (
	"testing"

	"cat-daycare/internal/domain/clients"
	"cat-daycare/internal/platform/money"
)

func twoCatBooking(visits ...Visit) Booking {
	b := booking(visits...)
	b.Client = clients.Client{Cats: []clients.Cat{{Name: "Mishi"}, {Name: "Luna"}}}
	return b
}

func pay(amount money.Amount) Payment {
	return Payment{Amount: amount, Method: MethodTransfer}
}

func TestTotalPaid_OrderIndependent(t *testing.T) {
	b := twoCatBooking(dateVisit(2025, 6, 10))
	b.Payments = []Payment{pay(10000), pay(25000), pay(5000)}

	if got := TotalPaid(b); got != 40000 {
		t.Fatalf("TotalPaid = %d, want 40000", got)
	}

	// mismo conjunto, otro orden
	b.Payments = []Payment{pay(5000), pay(10000), pay(25000)}
	if got := TotalPaid(b); got != 40000 {
		t.Fatalf("TotalPaid reordered = %d, want 40000", got)
	}
}

func TestPendingBalance_UnpaidBooking(t *testing.T) {
	// escenario de referencia: 2 gatos, 3 visitas, sin abonos
	b := twoCatBooking(dateVisit(2025, 6, 10), dateVisit(2025, 6, 11), dateVisit(2025, 6, 12))

	if got := PendingBalance(b); got != 180000 {
		t.Fatalf("PendingBalance = %d, want 180000", got)
	}
	if IsSettled(b) {
		t.Fatal("unpaid booking must not be settled")
	}
}

func TestPendingBalance_SettledAfterFullPayment(t *testing.T) {
	b := twoCatBooking(dateVisit(2025, 6, 10), dateVisit(2025, 6, 11), dateVisit(2025, 6, 12))
	b.Payments = []Payment{pay(180000)}

	if got := PendingBalance(b); got != 0 {
		t.Fatalf("PendingBalance = %d, want 0", got)
	}
	if !IsSettled(b) {
		t.Fatal("fully paid booking must be settled")
	}
}

func TestPendingBalance_OverpaymentGoesNegative(t *testing.T) {
	// el sobrepago se reporta tal cual, no se recorta ni es error
	b := twoCatBooking(dateVisit(2025, 6, 10))
	b.Payments = []Payment{pay(60000), pay(10000)}

	if got := PendingBalance(b); got != -10000 {
		t.Fatalf("PendingBalance = %d, want -10000", got)
	}
	if IsSettled(b) {
		t.Fatal("overpaid booking must not count as settled")
	}
}

func TestPendingBalance_IncrementalPayments(t *testing.T) {
	b := twoCatBooking(dateVisit(2025, 6, 10), dateVisit(2025, 6, 11), dateVisit(2025, 6, 12))

	amounts := []money.Amount{50000, 50000, 80000}
	var paid money.Amount
	for _, a := range amounts {
		b.Payments = append(b.Payments, pay(a))
		paid += a
		if got := PendingBalance(b); got != 180000-paid {
			t.Fatalf("after %d paid: balance = %d, want %d", paid, got, 180000-paid)
		}
	}
	if !IsSettled(b) {
		t.Fatal("expected settled after exact total")
	}
}
