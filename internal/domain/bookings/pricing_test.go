package bookings

import (
	"testing"

	"cat-daycare/internal/domain/clients"
	"cat-daycare/internal/platform/money"
)

func TestPricePerVisit_Tiers(t *testing.T) {
	cases := []struct {
		cats int
		want money.Amount
	}{
		{0, 80000}, // fallback al tope
		{1, 40000},
		{2, 60000},
		{3, 80000},
		{4, 80000},
		{5, 80000},
		{6, 80000}, // por encima del rango también va al tope
		{12, 80000},
	}
	for _, c := range cases {
		if got := PricePerVisit(c.cats); got != c.want {
			t.Fatalf("PricePerVisit(%d) = %d, want %d", c.cats, got, c.want)
		}
	}
}

func TestTotalCharge_VisitsTimesPrice(t *testing.T) {
	b := booking(dateVisit(2025, 6, 10), dateVisit(2025, 6, 11), dateVisit(2025, 6, 12))
	b.Client = clients.Client{Cats: []clients.Cat{{Name: "Mishi"}, {Name: "Luna"}}}

	// 3 visitas × 60000 (2 gatos)
	if got := TotalCharge(b); got != 180000 {
		t.Fatalf("TotalCharge = %d, want 180000", got)
	}
}

func TestTotalCharge_NoVisitsIsZero(t *testing.T) {
	b := booking()
	b.Client = clients.Client{Cats: []clients.Cat{{Name: "Mishi"}}}
	if got := TotalCharge(b); got != 0 {
		t.Fatalf("TotalCharge = %d, want 0", got)
	}
}

func TestSplitCharge_Scenario(t *testing.T) {
	s := SplitCharge(180000)
	if s.Fuel != 18000 {
		t.Fatalf("fuel = %d, want 18000", s.Fuel)
	}
	if s.Caretaker != 72000 {
		t.Fatalf("caretaker = %d, want 72000", s.Caretaker)
	}
	if s.Business != 90000 {
		t.Fatalf("business = %d, want 90000", s.Business)
	}
}

func TestSplitCharge_ReconstructsTotalExactly(t *testing.T) {
	// incluye montos que no son múltiplos "bonitos": el reparto debe
	// reconstruir el total exacto siempre
	totals := []money.Amount{0, 1, 33, 40000, 60000, 80000, 180000, 99999, 123457}
	for _, total := range totals {
		s := SplitCharge(total)
		if sum := s.Fuel + s.Caretaker + s.Business; sum != total {
			t.Fatalf("split of %d sums to %d", total, sum)
		}
	}
}
