package bookings

import (
	"testing"
	"time"
)

var clockNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func dateVisit(y int, m time.Month, d int) Visit {
	return Visit{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func timedVisit(y int, m time.Month, d int, hhmm string) Visit {
	v := dateVisit(y, m, d)
	v.Time = hhmm
	return v
}

func TestClassifyVisit_DateOnly(t *testing.T) {
	if got := classifyVisit(dateVisit(2025, 6, 14), clockNow); got != visitPast {
		t.Fatalf("yesterday: expected past, got %v", got)
	}
	if got := classifyVisit(dateVisit(2025, 6, 15), clockNow); got != visitToday {
		t.Fatalf("today: expected today, got %v", got)
	}
	if got := classifyVisit(dateVisit(2025, 6, 16), clockNow); got != visitFuture {
		t.Fatalf("tomorrow: expected future, got %v", got)
	}
}

func TestClassifyVisit_WithTime(t *testing.T) {
	// ayer a cualquier hora => pasada
	if got := classifyVisit(timedVisit(2025, 6, 14, "23:59"), clockNow); got != visitPast {
		t.Fatalf("yesterday 23:59: expected past, got %v", got)
	}
	// mañana en la madrugada => futura
	if got := classifyVisit(timedVisit(2025, 6, 16, "00:30"), clockNow); got != visitFuture {
		t.Fatalf("tomorrow 00:30: expected future, got %v", got)
	}
}

func TestClassifyVisit_TodayWinsOverTimeOfDay(t *testing.T) {
	// la igualdad de fecha manda, aunque la hora ya pasó o aún no llega
	if got := classifyVisit(timedVisit(2025, 6, 15, "08:00"), clockNow); got != visitToday {
		t.Fatalf("today 08:00 (ya pasó): expected today, got %v", got)
	}
	if got := classifyVisit(timedVisit(2025, 6, 15, "22:00"), clockNow); got != visitToday {
		t.Fatalf("today 22:00 (no llega): expected today, got %v", got)
	}
}

func TestVisitAt_CombinesDateAndTime(t *testing.T) {
	v := timedVisit(2025, 6, 15, "14:45")
	want := time.Date(2025, 6, 15, 14, 45, 0, 0, time.UTC)
	if got := v.At(); !got.Equal(want) {
		t.Fatalf("At() = %v, want %v", got, want)
	}

	// sin hora => medianoche
	v = dateVisit(2025, 6, 15)
	want = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if got := v.At(); !got.Equal(want) {
		t.Fatalf("At() sin hora = %v, want %v", got, want)
	}

	// hora malformada => se trata como solo-fecha
	v = timedVisit(2025, 6, 15, "25:99")
	if got := v.At(); !got.Equal(want) {
		t.Fatalf("At() hora inválida = %v, want %v", got, want)
	}
}

func TestIsPastVisit_FullInstantAgainstDayStart(t *testing.T) {
	// ayer con hora => pasada (instante < medianoche de hoy)
	if !isPastVisit(timedVisit(2025, 6, 14, "18:00"), clockNow) {
		t.Fatal("yesterday 18:00 should be past")
	}
	// hoy nunca es pasada, sin importar la hora
	if isPastVisit(timedVisit(2025, 6, 15, "00:00"), clockNow) {
		t.Fatal("today 00:00 should not be past")
	}
	if isPastVisit(dateVisit(2025, 6, 15), clockNow) {
		t.Fatal("today (date only) should not be past")
	}
	if isPastVisit(dateVisit(2025, 6, 16), clockNow) {
		t.Fatal("tomorrow should not be past")
	}
}

func TestDayStartAndSameDay(t *testing.T) {
	ts := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	if got := dayStart(ts); !got.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("dayStart = %v", got)
	}
	if !sameDay(ts, clockNow) {
		t.Fatal("same calendar day expected")
	}
	if sameDay(ts, clockNow.AddDate(0, 0, 1)) {
		t.Fatal("different days must not match")
	}
}
