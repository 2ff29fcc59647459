package bookings

import "time"

// Classify reduce todas las visitas de una guardería a un solo estado:
//   - alguna visita es hoy            => StatusToday
//   - si no, alguna visita futura     => StatusPending
//   - si no (todas pasadas)           => StatusCompleted
//
// Una guardería sin visitas cae en StatusCompleted por verdad vacua
// ("todas sus visitas son pasadas"). Es el comportamiento histórico y
// está documentado como caso degenerado, no como error.
func Classify(b Booking, now time.Time) Status {
	future := false
	for _, v := range b.Visits {
		switch classifyVisit(v, now) {
		case visitToday:
			return StatusToday
		case visitFuture:
			future = true
		}
	}
	if future {
		return StatusPending
	}
	return StatusCompleted
}

// allVisitsPast es el criterio de la vista financiera para "terminada":
// todas las visitas (instante completo) quedaron antes de la medianoche de hoy.
func allVisitsPast(b Booking, now time.Time) bool {
	for _, v := range b.Visits {
		if !isPastVisit(v, now) {
			return false
		}
	}
	return true
}
