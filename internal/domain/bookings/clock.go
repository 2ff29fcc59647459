package bookings

import "time"

// dayStart trunca un instante a la medianoche local de su día.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// sameDay compara solo la fecha calendario, ignorando la hora.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// At devuelve el instante de la visita: fecha + hora si la trae,
// o la medianoche del día si es solo fecha.
func (v Visit) At() time.Time {
	start := dayStart(v.Date)
	if v.Time == "" {
		return start
	}
	hm, err := time.Parse("15:04", v.Time)
	if err != nil {
		// hora malformada: tratamos la visita como solo-fecha
		return start
	}
	return start.Add(time.Duration(hm.Hour())*time.Hour + time.Duration(hm.Minute())*time.Minute)
}

// classifyVisit ubica una visita respecto a "now".
// Regla doble del negocio:
//   - "es hoy" se decide por igualdad de fecha calendario, con precedencia
//     sobre cualquier comparación de hora dentro del mismo día.
//   - visitas solo-fecha se comparan medianoche contra medianoche;
//     visitas con hora se comparan instante contra instante.
func classifyVisit(v Visit, now time.Time) visitState {
	if sameDay(v.Date, now) {
		return visitToday
	}
	if v.Time == "" {
		if dayStart(v.Date).Before(dayStart(now)) {
			return visitPast
		}
		return visitFuture
	}
	if v.At().Before(now) {
		return visitPast
	}
	return visitFuture
}

// isPastVisit es el chequeo que usa la vista financiera: el instante completo
// de la visita contra la medianoche de hoy. Una visita de hoy nunca es pasada.
// Diverge a propósito de classifyVisit.
func isPastVisit(v Visit, now time.Time) bool {
	return v.At().Before(dayStart(now))
}
