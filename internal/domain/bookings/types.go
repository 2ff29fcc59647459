package bookings

// Status es el estado temporal derivado de una guardería. Nunca se persiste:
// se recalcula con las visitas actuales y el instante actual en cada consulta.
type Status string

const (
	StatusToday     Status = "today"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// visitState clasifica una sola visita contra el instante de referencia.
type visitState int

const (
	visitPast visitState = iota
	visitToday
	visitFuture
)

// PaymentMethod define las formas de pago soportadas.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
)

func validMethod(m PaymentMethod) bool {
	return m == MethodCash || m == MethodTransfer
}
