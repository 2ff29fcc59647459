package clients

import "time"

// Client representa un dueño registrado, con su contacto de emergencia
// y el permiso para publicar fotos de sus gatos.
type Client struct {
	ID string

	Name    string
	Phone   string
	Address string
	Email   string

	EmergencyName  string
	EmergencyPhone string

	PhotoPermission bool

	Cats []Cat

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cat pertenece a exactamente un cliente durante toda su vida;
// eliminar el cliente elimina sus gatos en cascada.
type Cat struct {
	ID       string
	ClientID string

	Name             string
	Age              string // texto libre ("3", "3 años", "cachorro")
	MedicalCondition string
}
