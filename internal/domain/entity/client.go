package entity

// Estados de cliente.
const (
	ClientActive   = "ACTIVO"
	ClientInactive = "INACTIVO"
)

// Client representa un cliente de la empresa de servicios.
type Client struct {
	ID           int    `json:"clienteId"`
	Name         string `json:"nombre"`
	Email        string `json:"email"`
	TaxID        string `json:"cuit"` // CUIT
	Address      string `json:"direccion"`
	Phone        string `json:"telefono"`
	MainContact  string `json:"contacto_principal"`
	Status       string `json:"estado"`
	RegisteredAt Date   `json:"fecha_registro"`
}
