package dto

// ClientRequest alta o modificación de un cliente.
type ClientRequest struct {
	Name        string `json:"nombre" label:"Nombre" validate:"required,max=150"`
	Email       string `json:"email" label:"Email" validate:"omitempty,email"`
	TaxID       string `json:"cuit" label:"CUIT" validate:"required,min=8,max=13"`
	Address     string `json:"direccion" label:"Dirección" validate:"required"`
	Phone       string `json:"telefono" label:"Teléfono" validate:"omitempty,max=30"`
	MainContact string `json:"contacto_principal" label:"Contacto principal"`
	Status      string `json:"estado,omitempty" label:"Estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
}
