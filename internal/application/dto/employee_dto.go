package dto

import "github.com/jhoicas/panel-admin/internal/domain/entity"

// EmployeeRequest alta o modificación de un empleado.
type EmployeeRequest struct {
	FirstName  string      `json:"nombre" label:"Nombre" validate:"required,max=80"`
	LastName   string      `json:"apellido" label:"Apellido" validate:"required,max=80"`
	Document   string      `json:"documento" label:"Documento" validate:"required,min=6,max=12"`
	CUIL       string      `json:"cuil,omitempty" label:"CUIL" validate:"omitempty,min=11,max=13"`
	Phone      string      `json:"telefono" label:"Teléfono" validate:"required,max=30"`
	Email      string      `json:"email" label:"Email" validate:"required,email"`
	Address    string      `json:"direccion,omitempty" label:"Dirección"`
	BirthDate  entity.Date `json:"fecha_nacimiento" label:"Fecha de nacimiento"`
	HiredAt    entity.Date `json:"fecha_contratacion" label:"Fecha de contratación" validate:"required"`
	Position   string      `json:"cargo" label:"Cargo" validate:"required"`
	Status     string      `json:"estado,omitempty" label:"Estado" validate:"omitempty,oneof=DISPONIBLE ASIGNADO LICENCIA INACTIVO"`
	FileNumber string      `json:"numero_legajo,omitempty" label:"Legajo"`
}

// LicenseRequest alta de una licencia de conducir.
type LicenseRequest struct {
	Category  string      `json:"categoria" label:"Categoría" validate:"required,max=10"`
	IssuedAt  entity.Date `json:"fecha_expedicion" label:"Fecha de expedición" validate:"required"`
	ExpiresAt entity.Date `json:"fecha_vencimiento" label:"Fecha de vencimiento" validate:"required"`
}
