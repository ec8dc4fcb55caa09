package dto

import "github.com/jhoicas/panel-admin/internal/domain/entity"

// ChemicalToiletRequest alta o modificación de un baño químico.
type ChemicalToiletRequest struct {
	InternalCode string      `json:"codigo_interno" label:"Código interno" validate:"required,max=30"`
	Model        string      `json:"modelo" label:"Modelo" validate:"required"`
	AcquiredAt   entity.Date `json:"fecha_adquisicion" label:"Fecha de adquisición" validate:"required"`
	Status       string      `json:"estado" label:"Estado" validate:"required,oneof=DISPONIBLE ASIGNADO MANTENIMIENTO FUERA_DE_SERVICIO"`
}
