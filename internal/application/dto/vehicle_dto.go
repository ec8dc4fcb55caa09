package dto

import "github.com/jhoicas/panel-admin/internal/domain/entity"

// VehicleRequest alta o modificación de un vehículo.
type VehicleRequest struct {
	InternalNumber    string      `json:"numeroInterno,omitempty" label:"Número interno"`
	Plate             string      `json:"placa" label:"Patente" validate:"required,min=6,max=10"`
	Brand             string      `json:"marca" label:"Marca" validate:"required"`
	Model             string      `json:"modelo" label:"Modelo" validate:"required"`
	Year              int         `json:"anio" label:"Año" validate:"gte=1950,lte=2100"`
	CabinType         string      `json:"tipoCabina,omitempty" label:"Tipo de cabina"`
	InspectionExpires entity.Date `json:"fechaVencimientoVTV" label:"Vencimiento VTV"`
	InsuranceExpires  entity.Date `json:"fechaVencimientoSeguro" label:"Vencimiento seguro"`
	External          bool        `json:"esExterno" label:"Externo"`
	Status            string      `json:"estado,omitempty" label:"Estado" validate:"omitempty,oneof=DISPONIBLE ASIGNADO MANTENIMIENTO FUERA_DE_SERVICIO"`
}
