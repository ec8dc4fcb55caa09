package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// ContractualConditionRequest alta o modificación de una condición contractual.
type ContractualConditionRequest struct {
	ClientID         int             `json:"clienteId" label:"Cliente" validate:"gt=0"`
	StartDate        entity.Date     `json:"fecha_inicio" label:"Fecha de inicio" validate:"required"`
	EndDate          entity.Date     `json:"fecha_fin" label:"Fecha de fin" validate:"required"`
	Terms            string          `json:"condiciones_especificas,omitempty" label:"Condiciones específicas"`
	Rate             decimal.Decimal `json:"tarifa" label:"Tarifa" validate:"gt=0"`
	Periodicity      string          `json:"periodicidad" label:"Periodicidad" validate:"required,oneof=DIARIA SEMANAL MENSUAL ANUAL"`
	Status           string          `json:"estado,omitempty" label:"Estado" validate:"omitempty,oneof=ACTIVO INACTIVO TERMINADO"`
	ContractType     string          `json:"tipo_de_contrato" label:"Tipo de contrato" validate:"required,oneof=TEMPORAL PERMANENTE"`
	ToiletCount      int             `json:"cantidad_banos" label:"Cantidad de baños" validate:"gte=0"`
	RentalRate       decimal.Decimal `json:"tarifa_alquiler" label:"Tarifa de alquiler" validate:"gte=0"`
	InstallationRate decimal.Decimal `json:"tarifa_instalacion" label:"Tarifa de instalación" validate:"gte=0"`
	CleaningRate     decimal.Decimal `json:"tarifa_limpieza" label:"Tarifa de limpieza" validate:"gte=0"`
}
