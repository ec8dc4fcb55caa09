package dto

import "github.com/jhoicas/panel-admin/internal/domain/entity"

// ServiceRequest alta o modificación de un servicio.
type ServiceRequest struct {
	ClientID      int         `json:"clienteId" label:"Cliente" validate:"gt=0"`
	ScheduledAt   entity.Date `json:"fechaProgramada" label:"Fecha programada" validate:"required"`
	Type          string      `json:"tipoServicio" label:"Tipo de servicio" validate:"required,oneof=INSTALACION LIMPIEZA RETIRO MANTENIMIENTO"`
	ToiletCount   int         `json:"cantidadBanos" label:"Cantidad de baños" validate:"gte=0"`
	EmployeeCount int         `json:"cantidadEmpleados" label:"Cantidad de empleados" validate:"gte=0"`
	VehicleCount  int         `json:"cantidadVehiculos" label:"Cantidad de vehículos" validate:"gte=0"`
	Location      string      `json:"ubicacion" label:"Ubicación" validate:"required"`
	Notes         string      `json:"notas,omitempty" label:"Notas" validate:"max=500"`
}

// ServiceStatusRequest cambio de estado de un servicio.
type ServiceStatusRequest struct {
	Status string `json:"estado" label:"Estado" validate:"required,oneof=PROGRAMADO EN_PROGRESO COMPLETADO CANCELADO SUSPENDIDO"`
}

// ServiceOverview servicios agrupados por estado. Cada grupo se obtiene por separado:
// si uno falla, Err lleva el mensaje y los demás se muestran igual.
type ServiceOverview struct {
	Pending    ServiceGroup
	InProgress ServiceGroup
	Completed  ServiceGroup
}

// SessionErr primer error de sesión entre los grupos.
func (o ServiceOverview) SessionErr() error {
	return firstSessionErr(o.Pending.Err, o.InProgress.Err, o.Completed.Err)
}

// ServiceGroup resultado de un listado por estado.
type ServiceGroup struct {
	Status string
	Items  []entity.Service
	Total  int
	Err    error
}
