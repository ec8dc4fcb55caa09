package entity

// Estados de servicio.
const (
	ServicePending    = "PROGRAMADO"
	ServiceInProgress = "EN_PROGRESO"
	ServiceCompleted  = "COMPLETADO"
	ServiceCancelled  = "CANCELADO"
	ServiceSuspended  = "SUSPENDIDO"
)

// ServiceStatuses estados admitidos, en el orden en que se muestran.
var ServiceStatuses = []string{ServicePending, ServiceInProgress, ServiceCompleted, ServiceCancelled, ServiceSuspended}

// Tipos de servicio.
const (
	ServiceInstallation = "INSTALACION"
	ServiceCleaning     = "LIMPIEZA"
	ServiceRemoval      = "RETIRO"
	ServiceMaintenance  = "MANTENIMIENTO"
)

// ServiceTypes tipos admitidos.
var ServiceTypes = []string{ServiceInstallation, ServiceCleaning, ServiceRemoval, ServiceMaintenance}

// Service representa un servicio programado para un cliente.
type Service struct {
	ID            int                 `json:"id"`
	ClientID      int                 `json:"clienteId"`
	Client        *Client             `json:"cliente,omitempty"`
	ScheduledAt   Date                `json:"fechaProgramada"`
	StartedAt     Date                `json:"fechaInicio"`
	FinishedAt    Date                `json:"fechaFin"`
	Type          string              `json:"tipoServicio"`
	Status        string              `json:"estado"`
	ToiletCount   int                 `json:"cantidadBanos"`
	EmployeeCount int                 `json:"cantidadEmpleados"`
	VehicleCount  int                 `json:"cantidadVehiculos"`
	Location      string              `json:"ubicacion"`
	Notes         string              `json:"notas"`
	Assignments   []ServiceAssignment `json:"asignaciones,omitempty"`
}

// ServiceAssignment recurso asignado a un servicio.
type ServiceAssignment struct {
	ID         int  `json:"id"`
	EmployeeID *int `json:"empleadoId,omitempty"`
	VehicleID  *int `json:"vehiculoId,omitempty"`
	ToiletID   *int `json:"banoId,omitempty"`
}

// ClientName nombre del cliente si vino embebido.
func (s Service) ClientName() string {
	if s.Client != nil {
		return s.Client.Name
	}
	return "—"
}
