package entity

// Estados de baño químico.
const (
	ToiletAvailable   = "DISPONIBLE"
	ToiletAssigned    = "ASIGNADO"
	ToiletMaintenance = "MANTENIMIENTO"
	ToiletOutOfOrder  = "FUERA_DE_SERVICIO"
)

// ToiletStatuses estados admitidos.
var ToiletStatuses = []string{ToiletAvailable, ToiletAssigned, ToiletMaintenance, ToiletOutOfOrder}

// ChemicalToilet unidad de baño químico del inventario.
type ChemicalToilet struct {
	ID           int    `json:"bano_id"`
	InternalCode string `json:"codigo_interno"`
	Model        string `json:"modelo"`
	AcquiredAt   Date   `json:"fecha_adquisicion"`
	Status       string `json:"estado"`
}

// ToiletStats totales del inventario por estado.
type ToiletStats struct {
	Total       int `json:"total"`
	Available   int `json:"disponibles"`
	Assigned    int `json:"asignados"`
	Maintenance int `json:"mantenimiento"`
}
