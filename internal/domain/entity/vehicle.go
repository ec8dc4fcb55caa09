package entity

// Estados de vehículo.
const (
	VehicleAvailable   = "DISPONIBLE"
	VehicleAssigned    = "ASIGNADO"
	VehicleMaintenance = "MANTENIMIENTO"
	VehicleOutOfOrder  = "FUERA_DE_SERVICIO"
)

// Vehicle representa un vehículo de la flota.
type Vehicle struct {
	ID                int    `json:"id"`
	InternalNumber    string `json:"numeroInterno"`
	Plate             string `json:"placa"`
	Brand             string `json:"marca"`
	Model             string `json:"modelo"`
	Year              int    `json:"anio"`
	CabinType         string `json:"tipoCabina"`
	InspectionExpires Date   `json:"fechaVencimientoVTV"`
	InsuranceExpires  Date   `json:"fechaVencimientoSeguro"`
	External          bool   `json:"esExterno"`
	Status            string `json:"estado"`
}
