package entity

// Estados de empleado.
const (
	EmployeeAvailable = "DISPONIBLE"
	EmployeeAssigned  = "ASIGNADO"
	EmployeeLeave     = "LICENCIA"
	EmployeeInactive  = "INACTIVO"
)

// Employee representa un empleado (chofer, operario, administrativo).
type Employee struct {
	ID         int    `json:"id"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Document   string `json:"documento"`
	CUIL       string `json:"cuil"`
	Phone      string `json:"telefono"`
	Email      string `json:"email"`
	Address    string `json:"direccion"`
	BirthDate  Date   `json:"fecha_nacimiento"`
	HiredAt    Date   `json:"fecha_contratacion"`
	Position   string `json:"cargo"`
	Status     string `json:"estado"`
	FileNumber string `json:"numero_legajo"`
}

// FullName devuelve "Apellido, Nombre".
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.LastName + ", " + e.FirstName
}
