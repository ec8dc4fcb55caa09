package entity

// License licencia de conducir de un empleado.
type License struct {
	ID        int       `json:"licencia_id"`
	Category  string    `json:"categoria"`
	IssuedAt  Date      `json:"fecha_expedicion"`
	ExpiresAt Date      `json:"fecha_vencimiento"`
	Employee  *Employee `json:"empleado,omitempty"`
}

// EmployeeName nombre del titular si vino embebido.
func (l License) EmployeeName() string {
	if l.Employee != nil {
		return l.Employee.FullName()
	}
	return "—"
}
