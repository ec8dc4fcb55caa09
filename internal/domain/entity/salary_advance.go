package entity

import "github.com/shopspring/decimal"

// Estados de adelanto de salario.
const (
	AdvancePending  = "pending"
	AdvanceApproved = "approved"
	AdvanceRejected = "rejected"
)

// SalaryAdvance solicitud de adelanto de salario de un empleado.
type SalaryAdvance struct {
	ID         int             `json:"id"`
	EmployeeID int             `json:"employee_id"`
	Employee   *Employee       `json:"employee,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Status     string          `json:"status"`
	Comment    string          `json:"comentario,omitempty"`
	ApprovedBy string          `json:"approvedBy,omitempty"`
	ApprovedAt Date            `json:"approvedAt"`
	CreatedAt  Date            `json:"createdAt"`
}

// EmployeeName nombre del empleado si vino embebido.
func (a SalaryAdvance) EmployeeName() string {
	if a.Employee != nil {
		return a.Employee.FullName()
	}
	return "—"
}
