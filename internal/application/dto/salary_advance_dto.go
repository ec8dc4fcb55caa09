package dto

import "github.com/shopspring/decimal"

// SalaryAdvanceRequest solicitud de adelanto de un empleado.
type SalaryAdvanceRequest struct {
	EmployeeID int             `json:"employee_id,omitempty" label:"Empleado"`
	Amount     decimal.Decimal `json:"amount" label:"Monto" validate:"gt=0"`
	Reason     string          `json:"reason" label:"Motivo" validate:"required,max=300"`
}

// AdvanceDecisionRequest aprobación o rechazo de un adelanto.
type AdvanceDecisionRequest struct {
	Comment string `json:"comentario,omitempty" label:"Comentario" validate:"max=300"`
}
