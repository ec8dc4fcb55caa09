package usecase

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jhoicas/panel-admin/internal/application/action"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

// SalaryAdvanceUseCase acciones sobre adelantos de salario (/api/salary-advances).
type SalaryAdvanceUseCase struct {
	api *backend.Client
	res resource[entity.SalaryAdvance, dto.SalaryAdvanceRequest]
}

// NewSalaryAdvanceUseCase construye el caso de uso.
func NewSalaryAdvanceUseCase(api *backend.Client) *SalaryAdvanceUseCase {
	return &SalaryAdvanceUseCase{
		api: api,
		res: resource[entity.SalaryAdvance, dto.SalaryAdvanceRequest]{
			api: api, name: "salary_advances", base: "/api/salary-advances",
			singular: "el adelanto", plural: "los adelantos",
		},
	}
}

// List lista adelantos; status vacío = todos.
func (uc *SalaryAdvanceUseCase) List(ctx context.Context, q dto.ListQuery, status string) (*dto.Page[entity.SalaryAdvance], error) {
	var extra url.Values
	if status != "" {
		extra = url.Values{"status": {status}}
	}
	return uc.res.list(ctx, q, extra)
}

// ListByEmployee adelantos solicitados por un empleado.
func (uc *SalaryAdvanceUseCase) ListByEmployee(ctx context.Context, employeeID int) ([]entity.SalaryAdvance, error) {
	const msg = "Error al obtener tus adelantos"
	return action.Run(ctx, "salary_advances.by_employee", msg, func(ctx context.Context) ([]entity.SalaryAdvance, error) {
		var page dto.Page[entity.SalaryAdvance]
		if err := uc.api.Get(ctx, "/api/salary-advances/employee/"+strconv.Itoa(employeeID), nil, msg, &page); err != nil {
			return nil, err
		}
		return page.Data, nil
	})
}

// Request registra la solicitud de un empleado.
func (uc *SalaryAdvanceUseCase) Request(ctx context.Context, employeeID int, in dto.SalaryAdvanceRequest) (*entity.SalaryAdvance, error) {
	in.EmployeeID = employeeID
	return uc.res.create(ctx, in)
}

// Approve aprueba un adelanto pendiente.
func (uc *SalaryAdvanceUseCase) Approve(ctx context.Context, id int, comment string) (*entity.SalaryAdvance, error) {
	return uc.res.patch(ctx, "approve", "/approve", "Error al aprobar el adelanto", id,
		dto.AdvanceDecisionRequest{Comment: comment})
}

// Reject rechaza un adelanto pendiente.
func (uc *SalaryAdvanceUseCase) Reject(ctx context.Context, id int, comment string) (*entity.SalaryAdvance, error) {
	return uc.res.patch(ctx, "reject", "/reject", "Error al rechazar el adelanto", id,
		dto.AdvanceDecisionRequest{Comment: comment})
}
