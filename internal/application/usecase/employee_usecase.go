package usecase

import (
	"context"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

// EmployeeUseCase acciones sobre empleados (/api/employees).
type EmployeeUseCase struct {
	res resource[entity.Employee, dto.EmployeeRequest]
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(api *backend.Client) *EmployeeUseCase {
	return &EmployeeUseCase{res: resource[entity.Employee, dto.EmployeeRequest]{
		api: api, name: "employees", base: "/api/employees",
		singular: "el empleado", plural: "los empleados",
	}}
}

// List lista empleados con paginación y búsqueda.
func (uc *EmployeeUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.Employee], error) {
	return uc.res.list(ctx, q, nil)
}

// Get obtiene el empleado por ID.
func (uc *EmployeeUseCase) Get(ctx context.Context, id int) (*entity.Employee, error) {
	return uc.res.get(ctx, id)
}

// Create da de alta el empleado.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*entity.Employee, error) {
	return uc.res.create(ctx, in)
}

// Update modifica el empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int, in dto.EmployeeRequest) (*entity.Employee, error) {
	return uc.res.update(ctx, id, in)
}

// Delete elimina el empleado.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int) error {
	return uc.res.remove(ctx, id)
}
