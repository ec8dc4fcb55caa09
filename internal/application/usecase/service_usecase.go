package usecase

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/panel-admin/internal/application/action"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

// ServiceUseCase acciones sobre servicios programados (/api/services).
type ServiceUseCase struct {
	api *backend.Client
	res resource[entity.Service, dto.ServiceRequest]
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(api *backend.Client) *ServiceUseCase {
	return &ServiceUseCase{
		api: api,
		res: resource[entity.Service, dto.ServiceRequest]{
			api: api, name: "services", base: "/api/services",
			singular: "el servicio", plural: "los servicios",
		},
	}
}

// List lista servicios; status vacío = todos.
func (uc *ServiceUseCase) List(ctx context.Context, q dto.ListQuery, status string) (*dto.Page[entity.Service], error) {
	var extra url.Values
	if status != "" {
		extra = url.Values{"estado": {status}}
	}
	return uc.res.list(ctx, q, extra)
}

// Get obtiene un servicio por ID.
func (uc *ServiceUseCase) Get(ctx context.Context, id int) (*entity.Service, error) {
	return uc.res.get(ctx, id)
}

// Create programa un servicio.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.ServiceRequest) (*entity.Service, error) {
	return uc.res.create(ctx, in)
}

// Update modifica un servicio.
func (uc *ServiceUseCase) Update(ctx context.Context, id int, in dto.ServiceRequest) (*entity.Service, error) {
	return uc.res.update(ctx, id, in)
}

// ChangeStatus PATCH /api/services/:id/estado.
func (uc *ServiceUseCase) ChangeStatus(ctx context.Context, id int, status string) (*entity.Service, error) {
	return uc.res.patch(ctx, "status", "/estado", "Error al cambiar el estado del servicio", id,
		dto.ServiceStatusRequest{Status: status})
}

// Delete elimina un servicio.
func (uc *ServiceUseCase) Delete(ctx context.Context, id int) error {
	return uc.res.remove(ctx, id)
}

// AssignedTo servicios asignados a un empleado (vista del operario).
func (uc *ServiceUseCase) AssignedTo(ctx context.Context, employeeID int) ([]entity.Service, error) {
	const msg = "Error al obtener los servicios asignados"
	return action.Run(ctx, "services.assigned", msg, func(ctx context.Context) ([]entity.Service, error) {
		var page dto.Page[entity.Service]
		if err := uc.api.Get(ctx, "/api/services/employee/"+strconv.Itoa(employeeID), nil, msg, &page); err != nil {
			return nil, err
		}
		return page.Data, nil
	})
}

// Overview obtiene en paralelo los servicios pendientes, en curso y completados. Cada
// listado se resuelve por separado: una falla queda en su grupo y no afecta a los otros.
func (uc *ServiceUseCase) Overview(ctx context.Context, q dto.ListQuery) dto.ServiceOverview {
	out := dto.ServiceOverview{
		Pending:    dto.ServiceGroup{Status: entity.ServicePending},
		InProgress: dto.ServiceGroup{Status: entity.ServiceInProgress},
		Completed:  dto.ServiceGroup{Status: entity.ServiceCompleted},
	}
	var g errgroup.Group
	for _, group := range []*dto.ServiceGroup{&out.Pending, &out.InProgress, &out.Completed} {
		g.Go(func() error {
			page, err := uc.List(ctx, q, group.Status)
			if err != nil {
				group.Err = err
				return nil
			}
			group.Items = page.Data
			group.Total = page.TotalItems
			return nil
		})
	}
	_ = g.Wait() // las goroutines nunca devuelven error
	return out
}
