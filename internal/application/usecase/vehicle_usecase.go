package usecase

import (
	"context"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

// VehicleUseCase acciones sobre vehículos (/api/vehicles).
type VehicleUseCase struct {
	res resource[entity.Vehicle, dto.VehicleRequest]
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(api *backend.Client) *VehicleUseCase {
	return &VehicleUseCase{res: resource[entity.Vehicle, dto.VehicleRequest]{
		api: api, name: "vehicles", base: "/api/vehicles",
		singular: "el vehículo", plural: "los vehículos",
	}}
}

// List lista vehículos con paginación y búsqueda.
func (uc *VehicleUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.Vehicle], error) {
	return uc.res.list(ctx, q, nil)
}

// Get obtiene el vehículo por ID.
func (uc *VehicleUseCase) Get(ctx context.Context, id int) (*entity.Vehicle, error) {
	return uc.res.get(ctx, id)
}

// Create da de alta el vehículo.
func (uc *VehicleUseCase) Create(ctx context.Context, in dto.VehicleRequest) (*entity.Vehicle, error) {
	return uc.res.create(ctx, in)
}

// Update modifica el vehículo.
func (uc *VehicleUseCase) Update(ctx context.Context, id int, in dto.VehicleRequest) (*entity.Vehicle, error) {
	return uc.res.update(ctx, id, in)
}

// Delete elimina el vehículo.
func (uc *VehicleUseCase) Delete(ctx context.Context, id int) error {
	return uc.res.remove(ctx, id)
}
