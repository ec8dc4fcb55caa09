package usecase

import (
	"context"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

// ClientUseCase acciones sobre clientes (/api/clients).
type ClientUseCase struct {
	res resource[entity.Client, dto.ClientRequest]
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(api *backend.Client) *ClientUseCase {
	return &ClientUseCase{res: resource[entity.Client, dto.ClientRequest]{
		api: api, name: "clients", base: "/api/clients",
		singular: "el cliente", plural: "los clientes",
	}}
}

// List lista clientes con paginación y búsqueda.
func (uc *ClientUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.Client], error) {
	return uc.res.list(ctx, q, nil)
}

// Get obtiene un cliente por ID.
func (uc *ClientUseCase) Get(ctx context.Context, id int) (*entity.Client, error) {
	return uc.res.get(ctx, id)
}

// Create da de alta un cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*entity.Client, error) {
	return uc.res.create(ctx, in)
}

// Update modifica un cliente.
func (uc *ClientUseCase) Update(ctx context.Context, id int, in dto.ClientRequest) (*entity.Client, error) {
	return uc.res.update(ctx, id, in)
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id int) error {
	return uc.res.remove(ctx, id)
}
