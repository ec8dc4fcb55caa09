package usecase

import (
	"context"
	"strconv"

	"github.com/jhoicas/panel-admin/internal/application/action"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

const contractualBase = "/api/contractual_conditions"

// ContractualConditionUseCase acciones sobre condiciones contractuales.
// El backend usa rutas /create, /modify/:id y /delete/:id para las mutaciones.
type ContractualConditionUseCase struct {
	api *backend.Client
	res resource[entity.ContractualCondition, dto.ContractualConditionRequest]
}

// NewContractualConditionUseCase construye el caso de uso.
func NewContractualConditionUseCase(api *backend.Client) *ContractualConditionUseCase {
	return &ContractualConditionUseCase{
		api: api,
		res: resource[entity.ContractualCondition, dto.ContractualConditionRequest]{
			api: api, name: "contractual_conditions", base: contractualBase,
			singular: "la condición contractual", plural: "las condiciones contractuales",
			createPath: contractualBase + "/create",
			updatePath: contractualBase + "/modify",
			deletePath: contractualBase + "/delete",
		},
	}
}

// List lista condiciones contractuales.
func (uc *ContractualConditionUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.ContractualCondition], error) {
	return uc.res.list(ctx, q, nil)
}

// Get obtiene una condición por ID.
func (uc *ContractualConditionUseCase) Get(ctx context.Context, id int) (*entity.ContractualCondition, error) {
	return uc.res.get(ctx, id)
}

// ByClient condiciones de un cliente.
func (uc *ContractualConditionUseCase) ByClient(ctx context.Context, clientID int) ([]entity.ContractualCondition, error) {
	const msg = "Error al obtener las condiciones del cliente"
	return action.Run(ctx, "contractual_conditions.by_client", msg, func(ctx context.Context) ([]entity.ContractualCondition, error) {
		var page dto.Page[entity.ContractualCondition]
		if err := uc.api.Get(ctx, contractualBase+"/client-id/"+strconv.Itoa(clientID), nil, msg, &page); err != nil {
			return nil, err
		}
		return page.Data, nil
	})
}

// Create da de alta una condición contractual.
func (uc *ContractualConditionUseCase) Create(ctx context.Context, in dto.ContractualConditionRequest) (*entity.ContractualCondition, error) {
	return uc.res.create(ctx, in)
}

// Update modifica una condición contractual.
func (uc *ContractualConditionUseCase) Update(ctx context.Context, id int, in dto.ContractualConditionRequest) (*entity.ContractualCondition, error) {
	return uc.res.update(ctx, id, in)
}

// Delete elimina una condición contractual.
func (uc *ContractualConditionUseCase) Delete(ctx context.Context, id int) error {
	return uc.res.remove(ctx, id)
}
