package usecase

import (
	"context"

	"github.com/jhoicas/panel-admin/internal/application/action"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

// ChemicalToiletUseCase acciones sobre el inventario de baños químicos (/api/chemical_toilets).
type ChemicalToiletUseCase struct {
	api *backend.Client
	res resource[entity.ChemicalToilet, dto.ChemicalToiletRequest]
}

// NewChemicalToiletUseCase construye el caso de uso.
func NewChemicalToiletUseCase(api *backend.Client) *ChemicalToiletUseCase {
	return &ChemicalToiletUseCase{
		api: api,
		res: resource[entity.ChemicalToilet, dto.ChemicalToiletRequest]{
			api: api, name: "chemical_toilets", base: "/api/chemical_toilets",
			singular: "el baño", plural: "los baños",
		},
	}
}

// List lista baños químicos.
func (uc *ChemicalToiletUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.ChemicalToilet], error) {
	return uc.res.list(ctx, q, nil)
}

// Get obtiene un baño por ID.
func (uc *ChemicalToiletUseCase) Get(ctx context.Context, id int) (*entity.ChemicalToilet, error) {
	return uc.res.get(ctx, id)
}

// Create da de alta un baño.
func (uc *ChemicalToiletUseCase) Create(ctx context.Context, in dto.ChemicalToiletRequest) (*entity.ChemicalToilet, error) {
	return uc.res.create(ctx, in)
}

// Update modifica un baño.
func (uc *ChemicalToiletUseCase) Update(ctx context.Context, id int, in dto.ChemicalToiletRequest) (*entity.ChemicalToilet, error) {
	return uc.res.update(ctx, id, in)
}

// Delete elimina un baño.
func (uc *ChemicalToiletUseCase) Delete(ctx context.Context, id int) error {
	return uc.res.remove(ctx, id)
}

// Stats totales por estado.
func (uc *ChemicalToiletUseCase) Stats(ctx context.Context) (*entity.ToiletStats, error) {
	const msg = "Error al obtener las estadísticas de baños"
	return action.Run(ctx, "chemical_toilets.stats", msg, func(ctx context.Context) (*entity.ToiletStats, error) {
		var out entity.ToiletStats
		if err := uc.api.Get(ctx, "/api/chemical_toilets/stats", nil, msg, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}
