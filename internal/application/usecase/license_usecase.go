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

// LicenseUseCase licencias de conducir de los empleados (bajo /api/employees).
type LicenseUseCase struct {
	api *backend.Client
	res resource[entity.License, dto.LicenseRequest]
}

// NewLicenseUseCase construye el caso de uso.
func NewLicenseUseCase(api *backend.Client) *LicenseUseCase {
	return &LicenseUseCase{
		api: api,
		res: resource[entity.License, dto.LicenseRequest]{
			api: api, name: "licenses", base: "/api/employees/licencias",
			singular: "la licencia", plural: "las licencias",
		},
	}
}

// List lista todas las licencias.
func (uc *LicenseUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.License], error) {
	return uc.res.list(ctx, q, nil)
}

// Upcoming licencias que vencen en los próximos days días.
func (uc *LicenseUseCase) Upcoming(ctx context.Context, days int) ([]entity.License, error) {
	const msg = "Error al obtener las licencias por vencer"
	if days <= 0 {
		days = 30
	}
	return action.Run(ctx, "licenses.upcoming", msg, func(ctx context.Context) ([]entity.License, error) {
		var page dto.Page[entity.License]
		q := url.Values{"dias": {strconv.Itoa(days)}}
		if err := uc.api.Get(ctx, "/api/employees/licencias/upcoming", q, msg, &page); err != nil {
			return nil, err
		}
		return page.Data, nil
	})
}

// Create registra una licencia para un empleado.
func (uc *LicenseUseCase) Create(ctx context.Context, employeeID int, in dto.LicenseRequest) (*entity.License, error) {
	const msg = "Error al crear la licencia"
	return action.Run(ctx, "licenses.create", msg, func(ctx context.Context) (*entity.License, error) {
		if err := dto.Validate(in); err != nil {
			return nil, err
		}
		if in.ExpiresAt.Before(in.IssuedAt.Time) {
			return nil, &dto.ValidationError{Messages: []string{"la fecha de vencimiento debe ser posterior a la de expedición"}}
		}
		var out entity.License
		path := "/api/employees/" + strconv.Itoa(employeeID) + "/licencias"
		if err := uc.api.Post(ctx, path, in, msg, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}

// Delete elimina una licencia.
func (uc *LicenseUseCase) Delete(ctx context.Context, id int) error {
	return uc.res.remove(ctx, id)
}
