package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// licenseWarningDays horizonte de licencias por vencer en el tablero.
const licenseWarningDays = 30

// DashboardUseCase arma el tablero de administración a partir de los demás casos de uso.
type DashboardUseCase struct {
	clients   *ClientUseCase
	employees *EmployeeUseCase
	vehicles  *VehicleUseCase
	services  *ServiceUseCase
	advances  *SalaryAdvanceUseCase
	toilets   *ChemicalToiletUseCase
	licenses  *LicenseUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	clients *ClientUseCase,
	employees *EmployeeUseCase,
	vehicles *VehicleUseCase,
	services *ServiceUseCase,
	advances *SalaryAdvanceUseCase,
	toilets *ChemicalToiletUseCase,
	licenses *LicenseUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{
		clients:   clients,
		employees: employees,
		vehicles:  vehicles,
		services:  services,
		advances:  advances,
		toilets:   toilets,
		licenses:  licenses,
	}
}

// Summary consulta todos los totales en paralelo. Un dato que falla queda marcado con su
// error y el resto del tablero se muestra igual.
func (uc *DashboardUseCase) Summary(ctx context.Context) dto.DashboardSummary {
	var out dto.DashboardSummary
	one := dto.ListQuery{Page: 1, Limit: 1}

	var g errgroup.Group
	count := func(dst *dto.Counter, fn func() (int, error)) {
		g.Go(func() error {
			dst.Value, dst.Err = fn()
			return nil
		})
	}
	count(&out.Clients, func() (int, error) {
		p, err := uc.clients.List(ctx, one)
		return total(p, err)
	})
	count(&out.Employees, func() (int, error) {
		p, err := uc.employees.List(ctx, one)
		return total(p, err)
	})
	count(&out.Vehicles, func() (int, error) {
		p, err := uc.vehicles.List(ctx, one)
		return total(p, err)
	})
	count(&out.PendingServices, func() (int, error) {
		p, err := uc.services.List(ctx, one, entity.ServicePending)
		return total(p, err)
	})
	count(&out.PendingAdvances, func() (int, error) {
		p, err := uc.advances.List(ctx, one, entity.AdvancePending)
		return total(p, err)
	})
	g.Go(func() error {
		stats, err := uc.toilets.Stats(ctx)
		if err != nil {
			out.ToiletsErr = err
			return nil
		}
		out.Toilets = *stats
		return nil
	})
	g.Go(func() error {
		out.ExpiringLicenses, out.LicensesErr = uc.licenses.Upcoming(ctx, licenseWarningDays)
		return nil
	})
	_ = g.Wait()
	return out
}

func total[T any](p *dto.Page[T], err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return p.TotalItems, nil
}
