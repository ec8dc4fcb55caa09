package dto

import (
	"errors"

	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// Counter un total del tablero; Err indica que ese dato no pudo obtenerse.
type Counter struct {
	Value int
	Err   error
}

// DashboardSummary totales del tablero de administración. Cada dato se obtiene en paralelo
// e independientemente de los demás.
type DashboardSummary struct {
	Clients          Counter
	Employees        Counter
	Vehicles         Counter
	PendingServices  Counter
	PendingAdvances  Counter
	Toilets          entity.ToiletStats
	ToiletsErr       error
	ExpiringLicenses []entity.License
	LicensesErr      error
}

// SessionErr primer error de sesión entre los datos del tablero. Un 401 del backend no se
// muestra como dato faltante: obliga a volver a iniciar sesión.
func (s DashboardSummary) SessionErr() error {
	return firstSessionErr(
		s.Clients.Err, s.Employees.Err, s.Vehicles.Err,
		s.PendingServices.Err, s.PendingAdvances.Err,
		s.ToiletsErr, s.LicensesErr,
	)
}

func firstSessionErr(errs ...error) error {
	for _, err := range errs {
		if err != nil && (errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrTokenNotFound)) {
			return err
		}
	}
	return nil
}
