package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// DashboardHandler tableros de administración y supervisión, y listados derivados.
type DashboardHandler struct {
	dashboard  *usecase.DashboardUseCase
	services   *usecase.ServiceUseCase
	licenses   *usecase.LicenseUseCase
	conditions *usecase.ContractualConditionUseCase
	clients    *usecase.ClientUseCase

	// secciones sobre las que se muestran los listados derivados
	conditionSection *Section[entity.ContractualCondition, dto.ContractualConditionRequest]
	licenseSection   *Section[entity.License, licenseInput]
}

// Admin tablero con los totales de cada módulo. Los datos que fallan se muestran como no
// disponibles sin ocultar el resto, salvo un error de sesión, que va al ErrorHandler.
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	summary := h.dashboard.Summary(c.UserContext())
	if err := summary.SessionErr(); err != nil {
		return err
	}
	return render(c, "dashboard", fiber.Map{
		"Title":   "Panel de administración",
		"Summary": summary,
	})
}

// Supervisor servicios agrupados por estado.
func (h *DashboardHandler) Supervisor(c *fiber.Ctx) error {
	q := listQuery(c)
	q.Limit = 10
	overview := h.services.Overview(c.UserContext(), q)
	if err := overview.SessionErr(); err != nil {
		return err
	}
	return render(c, "overview", fiber.Map{
		"Title":    "Servicios",
		"Overview": overview,
		"Groups":   []dto.ServiceGroup{overview.Pending, overview.InProgress, overview.Completed},
	})
}

// UpcomingLicenses licencias que vencen en los próximos ?dias= días (30 por defecto).
func (h *DashboardHandler) UpcomingLicenses(c *fiber.Ctx) error {
	days := c.QueryInt("dias", 30)
	if days <= 0 || days > 365 {
		return fiber.NewError(fiber.StatusBadRequest, "dias debe estar entre 1 y 365")
	}
	items, err := h.licenses.Upcoming(c.UserContext(), days)
	if err != nil {
		return err
	}
	return h.licenseSection.Items(c, "Licencias que vencen en "+strconv.Itoa(days)+" días", items)
}

// ClientConditions condiciones contractuales de un cliente.
func (h *DashboardHandler) ClientConditions(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	client, err := h.clients.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	items, err := h.conditions.ByClient(c.UserContext(), id)
	if err != nil {
		return err
	}
	return h.conditionSection.Items(c, "Condiciones de "+client.Name, items)
}
