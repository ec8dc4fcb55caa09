package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

const (
	operarioHome     = "/operario"
	operarioAdvances = "/operario/adelantos"
)

// OperarioHandler vistas del operario: sus servicios y sus adelantos.
type OperarioHandler struct {
	services *usecase.ServiceUseCase
	advances *usecase.SalaryAdvanceUseCase
}

// NewOperarioHandler construye el handler.
func NewOperarioHandler(services *usecase.ServiceUseCase, advances *usecase.SalaryAdvanceUseCase) *OperarioHandler {
	return &OperarioHandler{services: services, advances: advances}
}

// employeeID empleado vinculado a la sesión. Sin empleado el operario no puede operar.
func employeeID(c *fiber.Ctx) (int, error) {
	sess := GetSession(c)
	if sess == nil || sess.EmployeeID == nil || *sess.EmployeeID <= 0 {
		return 0, fiber.NewError(fiber.StatusForbidden, "tu usuario no tiene un empleado asociado")
	}
	return *sess.EmployeeID, nil
}

// Services servicios asignados al operario.
func (h *OperarioHandler) Services(c *fiber.Ctx) error {
	emp, err := employeeID(c)
	if err != nil {
		return err
	}
	items, err := h.services.AssignedTo(c.UserContext(), emp)
	if err != nil {
		return err
	}
	return render(c, "operario_services", fiber.Map{
		"Title":    "Mis servicios",
		"Services": items,
	})
}

// Start marca un servicio como en curso.
func (h *OperarioHandler) Start(c *fiber.Ctx) error {
	return h.changeStatus(c, entity.ServiceInProgress, "Servicio iniciado")
}

// Complete marca un servicio como completado.
func (h *OperarioHandler) Complete(c *fiber.Ctx) error {
	return h.changeStatus(c, entity.ServiceCompleted, "Servicio completado")
}

func (h *OperarioHandler) changeStatus(c *fiber.Ctx, status, success string) error {
	if _, err := employeeID(c); err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := h.services.ChangeStatus(c.UserContext(), id, status); err != nil {
		return failAndBack(c, err, operarioHome)
	}
	setFlash(c, FlashSuccess, success)
	return redirectBack(c, operarioHome)
}

// Advances adelantos del operario y formulario de solicitud.
func (h *OperarioHandler) Advances(c *fiber.Ctx) error {
	emp, err := employeeID(c)
	if err != nil {
		return err
	}
	items, err := h.advances.ListByEmployee(c.UserContext(), emp)
	if err != nil {
		return err
	}
	return render(c, "operario_advances", fiber.Map{
		"Title":    "Mis adelantos",
		"Advances": items,
	})
}

// RequestAdvance registra una solicitud de adelanto.
func (h *OperarioHandler) RequestAdvance(c *fiber.Ctx) error {
	emp, err := employeeID(c)
	if err != nil {
		return err
	}
	in := dto.SalaryAdvanceRequest{
		Amount: formDecimal(c, "amount"),
		Reason: formString(c, "reason"),
	}
	if _, err := h.advances.Request(c.UserContext(), emp, in); err != nil {
		return failAndBack(c, err, operarioAdvances)
	}
	setFlash(c, FlashSuccess, "Solicitud de adelanto enviada")
	return c.Redirect(operarioAdvances)
}
