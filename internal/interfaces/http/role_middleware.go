package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// homes inicio de cada rol, en orden de prioridad.
var homes = []struct {
	role string
	path string
}{
	{entity.RoleAdmin, "/admin"},
	{entity.RoleSupervisor, "/supervisor"},
	{entity.RoleOperario, "/operario"},
}

// HomeFor devuelve el inicio del primer rol reconocido (admin > supervisor > operario),
// o /no-autorizado si ninguno lo es.
func HomeFor(roles []string) string {
	for _, h := range homes {
		if entity.HasRole(roles, h.role) {
			return h.path
		}
	}
	return ForbiddenPath
}

// RequireRole permite el paso si la sesión tiene alguno de los roles. Debe usarse DESPUÉS de
// RequireSession.
//
// Comportamiento:
//   - sin sesión en Locals → /login
//   - rol no permitido → /no-autorizado (403 JSON para llamadas XHR/JSON)
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Redirect(LoginPath)
		}
		for _, r := range roles {
			if sess.HasRole(r) {
				return c.Next()
			}
		}
		if wantsJSON(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "no tienes permiso para acceder a esta sección",
			})
		}
		return c.Redirect(ForbiddenPath)
	}
}
