package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-admin/internal/application/action"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
)

const unexpectedMessage = "Ocurrió un error inesperado"

// ErrorHandler es el límite de errores de la aplicación:
//   - sesión vencida o sin token → borra cookies y redirige a /login?expired=true
//   - llamadas XHR/JSON → dto.ErrorResponse con el código HTTP
//   - resto → página de error con enlace para reintentar
func ErrorHandler(cookies Cookies) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if isSessionError(err) {
			cookies.ClearSession(c)
			if wantsJSON(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code:    "SESSION_EXPIRED",
					Message: domain.ErrSessionExpired.Error(),
				})
			}
			return c.Redirect(LoginExpiredPath)
		}

		status, code, msg := classify(err)
		ev := zerolog.Ctx(c.UserContext()).Warn()
		if status >= fiber.StatusInternalServerError {
			ev = zerolog.Ctx(c.UserContext()).Error()
		}
		ev.Err(err).Int("status", status).Str("method", c.Method()).Str("path", c.Path()).Msg("error en la petición")

		if wantsJSON(c) {
			return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		retry := c.OriginalURL()
		if c.Method() != fiber.MethodGet {
			retry = backPath(c.Get(fiber.HeaderReferer), "/")
		}
		if rerr := c.Status(status).Render("error", fiber.Map{
			"Title":   "Error",
			"Status":  status,
			"Message": msg,
			"Retry":   retry,
			"Session": GetSession(c),
		}); rerr != nil {
			return c.Status(status).SendString(msg)
		}
		return nil
	}
}

// isSessionError errores que obligan a volver a iniciar sesión.
func isSessionError(err error) bool {
	return errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrTokenNotFound)
}

func classify(err error) (int, string, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, "HTTP_" + strconv.Itoa(fe.Code), fe.Message
	}
	msg := unexpectedMessage
	var aerr *action.Error
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &aerr):
		msg = aerr.Message
	case errors.As(err, &verr):
		msg = verr.Error()
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", msg
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", msg
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", msg
	case errors.Is(err, domain.ErrBackendUnavailable):
		return fiber.StatusBadGateway, "BACKEND_UNAVAILABLE", msg
	case aerr != nil:
		return fiber.StatusBadGateway, "BACKEND_ERROR", msg
	}
	return fiber.StatusInternalServerError, "INTERNAL", msg
}

// wantsJSON indica si el llamador espera JSON en lugar de HTML.
func wantsJSON(c *fiber.Ctx) bool {
	if c.XHR() {
		return true
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}
