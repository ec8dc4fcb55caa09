package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
	"github.com/jhoicas/panel-admin/pkg/logger"
)

// Locals keys.
const (
	LocalSession   = "session"
	LocalRequestID = "requestid"
)

// Rutas de redirección de sesión.
const (
	LoginPath        = "/login"
	LoginExpiredPath = "/login?expired=true"
	ForbiddenPath    = "/no-autorizado"
)

// RequestContext carga en el contexto de la petición el sublogger con request_id y el id
// que el cliente REST reenvía al backend. Debe ir después del middleware requestid.
func RequestContext(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _ := c.Locals(LocalRequestID).(string)
		ctx := log.WithRequest(c.UserContext(), id)
		ctx = backend.WithRequestID(ctx, id)
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// RequireSession verifica la cookie token con el guard:
//   - sin token → /login
//   - token inválido, vencido, por vencer o revocado → borra cookies y /login?expired=true
//   - válido → deja la sesión en Locals y el token en el contexto para el cliente REST
func RequireSession(guard *auth.Guard, cookies Cookies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := guard.Check(c.UserContext(), c.Cookies(CookieToken))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenNotFound):
				return c.Redirect(LoginPath)
			case errors.Is(err, domain.ErrBackendUnavailable):
				return err
			}
			zerolog.Ctx(c.UserContext()).Info().Err(err).Str("path", c.Path()).Msg("sesión rechazada")
			cookies.ClearSession(c)
			return c.Redirect(LoginExpiredPath)
		}
		if sess.EmployeeID == nil {
			// tokens sin empleadoId: se usa el de la cookie informativa
			if u, ok := userCookie(c); ok {
				sess.EmployeeID = u.EmployeeID
			}
		}
		c.Locals(LocalSession, sess)
		c.SetUserContext(backend.WithSession(c.UserContext(), backend.Session{
			Token:     sess.Token,
			ExpiresAt: sess.ExpiresAt,
		}))
		return c.Next()
	}
}

// GetSession devuelve la sesión verificada (después de RequireSession), o nil.
func GetSession(c *fiber.Ctx) *auth.Session {
	s, _ := c.Locals(LocalSession).(*auth.Session)
	return s
}
