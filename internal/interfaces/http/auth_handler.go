package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
)

// AuthHandler maneja ingreso, salida, contraseña y estado de la sesión.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	cookies Cookies
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookies Cookies) *AuthHandler {
	return &AuthHandler{uc: uc, cookies: cookies}
}

// LoginPage muestra el formulario. Con ?expired=true borra las cookies y avisa que la sesión
// venció; con una sesión válida redirige al inicio del rol.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	data := fiber.Map{"Title": "Iniciar sesión", "Email": c.Query("email")}
	if c.Query("expired") == "true" {
		h.cookies.ClearSession(c)
		data["Flash"] = &Flash{Kind: FlashInfo, Message: "Tu sesión expiró. Inicia sesión nuevamente."}
		return c.Render("login", data, "layouts/public")
	}
	if sess, err := h.uc.Guard().Check(c.UserContext(), c.Cookies(CookieToken)); err == nil {
		return c.Redirect(HomeFor(sess.Roles))
	}
	data["Flash"] = popFlash(c)
	return c.Render("login", data, "layouts/public")
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Envía las credenciales al backend, verifica el token y escribe las cookies token y user.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Contraseña"
// @Success      302
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	in := dto.LoginRequest{
		Email:    formString(c, "email"),
		Password: c.FormValue("password"),
	}
	res, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		status, code, msg := classify(err)
		if errors.Is(err, domain.ErrUnauthorized) {
			status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
		}
		if wantsJSON(c) {
			return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		c.Status(status)
		return c.Render("login", fiber.Map{
			"Title": "Iniciar sesión",
			"Email": in.Email,
			"Flash": &Flash{Kind: FlashError, Message: msg},
		}, "layouts/public")
	}
	h.cookies.SetSession(c, res.Session)
	zerolog.Ctx(c.UserContext()).Info().
		Str("user_id", res.Session.UserID).
		Strs("roles", res.Session.Roles).
		Msg("sesión iniciada")
	return c.Redirect(HomeFor(res.Session.Roles))
}

// Logout revoca el token, borra las cookies y vuelve al login. Un fallo al revocar no impide
// cerrar la sesión en el navegador.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(CookieToken); token != "" {
		if err := h.uc.Logout(c.UserContext(), token); err != nil {
			zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("no se pudo revocar el token")
		}
	}
	h.cookies.ClearSession(c)
	setFlash(c, FlashSuccess, "Sesión cerrada")
	return c.Redirect(LoginPath)
}

// ForgotPage formulario de recuperación de contraseña.
func (h *AuthHandler) ForgotPage(c *fiber.Ctx) error {
	return c.Render("forgot_password", fiber.Map{
		"Title": "Recuperar contraseña",
		"Email": "",
		"Flash": popFlash(c),
	}, "layouts/public")
}

// Forgot solicita el correo de restablecimiento.
func (h *AuthHandler) Forgot(c *fiber.Ctx) error {
	in := dto.ForgotPasswordRequest{Email: formString(c, "email")}
	msg, err := h.uc.ForgotPassword(c.UserContext(), in)
	flash := &Flash{Kind: FlashSuccess, Message: msg}
	if err != nil {
		c.Status(fiber.StatusUnprocessableEntity)
		flash = &Flash{Kind: FlashError, Message: err.Error()}
	}
	return c.Render("forgot_password", fiber.Map{
		"Title": "Recuperar contraseña",
		"Email": in.Email,
		"Flash": flash,
	}, "layouts/public")
}

// ChangePasswordPage formulario de cambio de contraseña del usuario en sesión.
func (h *AuthHandler) ChangePasswordPage(c *fiber.Ctx) error {
	return render(c, "change_password", fiber.Map{"Title": "Cambiar contraseña"})
}

// ChangePassword cambia la contraseña en el backend.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	in := dto.ChangePasswordRequest{
		OldPassword: c.FormValue("oldPassword"),
		NewPassword: c.FormValue("newPassword"),
		Confirm:     c.FormValue("confirm"),
	}
	if err := h.uc.ChangePassword(c.UserContext(), in); err != nil {
		if isSessionError(err) {
			return err
		}
		c.Status(fiber.StatusUnprocessableEntity)
		return render(c, "change_password", fiber.Map{
			"Title": "Cambiar contraseña",
			"Flash": &Flash{Kind: FlashError, Message: err.Error()},
		})
	}
	setFlash(c, FlashSuccess, "Contraseña actualizada correctamente")
	return c.Redirect(HomeFor(GetSession(c).Roles))
}

// SessionStatus godoc
// @Summary      Estado de la sesión
// @Description  Lo consulta periódicamente el layout; valid=false obliga a volver a iniciar sesión.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionStatus
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /session/status [get]
func (h *AuthHandler) SessionStatus(c *fiber.Ctx) error {
	sess, err := h.uc.Guard().Check(c.UserContext(), c.Cookies(CookieToken))
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			return err
		}
		if !errors.Is(err, domain.ErrTokenNotFound) {
			h.cookies.ClearSession(c)
		}
		return c.JSON(dto.SessionStatus{Valid: false})
	}
	out := dto.SessionStatus{Valid: true, Roles: sess.Roles}
	if !sess.ExpiresAt.IsZero() {
		out.ExpiresAt = sess.ExpiresAt.Unix()
	}
	return c.JSON(out)
}

// Home redirige al inicio del rol.
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	return c.Redirect(HomeFor(GetSession(c).Roles))
}

// Forbidden página de acceso denegado.
func (h *AuthHandler) Forbidden(c *fiber.Ctx) error {
	c.Status(fiber.StatusForbidden)
	if sess, err := h.uc.Guard().Check(c.UserContext(), c.Cookies(CookieToken)); err == nil {
		c.Locals(LocalSession, sess)
		return render(c, "no_autorizado", fiber.Map{"Title": "Acceso denegado", "Home": HomeFor(sess.Roles)})
	}
	return c.Render("no_autorizado", fiber.Map{"Title": "Acceso denegado", "Home": LoginPath}, "layouts/public")
}
