package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/panel-admin/internal/application/action"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

// LoginResult sesión recién abierta y el usuario que devolvió el backend.
type LoginResult struct {
	Session *Session
	User    entity.User
}

// AuthUseCase casos de uso de autenticación contra el backend.
type AuthUseCase struct {
	api   *backend.Client
	guard *Guard
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(api *backend.Client, guard *Guard) *AuthUseCase {
	return &AuthUseCase{api: api, guard: guard}
}

// Login envía las credenciales y verifica el token recibido antes de abrir la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*LoginResult, error) {
	const msg = "Error al iniciar sesión"
	return action.Run(ctx, "auth.login", msg, func(ctx context.Context) (*LoginResult, error) {
		if err := dto.Validate(in); err != nil {
			return nil, err
		}
		var resp dto.LoginResponse
		_, err := uc.api.Do(ctx, backend.Request{
			Method:  http.MethodPost,
			Path:    "/api/auth/login",
			Body:    in,
			Public:  true,
			Default: "Credenciales inválidas",
		}, &resp)
		if err != nil {
			return nil, err
		}
		if resp.AccessToken == "" {
			return nil, fmt.Errorf("%w: login sin access_token", domain.ErrBackendUnavailable)
		}
		sess, err := uc.guard.Check(ctx, resp.AccessToken)
		if err != nil {
			// secreto o emisor mal configurados
			return nil, fmt.Errorf("token del backend rechazado: %v", err)
		}
		if sess.EmployeeID == nil {
			sess.EmployeeID = resp.User.EmployeeID
		}
		return &LoginResult{Session: sess, User: resp.User}, nil
	})
}

// ForgotPassword solicita el correo de restablecimiento.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) (string, error) {
	const msg = "Error al solicitar el restablecimiento de contraseña"
	return action.Run(ctx, "auth.forgot_password", msg, func(ctx context.Context) (string, error) {
		if err := dto.Validate(in); err != nil {
			return "", err
		}
		var resp dto.MessageResponse
		_, err := uc.api.Do(ctx, backend.Request{
			Method:  http.MethodPost,
			Path:    "/api/auth/forgot_password",
			Body:    in,
			Public:  true,
			Default: msg,
		}, &resp)
		if err != nil {
			return "", err
		}
		if resp.Message == "" {
			resp.Message = "Si el email está registrado recibirás las instrucciones"
		}
		return resp.Message, nil
	})
}

// ChangePassword cambia la contraseña del usuario en sesión.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, in dto.ChangePasswordRequest) error {
	const msg = "Error al cambiar la contraseña"
	return action.Exec(ctx, "auth.change_password", msg, func(ctx context.Context) error {
		if err := dto.Validate(in); err != nil {
			return err
		}
		return uc.api.Put(ctx, "/api/auth/change_password", in, msg, nil)
	})
}

// Logout revoca el token localmente; el backend no expone cierre de sesión.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return action.Exec(ctx, "auth.logout", "Error al cerrar sesión", func(ctx context.Context) error {
		return uc.guard.Revoke(ctx, token)
	})
}

// Guard devuelve el verificador de sesiones.
func (uc *AuthUseCase) Guard() *Guard {
	return uc.guard
}
