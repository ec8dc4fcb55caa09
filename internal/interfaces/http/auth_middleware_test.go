package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	apphttp "github.com/jhoicas/panel-admin/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSession
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireSession_SinToken_RedirigeALogin(t *testing.T) {
	env := newTestEnv(t, nil)
	resp := env.do(t, http.MethodGet, "/admin", nil)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Empty(t, env.backend.Calls(), "sin token no debe llamarse al backend")
}

func TestRequireSession_TokenVencido_BorraCookiesYRedirige(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, -time.Minute, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/admin", nil, withToken(tok))

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?expired=true", resp.Header.Get("Location"))
	for _, name := range []string{apphttp.CookieToken, apphttp.CookieUser} {
		c := cookie(resp, name)
		require.NotNil(t, c, "la cookie %s debe borrarse", name)
		assert.Empty(t, c.Value)
	}
}

// Un token que vence dentro del margen se trata como vencido.
func TestRequireSession_TokenPorVencer_SeTrataComoVencido(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, 30*time.Second, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/admin", nil, withToken(tok))

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?expired=true", resp.Header.Get("Location"))
}

func TestRequireSession_TokenInvalido_RedirigeExpirado(t *testing.T) {
	env := newTestEnv(t, nil)
	resp := env.do(t, http.MethodGet, "/admin", nil, withToken("token.invalido.aqui"))

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?expired=true", resp.Header.Get("Location"))
}

func TestRequireSession_TokenRevocado_Rechazado(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, time.Hour, nil, entity.RoleAdmin)
	require.NoError(t, env.guard.Revoke(context.Background(), tok))

	resp := env.do(t, http.MethodGet, "/admin", nil, withToken(tok))

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?expired=true", resp.Header.Get("Location"))
}

func TestRequireSession_EnviaElTokenAlBackend(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, time.Hour, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/admin/clientes?search=acme", nil, withToken(tok))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	call := env.backend.Find(http.MethodGet, "/api/clients")
	require.NotNil(t, call)
	assert.Equal(t, "Bearer "+tok, call.Auth)
	assert.Equal(t, "acme", call.Query.Get("search"))
	assert.Equal(t, "1", call.Query.Get("page"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole / HomeFor
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_OperarioEnAdmin_NoAutorizado(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, time.Hour, intPtr(3), entity.RoleOperario)

	resp := env.do(t, http.MethodGet, "/admin", nil, withToken(tok))

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, apphttp.ForbiddenPath, resp.Header.Get("Location"))
}

func TestRequireRole_XHR_Retorna403JSON(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, time.Hour, nil, entity.RoleSupervisor)

	resp := env.do(t, http.MethodGet, "/admin/usuarios", nil, withToken(tok), asXHR())

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	var body dto.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "FORBIDDEN", body.Code)
}

func TestRequireRole_AdminAccedeASupervisor(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, time.Hour, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/supervisor", nil, withToken(tok))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, env.backend.Find(http.MethodGet, "/api/services"))
}

func TestRequireRole_SupervisorSinAltaDeServicios(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, time.Hour, nil, entity.RoleSupervisor)

	resp := env.do(t, http.MethodGet, "/supervisor/servicios/nuevo", nil, withToken(tok))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "el supervisor solo consulta servicios")

	resp = env.do(t, http.MethodGet, "/supervisor/servicios", nil, withToken(tok))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHome_RedirigeSegunRol(t *testing.T) {
	env := newTestEnv(t, nil)
	cases := []struct {
		roles []string
		want  string
	}{
		{[]string{entity.RoleOperario, entity.RoleAdmin}, "/admin"},
		{[]string{entity.RoleOperario, entity.RoleSupervisor}, "/supervisor"},
		{[]string{entity.RoleOperario}, "/operario"},
		{[]string{"INVITADO"}, apphttp.ForbiddenPath},
	}
	for _, tc := range cases {
		tok := tokenFor(t, time.Hour, nil, tc.roles...)
		resp := env.do(t, http.MethodGet, "/", nil, withToken(tok))
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, tc.want, resp.Header.Get("Location"), "roles %v", tc.roles)
	}
}

func TestHomeFor_SinDistinguirMayusculas(t *testing.T) {
	assert.Equal(t, "/supervisor", apphttp.HomeFor([]string{"supervisor"}))
	assert.Equal(t, apphttp.ForbiddenPath, apphttp.HomeFor(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests login / logout / estado de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EscribeAmbasCookies(t *testing.T) {
	var tok string
	env := newTestEnv(t, map[string]http.HandlerFunc{
		"POST /api/auth/login": func(w http.ResponseWriter, r *http.Request) {
			var in dto.LoginRequest
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in.Password != "secreto" {
				writeJSON(w, http.StatusUnauthorized, `{"message":"Credenciales inválidas"}`)
				return
			}
			writeJSON(w, http.StatusOK, `{"access_token":"`+tok+`","user":{"usuario_id":17,"nombre":"Ana","roles":["ADMIN"],"empleadoId":4}}`)
		},
	})
	tok = tokenFor(t, time.Hour, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodPost, "/login", url.Values{"email": {"ana@empresa.com"}, "password": {"secreto"}})

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))

	tc := cookie(resp, apphttp.CookieToken)
	require.NotNil(t, tc)
	assert.Equal(t, tok, tc.Value)
	assert.True(t, tc.HttpOnly, "el token no debe ser legible desde JavaScript")

	uc := cookie(resp, apphttp.CookieUser)
	require.NotNil(t, uc)
	raw, err := url.QueryUnescape(uc.Value)
	require.NoError(t, err)
	var user entity.SessionUser
	require.NoError(t, json.Unmarshal([]byte(raw), &user))
	assert.Equal(t, testUserID, user.ID)
	assert.Equal(t, []string{entity.RoleAdmin}, user.Roles)
	require.NotNil(t, user.EmployeeID, "sin empleadoId en el token se usa el del usuario")
	assert.Equal(t, 4, *user.EmployeeID)

	call := env.backend.Find(http.MethodPost, "/api/auth/login")
	require.NotNil(t, call)
	assert.Empty(t, call.Auth, "el login es público")
}

func TestLogin_CredencialesInvalidas_MuestraMensajeDelBackend(t *testing.T) {
	env := newTestEnv(t, map[string]http.HandlerFunc{
		"POST /api/auth/login": respond(http.StatusUnauthorized, `{"message":"Credenciales inválidas"}`),
	})

	resp := env.do(t, http.MethodPost, "/login", url.Values{"email": {"ana@empresa.com"}, "password": {"x"}})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Credenciales inválidas")
	assert.Nil(t, cookie(resp, apphttp.CookieToken))
}

func TestLogin_ValidaAntesDeLlamarAlBackend(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodPost, "/login", url.Values{"email": {"no-es-email"}})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Email debe ser un email válido")
	assert.Empty(t, env.backend.Calls())
}

// Con el backend caído el login no se presenta como credenciales inválidas.
func TestLogin_BackendCaido_502(t *testing.T) {
	env := newTestEnv(t, map[string]http.HandlerFunc{
		"POST /api/auth/login": respond(http.StatusInternalServerError, `{"message":"Base de datos no disponible"}`),
	})
	form := url.Values{"email": {"ana@empresa.com"}, "password": {"x"}}

	resp := env.do(t, http.MethodPost, "/login", form)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Base de datos no disponible")
	assert.Nil(t, cookie(resp, apphttp.CookieToken))

	resp = env.do(t, http.MethodPost, "/login", form, asXHR())
	var out dto.ErrorResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "BACKEND_ERROR", out.Code)
}

func TestLoginPage_Expirado_BorraCookies(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, time.Hour, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/login?expired=true", nil, withToken(tok))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	c := cookie(resp, apphttp.CookieToken)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Contains(t, readBody(t, resp), "Tu sesión expiró")
}

func TestLoginPage_ConSesionValida_RedirigeAlInicio(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, time.Hour, nil, entity.RoleSupervisor)

	resp := env.do(t, http.MethodGet, "/login", nil, withToken(tok))

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/supervisor", resp.Header.Get("Location"))
}

func TestLogout_RevocaElToken(t *testing.T) {
	env := newTestEnv(t, nil)
	tok := tokenFor(t, time.Hour, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodPost, "/logout", url.Values{}, withToken(tok))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp = env.do(t, http.MethodGet, "/admin", nil, withToken(tok))
	assert.Equal(t, "/login?expired=true", resp.Header.Get("Location"), "el token revocado no debe volver a entrar")
}

func TestSessionStatus(t *testing.T) {
	env := newTestEnv(t, nil)

	tok := tokenFor(t, time.Hour, nil, entity.RoleSupervisor)
	resp := env.do(t, http.MethodGet, "/session/status", nil, withToken(tok), asXHR())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ok dto.SessionStatus
	decodeJSON(t, resp, &ok)
	assert.True(t, ok.Valid)
	assert.Equal(t, []string{entity.RoleSupervisor}, ok.Roles)
	assert.Greater(t, ok.ExpiresAt, time.Now().Unix())

	vencido := tokenFor(t, 10*time.Second, nil, entity.RoleSupervisor)
	resp = env.do(t, http.MethodGet, "/session/status", nil, withToken(vencido), asXHR())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ko dto.SessionStatus
	decodeJSON(t, resp, &ko)
	assert.False(t, ko.Valid)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests límite de errores
// ──────────────────────────────────────────────────────────────────────────────

// Un 401 del backend con la sesión abierta borra las cookies y obliga a reingresar.
func TestBackend401_BorraCookiesYRedirige(t *testing.T) {
	env := newTestEnv(t, map[string]http.HandlerFunc{
		"GET /api/clients": respond(http.StatusUnauthorized, `{"message":"Token expirado"}`),
	})
	tok := tokenFor(t, time.Hour, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/admin/clientes", nil, withToken(tok))

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?expired=true", resp.Header.Get("Location"))
	c := cookie(resp, apphttp.CookieToken)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
}

func TestBackend401_XHR_Retorna401JSON(t *testing.T) {
	env := newTestEnv(t, map[string]http.HandlerFunc{
		"GET /api/clients": respond(http.StatusUnauthorized, `{"message":"Token expirado"}`),
	})
	tok := tokenFor(t, time.Hour, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/admin/clientes", nil, withToken(tok), asXHR())

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body dto.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "SESSION_EXPIRED", body.Code)
}

func TestBackend400_MensajeDelBackend(t *testing.T) {
	env := newTestEnv(t, map[string]http.HandlerFunc{
		"GET /api/clients": respond(http.StatusBadRequest, `{"message":"Invalid query"}`),
	})
	tok := tokenFor(t, time.Hour, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/admin/clientes", nil, withToken(tok), asXHR())

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Invalid query", body.Message)
}

func TestBackendCaido_PaginaDeErrorConReintento(t *testing.T) {
	env := newTestEnv(t, map[string]http.HandlerFunc{
		"GET /api/vehicles": respond(http.StatusInternalServerError, `no json`),
	})
	tok := tokenFor(t, time.Hour, nil, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/admin/vehiculos?page=2", nil, withToken(tok))

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Error al obtener los vehículos")
	assert.Contains(t, body, "/admin/vehiculos?page=2", "la página de error ofrece reintentar")
}
