package backend_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

func newClient(t *testing.T, h http.HandlerFunc, hook func(context.Context)) (*backend.Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	c, err := backend.New(backend.Config{BaseURL: srv.URL + "/", Timeout: 2 * time.Second, OnUnauthorized: hook})
	require.NoError(t, err)
	return c, &hits
}

func authed(token string) context.Context {
	return backend.WithSession(context.Background(), backend.Session{Token: token, ExpiresAt: time.Now().Add(time.Hour)})
}

func TestNew_BaseURLInvalida(t *testing.T) {
	_, err := backend.New(backend.Config{BaseURL: "  "})
	assert.Error(t, err)
	_, err = backend.New(backend.Config{BaseURL: "no es una url"})
	assert.Error(t, err)
}

func TestDo_SinToken_NoLlamaAlBackend(t *testing.T) {
	c, hits := newClient(t, func(w http.ResponseWriter, _ *http.Request) {}, nil)

	err := c.Get(context.Background(), "/api/clients", nil, "Error", nil)

	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	assert.Zero(t, atomic.LoadInt32(hits))
}

func TestDo_TokenVencido_NoLlamaAlBackend(t *testing.T) {
	c, hits := newClient(t, func(w http.ResponseWriter, _ *http.Request) {}, nil)
	ctx := backend.WithSession(context.Background(), backend.Session{Token: "t", ExpiresAt: time.Now().Add(-time.Second)})

	err := c.Get(ctx, "/api/clients", nil, "Error", nil)

	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Zero(t, atomic.LoadInt32(hits))
}

func TestDo_EnviaEncabezadosYCuerpo(t *testing.T) {
	var got *http.Request
	var body string
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"nombre":"Acme"}`)
	}, nil)
	ctx := backend.WithRequestID(authed("abc"), "req-1")

	var out struct {
		Name string `json:"nombre"`
	}
	err := c.Post(ctx, "/api/clients", map[string]string{"nombre": "Acme"}, "Error", &out)

	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Name)
	assert.Equal(t, "Bearer abc", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "req-1", got.Header.Get("X-Request-ID"))
	assert.JSONEq(t, `{"nombre":"Acme"}`, body)
}

func TestDo_SinRequestID_GeneraUno(t *testing.T) {
	var id string
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		id = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusNoContent)
	}, nil)

	_, err := c.Delete(authed("abc"), "/api/clients/1", "Error")

	require.NoError(t, err)
	assert.Len(t, id, 36)
}

func TestDo_MensajeDelBackend(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"string", `{"message":"Invalid query"}`, "Invalid query"},
		{"arreglo", `{"message":["nombre requerido","cuit inválido"]}`, "nombre requerido; cuit inválido"},
		{"sin message", `{"error":"x"}`, "Error al obtener los clientes"},
		{"no json", `<html>502</html>`, "Error al obtener los clientes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, tc.body)
			}, nil)

			err := c.Get(authed("abc"), "/api/clients", nil, "Error al obtener los clientes", nil)

			var apiErr *backend.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.want, apiErr.Message)
			assert.Equal(t, http.StatusBadRequest, backend.StatusOf(err))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDo_401Autenticado_SesionVencidaYHook(t *testing.T) {
	var calls int32
	c, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, func(context.Context) { atomic.AddInt32(&calls, 1) })

	err := c.Get(authed("abc"), "/api/clients", nil, "Error", nil)

	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

// En el login un 401 son credenciales inválidas, no una sesión vencida.
func TestDo_401Publico_NoEsSesionVencida(t *testing.T) {
	var calls int32
	c, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Credenciales inválidas"}`)
	}, func(context.Context) { atomic.AddInt32(&calls, 1) })

	_, err := c.Do(context.Background(), backend.Request{
		Method: http.MethodPost, Path: "/api/auth/login", Body: map[string]string{}, Public: true,
	}, nil)

	assert.False(t, errors.Is(err, domain.ErrSessionExpired))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.EqualError(t, err, "Credenciales inválidas")
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestDo_RespuestaInvalida_BackendNoDisponible(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"nombre":`)
	}, nil)

	var out map[string]interface{}
	err := c.Get(authed("abc"), "/api/clients/1", nil, "Error", &out)

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestDo_BackendCaido(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c, err := backend.New(backend.Config{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	err = c.Get(authed("abc"), "/api/clients", nil, "Error", nil)

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}
