// Package backend es el cliente de la API REST externa. Todas las acciones del panel pasan por
// aquí: se adjunta el token de la sesión, se envía JSON y las respuestas no-2xx se convierten
// en *APIError con el mensaje del backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/panel-admin/internal/domain"
)

// DefaultTimeout timeout de red por llamada cuando Config.Timeout es cero.
const DefaultTimeout = 15 * time.Second

// Config opciones del cliente.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Transport base (tests); nil = http.DefaultTransport.
	Transport http.RoundTripper
	// OnUnauthorized se invoca cuando el backend rechaza con 401 una petición autenticada.
	OnUnauthorized func(ctx context.Context)
}

// Client cliente HTTP de la API REST.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// New construye el cliente con la cadena de transporte request-id → interceptor 401 → base.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("backend: BaseURL vacío")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("backend: BaseURL inválido: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tr := cfg.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}
	tr = &unauthorizedTransport{next: tr, onUnauthorized: cfg.OnUnauthorized}
	tr = &requestIDTransport{next: tr}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout, Transport: tr},
		now:        time.Now,
	}, nil
}

// BaseURL devuelve la URL base configurada.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describe una llamada al backend.
type Request struct {
	Method  string
	Path    string     // relativo a BaseURL, p.ej. "/api/clients"
	Query   url.Values // opcional
	Body    interface{}
	Public  bool   // sin token (login, recuperación de contraseña)
	Default string // mensaje si el backend no envía "message"
}

func (r Request) context() string {
	return r.Method + " " + r.Path
}

// Do ejecuta la llamada y decodifica la respuesta 2xx en out. Devuelve el código HTTP.
func (c *Client) Do(ctx context.Context, r Request, out interface{}) (int, error) {
	headers := http.Header{}
	if !r.Public {
		h, err := AuthHeaders(ctx, c.now())
		if err != nil {
			return 0, err
		}
		headers = h
	} else {
		headers.Set("Content-Type", "application/json")
	}
	headers.Set("Accept", "application/json")

	var body *bytes.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return 0, fmt.Errorf("backend: serializar cuerpo de %s: %w", r.context(), err)
		}
		body = bytes.NewReader(b)
	}

	fullURL := c.baseURL + r.Path
	if len(r.Query) > 0 {
		fullURL += "?" + r.Query.Encode()
	}

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, r.Method, fullURL, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, r.Method, fullURL, nil)
	}
	if err != nil {
		return 0, fmt.Errorf("backend: crear request %s: %w", r.context(), err)
	}
	req.Header = headers

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("%w: %s cancelada: %v", domain.ErrBackendUnavailable, r.context(), ctx.Err())
		}
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrBackendUnavailable, r.context(), err)
	}
	return HandleAPIResponse(resp, r.Default, r.context(), out)
}

// Get atajo para GET autenticado.
func (c *Client) Get(ctx context.Context, path string, query url.Values, defaultMsg string, out interface{}) error {
	_, err := c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Default: defaultMsg}, out)
	return err
}

// Post atajo para POST autenticado.
func (c *Client) Post(ctx context.Context, path string, body interface{}, defaultMsg string, out interface{}) error {
	_, err := c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body, Default: defaultMsg}, out)
	return err
}

// Put atajo para PUT autenticado.
func (c *Client) Put(ctx context.Context, path string, body interface{}, defaultMsg string, out interface{}) error {
	_, err := c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body, Default: defaultMsg}, out)
	return err
}

// Patch atajo para PATCH autenticado.
func (c *Client) Patch(ctx context.Context, path string, body interface{}, defaultMsg string, out interface{}) error {
	_, err := c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body, Default: defaultMsg}, out)
	return err
}

// Delete atajo para DELETE autenticado; devuelve el código (204 en la mayoría de los casos).
func (c *Client) Delete(ctx context.Context, path string, defaultMsg string) (int, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Default: defaultMsg}, nil)
}
