package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jhoicas/panel-admin/internal/domain"
)

// maxBody límite de lectura de respuestas del backend.
const maxBody = 4 << 20

// APIError respuesta no-2xx del backend.
type APIError struct {
	Status  int
	Message string // message del cuerpo, o el mensaje por defecto de la operación
	Context string // operación que la originó, p.ej. "GET /api/clients"
	// Authenticated indica que la petición llevaba token: solo entonces un 401 significa
	// sesión vencida (en el login significa credenciales inválidas).
	Authenticated bool
}

func (e *APIError) Error() string {
	return e.Message
}

// Is traduce el código HTTP a los errores de dominio.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrSessionExpired:
		return e.Status == http.StatusUnauthorized && e.Authenticated
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.Status == http.StatusForbidden
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrInvalidInput:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	}
	return false
}

// HandleAPIResponse normaliza la respuesta del backend. Con 2xx decodifica el JSON en out
// (si out no es nil y hay cuerpo) y devuelve el código. Con cualquier otro código intenta leer
// {"message": ...} del cuerpo y devuelve *APIError con ese mensaje o con defaultMessage.
func HandleAPIResponse(resp *http.Response, defaultMessage, context string, out interface{}) (int, error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: leer respuesta de %s: %v", domain.ErrBackendUnavailable, context, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
			return resp.StatusCode, nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: respuesta inválida de %s: %v", domain.ErrBackendUnavailable, context, err)
		}
		return resp.StatusCode, nil
	}

	msg := errorMessage(raw)
	if msg == "" {
		msg = defaultMessage
	}
	return resp.StatusCode, &APIError{
		Status:        resp.StatusCode,
		Message:       msg,
		Context:       context,
		Authenticated: resp.Request != nil && resp.Request.Header.Get("Authorization") != "",
	}
}

// errorMessage extrae "message" del cuerpo; admite string o arreglo de strings.
func errorMessage(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Message) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(body.Message, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if err := json.Unmarshal(body.Message, &list); err == nil {
		return strings.TrimSpace(strings.Join(list, "; "))
	}
	return ""
}

// StatusOf devuelve el código HTTP de err si proviene del backend, o 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
