package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/jhoicas/panel-admin/internal/domain"
)

// AuthHeaders construye los encabezados de una llamada autenticada a partir de la sesión
// del contexto. Sin token devuelve domain.ErrTokenNotFound; con el token ya vencido devuelve
// domain.ErrSessionExpired. En ambos casos no se hace ninguna llamada de red.
func AuthHeaders(ctx context.Context, now time.Time) (http.Header, error) {
	s, ok := SessionFrom(ctx)
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	if !s.ExpiresAt.IsZero() && !s.ExpiresAt.After(now) {
		return nil, domain.ErrSessionExpired
	}
	h := http.Header{}
	h.Set("Authorization", "Bearer "+s.Token)
	h.Set("Content-Type", "application/json")
	return h, nil
}
