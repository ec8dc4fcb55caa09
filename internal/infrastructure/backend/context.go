package backend

import (
	"context"
	"time"
)

type ctxKey int

const (
	sessionKey ctxKey = iota
	requestIDKey
)

// Session credencial que viaja en el contexto de la petición hasta el cliente REST.
type Session struct {
	Token     string
	ExpiresAt time.Time // cero = desconocido; no se verifica antes de enviar
}

// WithSession devuelve ctx con la sesión del usuario.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFrom extrae la sesión del contexto.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	if !ok || s.Token == "" {
		return Session{}, false
	}
	return s, true
}

// WithRequestID devuelve ctx con el id de la petición entrante; se reenvía al backend.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom extrae el id de petición del contexto.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
