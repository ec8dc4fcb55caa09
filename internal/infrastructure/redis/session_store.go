package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

var _ repository.RevokedSessionRepository = (*SessionStore)(nil)

const keyPrefix = "revoked_session:"

// SessionStore registro de sesiones revocadas en Redis; cada clave expira junto con su token.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore conecta a redisURL y verifica la conexión con PING.
func NewSessionStore(ctx context.Context, redisURL string) (*SessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return &SessionStore{client: client}, nil
}

// NewSessionStoreFromClient usa un cliente ya construido.
func NewSessionStoreFromClient(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Revoke guarda la huella con TTL hasta expiresAt. Un token ya vencido no se guarda.
func (s *SessionStore) Revoke(ctx context.Context, fingerprint string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, keyPrefix+fingerprint, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revocar sesión: %w", err)
	}
	return nil
}

// IsRevoked consulta la huella.
func (s *SessionStore) IsRevoked(ctx context.Context, fingerprint string) (bool, error) {
	err := s.client.Get(ctx, keyPrefix+fingerprint).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("consultar sesión revocada: %w", err)
	}
	return true, nil
}

// Ping verifica la conexión (lo usa el comando check).
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (s *SessionStore) Close() error {
	return s.client.Close()
}
