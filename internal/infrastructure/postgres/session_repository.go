package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

var _ repository.RevokedSessionRepository = (*SessionRepo)(nil)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS revoked_sessions (
		fingerprint TEXT PRIMARY KEY,
		expires_at  TIMESTAMPTZ NOT NULL,
		revoked_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS revoked_sessions_expires_at_idx ON revoked_sessions (expires_at)`,
}

// SessionRepo registro de sesiones revocadas sobre PostgreSQL.
type SessionRepo struct {
	pool *pgxpool.Pool
}

// NewSessionRepository construye el adaptador. Llamar EnsureSchema antes de usarlo.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// EnsureSchema crea la tabla revoked_sessions si no existe.
func (r *SessionRepo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear revoked_sessions: %w", err)
		}
	}
	return nil
}

// Revoke inserta la huella; si ya existía se conserva el vencimiento mayor.
func (r *SessionRepo) Revoke(ctx context.Context, fingerprint string, expiresAt time.Time) error {
	query := `
		INSERT INTO revoked_sessions (fingerprint, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (fingerprint) DO UPDATE
		SET expires_at = GREATEST(revoked_sessions.expires_at, EXCLUDED.expires_at)`
	if _, err := r.pool.Exec(ctx, query, fingerprint, expiresAt); err != nil {
		return fmt.Errorf("insert revoked session: %w", err)
	}
	return nil
}

// IsRevoked indica si la huella existe y no venció.
func (r *SessionRepo) IsRevoked(ctx context.Context, fingerprint string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM revoked_sessions WHERE fingerprint = $1 AND expires_at > now())`
	var ok bool
	if err := r.pool.QueryRow(ctx, query, fingerprint).Scan(&ok); err != nil {
		return false, fmt.Errorf("get revoked session: %w", err)
	}
	return ok, nil
}

// PurgeExpired borra las entradas vencidas y devuelve cuántas eran.
func (r *SessionRepo) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM revoked_sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("purge revoked sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Ping verifica la conexión (lo usa el comando check).
func (r *SessionRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close cierra el pool.
func (r *SessionRepo) Close() error {
	r.pool.Close()
	return nil
}
