package repository

import (
	"context"
	"time"
)

// RevokedSessionRepository registra tokens cerrados con logout antes de su expiración.
// Las claves son huellas del token, nunca el token en claro.
type RevokedSessionRepository interface {
	// Revoke marca fingerprint como revocado hasta expiresAt; pasado ese momento la entrada
	// puede descartarse porque el token ya no es válido.
	Revoke(ctx context.Context, fingerprint string, expiresAt time.Time) error
	// IsRevoked indica si fingerprint fue revocado y aún no venció.
	IsRevoked(ctx context.Context, fingerprint string) (bool, error)
	Close() error
}
