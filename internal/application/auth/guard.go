package auth

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/domain/repository"
	"github.com/jhoicas/panel-admin/pkg/jwt"
)

// Config verificación de tokens.
type Config struct {
	Secret string
	Issuer string
	// ExpiryMargin un token que vence dentro de este margen se trata como vencido.
	ExpiryMargin time.Duration
}

// Session sesión verificada del usuario.
type Session struct {
	Token     string
	UserID    string
	Email     string
	Roles     []string
	ExpiresAt time.Time
	// EmployeeID empleado vinculado (operarios); nil si el token no lo trae.
	EmployeeID *int
}

// HasRole compara sin distinguir mayúsculas.
func (s *Session) HasRole(role string) bool {
	return entity.HasRole(s.Roles, role)
}

// User payload para la cookie informativa "user".
func (s *Session) User() entity.SessionUser {
	return entity.SessionUser{ID: s.UserID, Roles: s.Roles, EmployeeID: s.EmployeeID}
}

// Guard verifica el token de la cookie: firma, expiración con margen y revocación.
type Guard struct {
	cfg   Config
	store repository.RevokedSessionRepository
	now   func() time.Time
}

// NewGuard construye el guard. store puede ser nil (sin logout server-side).
func NewGuard(cfg Config, store repository.RevokedSessionRepository) *Guard {
	return &Guard{cfg: cfg, store: store, now: time.Now}
}

// Check devuelve la sesión si token es válido. Errores:
//   - token vacío: domain.ErrTokenNotFound
//   - firma inválida, vencido, por vencer o revocado: domain.ErrSessionExpired
//   - falla del registro de revocaciones: domain.ErrBackendUnavailable
func (g *Guard) Check(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, domain.ErrTokenNotFound
	}
	claims, err := jwt.Parse(g.cfg.Secret, g.cfg.Issuer, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)
	}
	if claims.ExpiresWithin(g.now(), g.cfg.ExpiryMargin) {
		return nil, domain.ErrSessionExpired
	}
	if g.store != nil {
		revoked, err := g.store.IsRevoked(ctx, Fingerprint(token))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}
		if revoked {
			return nil, domain.ErrSessionExpired
		}
	}
	return sessionFrom(token, claims), nil
}

// Revoke invalida token hasta su expiración. Un token ilegible o ya vencido no se registra.
func (g *Guard) Revoke(ctx context.Context, token string) error {
	if token == "" || g.store == nil {
		return nil
	}
	claims, err := jwt.Parse(g.cfg.Secret, g.cfg.Issuer, token)
	if err != nil || claims.ExpiresAt == nil {
		return nil
	}
	return g.store.Revoke(ctx, Fingerprint(token), claims.ExpiresAt.Time)
}

func sessionFrom(token string, c *jwt.Claims) *Session {
	s := &Session{
		Token:      token,
		UserID:     c.UserID(),
		Email:      c.Email,
		Roles:      c.AllRoles(),
		EmployeeID: c.EmployeeID,
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}

// Fingerprint huella BLAKE2b-256 del token; es la clave en el registro de revocaciones.
func Fingerprint(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
