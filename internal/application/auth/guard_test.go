package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/infrastructure/memory"
	"github.com/jhoicas/panel-admin/pkg/jwt"
)

const secret = "guard-test-secret"

func sign(t *testing.T, exp time.Duration, mutate func(*jwt.Claims)) string {
	t.Helper()
	now := time.Now()
	c := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "17",
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(exp)),
		},
		Email: "ana@empresa.com",
		Roles: []string{"ADMIN"},
	}
	if mutate != nil {
		mutate(&c)
	}
	tok, err := jwt.Sign(secret, c)
	require.NoError(t, err)
	return tok
}

func newGuard(t *testing.T) *Guard {
	t.Helper()
	store := memory.NewSessionStore(time.Hour)
	t.Cleanup(func() { _ = store.Close() })
	return NewGuard(Config{Secret: secret, ExpiryMargin: time.Minute}, store)
}

// failingStore registro de revocaciones caído.
type failingStore struct{}

func (failingStore) Revoke(context.Context, string, time.Time) error {
	return errors.New("conexión rechazada")
}
func (failingStore) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("conexión rechazada")
}
func (failingStore) Close() error { return nil }

func TestGuard_Check_Valido(t *testing.T) {
	g := newGuard(t)
	emp := 4
	tok := sign(t, time.Hour, func(c *jwt.Claims) {
		c.Role = "SUPERVISOR"
		c.EmployeeID = &emp
	})

	sess, err := g.Check(context.Background(), tok)

	require.NoError(t, err)
	assert.Equal(t, "17", sess.UserID)
	assert.Equal(t, "ana@empresa.com", sess.Email)
	assert.Equal(t, []string{"ADMIN", "SUPERVISOR"}, sess.Roles)
	require.NotNil(t, sess.EmployeeID)
	assert.Equal(t, 4, *sess.EmployeeID)
	assert.True(t, sess.HasRole("admin"))
	assert.Equal(t, tok, sess.Token)
}

func TestGuard_Check_Errores(t *testing.T) {
	g := newGuard(t)
	cases := []struct {
		name  string
		token string
		want  error
	}{
		{"vacío", "", domain.ErrTokenNotFound},
		{"basura", "no.es.jwt", domain.ErrSessionExpired},
		{"vencido", sign(t, -time.Minute, nil), domain.ErrSessionExpired},
		{"dentro del margen", sign(t, 30*time.Second, nil), domain.ErrSessionExpired},
		{"otra firma", func() string {
			tok, _ := jwt.Generate("otro-secreto", "1", "x@y.z", nil, "", 60)
			return tok
		}(), domain.ErrSessionExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Check(context.Background(), tc.token)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGuard_Check_MargenConRelojControlado(t *testing.T) {
	g := newGuard(t)
	tok := sign(t, 10*time.Minute, nil)

	g.now = func() time.Time { return time.Now().Add(8 * time.Minute) }
	_, err := g.Check(context.Background(), tok)
	assert.NoError(t, err, "a dos minutos del vencimiento sigue siendo válido")

	g.now = func() time.Time { return time.Now().Add(9*time.Minute + 30*time.Second) }
	_, err = g.Check(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestGuard_Revoke(t *testing.T) {
	g := newGuard(t)
	tok := sign(t, time.Hour, nil)
	other := sign(t, 2*time.Hour, nil)

	require.NoError(t, g.Revoke(context.Background(), tok))

	_, err := g.Check(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	_, err = g.Check(context.Background(), other)
	assert.NoError(t, err, "revocar un token no afecta a los demás")

	assert.NoError(t, g.Revoke(context.Background(), ""), "token vacío no es un error")
	assert.NoError(t, g.Revoke(context.Background(), "ilegible"))
}

// Un token sin exp no abre sesión, ni antes ni después de un logout.
func TestGuard_TokenSinExp_SiempreRechazado(t *testing.T) {
	g := newGuard(t)
	tok := sign(t, time.Hour, func(c *jwt.Claims) { c.ExpiresAt = nil })

	_, err := g.Check(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	require.NoError(t, g.Revoke(context.Background(), tok))
	base := time.Now()
	g.now = func() time.Time { return base.Add(25 * time.Hour) }

	sess, err := g.Check(context.Background(), tok)
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestGuard_RegistroCaido_FallaCerrado(t *testing.T) {
	g := NewGuard(Config{Secret: secret, ExpiryMargin: time.Minute}, failingStore{})

	_, err := g.Check(context.Background(), sign(t, time.Hour, nil))

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestGuard_SinRegistro(t *testing.T) {
	g := NewGuard(Config{Secret: secret}, nil)
	tok := sign(t, time.Hour, nil)

	require.NoError(t, g.Revoke(context.Background(), tok))
	_, err := g.Check(context.Background(), tok)
	assert.NoError(t, err, "sin registro no hay logout del lado del servidor")
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("token-a")
	assert.Len(t, a, 64)
	assert.Equal(t, a, Fingerprint("token-a"))
	assert.NotEqual(t, a, Fingerprint("token-b"))
	assert.NotContains(t, a, "token-a")
}
