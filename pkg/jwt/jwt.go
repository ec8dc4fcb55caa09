package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSecretVacio se devuelve cuando no hay secreto configurado para firmar o verificar.
var ErrSecretVacio = errors.New("jwt: secret vacío")

// Claims del token emitido por el backend: claims estándar más email, roles y el empleado
// vinculado al usuario. Role se conserva para tokens que traen un único rol en lugar del arreglo.
type Claims struct {
	jwt.RegisteredClaims
	Email      string   `json:"email,omitempty"`
	Roles      []string `json:"roles,omitempty"`
	Role       string   `json:"role,omitempty"`
	EmployeeID *int     `json:"empleadoId,omitempty"`
}

// UserID devuelve el identificador del usuario (claim sub).
func (c *Claims) UserID() string {
	return c.Subject
}

// AllRoles une Roles y Role sin duplicados.
func (c *Claims) AllRoles() []string {
	out := make([]string, 0, len(c.Roles)+1)
	seen := make(map[string]bool, len(c.Roles)+1)
	for _, r := range append(append([]string{}, c.Roles...), c.Role) {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// ExpiresWithin indica si el token vence antes de now+margin. Sin exp se considera vencido.
func (c *Claims) ExpiresWithin(now time.Time, margin time.Duration) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !c.ExpiresAt.Time.After(now.Add(margin))
}

// Generate firma un token HS256 con userID, email y roles. Lo usan las pruebas y las
// herramientas locales; en producción los tokens los emite el backend.
func Generate(secret, userID, email string, roles []string, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", ErrSecretVacio
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email: email,
		Roles: roles,
	}
	return Sign(secret, claims)
}

// Sign firma claims tal cual con HS256.
func Sign(secret string, claims Claims) (string, error) {
	if secret == "" {
		return "", ErrSecretVacio
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, expiración (obligatoria) y, si se indica, emisor, y devuelve los claims.
func Parse(secret, issuer, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, ErrSecretVacio
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
