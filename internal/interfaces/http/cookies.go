package http

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// Nombres de cookies.
const (
	CookieToken = "token"
	CookieUser  = "user"
	CookieFlash = "flash"
)

// Tipos de flash.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Cookies opciones de las cookies de sesión.
type Cookies struct {
	Secure bool
	Domain string
}

// SetSession escribe token (httpOnly) y user (legible por el navegador). Ambas vencen con el token.
func (k Cookies) SetSession(c *fiber.Ctx, s *auth.Session) {
	user, _ := json.Marshal(s.User())
	for _, ck := range []*fiber.Cookie{
		{Name: CookieToken, Value: s.Token, HTTPOnly: true},
		{Name: CookieUser, Value: url.QueryEscape(string(user))},
	} {
		ck.Path = "/"
		ck.Domain = k.Domain
		ck.Secure = k.Secure
		ck.SameSite = fiber.CookieSameSiteLaxMode
		if s.ExpiresAt.IsZero() {
			ck.SessionOnly = true
		} else {
			ck.Expires = s.ExpiresAt
		}
		c.Cookie(ck)
	}
}

// ClearSession borra token y user.
func (k Cookies) ClearSession(c *fiber.Ctx) {
	for _, name := range []string{CookieToken, CookieUser} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   k.Domain,
			Secure:   k.Secure,
			HTTPOnly: name == CookieToken,
			SameSite: fiber.CookieSameSiteLaxMode,
			Expires:  time.Unix(0, 0),
		})
	}
}

// userCookie lee la cookie informativa "user".
func userCookie(c *fiber.Ctx) (entity.SessionUser, bool) {
	var u entity.SessionUser
	raw := c.Cookies(CookieUser)
	if raw == "" {
		return u, false
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return u, false
	}
	if err := json.Unmarshal([]byte(decoded), &u); err != nil {
		return u, false
	}
	return u, true
}

// Flash notificación que sobrevive a un redirect.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func setFlash(c *fiber.Ctx, kind, message string) {
	b, _ := json.Marshal(Flash{Kind: kind, Message: message})
	c.Cookie(&fiber.Cookie{
		Name:     CookieFlash,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(time.Minute),
	})
}

// popFlash lee el flash pendiente y lo borra.
func popFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(CookieFlash)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieFlash,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(b, &f); err != nil || f.Message == "" {
		return nil
	}
	return &f
}
