package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// render agrega a data la sesión, el flash pendiente y la ruta actual, y renderiza view
// dentro del layout principal.
func render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Session"] = GetSession(c)
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(c)
	}
	data["Path"] = c.Path()
	return c.Render(view, data)
}

// redirectBack vuelve a la página anterior (Referer) o a fallback. Del Referer solo se toman
// ruta y query, nunca el host.
func redirectBack(c *fiber.Ctx, fallback string) error {
	return c.Redirect(backPath(c.Get(fiber.HeaderReferer), fallback))
}

func backPath(referer, fallback string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return fallback
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

// failAndBack muestra err como flash y vuelve. Los errores de sesión siguen al ErrorHandler.
func failAndBack(c *fiber.Ctx, err error, fallback string) error {
	if isSessionError(err) {
		return err
	}
	setFlash(c, FlashError, err.Error())
	return redirectBack(c, fallback)
}
