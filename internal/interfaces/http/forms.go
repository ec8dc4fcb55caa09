package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// listQuery lee page, limit y search de la query string.
func listQuery(c *fiber.Ctx) dto.ListQuery {
	q := dto.ListQuery{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 15),
		Search: c.Query("search"),
	}
	q.DefaultPage()
	return q
}

// paramID lee :id; 400 si no es un entero positivo.
func paramID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	return id, nil
}

func formString(c *fiber.Ctx, name string) string {
	return strings.TrimSpace(c.FormValue(name))
}

// formInt entero del formulario; vacío o inválido = 0 (lo rechaza la validación).
func formInt(c *fiber.Ctx, name string) int {
	n, err := strconv.Atoi(formString(c, name))
	if err != nil {
		return 0
	}
	return n
}

// formIntPtr como formInt pero vacío = nil.
func formIntPtr(c *fiber.Ctx, name string) *int {
	if formString(c, name) == "" {
		return nil
	}
	n := formInt(c, name)
	return &n
}

// formDecimal acepta coma o punto decimal y separador de miles con punto ("1.234,50").
func formDecimal(c *fiber.Ctx, name string) decimal.Decimal {
	s := formString(c, name)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// formDate fecha de <input type="date">; inválida = fecha cero.
func formDate(c *fiber.Ctx, name string) entity.Date {
	d, err := entity.ParseDate(formString(c, name))
	if err != nil {
		return entity.Date{}
	}
	return d
}

func formBool(c *fiber.Ctx, name string) bool {
	switch strings.ToLower(formString(c, name)) {
	case "on", "true", "1", "si", "sí":
		return true
	}
	return false
}

// formStrings valores múltiples (checkboxes con el mismo nombre).
func formStrings(c *fiber.Ctx, name string) []string {
	var out []string
	args := c.Request().PostArgs()
	for _, v := range args.PeekMulti(name) {
		if s := strings.TrimSpace(string(v)); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		if mf, err := c.MultipartForm(); err == nil && mf != nil {
			for _, v := range mf.Value[name] {
				if s := strings.TrimSpace(v); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
