package http

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

//go:embed views
var viewsFS embed.FS

// ViewsLayout layout por defecto de todas las páginas.
const ViewsLayout = "layouts/main"

// ViewConfig valores que las plantillas necesitan de la configuración.
type ViewConfig struct {
	AppName       string
	CheckInterval time.Duration // período del sondeo de /session/status
}

// NewViews motor de plantillas sobre las vistas embebidas.
func NewViews(cfg ViewConfig) *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err) // el directorio está embebido; no puede faltar
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(templateFuncs(cfg))
	return engine
}

var (
	printer = message.NewPrinter(language.LatinAmericanSpanish)
	titler  = cases.Title(language.Spanish)
)

func templateFuncs(cfg ViewConfig) template.FuncMap {
	interval := cfg.CheckInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return template.FuncMap{
		"appName":    func() string { return cfg.AppName },
		"pollMillis": func() int64 { return interval.Milliseconds() },
		"moneda":     formatMoney,
		"numero":     func(n int) string { return printer.Sprintf("%d", n) },
		"fecha":      func(d entity.Date) string { return d.String() },
		"etiqueta":   statusLabel,
		"adelanto":   advanceStatusLabel,
		"add":        func(a, b int) int { return a + b },
		"hasRole": func(s *auth.Session, role string) bool {
			return s != nil && s.HasRole(role)
		},
		"deref": func(p *int) int {
			if p == nil {
				return 0
			}
			return *p
		},
	}
}

// formatMoney monto con separadores locales: "$ 1.234,50". Trabaja sobre el texto del
// decimal para no perder precisión en montos grandes.
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return "$ " + sign + b.String() + "," + frac
}

// statusLabel "FUERA_DE_SERVICIO" → "Fuera De Servicio".
func statusLabel(s string) string {
	if s == "" {
		return "—"
	}
	return titler.String(strings.ToLower(strings.ReplaceAll(s, "_", " ")))
}
