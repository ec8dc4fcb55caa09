package http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/infrastructure/pdf"
)

// exportMaxPages tope de páginas que recorre la exportación a PDF.
const exportMaxPages = 50

// Option opción de un select.
type Option struct {
	Value string
	Label string
}

// options arma opciones cuyo texto es la etiqueta legible del valor.
func options(values ...string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: statusLabel(v)})
	}
	return out
}

// Field campo de un formulario.
type Field struct {
	Name     string
	Label    string
	Type     string // text, email, password, number, date, select, multiselect, textarea, checkbox
	Value    string
	Values   []string // multiselect
	Options  []Option
	Required bool
	Step     string
	Help     string
}

// Selected indica si v está entre los valores del campo.
func (f Field) Selected(v string) bool {
	if f.Value == v {
		return true
	}
	for _, x := range f.Values {
		if x == v {
			return true
		}
	}
	return false
}

// Column columna de un listado.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Filter filtro por un valor fijo (estado) sobre el listado.
type Filter struct {
	Param   string
	Label   string
	Options []Option
}

// RowAction acción sobre un ítem que se envía como formulario en línea: POST <base>/:id<Suffix>.
type RowAction struct {
	Label   string
	Suffix  string
	Field   string   // campo enviado; vacío = sin campo
	Options []Option // nil = input de texto libre
	Style   string   // primary, danger
	Success string
	Run     func(ctx context.Context, id int, value string) error
}

// RowLink enlace por ítem hacia otra página.
type RowLink struct {
	Label string
	Href  func(id int) string
}

// tableRow fila lista para la vista.
type tableRow struct {
	ID    int
	Cells []string
	Links []link
}

type link struct {
	Label string
	Href  string
}

// Section listado + alta/edición/baja + exportación de una entidad del backend.
// Las operaciones nil no se ofrecen.
type Section[T any, In any] struct {
	Slug     string // segmento de URL, p.ej. "clientes"
	Title    string // "Clientes"
	Singular string // "cliente"
	Feminine bool   // concordancia de los mensajes: "creada", "Nueva"

	Columns []Column[T]
	ID      func(T) int
	Filter  *Filter
	Actions []RowAction
	Links   []RowLink

	// Fields campos del formulario; item nil = alta.
	Fields func(item *T) []Field
	// Lookups opciones de selects que dependen del backend (clientes, empleados...).
	Lookups func(ctx context.Context) (map[string][]Option, error)
	Parse   func(c *fiber.Ctx) In

	List   func(ctx context.Context, q dto.ListQuery, filter string) (*dto.Page[T], error)
	Get    func(ctx context.Context, id int) (*T, error)
	Create func(ctx context.Context, in In) (*T, error)
	Update func(ctx context.Context, id int, in In) (*T, error)
	Delete func(ctx context.Context, id int) error

	PDF *pdf.ListingGenerator

	base string
}

// Mount registra las rutas bajo r; prefix es la ruta absoluta de r (p.ej. "/admin").
func (s *Section[T, In]) Mount(r fiber.Router, prefix string) {
	s.base = prefix + "/" + s.Slug
	g := r.Group("/" + s.Slug)
	g.Get("/", s.list)
	if s.PDF != nil {
		g.Get("/export.pdf", s.export)
	}
	if s.Create != nil {
		g.Get("/nuevo", s.newForm)
		g.Post("/", s.create)
	}
	if s.Update != nil && s.Get != nil {
		g.Get("/:id/editar", s.editForm)
		g.Post("/:id", s.update)
	}
	if s.Delete != nil {
		g.Post("/:id/eliminar", s.remove)
	}
	for _, a := range s.Actions {
		g.Post("/:id"+a.Suffix, s.rowAction(a))
	}
}

// Base ruta absoluta del listado (después de Mount).
func (s *Section[T, In]) Base() string {
	return s.base
}

func (s *Section[T, In]) filterValue(c *fiber.Ctx) string {
	if s.Filter == nil {
		return ""
	}
	return c.Query(s.Filter.Param)
}

func (s *Section[T, In]) headers() []string {
	out := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		out = append(out, col.Header)
	}
	return out
}

func (s *Section[T, In]) rows(items []T) []tableRow {
	out := make([]tableRow, 0, len(items))
	for _, it := range items {
		cells := make([]string, 0, len(s.Columns))
		for _, col := range s.Columns {
			cells = append(cells, col.Value(it))
		}
		id := s.ID(it)
		links := make([]link, 0, len(s.Links))
		for _, l := range s.Links {
			links = append(links, link{Label: l.Label, Href: l.Href(id)})
		}
		out = append(out, tableRow{ID: id, Cells: cells, Links: links})
	}
	return out
}

// pageURL conserva búsqueda y filtro al paginar.
func (s *Section[T, In]) pageURL(q dto.ListQuery, filter string, page int) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if filter != "" && s.Filter != nil {
		v.Set(s.Filter.Param, filter)
	}
	return s.base + "?" + v.Encode()
}

func (s *Section[T, In]) list(c *fiber.Ctx) error {
	q := listQuery(c)
	filter := s.filterValue(c)
	page, err := s.List(c.UserContext(), q, filter)
	if err != nil {
		return err
	}
	data := fiber.Map{
		"Title":     s.Title,
		"Singular":  s.Singular,
		"Base":      s.base,
		"Headers":   s.headers(),
		"Rows":      s.rows(page.Data),
		"Page":      page,
		"Query":     q,
		"Filter":    s.Filter,
		"FilterVal": filter,
		"Actions":   s.Actions,
		"CanCreate": s.Create != nil,
		"CanEdit":   s.Update != nil && s.Get != nil,
		"CanDelete": s.Delete != nil,
		"CanExport": s.PDF != nil,
	}
	if page.CurrentPage > 1 {
		data["PrevURL"] = s.pageURL(q, filter, page.CurrentPage-1)
	}
	if page.CurrentPage < page.TotalPages {
		data["NextURL"] = s.pageURL(q, filter, page.CurrentPage+1)
	}
	if s.PDF != nil {
		data["ExportURL"] = strings.Replace(s.pageURL(q, filter, 1), "?", "/export.pdf?", 1)
	}
	return render(c, "list", data)
}

// Items muestra items sin paginar (listados derivados, p.ej. condiciones de un cliente).
func (s *Section[T, In]) Items(c *fiber.Ctx, title string, items []T) error {
	return render(c, "list", fiber.Map{
		"Title":     title,
		"Singular":  s.Singular,
		"Base":      s.base,
		"Headers":   s.headers(),
		"Rows":      s.rows(items),
		"Page":      &dto.Page[T]{Data: items, TotalItems: len(items), CurrentPage: 1, TotalPages: 1},
		"Actions":   s.Actions,
		"CanEdit":   s.Update != nil && s.Get != nil,
		"CanDelete": s.Delete != nil,
		"Derived":   true,
	})
}

// fields aplica los lookups a los campos del formulario.
func (s *Section[T, In]) fields(ctx context.Context, item *T) ([]Field, error) {
	fields := s.Fields(item)
	if s.Lookups == nil {
		return fields, nil
	}
	lookups, err := s.Lookups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range fields {
		if opts, ok := lookups[fields[i].Name]; ok {
			fields[i].Options = opts
			if fields[i].Type != "multiselect" {
				fields[i].Type = "select"
			}
		}
	}
	return fields, nil
}

// posted rellena los campos con lo enviado para volver a mostrar el formulario.
func posted(c *fiber.Ctx, fields []Field) []Field {
	for i := range fields {
		switch fields[i].Type {
		case "password":
			fields[i].Value = ""
		case "multiselect":
			fields[i].Values = formStrings(c, fields[i].Name)
		case "checkbox":
			if formBool(c, fields[i].Name) {
				fields[i].Value = "true"
			} else {
				fields[i].Value = ""
			}
		default:
			fields[i].Value = c.FormValue(fields[i].Name)
		}
	}
	return fields
}

func (s *Section[T, In]) renderForm(c *fiber.Ctx, title, action string, fields []Field, flash *Flash) error {
	data := fiber.Map{
		"Title":  title,
		"Base":   s.base,
		"Action": action,
		"Fields": fields,
	}
	if flash != nil {
		data["Flash"] = flash
	}
	return render(c, "form", data)
}

func (s *Section[T, In]) newForm(c *fiber.Ctx) error {
	fields, err := s.fields(c.UserContext(), nil)
	if err != nil {
		return err
	}
	return s.renderForm(c, s.newTitle(), s.base, fields, nil)
}

func (s *Section[T, In]) create(c *fiber.Ctx) error {
	_, err := s.Create(c.UserContext(), s.Parse(c))
	if err != nil {
		return s.formFailed(c, s.newTitle(), s.base, err)
	}
	setFlash(c, FlashSuccess, s.done("creado"))
	return c.Redirect(s.base)
}

func (s *Section[T, In]) editForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	item, err := s.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	fields, err := s.fields(c.UserContext(), item)
	if err != nil {
		return err
	}
	return s.renderForm(c, "Editar "+s.Singular, s.itemPath(id), fields, nil)
}

func (s *Section[T, In]) update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := s.Update(c.UserContext(), id, s.Parse(c)); err != nil {
		return s.formFailed(c, "Editar "+s.Singular, s.itemPath(id), err)
	}
	setFlash(c, FlashSuccess, s.done("actualizado"))
	return c.Redirect(s.base)
}

// formFailed vuelve a mostrar el formulario con lo enviado y el error como flash.
func (s *Section[T, In]) formFailed(c *fiber.Ctx, title, action string, err error) error {
	if isSessionError(err) {
		return err
	}
	fields, lerr := s.fields(c.UserContext(), nil)
	if lerr != nil {
		return lerr
	}
	c.Status(fiber.StatusUnprocessableEntity)
	return s.renderForm(c, title, action, posted(c, fields), &Flash{Kind: FlashError, Message: err.Error()})
}

func (s *Section[T, In]) remove(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := s.Delete(c.UserContext(), id); err != nil {
		return failAndBack(c, err, s.base)
	}
	setFlash(c, FlashSuccess, s.done("eliminado"))
	return redirectBack(c, s.base)
}

func (s *Section[T, In]) rowAction(a RowAction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		value := ""
		if a.Field != "" {
			value = formString(c, a.Field)
		}
		if err := a.Run(c.UserContext(), id, value); err != nil {
			return failAndBack(c, err, s.base)
		}
		setFlash(c, FlashSuccess, a.Success)
		return redirectBack(c, s.base)
	}
}

// export recorre todas las páginas del listado (con la misma búsqueda y filtro) y devuelve el PDF.
func (s *Section[T, In]) export(c *fiber.Ctx) error {
	ctx := c.UserContext()
	q := listQuery(c)
	q.Page, q.Limit = 1, 100
	filter := s.filterValue(c)

	var items []T
	for q.Page <= exportMaxPages {
		page, err := s.List(ctx, q, filter)
		if err != nil {
			return err
		}
		items = append(items, page.Data...)
		if page.CurrentPage >= page.TotalPages || len(page.Data) == 0 {
			break
		}
		q.Page++
	}

	rows := make([][]string, 0, len(items))
	for _, r := range s.rows(items) {
		rows = append(rows, r.Cells)
	}
	var subtitle []string
	if q.Search != "" {
		subtitle = append(subtitle, "Búsqueda: "+q.Search)
	}
	if filter != "" && s.Filter != nil {
		subtitle = append(subtitle, s.Filter.Label+": "+statusLabel(filter))
	}
	author := ""
	if sess := GetSession(c); sess != nil {
		author = sess.Email
	}
	doc, err := s.PDF.Generate(ctx, pdf.Listing{
		Title:    s.Title,
		Subtitle: strings.Join(subtitle, " · "),
		Author:   author,
		Headers:  s.headers(),
		Rows:     rows,
	})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, s.Slug))
	return c.Send(doc)
}

func (s *Section[T, In]) itemPath(id int) string {
	return s.base + "/" + strconv.Itoa(id)
}

// done "Cliente creado correctamente" / "Licencia creada correctamente".
func (s *Section[T, In]) done(participle string) string {
	if s.Feminine {
		participle = strings.TrimSuffix(participle, "o") + "a"
	}
	return capitalize(s.Singular) + " " + participle + " correctamente"
}

func (s *Section[T, In]) newTitle() string {
	if s.Feminine {
		return "Nueva " + s.Singular
	}
	return "Nuevo " + s.Singular
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
