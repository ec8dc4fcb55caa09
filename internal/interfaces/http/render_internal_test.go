package http

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

func TestBackPath(t *testing.T) {
	cases := []struct {
		referer, want string
	}{
		{"http://panel.local/admin/clientes?page=2", "/admin/clientes?page=2"},
		{"https://otro.sitio/admin/vehiculos", "/admin/vehiculos"},
		{"//evil.example/x", "/fallback"},
		{"", "/fallback"},
		{"::no-es-url", "/fallback"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, backPath(tc.referer, "/fallback"), "referer %q", tc.referer)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "En Progreso", statusLabel("EN_PROGRESO"))
	assert.Equal(t, "Activo", statusLabel("ACTIVO"))
	assert.Equal(t, "—", statusLabel(""))
}

func TestSection_MensajesConConcordancia(t *testing.T) {
	cliente := &Section[entity.Client, dto.ClientRequest]{Singular: "cliente"}
	licencia := &Section[entity.License, licenseInput]{Singular: "licencia", Feminine: true}

	assert.Equal(t, "Cliente creado correctamente", cliente.done("creado"))
	assert.Equal(t, "Licencia eliminada correctamente", licencia.done("eliminado"))
	assert.Equal(t, "Nuevo cliente", cliente.newTitle())
	assert.Equal(t, "Nueva licencia", licencia.newTitle())
}

func TestReadOnly_QuitaLasOperacionesDeEscritura(t *testing.T) {
	s := clientSection(nil, nil)
	s.Actions = []RowAction{{Label: "x", Suffix: "/x"}}

	ro := readOnly(s)

	assert.Nil(t, ro.Create)
	assert.Nil(t, ro.Update)
	assert.Nil(t, ro.Delete)
	assert.Nil(t, ro.Actions)
	assert.NotNil(t, s.Create, "la sección original no se modifica")
	assert.Len(t, s.Actions, 1)
}

func TestPageURL_ConservaBusquedaYFiltro(t *testing.T) {
	s := &Section[entity.Service, dto.ServiceRequest]{
		Filter: &Filter{Param: "estado"},
		base:   "/admin/servicios",
	}
	got := s.pageURL(dto.ListQuery{Search: "norte"}, "PROGRAMADO", 3)
	assert.Equal(t, "/admin/servicios?estado=PROGRAMADO&page=3&search=norte", got)
}

func TestField_Selected(t *testing.T) {
	f := Field{Values: []string{"ADMIN", "OPERARIO"}}
	assert.True(t, f.Selected("OPERARIO"))
	assert.False(t, f.Selected("SUPERVISOR"))
	assert.True(t, Field{Value: "ACTIVO"}.Selected("ACTIVO"))
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "$ 0,00"},
		{"15000.5", "$ 15.000,50"},
		{"999.999", "$ 1.000,00"},
		{"-1234.5", "$ -1.234,50"},
		{"12345678901234567.89", "$ 12.345.678.901.234.567,89"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatMoney(decimal.RequireFromString(tc.in)), "monto %s", tc.in)
	}
}
