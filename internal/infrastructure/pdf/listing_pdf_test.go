package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnWidths_SumanDoce(t *testing.T) {
	for n := 1; n <= maxColumns; n++ {
		sum := 0
		for _, w := range columnWidths(n) {
			assert.Positive(t, w)
			sum += w
		}
		assert.Equal(t, maxColumns, sum, "n=%d", n)
	}
	assert.Equal(t, []int{3, 3, 2, 2, 2}, columnWidths(5))
}

func TestGenerate_ListadoBasico(t *testing.T) {
	g := NewListingGenerator()
	out, err := g.Generate(context.Background(), Listing{
		Title:       "Clientes",
		Subtitle:    "Búsqueda: acme",
		Headers:     []string{"Nombre", "CUIT", "Estado"},
		Rows:        [][]string{{"ACME", "30-12345678-9", "ACTIVO"}, {"Beta", "", "INACTIVO"}},
		GeneratedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe devolver un documento PDF")
}

func TestGenerate_SinColumnas(t *testing.T) {
	_, err := NewListingGenerator().Generate(context.Background(), Listing{Title: "x"})
	assert.ErrorIs(t, err, ErrSinColumnas)
}
