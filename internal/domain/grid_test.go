package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalesGrid_Cell_CeldaAusente(t *testing.T) {
	grid := NewSalesGrid()

	assert.Equal(t, Cell{}, grid.Cell("lunes", "10:00 a. m."))
	assert.Equal(t, Cell{}, grid.Cell("dia inexistente", "10:00 a. m."))
}

func TestSalesGrid_SetCell(t *testing.T) {
	grid := NewSalesGrid()

	grid.SetCell("lunes", "10:00 a. m.", FieldVenta, "150.5")
	grid.SetCell("lunes", "10:00 a. m.", FieldPremio, "20")

	cell := grid.Cell("lunes", "10:00 a. m.")
	assert.Equal(t, 150.5, cell.Venta)
	assert.Equal(t, 20.0, cell.Premio)
}

// Una entrada vacía o no numérica se guarda como 0, igual que en las tablas
// originales.
func TestSalesGrid_SetCell_Coercion(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{"numérico", "42.5", 42.5},
		{"vacío", "", 0},
		{"espacios", "   ", 0},
		{"no numérico", "abc", 0},
		{"negativo como corrección", "-15", -15},
		{"con espacios alrededor", " 10 ", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewSalesGrid()
			grid.SetCell("martes", "1:00 p. m.", FieldVenta, tt.raw)
			assert.Equal(t, tt.expected, grid.Cell("martes", "1:00 p. m.").Venta)
		})
	}
}

// Sobrescribir un campo no toca el otro campo de la misma celda.
func TestSalesGrid_SetCell_CamposIndependientes(t *testing.T) {
	grid := NewSalesGrid()

	grid.SetCell("lunes", "10:00 a. m.", FieldVenta, "100")
	grid.SetCell("lunes", "10:00 a. m.", FieldPremio, "30")
	grid.SetCell("lunes", "10:00 a. m.", FieldVenta, "200")

	cell := grid.Cell("lunes", "10:00 a. m.")
	assert.Equal(t, 200.0, cell.Venta)
	assert.Equal(t, 30.0, cell.Premio)
}

func TestValidDay(t *testing.T) {
	for _, day := range Days {
		assert.True(t, ValidDay(day))
	}
	assert.False(t, ValidDay("feriado"))
	assert.False(t, ValidDay("Lunes"))
}

func TestValidCellField(t *testing.T) {
	assert.True(t, ValidCellField(FieldVenta))
	assert.True(t, ValidCellField(FieldPremio))
	assert.False(t, ValidCellField(FieldComision))
	assert.False(t, ValidCellField("otro"))
}
