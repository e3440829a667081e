package domain

import (
	"strconv"
	"strings"
)

// Días de la semana, en el orden fijo de las tablas de ventas.
var Days = []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}

// Campos editables de una celda
const (
	FieldVenta    = "venta"
	FieldPremio   = "premio"
	FieldComision = "comision"
)

// Cell es una celda de la cuadrícula: venta y premio de un sorteo en un día.
type Cell struct {
	Venta  float64 `json:"venta"`
	Premio float64 `json:"premio"`
}

// SalesGrid es la cuadrícula dispersa de ventas por día y por sorteo.
// Las celdas ausentes valen {0, 0}.
type SalesGrid map[string]map[string]Cell

// NewSalesGrid crea una cuadrícula con los siete días inicializados.
func NewSalesGrid() SalesGrid {
	grid := make(SalesGrid, len(Days))
	for _, day := range Days {
		grid[day] = make(map[string]Cell)
	}
	return grid
}

// Cell devuelve la celda del día y sorteo indicados, o una celda en cero si
// no existe.
func (g SalesGrid) Cell(day, slot string) Cell {
	slots, ok := g[day]
	if !ok {
		return Cell{}
	}
	return slots[slot]
}

// SetCell actualiza un campo de una celda. El valor crudo se convierte a
// número; una entrada vacía o no numérica se guarda como 0. No hay límite
// superior y los negativos se aceptan como correcciones.
func (g SalesGrid) SetCell(day, slot, field, raw string) {
	if g[day] == nil {
		g[day] = make(map[string]Cell)
	}

	cell := g[day][slot]
	value := CoerceAmount(raw)

	switch field {
	case FieldVenta:
		cell.Venta = value
	case FieldPremio:
		cell.Premio = value
	}

	g[day][slot] = cell
}

// CoerceAmount convierte la entrada cruda a número; cualquier cosa que no sea
// numérica vale 0.
func CoerceAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// ValidDay indica si el día pertenece al conjunto fijo lunes-domingo.
func ValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// ValidCellField indica si el campo es editable (venta o premio).
func ValidCellField(field string) bool {
	return field == FieldVenta || field == FieldPremio
}
