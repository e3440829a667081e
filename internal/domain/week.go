package domain

// Vendedores con tablas propias por semana
const (
	SellerGreivin = "greivin"
	SellerOscar   = "oscar"
)

// Sellers lista los vendedores válidos.
var Sellers = []string{SellerGreivin, SellerOscar}

// Países con calendario de sorteos propio
const (
	CountryCostaRica = "costa_rica"
	CountryNicaragua = "nicaragua"
)

// ValidSeller indica si el vendedor pertenece a la lista fija.
func ValidSeller(seller string) bool {
	for _, s := range Sellers {
		if s == seller {
			return true
		}
	}
	return false
}

// Week es el agrupador semanal de la actividad de ventas. El nombre no tiene
// que ser único; el ID sí, y es estable durante toda la vida de la semana.
type Week struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date,omitempty"` // formato 2006-01-02, solo en semanas con rango calculado
	EndDate   string `json:"end_date,omitempty"`
	CreatedAt int64  `json:"created_at"` // epoch en milisegundos, ordena de más reciente a más antigua
}

// WeekData es el documento por (semana, vendedor): la cuadrícula completa,
// el historial de movimientos y los sorteos agregados a mano.
type WeekData struct {
	Country    string    `json:"country"`
	Grid       SalesGrid `json:"grid"`
	Movements  Ledger    `json:"movements"`
	ExtraSlots []string  `json:"extra_slots,omitempty"`
}

// NewWeekData crea el estado vacío de un vendedor en una semana.
func NewWeekData(country string) *WeekData {
	return &WeekData{
		Country:   country,
		Grid:      NewSalesGrid(),
		Movements: Ledger{},
	}
}

// Clone devuelve una copia profunda, segura de usar fuera del candado de la
// sesión mientras el original sigue mutando.
func (d *WeekData) Clone() *WeekData {
	clone := &WeekData{
		Country:   d.Country,
		Grid:      make(SalesGrid, len(d.Grid)),
		Movements: append(Ledger{}, d.Movements...),
	}
	for day, slots := range d.Grid {
		daySlots := make(map[string]Cell, len(slots))
		for slot, cell := range slots {
			daySlots[slot] = cell
		}
		clone.Grid[day] = daySlots
	}
	if d.ExtraSlots != nil {
		clone.ExtraSlots = append([]string{}, d.ExtraSlots...)
	}
	return clone
}
