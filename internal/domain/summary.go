package domain

// DaySummary es la fila de totales de un día: ventas, premios y la comisión
// ya redondeada de ese día.
type DaySummary struct {
	Day      string  `json:"day"`
	Venta    float64 `json:"venta"`
	Premio   float64 `json:"premio"`
	Comision float64 `json:"comision"`
}

// WeekSummary es el resumen derivado de una semana para un vendedor. Se
// recalcula en cada lectura; nunca se persiste.
type WeekSummary struct {
	Days []DaySummary `json:"days"`

	TotalVentas   float64 `json:"total_ventas"`
	TotalPremios  float64 `json:"total_premios"`
	TotalComision float64 `json:"total_comision"`

	Ganancia         float64 `json:"ganancia"`
	TotalMovimientos float64 `json:"total_movimientos"`
	GananciaFinal    float64 `json:"ganancia_final"`

	ProfitPolicy       string `json:"profit_policy"`
	MovementConvention string `json:"movement_convention"`
}
