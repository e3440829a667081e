// Package accounting deriva los totales de una semana a partir de la
// cuadrícula y el historial de movimientos. Todo es cálculo puro; nada de
// este paquete se persiste.
package accounting

import (
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
	"github.com/tiempos-pupi/tiempos-api/pkg/utils"
)

// CommissionRate es la comisión del vendedor sobre las ventas.
const CommissionRate = 0.07

// Políticas de ganancia semanal
const (
	// PolicyCommission: la ganancia es la comisión total.
	PolicyCommission = "commission"
	// PolicyMargin: la ganancia es ventas menos premios menos comisión.
	PolicyMargin = "margin"
)

// Signo con el que los movimientos entran a la ganancia final
const (
	ConventionSubtract = "subtract"
	ConventionAdd      = "add"
)

// ValidPolicy indica si la política de ganancia es una de las conocidas.
func ValidPolicy(policy string) bool {
	return policy == PolicyCommission || policy == PolicyMargin
}

// ValidConvention indica si el signo de movimientos es uno de los conocidos.
func ValidConvention(convention string) bool {
	return convention == ConventionSubtract || convention == ConventionAdd
}

// DailyTotal suma un campo de todos los sorteos de un día. Para la comisión
// devuelve el 7% de las ventas del día, redondeado a dos decimales; ese
// redondeo por día es parte del contrato, no una aproximación.
func DailyTotal(grid domain.SalesGrid, day, field string, slots []string) float64 {
	if field == domain.FieldComision {
		return DailyCommission(grid, day, slots)
	}

	total := 0.0
	for _, slot := range slots {
		cell := grid.Cell(day, slot)
		switch field {
		case domain.FieldVenta:
			total += cell.Venta
		case domain.FieldPremio:
			total += cell.Premio
		}
	}
	return total
}

// DailyCommission calcula la comisión de un día: 7% de las ventas del día,
// redondeado a dos decimales.
func DailyCommission(grid domain.SalesGrid, day string, slots []string) float64 {
	ventas := DailyTotal(grid, day, domain.FieldVenta, slots)
	return utils.RoundWithTwoDecimalPlace(ventas * CommissionRate)
}

// GrandTotal suma el total diario de un campo sobre los siete días y
// redondea el resultado, para que la suma en coma flotante no arrastre
// residuos al total semanal. La comisión semanal es la suma de las
// comisiones diarias ya redondeadas, así que puede diferir del 7% del total
// de ventas.
func GrandTotal(grid domain.SalesGrid, field string, slots []string) float64 {
	total := 0.0
	for _, day := range domain.Days {
		total += DailyTotal(grid, day, field, slots)
	}
	return utils.RoundWithTwoDecimalPlace(total)
}

// Profit calcula la ganancia semanal antes de movimientos según la política
// del vendedor.
func Profit(policy string, totalVentas, totalPremios, totalComision float64) float64 {
	if policy == PolicyMargin {
		return totalVentas - (totalPremios + totalComision)
	}
	return totalComision
}

// FinalProfit aplica el historial de movimientos a la ganancia con el signo
// configurado para el vendedor.
func FinalProfit(convention string, profit, totalMovimientos float64) float64 {
	if convention == ConventionAdd {
		return profit + totalMovimientos
	}
	return profit - totalMovimientos
}

// BuildSummary arma el resumen completo de la semana de un vendedor. Se
// recalcula desde cero en cada llamada.
func BuildSummary(data *domain.WeekData, slots []string, policy, convention string) domain.WeekSummary {
	summary := domain.WeekSummary{
		Days:               make([]domain.DaySummary, 0, len(domain.Days)),
		ProfitPolicy:       policy,
		MovementConvention: convention,
	}

	for _, day := range domain.Days {
		daySummary := domain.DaySummary{
			Day:      day,
			Venta:    DailyTotal(data.Grid, day, domain.FieldVenta, slots),
			Premio:   DailyTotal(data.Grid, day, domain.FieldPremio, slots),
			Comision: DailyCommission(data.Grid, day, slots),
		}
		summary.Days = append(summary.Days, daySummary)

		summary.TotalVentas += daySummary.Venta
		summary.TotalPremios += daySummary.Premio
		summary.TotalComision += daySummary.Comision
	}

	// cada total se redondea al cerrar su suma; si no, los residuos de la
	// coma flotante llegan al resumen y la ganancia por comisión deja de
	// coincidir con la comisión total
	summary.TotalVentas = utils.RoundWithTwoDecimalPlace(summary.TotalVentas)
	summary.TotalPremios = utils.RoundWithTwoDecimalPlace(summary.TotalPremios)
	summary.TotalComision = utils.RoundWithTwoDecimalPlace(summary.TotalComision)

	summary.Ganancia = utils.RoundWithTwoDecimalPlace(
		Profit(policy, summary.TotalVentas, summary.TotalPremios, summary.TotalComision))
	summary.TotalMovimientos = utils.RoundWithTwoDecimalPlace(data.Movements.Total())
	summary.GananciaFinal = utils.RoundWithTwoDecimalPlace(
		FinalProfit(convention, summary.Ganancia, summary.TotalMovimientos))

	return summary
}
