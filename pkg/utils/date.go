package utils

import (
	"fmt"
	"time"
)

// Abreviaturas de meses en español, como las que los vendedores ven en las
// etiquetas de semana ("3 feb - 9 feb").
var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// FormatDayMonth formatea una fecha como "D mes" (ej: "3 feb").
func FormatDayMonth(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), spanishMonths[int(t.Month())-1])
}

// FormatWeekRange formatea el rango de una semana como "D mes - D mes".
func FormatWeekRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", FormatDayMonth(start), FormatDayMonth(end))
}

// CurrentWeekRange devuelve el lunes y el domingo de la semana que contiene
// la fecha dada.
func CurrentWeekRange(today time.Time) (time.Time, time.Time) {
	weekday := int(today.Weekday())
	if weekday == 0 {
		weekday = 7 // domingo
	}

	start := truncateToDay(today.AddDate(0, 0, 1-weekday))
	return start, start.AddDate(0, 0, 6)
}

// NextWeekRange devuelve el rango de la semana siguiente a partir del último
// día de la semana anterior: (fin + 1 día) hasta (fin + 7 días).
func NextWeekRange(lastEnd time.Time) (time.Time, time.Time) {
	start := truncateToDay(lastEnd.AddDate(0, 0, 1))
	return start, start.AddDate(0, 0, 6)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
