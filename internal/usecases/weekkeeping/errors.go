package weekkeeping

import "errors"

// Errores del registro de semanas
var (
	ErrBlankWeekName = errors.New("el nombre de la semana no puede estar en blanco")
	ErrWeekNotFound  = errors.New("semana no encontrada")
)
