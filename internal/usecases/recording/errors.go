package recording

import "errors"

// Errores de registro de ventas
var (
	ErrUnknownSeller         = errors.New("vendedor desconocido")
	ErrUnknownDay            = errors.New("día fuera del rango lunes-domingo")
	ErrUnknownField          = errors.New("campo de celda desconocido")
	ErrUnknownTimeSlot       = errors.New("sorteo fuera del horario de la semana")
	ErrManualSlotsNotAllowed = errors.New("el país no acepta sorteos agregados a mano")
	ErrBlankSlotLabel        = errors.New("la etiqueta del sorteo no puede estar en blanco")
)
