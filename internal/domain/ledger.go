package domain

import (
	"strconv"
	"strings"
	"time"
)

// Formato legible de la fecha de un movimiento, en hora local.
const movementDateLayout = "2/1/2006, 15:04:05"

// Movement es un gasto o retiro registrado contra la ganancia de la semana.
type Movement struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// Ledger es el historial de movimientos, del más reciente al más antiguo.
type Ledger []Movement

// Add registra un movimiento nuevo al frente del historial. Una entrada vacía
// o no numérica no modifica nada y devuelve nil. El ID se deriva del reloj en
// milisegundos; si coincide con el del movimiento más reciente se incrementa
// para mantenerlo único.
func (l Ledger) Add(raw string, now time.Time) (Ledger, *Movement) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return l, nil
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return l, nil
	}

	id := now.UnixMilli()
	if len(l) > 0 && id <= l[0].ID {
		id = l[0].ID + 1
	}

	movement := Movement{
		ID:     id,
		Amount: amount,
		Date:   now.Format(movementDateLayout),
	}

	updated := make(Ledger, 0, len(l)+1)
	updated = append(updated, movement)
	updated = append(updated, l...)

	return updated, &movement
}

// Remove elimina el primer movimiento con el ID indicado. Si no existe, el
// historial queda igual.
func (l Ledger) Remove(id int64) Ledger {
	updated := make(Ledger, 0, len(l))
	removed := false
	for _, movement := range l {
		if !removed && movement.ID == id {
			removed = true
			continue
		}
		updated = append(updated, movement)
	}
	return updated
}

// Total suma los montos de todos los movimientos. El orden no importa.
func (l Ledger) Total() float64 {
	total := 0.0
	for _, movement := range l {
		total += movement.Amount
	}
	return total
}
