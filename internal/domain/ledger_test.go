package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testClock = time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)

func TestLedger_Add(t *testing.T) {
	ledger := Ledger{}

	updated, movement := ledger.Add("250.5", testClock)
	assert.NotNil(t, movement)
	assert.Equal(t, 250.5, movement.Amount)
	assert.Equal(t, testClock.UnixMilli(), movement.ID)
	assert.Equal(t, "5/2/2024, 10:00:00", movement.Date)
	assert.Len(t, updated, 1)
}

// El movimiento nuevo queda al frente del historial.
func TestLedger_Add_AlFrente(t *testing.T) {
	ledger := Ledger{}

	ledger, _ = ledger.Add("10", testClock)
	ledger, _ = ledger.Add("20", testClock.Add(time.Minute))

	assert.Equal(t, 20.0, ledger[0].Amount)
	assert.Equal(t, 10.0, ledger[1].Amount)
}

// Dos movimientos en el mismo milisegundo reciben IDs distintos.
func TestLedger_Add_IDsUnicos(t *testing.T) {
	ledger := Ledger{}

	ledger, first := ledger.Add("10", testClock)
	ledger, second := ledger.Add("20", testClock)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.ID+1, second.ID)
	assert.Len(t, ledger, 2)
}

func TestLedger_Add_EntradasInvalidas(t *testing.T) {
	ledger := Ledger{{ID: 1, Amount: 5, Date: "1/1/2024, 08:00:00"}}

	for _, raw := range []string{"", "   ", "abc", "12a"} {
		updated, movement := ledger.Add(raw, testClock)
		assert.Nil(t, movement)
		assert.Len(t, updated, 1)
	}
}

// Los negativos se aceptan: un movimiento puede corregir a otro.
func TestLedger_Add_Negativo(t *testing.T) {
	ledger := Ledger{}

	ledger, movement := ledger.Add("-30", testClock)
	assert.NotNil(t, movement)
	assert.Equal(t, -30.0, movement.Amount)
	assert.Equal(t, -30.0, ledger.Total())
}

func TestLedger_Remove(t *testing.T) {
	ledger := Ledger{
		{ID: 3, Amount: 30},
		{ID: 2, Amount: 20},
		{ID: 1, Amount: 10},
	}

	updated := ledger.Remove(2)
	assert.Len(t, updated, 2)
	assert.Equal(t, int64(3), updated[0].ID)
	assert.Equal(t, int64(1), updated[1].ID)

	// un ID inexistente deja el historial igual
	assert.Len(t, ledger.Remove(99), 3)
}

// El total no depende del orden del historial.
func TestLedger_Total(t *testing.T) {
	ledger := Ledger{
		{ID: 1, Amount: 10},
		{ID: 2, Amount: -2.5},
		{ID: 3, Amount: 40},
	}

	reversed := Ledger{ledger[2], ledger[1], ledger[0]}

	assert.Equal(t, 47.5, ledger.Total())
	assert.Equal(t, ledger.Total(), reversed.Total())
	assert.Equal(t, 0.0, Ledger{}.Total())
}
