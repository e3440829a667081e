package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
)

func TestTimeSlotsFor_CostaRica(t *testing.T) {
	slots := TimeSlotsFor(domain.CountryCostaRica, nil)

	assert.Len(t, slots, 8)
	assert.Equal(t, "10:00 a. m.", slots[0])
	assert.Equal(t, "9:00 p. m.", slots[7])
	assert.Contains(t, slots, "6:00 p. m.")
}

func TestTimeSlotsFor_Nicaragua(t *testing.T) {
	slots := TimeSlotsFor(domain.CountryNicaragua, nil)

	assert.Len(t, slots, 9)
	assert.Contains(t, slots, "6:00 p. m. (Primera)")
	assert.Contains(t, slots, "6:00 p. m. (Nica)")
	assert.NotContains(t, slots, "6:00 p. m.")
}

// Costa Rica tiene calendario fijo: los extras se ignoran.
func TestTimeSlotsFor_ExtrasSoloEnNicaragua(t *testing.T) {
	extras := []string{"Chica 10:30"}

	assert.Len(t, TimeSlotsFor(domain.CountryCostaRica, extras), 8)

	slots := TimeSlotsFor(domain.CountryNicaragua, extras)
	assert.Len(t, slots, 10)
	assert.Equal(t, "Chica 10:30", slots[9])
}

// Los extras conservan su orden de inserción y los duplicados se preservan.
func TestTimeSlotsFor_OrdenYDuplicados(t *testing.T) {
	extras := []string{"B", "A", "B"}

	slots := TimeSlotsFor(domain.CountryNicaragua, extras)
	assert.Equal(t, []string{"B", "A", "B"}, slots[9:])
}

func TestTimeSlotsFor_PaisDesconocido(t *testing.T) {
	assert.Nil(t, TimeSlotsFor("panama", nil))
}

func TestValidCountry(t *testing.T) {
	assert.True(t, ValidCountry(domain.CountryCostaRica))
	assert.True(t, ValidCountry(domain.CountryNicaragua))
	assert.False(t, ValidCountry("panama"))
}

func TestAllowsManualSlots(t *testing.T) {
	assert.False(t, AllowsManualSlots(domain.CountryCostaRica))
	assert.True(t, AllowsManualSlots(domain.CountryNicaragua))
}
