// Package catalog enumera los horarios de sorteo válidos por país. El
// calendario de Costa Rica es fijo; el de Nicaragua parte de una lista semilla
// y acepta sorteos agregados a mano por semana y vendedor.
package catalog

import "github.com/tiempos-pupi/tiempos-api/internal/domain"

var costaRicaSlots = []string{
	"10:00 a. m.",
	"11:00 a. m.",
	"1:00 p. m.",
	"3:00 p. m.",
	"4:30 p. m.",
	"6:00 p. m.",
	"7:00 p. m.",
	"9:00 p. m.",
}

var nicaraguaSlots = []string{
	"10:00 a. m.",
	"11:00 a. m.",
	"1:00 p. m.",
	"3:00 p. m.",
	"4:30 p. m.",
	"6:00 p. m. (Primera)",
	"6:00 p. m. (Nica)",
	"7:00 p. m.",
	"9:00 p. m.",
}

// ValidCountry indica si el país tiene calendario de sorteos.
func ValidCountry(country string) bool {
	return country == domain.CountryCostaRica || country == domain.CountryNicaragua
}

// AllowsManualSlots indica si el país acepta sorteos agregados a mano.
func AllowsManualSlots(country string) bool {
	return country == domain.CountryNicaragua
}

// TimeSlotsFor devuelve los sorteos del país en orden: primero la lista
// semilla y después los agregados a mano, en orden de inserción. No se
// eliminan duplicados: agregar dos veces la misma etiqueta produce dos filas.
func TimeSlotsFor(country string, extras []string) []string {
	var seed []string
	switch country {
	case domain.CountryCostaRica:
		seed = costaRicaSlots
	case domain.CountryNicaragua:
		seed = nicaraguaSlots
	default:
		return nil
	}

	slots := make([]string, 0, len(seed)+len(extras))
	slots = append(slots, seed...)
	if AllowsManualSlots(country) {
		slots = append(slots, extras...)
	}

	return slots
}
