package recording

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiempos-pupi/tiempos-api/infrastructure/documentstore"
	"github.com/tiempos-pupi/tiempos-api/infrastructure/repository"
	"github.com/tiempos-pupi/tiempos-api/internal/config"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/accounting"
	"github.com/tiempos-pupi/tiempos-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func testConfig() *config.Config {
	return &config.Config{
		SellerSettings: map[string]config.Seller{
			domain.SellerGreivin: {
				Country:            domain.CountryCostaRica,
				ProfitPolicy:       accounting.PolicyCommission,
				MovementConvention: accounting.ConventionSubtract,
			},
			domain.SellerOscar: {
				Country:            domain.CountryNicaragua,
				ProfitPolicy:       accounting.PolicyMargin,
				MovementConvention: accounting.ConventionAdd,
			},
		},
	}
}

func newTestService(store documentstore.Store) *Service {
	return NewService(repository.NewWeekDataRepository(store), testConfig())
}

// drainOutcome espera el resultado de una escritura en segundo plano.
func drainOutcome(t *testing.T, service *Service) Outcome {
	t.Helper()
	select {
	case outcome := <-service.Outcomes():
		return outcome
	case <-time.After(2 * time.Second):
		t.Fatal("no llegó ningún resultado de escritura")
		return Outcome{}
	}
}

func TestService_Select_SinDatos(t *testing.T) {
	service := newTestService(documentstore.NewMemoryStore())

	state, err := service.Select(context.Background(), "w1", domain.SellerGreivin)
	require.NoError(t, err)

	assert.False(t, state.HasData)
	assert.Equal(t, domain.CountryCostaRica, state.Country)
	assert.Len(t, state.Slots, 8)
	assert.Empty(t, state.Data.Movements)
	assert.Equal(t, domain.Cell{}, state.Data.Grid.Cell("lunes", "10:00 a. m."))
}

func TestService_Select_VendedorDesconocido(t *testing.T) {
	service := newTestService(documentstore.NewMemoryStore())

	_, err := service.Select(context.Background(), "w1", "nadie")
	assert.ErrorIs(t, err, ErrUnknownSeller)
}

func TestService_SetCell_IdaYVuelta(t *testing.T) {
	store := documentstore.NewMemoryStore()
	service := newTestService(store)
	ctx := context.Background()

	require.NoError(t, service.SetCell(ctx, "w1", domain.SellerGreivin, "lunes", "10:00 a. m.", domain.FieldVenta, "150.5"))
	outcome := drainOutcome(t, service)
	assert.Equal(t, OpSaveGrid, outcome.Op)
	assert.NoError(t, outcome.Err)
	service.Close()

	// un servicio nuevo sobre el mismo almacén reconstruye el estado
	reloaded := newTestService(store)
	state, err := reloaded.Select(ctx, "w1", domain.SellerGreivin)
	require.NoError(t, err)

	assert.True(t, state.HasData)
	assert.Equal(t, 150.5, state.Data.Grid.Cell("lunes", "10:00 a. m.").Venta)
}

func TestService_SetCell_Validaciones(t *testing.T) {
	service := newTestService(documentstore.NewMemoryStore())
	ctx := context.Background()

	tests := []struct {
		name    string
		day     string
		slot    string
		field   string
		wantErr error
	}{
		{"día desconocido", "feriado", "10:00 a. m.", domain.FieldVenta, ErrUnknownDay},
		{"campo desconocido", "lunes", "10:00 a. m.", "propina", ErrUnknownField},
		{"sorteo fuera del calendario", "lunes", "25:00 p. m.", domain.FieldVenta, ErrUnknownTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.SetCell(ctx, "w1", domain.SellerGreivin, tt.day, tt.slot, tt.field, "10")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Una entrada vacía o no numérica no registra movimiento ni dispara
// escritura.
func TestService_AddMovement_EntradasInvalidas(t *testing.T) {
	service := newTestService(documentstore.NewMemoryStore())
	ctx := context.Background()

	for _, raw := range []string{"", "   ", "abc"} {
		movement, err := service.AddMovement(ctx, "w1", domain.SellerGreivin, raw)
		assert.NoError(t, err)
		assert.Nil(t, movement)
	}

	state, err := service.Select(ctx, "w1", domain.SellerGreivin)
	require.NoError(t, err)
	assert.Empty(t, state.Data.Movements)

	select {
	case outcome := <-service.Outcomes():
		t.Fatalf("no debía haber escrituras, llegó %+v", outcome)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestService_AddMovement_YEliminar(t *testing.T) {
	store := documentstore.NewMemoryStore()
	service := newTestService(store)
	ctx := context.Background()

	service.now = func() time.Time { return time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC) }

	movement, err := service.AddMovement(ctx, "w1", domain.SellerGreivin, "250")
	require.NoError(t, err)
	require.NotNil(t, movement)
	assert.Equal(t, 250.0, movement.Amount)

	outcome := drainOutcome(t, service)
	assert.Equal(t, OpSaveMovements, outcome.Op)
	assert.NoError(t, outcome.Err)

	require.NoError(t, service.RemoveMovement(ctx, "w1", domain.SellerGreivin, movement.ID))
	outcome = drainOutcome(t, service)
	assert.Equal(t, OpSaveMovements, outcome.Op)
	service.Close()

	reloaded := newTestService(store)
	state, err := reloaded.Select(ctx, "w1", domain.SellerGreivin)
	require.NoError(t, err)
	assert.Empty(t, state.Data.Movements)
}

// Eliminar un movimiento inexistente no cambia nada ni dispara escritura.
func TestService_RemoveMovement_IDInexistente(t *testing.T) {
	service := newTestService(documentstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, service.RemoveMovement(ctx, "w1", domain.SellerGreivin, 12345))

	select {
	case outcome := <-service.Outcomes():
		t.Fatalf("no debía haber escrituras, llegó %+v", outcome)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestService_AddExtraSlot(t *testing.T) {
	store := documentstore.NewMemoryStore()
	service := newTestService(store)
	ctx := context.Background()

	// Costa Rica tiene calendario fijo
	err := service.AddExtraSlot(ctx, "w1", domain.SellerGreivin, "Extra")
	assert.ErrorIs(t, err, ErrManualSlotsNotAllowed)

	err = service.AddExtraSlot(ctx, "w1", domain.SellerOscar, "   ")
	assert.ErrorIs(t, err, ErrBlankSlotLabel)

	require.NoError(t, service.AddExtraSlot(ctx, "w1", domain.SellerOscar, "Chica 10:30"))
	outcome := drainOutcome(t, service)
	assert.Equal(t, OpSaveExtraSlots, outcome.Op)
	service.Close()

	reloaded := newTestService(store)
	state, err := reloaded.Select(ctx, "w1", domain.SellerOscar)
	require.NoError(t, err)
	assert.Len(t, state.Slots, 10)
	assert.Equal(t, "Chica 10:30", state.Slots[9])

	// el sorteo manual ya acepta celdas
	require.NoError(t, reloaded.SetCell(ctx, "w1", domain.SellerOscar, "lunes", "Chica 10:30", domain.FieldVenta, "40"))
	reloaded.Close()
}

func TestService_Summary_PorVendedor(t *testing.T) {
	service := newTestService(documentstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, service.SetCell(ctx, "w1", domain.SellerGreivin, "lunes", "10:00 a. m.", domain.FieldVenta, "100"))
	require.NoError(t, service.SetCell(ctx, "w1", domain.SellerGreivin, "lunes", "10:00 a. m.", domain.FieldPremio, "20"))
	movement, err := service.AddMovement(ctx, "w1", domain.SellerGreivin, "3")
	require.NoError(t, err)
	require.NotNil(t, movement)

	summary, err := service.Summary(ctx, "w1", domain.SellerGreivin)
	require.NoError(t, err)

	// política de comisión: ganancia = comisión, movimientos se restan
	assert.Equal(t, 100.0, summary.TotalVentas)
	assert.Equal(t, 7.0, summary.TotalComision)
	assert.Equal(t, 7.0, summary.Ganancia)
	assert.Equal(t, 4.0, summary.GananciaFinal)

	service.Close()
}

// Tras olvidar la semana, una selección nueva vuelve a leer del almacén; si
// los documentos ya no existen, el estado es "sin datos".
func TestService_Forget(t *testing.T) {
	store := documentstore.NewMemoryStore()
	service := newTestService(store)
	ctx := context.Background()

	require.NoError(t, service.SetCell(ctx, "w1", domain.SellerGreivin, "lunes", "10:00 a. m.", domain.FieldVenta, "100"))
	drainOutcome(t, service)

	weekDataRepo := repository.NewWeekDataRepository(store)
	require.NoError(t, weekDataRepo.DeleteAll(ctx, "w1"))

	service.Forget("w1")

	state, err := service.Select(ctx, "w1", domain.SellerGreivin)
	require.NoError(t, err)
	assert.False(t, state.HasData)
	assert.Equal(t, domain.Cell{}, state.Data.Grid.Cell("lunes", "10:00 a. m."))

	service.Close()
}

// La vista que devuelve Select es una copia: mutarla no toca la sesión.
func TestService_Select_DevuelveCopia(t *testing.T) {
	service := newTestService(documentstore.NewMemoryStore())
	ctx := context.Background()

	state, err := service.Select(ctx, "w1", domain.SellerGreivin)
	require.NoError(t, err)
	state.Data.Grid.SetCell("lunes", "10:00 a. m.", domain.FieldVenta, "999")

	fresh, err := service.Select(ctx, "w1", domain.SellerGreivin)
	require.NoError(t, err)
	assert.Equal(t, 0.0, fresh.Data.Grid.Cell("lunes", "10:00 a. m.").Venta)
}
