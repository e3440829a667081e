package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiempos-pupi/tiempos-api/infrastructure/documentstore"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
)

func TestWeekRepository_ListaOrdenada(t *testing.T) {
	store := documentstore.NewMemoryStore()
	repo := NewWeekRepository(store)
	ctx := context.Background()

	id1, err := repo.Create(ctx, domain.Week{Name: "Semana vieja", CreatedAt: 100})
	require.NoError(t, err)
	id2, err := repo.Create(ctx, domain.Week{Name: "Semana nueva", CreatedAt: 300})
	require.NoError(t, err)
	id3, err := repo.Create(ctx, domain.Week{Name: "Semana del medio", CreatedAt: 200})
	require.NoError(t, err)

	weeks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, weeks, 3)

	// de la más reciente a la más antigua
	assert.Equal(t, id2, weeks[0].ID)
	assert.Equal(t, id3, weeks[1].ID)
	assert.Equal(t, id1, weeks[2].ID)
}

func TestWeekRepository_CreateGetRenameDelete(t *testing.T) {
	store := documentstore.NewMemoryStore()
	repo := NewWeekRepository(store)
	ctx := context.Background()

	id, err := repo.Create(ctx, domain.Week{
		Name:      "5 feb - 11 feb",
		StartDate: "2024-02-05",
		EndDate:   "2024-02-11",
		CreatedAt: 100,
	})
	require.NoError(t, err)

	week, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, week)
	assert.Equal(t, "5 feb - 11 feb", week.Name)
	assert.Equal(t, "2024-02-05", week.StartDate)
	assert.Equal(t, "2024-02-11", week.EndDate)

	require.NoError(t, repo.Rename(ctx, id, "Otro nombre"))
	week, err = repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Otro nombre", week.Name)
	// el rango de fechas sobrevive al renombre
	assert.Equal(t, "2024-02-05", week.StartDate)

	require.NoError(t, repo.Delete(ctx, id))
	week, err = repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, week)
}

func TestWeekDataRepository_IdaYVuelta(t *testing.T) {
	store := documentstore.NewMemoryStore()
	repo := NewWeekDataRepository(store)
	ctx := context.Background()

	data := domain.NewWeekData(domain.CountryNicaragua)
	data.Grid.SetCell("lunes", "10:00 a. m.", domain.FieldVenta, "150.5")
	data.Grid.SetCell("lunes", "10:00 a. m.", domain.FieldPremio, "20")
	data.Grid.SetCell("domingo", "9:00 p. m.", domain.FieldVenta, "-5")
	data.Movements = domain.Ledger{
		{ID: 2, Amount: 30, Date: "6/2/2024, 09:00:00"},
		{ID: 1, Amount: -10, Date: "5/2/2024, 10:00:00"},
	}
	data.ExtraSlots = []string{"Chica 10:30"}

	require.NoError(t, repo.Save(ctx, "w1", domain.SellerOscar, data))

	loaded, err := repo.Get(ctx, "w1", domain.SellerOscar)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, domain.CountryNicaragua, loaded.Country)
	assert.Equal(t, domain.Cell{Venta: 150.5, Premio: 20}, loaded.Grid.Cell("lunes", "10:00 a. m."))
	assert.Equal(t, -5.0, loaded.Grid.Cell("domingo", "9:00 p. m.").Venta)
	assert.Equal(t, data.Movements, loaded.Movements)
	assert.Equal(t, []string{"Chica 10:30"}, loaded.ExtraSlots)
}

// El parche de movimientos no toca la cuadrícula ya guardada.
func TestWeekDataRepository_SaveMovements_NoPisaLaCuadricula(t *testing.T) {
	store := documentstore.NewMemoryStore()
	repo := NewWeekDataRepository(store)
	ctx := context.Background()

	data := domain.NewWeekData(domain.CountryCostaRica)
	data.Grid.SetCell("lunes", "10:00 a. m.", domain.FieldVenta, "100")
	require.NoError(t, repo.Save(ctx, "w1", domain.SellerGreivin, data))

	movements := domain.Ledger{{ID: 1, Amount: 50, Date: "5/2/2024, 10:00:00"}}
	require.NoError(t, repo.SaveMovements(ctx, "w1", domain.SellerGreivin, movements))

	loaded, err := repo.Get(ctx, "w1", domain.SellerGreivin)
	require.NoError(t, err)
	assert.Equal(t, 100.0, loaded.Grid.Cell("lunes", "10:00 a. m.").Venta)
	assert.Equal(t, movements, loaded.Movements)
}

func TestWeekDataRepository_Get_SinDocumento(t *testing.T) {
	repo := NewWeekDataRepository(documentstore.NewMemoryStore())

	loaded, err := repo.Get(context.Background(), "w1", domain.SellerGreivin)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

// Los vendedores son independientes: cada uno tiene su propio documento en
// la semana.
func TestWeekDataRepository_VendedoresIndependientes(t *testing.T) {
	store := documentstore.NewMemoryStore()
	repo := NewWeekDataRepository(store)
	ctx := context.Background()

	greivin := domain.NewWeekData(domain.CountryCostaRica)
	greivin.Grid.SetCell("lunes", "10:00 a. m.", domain.FieldVenta, "100")
	require.NoError(t, repo.Save(ctx, "w1", domain.SellerGreivin, greivin))

	oscar := domain.NewWeekData(domain.CountryNicaragua)
	oscar.Grid.SetCell("lunes", "10:00 a. m.", domain.FieldVenta, "999")
	require.NoError(t, repo.Save(ctx, "w1", domain.SellerOscar, oscar))

	loaded, err := repo.Get(ctx, "w1", domain.SellerGreivin)
	require.NoError(t, err)
	assert.Equal(t, 100.0, loaded.Grid.Cell("lunes", "10:00 a. m.").Venta)
}

func TestWeekDataRepository_DeleteAll(t *testing.T) {
	store := documentstore.NewMemoryStore()
	repo := NewWeekDataRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "w1", domain.SellerGreivin, domain.NewWeekData(domain.CountryCostaRica)))
	require.NoError(t, repo.Save(ctx, "w1", domain.SellerOscar, domain.NewWeekData(domain.CountryNicaragua)))

	require.NoError(t, repo.DeleteAll(ctx, "w1"))

	for _, seller := range domain.Sellers {
		loaded, err := repo.Get(ctx, "w1", seller)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	}
}

func TestUserRepository_IdaYVuelta(t *testing.T) {
	store := documentstore.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := &domain.User{
		Name:         "Greivin",
		Lastname:     "Mora",
		Email:        "greivin@tiempos.cr",
		PasswordHash: "$2a$10$hash",
		Active:       true,
		RoleID:       domain.RoleVendedor,
	}

	created, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byEmail, err := repo.GetUserByEmail(ctx, "GREIVIN@tiempos.cr")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "$2a$10$hash", byEmail.PasswordHash)

	byID, err := repo.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Greivin", byID.Name)
	assert.True(t, byID.Active)

	byID.Active = false
	require.NoError(t, repo.UpdateUser(ctx, byID))

	updated, err := repo.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestUserRepository_EmailInexistente(t *testing.T) {
	repo := NewUserRepository(documentstore.NewMemoryStore())

	user, err := repo.GetUserByEmail(context.Background(), "nadie@tiempos.cr")
	require.NoError(t, err)
	assert.Nil(t, user)
}
