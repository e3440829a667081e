package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tiempos-pupi/tiempos-api/infrastructure/documentstore"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
)

//go:generate mockgen -source=weekdata.go -destination=mocks/weekdata.go -package=mocks
type WeekDataRepository interface {
	Get(ctx context.Context, weekID, seller string) (*domain.WeekData, error)
	Save(ctx context.Context, weekID, seller string, data *domain.WeekData) error
	SaveMovements(ctx context.Context, weekID, seller string, movements domain.Ledger) error
	SaveExtraSlots(ctx context.Context, weekID, seller string, extras []string) error
	DeleteAll(ctx context.Context, weekID string) error
}

type weekDataRepository struct {
	store documentstore.Store
}

func NewWeekDataRepository(store documentstore.Store) WeekDataRepository {
	return &weekDataRepository{
		store: store,
	}
}

// weekDataCollection es la colección anidada con un documento por vendedor.
func weekDataCollection(weekID string) string {
	return fmt.Sprintf("weeks/%s/data", weekID)
}

// Get reconstruye el estado del vendedor en la semana. Los días de la
// cuadrícula viven en la raíz del documento, igual que los guarda Save, así
// que el patch de un día nunca pisa a los demás.
func (r *weekDataRepository) Get(ctx context.Context, weekID, seller string) (*domain.WeekData, error) {
	doc, err := r.store.GetDocument(ctx, weekDataCollection(weekID), seller)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	data := &domain.WeekData{Grid: domain.NewSalesGrid()}

	if country, ok := doc["country"].(string); ok {
		data.Country = country
	}

	for _, day := range domain.Days {
		raw, ok := doc[day]
		if !ok {
			continue
		}
		slots := make(map[string]domain.Cell)
		if err := decodeDocument(raw, &slots); err != nil {
			return nil, err
		}
		data.Grid[day] = slots
	}

	if raw, ok := doc["movements"]; ok {
		if err := decodeDocument(raw, &data.Movements); err != nil {
			return nil, err
		}
	}
	if data.Movements == nil {
		data.Movements = domain.Ledger{}
	}

	if raw, ok := doc["extra_slots"]; ok {
		if err := decodeDocument(raw, &data.ExtraSlots); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// Save escribe el documento completo del vendedor con merge, conservando las
// claves que este estado no toca.
func (r *weekDataRepository) Save(ctx context.Context, weekID, seller string, data *domain.WeekData) error {
	doc := documentstore.Document{
		"country":   data.Country,
		"movements": data.Movements,
	}
	if len(data.ExtraSlots) > 0 {
		doc["extra_slots"] = data.ExtraSlots
	}
	for day, slots := range data.Grid {
		doc[day] = slots
	}

	return r.store.SetDocument(ctx, weekDataCollection(weekID), seller, doc, true)
}

// SaveMovements parchea solo el historial de movimientos, sin tocar la
// cuadrícula.
func (r *weekDataRepository) SaveMovements(ctx context.Context, weekID, seller string, movements domain.Ledger) error {
	patch := documentstore.Document{"movements": movements}
	return r.store.SetDocument(ctx, weekDataCollection(weekID), seller, patch, true)
}

// SaveExtraSlots parchea la lista de sorteos agregados a mano.
func (r *weekDataRepository) SaveExtraSlots(ctx context.Context, weekID, seller string, extras []string) error {
	patch := documentstore.Document{"extra_slots": extras}
	return r.store.SetDocument(ctx, weekDataCollection(weekID), seller, patch, true)
}

// DeleteAll elimina los documentos de todos los vendedores de la semana. Se
// usa al borrar la semana, para no dejar datos huérfanos.
func (r *weekDataRepository) DeleteAll(ctx context.Context, weekID string) error {
	for _, seller := range domain.Sellers {
		if err := r.store.DeleteDocument(ctx, weekDataCollection(weekID), seller); err != nil {
			return err
		}
	}
	return nil
}

// decodeDocument convierte un valor del almacén de documentos al tipo de
// dominio vía JSON, que es el mismo camino por el que entró.
func decodeDocument(value any, target any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error al decodificar el documento: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("error al decodificar el documento: %w", err)
	}
	return nil
}
