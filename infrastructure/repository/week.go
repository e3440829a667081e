package repository

import (
	"context"
	"sort"

	"github.com/tiempos-pupi/tiempos-api/infrastructure/documentstore"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
)

const weeksCollection = "weeks"

//go:generate mockgen -source=week.go -destination=mocks/week.go -package=mocks
type WeekRepository interface {
	List(ctx context.Context) ([]domain.Week, error)
	Get(ctx context.Context, weekID string) (*domain.Week, error)
	Create(ctx context.Context, week domain.Week) (string, error)
	Rename(ctx context.Context, weekID, name string) error
	Delete(ctx context.Context, weekID string) error
}

type weekRepository struct {
	store documentstore.Store
}

func NewWeekRepository(store documentstore.Store) WeekRepository {
	return &weekRepository{
		store: store,
	}
}

// List devuelve las semanas ordenadas de la más reciente a la más antigua.
func (r *weekRepository) List(ctx context.Context) ([]domain.Week, error) {
	entries, err := r.store.ListDocuments(ctx, weeksCollection)
	if err != nil {
		return nil, err
	}

	weeks := make([]domain.Week, 0, len(entries))
	for _, entry := range entries {
		var week domain.Week
		if err := decodeDocument(entry.Data, &week); err != nil {
			return nil, err
		}
		week.ID = entry.ID
		weeks = append(weeks, week)
	}

	sort.SliceStable(weeks, func(i, j int) bool {
		return weeks[i].CreatedAt > weeks[j].CreatedAt
	})

	return weeks, nil
}

func (r *weekRepository) Get(ctx context.Context, weekID string) (*domain.Week, error) {
	doc, err := r.store.GetDocument(ctx, weeksCollection, weekID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	var week domain.Week
	if err := decodeDocument(doc, &week); err != nil {
		return nil, err
	}
	week.ID = weekID

	return &week, nil
}

func (r *weekRepository) Create(ctx context.Context, week domain.Week) (string, error) {
	doc := documentstore.Document{
		"name":       week.Name,
		"created_at": week.CreatedAt,
	}
	if week.StartDate != "" {
		doc["start_date"] = week.StartDate
		doc["end_date"] = week.EndDate
	}

	return r.store.AddDocument(ctx, weeksCollection, doc)
}

func (r *weekRepository) Rename(ctx context.Context, weekID, name string) error {
	patch := documentstore.Document{"name": name}
	return r.store.SetDocument(ctx, weeksCollection, weekID, patch, true)
}

func (r *weekRepository) Delete(ctx context.Context, weekID string) error {
	return r.store.DeleteDocument(ctx, weeksCollection, weekID)
}
