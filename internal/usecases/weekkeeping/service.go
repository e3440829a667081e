// Package weekkeeping administra el registro de semanas: el catálogo de
// agrupadores sobre el que se cuelgan las tablas de ventas de cada vendedor.
package weekkeeping

import (
	"context"
	"strings"
	"time"

	"github.com/tiempos-pupi/tiempos-api/infrastructure/repository"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
	"github.com/tiempos-pupi/tiempos-api/pkg/log"
	"github.com/tiempos-pupi/tiempos-api/pkg/utils"
)

const dateLayout = "2006-01-02"

type WeekKeeper interface {
	List(ctx context.Context) ([]domain.Week, error)
	Get(ctx context.Context, weekID string) (*domain.Week, error)
	Create(ctx context.Context, name string) (*domain.Week, error)
	CreateNext(ctx context.Context) (*domain.Week, error)
	Rename(ctx context.Context, weekID, name string) error
	Delete(ctx context.Context, weekID string) error
}

type Service struct {
	weekRepo     repository.WeekRepository
	weekDataRepo repository.WeekDataRepository

	// reloj inyectable para las pruebas
	now func() time.Time
}

func NewService(weekRepo repository.WeekRepository, weekDataRepo repository.WeekDataRepository) *Service {
	return &Service{
		weekRepo:     weekRepo,
		weekDataRepo: weekDataRepo,
		now:          time.Now,
	}
}

// List devuelve las semanas de la más reciente a la más antigua.
func (s *Service) List(ctx context.Context) ([]domain.Week, error) {
	return s.weekRepo.List(ctx)
}

func (s *Service) Get(ctx context.Context, weekID string) (*domain.Week, error) {
	week, err := s.weekRepo.Get(ctx, weekID)
	if err != nil {
		return nil, err
	}
	if week == nil {
		return nil, ErrWeekNotFound
	}
	return week, nil
}

// Create registra una semana nueva con el nombre dado. El nombre no tiene
// que ser único; dos semanas con el mismo nombre siguen siendo distintas por
// su ID.
func (s *Service) Create(ctx context.Context, name string) (*domain.Week, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankWeekName
	}

	week := domain.Week{
		Name:      name,
		CreatedAt: s.now().UnixMilli(),
	}

	id, err := s.weekRepo.Create(ctx, week)
	if err != nil {
		return nil, err
	}
	week.ID = id

	return &week, nil
}

// CreateNext crea la semana siguiente con nombre y rango calculados. Si la
// semana más reciente tiene rango, la nueva arranca el día después de su fin;
// si no, se usa la semana calendario actual (lunes a domingo).
func (s *Service) CreateNext(ctx context.Context) (*domain.Week, error) {
	weeks, err := s.weekRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var start, end time.Time
	if last := latestWithRange(weeks); last != nil {
		lastEnd, err := time.Parse(dateLayout, last.EndDate)
		if err != nil {
			return nil, err
		}
		start, end = utils.NextWeekRange(lastEnd)
	} else {
		start, end = utils.CurrentWeekRange(s.now())
	}

	week := domain.Week{
		Name:      utils.FormatWeekRange(start, end),
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		CreatedAt: s.now().UnixMilli(),
	}

	id, err := s.weekRepo.Create(ctx, week)
	if err != nil {
		return nil, err
	}
	week.ID = id

	log.ForContext(ctx).WithFields(log.Fields{
		"week_id": week.ID,
		"name":    week.Name,
	}).Info("semana siguiente creada")

	return &week, nil
}

func latestWithRange(weeks []domain.Week) *domain.Week {
	for i := range weeks {
		if weeks[i].EndDate != "" {
			return &weeks[i]
		}
	}
	return nil
}

// Rename cambia el nombre de la semana. Un nombre en blanco se rechaza; una
// semana inexistente deja el registro igual, sin error.
func (s *Service) Rename(ctx context.Context, weekID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankWeekName
	}

	week, err := s.weekRepo.Get(ctx, weekID)
	if err != nil {
		return err
	}
	if week == nil {
		return nil
	}

	return s.weekRepo.Rename(ctx, weekID, name)
}

// Delete elimina la semana y, en cascada, los documentos de datos de todos
// sus vendedores.
func (s *Service) Delete(ctx context.Context, weekID string) error {
	if err := s.weekDataRepo.DeleteAll(ctx, weekID); err != nil {
		return err
	}

	if err := s.weekRepo.Delete(ctx, weekID); err != nil {
		return err
	}

	log.ForContext(ctx).WithField("week_id", weekID).Info("semana eliminada")
	return nil
}
