// Package recording es la sesión de captura de ventas: mantiene en memoria
// el estado de la pareja (semana, vendedor) activa, aplica las mutaciones de
// inmediato y persiste en segundo plano. Cada escritura emite su resultado en
// un canal que quien presenta los datos puede observar o ignorar.
package recording

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tiempos-pupi/tiempos-api/infrastructure/repository"
	"github.com/tiempos-pupi/tiempos-api/internal/catalog"
	"github.com/tiempos-pupi/tiempos-api/internal/config"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/accounting"
	"github.com/tiempos-pupi/tiempos-api/pkg/log"
)

// Operaciones de persistencia reportadas en el canal de resultados
const (
	OpSaveGrid       = "save_grid"
	OpSaveMovements  = "save_movements"
	OpSaveExtraSlots = "save_extra_slots"
)

const (
	persistTimeout = 10 * time.Second
	outcomesBuffer = 64
)

// Outcome es el resultado de una escritura en segundo plano.
type Outcome struct {
	Op     string
	WeekID string
	Seller string
	Err    error
}

// State es la vista de la sesión activa: el calendario de sorteos vigente y
// una copia del estado del vendedor en la semana.
type State struct {
	WeekID  string
	Seller  string
	Country string
	Slots   []string
	Data    *domain.WeekData
	HasData bool
}

type Recorder interface {
	Select(ctx context.Context, weekID, seller string) (*State, error)
	SetCell(ctx context.Context, weekID, seller, day, slot, field, raw string) error
	AddMovement(ctx context.Context, weekID, seller, raw string) (*domain.Movement, error)
	RemoveMovement(ctx context.Context, weekID, seller string, movementID int64) error
	AddExtraSlot(ctx context.Context, weekID, seller, label string) error
	Summary(ctx context.Context, weekID, seller string) (*domain.WeekSummary, error)
	Outcomes() <-chan Outcome
	Forget(weekID string)
	Close()
}

type session struct {
	data    *domain.WeekData
	hasData bool
}

type Service struct {
	weekDataRepo repository.WeekDataRepository
	cfg          *config.Config

	mu       sync.Mutex
	sessions map[string]*session

	outcomes  chan Outcome
	wg        sync.WaitGroup
	closeOnce sync.Once

	// reloj inyectable para las pruebas
	now func() time.Time
}

func NewService(weekDataRepo repository.WeekDataRepository, cfg *config.Config) *Service {
	return &Service{
		weekDataRepo: weekDataRepo,
		cfg:          cfg,
		sessions:     make(map[string]*session),
		outcomes:     make(chan Outcome, outcomesBuffer),
		now:          time.Now,
	}
}

func sessionKey(weekID, seller string) string {
	return fmt.Sprintf("%s/%s", weekID, seller)
}

// loadSession trae la sesión al caché si hace falta. Se llama con el candado
// tomado.
func (s *Service) loadSession(ctx context.Context, weekID, seller string, settings config.Seller) (*session, error) {
	key := sessionKey(weekID, seller)
	if sess, ok := s.sessions[key]; ok {
		return sess, nil
	}

	data, err := s.weekDataRepo.Get(ctx, weekID, seller)
	if err != nil {
		return nil, err
	}

	sess := &session{hasData: data != nil}
	if data == nil {
		// estado "sin datos": la semana existe pero el vendedor no ha
		// registrado nada todavía
		sess.data = domain.NewWeekData(settings.Country)
	} else {
		if data.Country == "" {
			data.Country = settings.Country
		}
		sess.data = data
	}

	s.sessions[key] = sess
	return sess, nil
}

func (s *Service) sellerSettings(seller string) (config.Seller, error) {
	settings, ok := s.cfg.SellerFor(seller)
	if !ok {
		return config.Seller{}, ErrUnknownSeller
	}
	return settings, nil
}

// Select carga la pareja (semana, vendedor) y devuelve una copia de su
// estado. Una semana sin datos del vendedor devuelve el estado vacío.
func (s *Service) Select(ctx context.Context, weekID, seller string) (*State, error) {
	settings, err := s.sellerSettings(seller)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.loadSession(ctx, weekID, seller, settings)
	if err != nil {
		return nil, err
	}

	return &State{
		WeekID:  weekID,
		Seller:  seller,
		Country: sess.data.Country,
		Slots:   catalog.TimeSlotsFor(sess.data.Country, sess.data.ExtraSlots),
		Data:    sess.data.Clone(),
		HasData: sess.hasData,
	}, nil
}

// SetCell actualiza una celda de la cuadrícula. El cambio es visible de
// inmediato en la sesión; la escritura a disco corre en segundo plano.
func (s *Service) SetCell(ctx context.Context, weekID, seller, day, slot, field, raw string) error {
	settings, err := s.sellerSettings(seller)
	if err != nil {
		return err
	}
	if !domain.ValidDay(day) {
		return ErrUnknownDay
	}
	if !domain.ValidCellField(field) {
		return ErrUnknownField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.loadSession(ctx, weekID, seller, settings)
	if err != nil {
		return err
	}

	if !slotInSchedule(sess.data, slot) {
		return ErrUnknownTimeSlot
	}

	sess.data.Grid.SetCell(day, slot, field, raw)
	sess.hasData = true

	snapshot := sess.data.Clone()
	s.persist(OpSaveGrid, weekID, seller, func(ctx context.Context) error {
		return s.weekDataRepo.Save(ctx, weekID, seller, snapshot)
	})

	return nil
}

// AddMovement registra un movimiento. Una entrada vacía o no numérica no
// modifica nada y no dispara escritura.
func (s *Service) AddMovement(ctx context.Context, weekID, seller, raw string) (*domain.Movement, error) {
	settings, err := s.sellerSettings(seller)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.loadSession(ctx, weekID, seller, settings)
	if err != nil {
		return nil, err
	}

	updated, movement := sess.data.Movements.Add(raw, s.now())
	if movement == nil {
		return nil, nil
	}

	sess.data.Movements = updated
	sess.hasData = true

	snapshot := append(domain.Ledger{}, updated...)
	s.persist(OpSaveMovements, weekID, seller, func(ctx context.Context) error {
		return s.weekDataRepo.SaveMovements(ctx, weekID, seller, snapshot)
	})

	return movement, nil
}

// RemoveMovement elimina un movimiento del historial. Un ID inexistente deja
// el historial igual y no dispara escritura.
func (s *Service) RemoveMovement(ctx context.Context, weekID, seller string, movementID int64) error {
	settings, err := s.sellerSettings(seller)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.loadSession(ctx, weekID, seller, settings)
	if err != nil {
		return err
	}

	updated := sess.data.Movements.Remove(movementID)
	if len(updated) == len(sess.data.Movements) {
		return nil
	}

	sess.data.Movements = updated

	snapshot := append(domain.Ledger{}, updated...)
	s.persist(OpSaveMovements, weekID, seller, func(ctx context.Context) error {
		return s.weekDataRepo.SaveMovements(ctx, weekID, seller, snapshot)
	})

	return nil
}

// AddExtraSlot agrega un sorteo manual al calendario de la semana. Solo los
// países con calendario abierto lo permiten.
func (s *Service) AddExtraSlot(ctx context.Context, weekID, seller, label string) error {
	settings, err := s.sellerSettings(seller)
	if err != nil {
		return err
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return ErrBlankSlotLabel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.loadSession(ctx, weekID, seller, settings)
	if err != nil {
		return err
	}

	if !catalog.AllowsManualSlots(sess.data.Country) {
		return ErrManualSlotsNotAllowed
	}

	sess.data.ExtraSlots = append(sess.data.ExtraSlots, label)
	sess.hasData = true

	snapshot := append([]string{}, sess.data.ExtraSlots...)
	s.persist(OpSaveExtraSlots, weekID, seller, func(ctx context.Context) error {
		return s.weekDataRepo.SaveExtraSlots(ctx, weekID, seller, snapshot)
	})

	return nil
}

// Summary recalcula el resumen de la semana del vendedor con su política
// configurada.
func (s *Service) Summary(ctx context.Context, weekID, seller string) (*domain.WeekSummary, error) {
	settings, err := s.sellerSettings(seller)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.loadSession(ctx, weekID, seller, settings)
	if err != nil {
		return nil, err
	}

	slots := catalog.TimeSlotsFor(sess.data.Country, sess.data.ExtraSlots)
	summary := accounting.BuildSummary(sess.data, slots, settings.ProfitPolicy, settings.MovementConvention)

	return &summary, nil
}

// Outcomes expone el canal con los resultados de las escrituras en segundo
// plano. Observarlo es opcional; si nadie lo lee, los resultados más nuevos
// se descartan.
func (s *Service) Outcomes() <-chan Outcome {
	return s.outcomes
}

// Forget descarta las sesiones en caché de la semana. Se llama tras borrar
// la semana, para que una selección posterior vuelva al estado "sin datos".
func (s *Service) Forget(weekID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seller := range domain.Sellers {
		delete(s.sessions, sessionKey(weekID, seller))
	}
}

// Close espera las escrituras pendientes y cierra el canal de resultados.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		s.wg.Wait()
		close(s.outcomes)
	})
}

func slotInSchedule(data *domain.WeekData, slot string) bool {
	for _, known := range catalog.TimeSlotsFor(data.Country, data.ExtraSlots) {
		if known == slot {
			return true
		}
	}
	return false
}

func (s *Service) persist(op, weekID, seller string, write func(ctx context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		err := write(ctx)
		if err != nil {
			log.L.WithFields(log.Fields{
				"op":      op,
				"week_id": weekID,
				"seller":  seller,
			}).WithError(err).Error("fallo la escritura en segundo plano")
		}

		select {
		case s.outcomes <- Outcome{Op: op, WeekID: weekID, Seller: seller, Err: err}:
		default:
			// canal lleno: nadie observa los resultados, se descarta
		}
	}()
}
