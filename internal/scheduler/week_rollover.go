// Package scheduler agrupa los trabajos agendados de la aplicación.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/tiempos-pupi/tiempos-api/internal/config"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/weekkeeping"
	"github.com/tiempos-pupi/tiempos-api/pkg/log"
)

// WeekRolloverService crea la semana siguiente de forma automática según el
// cron configurado, para que los vendedores arranquen el lunes con su tabla
// lista.
type WeekRolloverService struct {
	scheduler   *gocron.Scheduler
	config      config.Rollover
	weekService weekkeeping.WeekKeeper

	runMutex       sync.Mutex
	running        bool
	lastStartedAt  time.Time
	lastFinishedAt time.Time
}

func NewWeekRolloverService(weekService weekkeeping.WeekKeeper, appConfig *config.Config) *WeekRolloverService {
	scheduler := gocron.NewScheduler(time.Local)

	log.L.WithFields(log.Fields{
		"cron_schedule": appConfig.Rollover.CronSchedule,
		"enabled":       appConfig.Rollover.Enabled,
	}).Info("Configuración del agendador de semanas cargada")

	return &WeekRolloverService{
		scheduler:   scheduler,
		config:      appConfig.Rollover,
		weekService: weekService,
	}
}

// Start agenda el trabajo y arranca el agendador. Si el trabajo está
// deshabilitado por configuración, no hace nada.
func (s *WeekRolloverService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Creación automática de semanas deshabilitada por configuración")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de semanas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.rollover(ctx)
	})
	if err != nil {
		return fmt.Errorf("error al agendar la creación de semanas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de semanas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara la creación de la semana siguiente fuera del horario
// agendado.
func (s *WeekRolloverService) RunNow(ctx context.Context) {
	s.rollover(ctx)
}

// Status reporta si hay una corrida en curso y las marcas de tiempo de la
// última.
func (s *WeekRolloverService) Status() (running bool, lastStartedAt, lastFinishedAt time.Time) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.running, s.lastStartedAt, s.lastFinishedAt
}

func (s *WeekRolloverService) rollover(ctx context.Context) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		log.L.Info("Creación de semana ya en curso, se ignora")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastFinishedAt = time.Now()
		s.runMutex.Unlock()
	}()

	week, err := s.weekService.CreateNext(ctx)
	if err != nil {
		log.L.WithError(err).Error("Error al crear la semana siguiente")
		return
	}

	log.L.WithFields(log.Fields{
		"week_id": week.ID,
		"name":    week.Name,
	}).Info("Semana siguiente creada por el agendador")
}
