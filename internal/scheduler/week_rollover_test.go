package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tiempos-pupi/tiempos-api/infrastructure/repository/mocks"
	"github.com/tiempos-pupi/tiempos-api/internal/config"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
	"github.com/tiempos-pupi/tiempos-api/internal/usecases/weekkeeping"
	"github.com/tiempos-pupi/tiempos-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func TestWeekRolloverService_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWeekRepo := mocks.NewMockWeekRepository(ctrl)
	mockWeekRepo.EXPECT().List(gomock.Any()).Return([]domain.Week{
		{ID: "w1", Name: "5 feb - 11 feb", StartDate: "2024-02-05", EndDate: "2024-02-11", CreatedAt: 1},
	}, nil)
	mockWeekRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, week domain.Week) (string, error) {
			assert.Equal(t, "12 feb - 18 feb", week.Name)
			return "w2", nil
		})

	weekService := weekkeeping.NewService(mockWeekRepo, mocks.NewMockWeekDataRepository(ctrl))

	service := NewWeekRolloverService(weekService, &config.Config{
		Rollover: config.Rollover{CronSchedule: "0 0 * * 1", Enabled: true},
	})

	service.RunNow(context.Background())

	running, lastStartedAt, lastFinishedAt := service.Status()
	assert.False(t, running)
	assert.False(t, lastStartedAt.IsZero())
	assert.False(t, lastFinishedAt.IsZero())
	assert.True(t, lastFinishedAt.After(lastStartedAt) || lastFinishedAt.Equal(lastStartedAt))
}

func TestWeekRolloverService_Start_Deshabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weekService := weekkeeping.NewService(
		mocks.NewMockWeekRepository(ctrl),
		mocks.NewMockWeekDataRepository(ctrl),
	)

	service := NewWeekRolloverService(weekService, &config.Config{
		Rollover: config.Rollover{CronSchedule: "0 0 * * 1", Enabled: false},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// deshabilitado: no agenda nada ni toca el repositorio
	assert.NoError(t, service.Start(ctx))

	running, _, _ := service.Status()
	assert.False(t, running)
}
