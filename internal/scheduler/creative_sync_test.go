package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creative-sync/internal/domain"
	"github.com/vfg2006/creative-sync/internal/usecases/backfilling"
	backfillmocks "github.com/vfg2006/creative-sync/internal/usecases/backfilling/mocks"
	"github.com/vfg2006/creative-sync/internal/usecases/migrating"
	migratemocks "github.com/vfg2006/creative-sync/internal/usecases/migrating/mocks"
	"go.uber.org/mock/gomock"
)

func TestCreativeSyncService_syncCreatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackfiller := backfillmocks.NewMockBackfiller(ctrl)
	mockMigrator := migratemocks.NewMockMigrator(ctrl)

	service := &CreativeSyncService{
		backfiller: mockBackfiller,
		migrator:   mockMigrator,
	}

	// Backfill primeiro, migração depois
	gomock.InOrder(
		mockBackfiller.EXPECT().
			Run(gomock.Any(), backfilling.Options{}).
			Return(domain.RunStats{Updated: 3, Skipped: 1}, nil),
		mockMigrator.EXPECT().
			Run(gomock.Any(), migrating.Options{}).
			Return(migrating.Stats{Succeeded: 2}, nil),
	)

	service.syncCreatives(context.Background())

	assert.False(t, service.lastSyncCompletedAt.IsZero())

	status := service.GetStatus()
	summary := status["last_run_summary"].(map[string]any)
	assert.Equal(t, domain.RunStats{Updated: 3, Skipped: 1}, summary["backfill"])
	assert.Equal(t, migrating.Stats{Succeeded: 2}, summary["migration"])
}

func TestCreativeSyncService_syncCreatives_BackfillErrorStillMigrates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackfiller := backfillmocks.NewMockBackfiller(ctrl)
	mockMigrator := migratemocks.NewMockMigrator(ctrl)

	service := &CreativeSyncService{
		backfiller: mockBackfiller,
		migrator:   mockMigrator,
	}

	mockBackfiller.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(domain.RunStats{}, errors.New("banco indisponível"))

	mockMigrator.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(migrating.Stats{}, nil)

	service.syncCreatives(context.Background())
}

func TestCreativeSyncService_syncCreatives_SingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackfiller := backfillmocks.NewMockBackfiller(ctrl)
	mockMigrator := migratemocks.NewMockMigrator(ctrl)

	service := &CreativeSyncService{
		backfiller: mockBackfiller,
		migrator:   mockMigrator,
	}

	// Simular execução em andamento: a segunda chamada não toca nos serviços
	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	service.syncCreatives(context.Background())
}

func TestCreativeSyncService_Start_Disabled(t *testing.T) {
	service := &CreativeSyncService{
		config: CreativeSyncConfig{SyncEnabled: false},
	}

	err := service.Start(context.Background())

	assert.NoError(t, err)
}
