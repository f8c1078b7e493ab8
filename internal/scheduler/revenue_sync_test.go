package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/meli-sync-api/internal/domain"
	"github.com/vfg2006/meli-sync-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(syncer *mocks.MockSyncer) *RevenueSyncService {
	return &RevenueSyncService{
		config: RevenueSyncConfig{
			IntervalMinutes: 5,
			SyncEnabled:     true,
		},
		syncer: syncer,
	}
}

func TestRevenueSyncService_runSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := mocks.NewMockSyncer(ctrl)
	service := newTestService(mockSyncer)

	mockSyncer.EXPECT().SyncAll().Return([]domain.SyncResult{
		{Empresa: "IVS FLORIPA", Status: domain.SyncStatusSynced},
	})

	service.runSync()

	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestRevenueSyncService_runSync_IgnoraCicloConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := mocks.NewMockSyncer(ctrl)
	service := newTestService(mockSyncer)

	started := make(chan struct{})
	release := make(chan struct{})

	// O primeiro ciclo fica bloqueado; o segundo deve ser ignorado sem uma
	// segunda chamada a SyncAll
	mockSyncer.EXPECT().
		SyncAll().
		DoAndReturn(func() []domain.SyncResult {
			close(started)
			<-release
			return nil
		}).
		Times(1)

	done := make(chan struct{})
	go func() {
		service.runSync()
		close(done)
	}()

	<-started
	service.runSync()

	close(release)
	<-done

	assert.False(t, service.syncRunning)
}

func TestRevenueSyncService_runSync_PanicoNaoDerrubaOAgendador(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := mocks.NewMockSyncer(ctrl)
	service := newTestService(mockSyncer)

	gomock.InOrder(
		mockSyncer.EXPECT().
			SyncAll().
			DoAndReturn(func() []domain.SyncResult {
				panic("conexão com o banco perdida")
			}),
		mockSyncer.EXPECT().SyncAll().Return(nil),
	)

	assert.NotPanics(t, func() { service.runSync() })

	// A flag foi liberada: o próximo tick executa normalmente
	service.runSync()
	assert.False(t, service.syncRunning)
}

func TestRevenueSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := mocks.NewMockSyncer(ctrl)
	service := newTestService(mockSyncer)
	service.lastSyncStartedAt = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 5, status["sync_interval_minutes"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, service.lastSyncStartedAt, status["last_sync_started_at"])
}
