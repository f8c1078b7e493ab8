package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sync-api/internal/config"
	"github.com/vfg2006/meli-sync-api/internal/usecases/syncing"
)

// RevenueSyncConfig representa a configuração do agendador de faturamento
type RevenueSyncConfig struct {
	IntervalMinutes int
	SyncEnabled     bool
}

// RevenueSyncService gerencia o agendamento e execução da sincronização de
// faturamento do MeLi
type RevenueSyncService struct {
	scheduler           *gocron.Scheduler
	config              RevenueSyncConfig
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewRevenueSyncService cria uma nova instância do serviço de sincronização de faturamento
func NewRevenueSyncService(syncer syncing.Syncer, appConfig *config.Config) *RevenueSyncService {
	syncConfig := RevenueSyncConfig{
		IntervalMinutes: appConfig.RevenueSync.IntervalMinutes,
		SyncEnabled:     appConfig.RevenueSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_minutes": syncConfig.IntervalMinutes,
		"sync_enabled":     syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de faturamento carregada")

	return &RevenueSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start inicia o agendador. O primeiro ciclo roda imediatamente; os seguintes,
// a cada intervalo configurado.
func (s *RevenueSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de faturamento desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_minutes", s.config.IntervalMinutes).
		Info("Iniciando agendador de sincronização de faturamento")

	_, err := s.scheduler.Every(s.config.IntervalMinutes).Minutes().StartImmediately().Do(func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de faturamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de faturamento")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executa um ciclo se nenhum outro estiver em andamento. Falhas
// sistêmicas são contidas aqui para o agendador seguir no próximo tick.
func (s *RevenueSyncService) runSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de faturamento já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Erro não tratado no ciclo de sincronização")
		}

		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	s.syncer.SyncAll()

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização em background
func (s *RevenueSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de faturamento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de faturamento")
	go s.runSync()
}

// GetStatus retorna o status atual do agendador
func (s *RevenueSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval_minutes":  s.config.IntervalMinutes,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
