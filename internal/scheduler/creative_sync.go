package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-sync/internal/config"
	"github.com/vfg2006/creative-sync/internal/usecases/backfilling"
	"github.com/vfg2006/creative-sync/internal/usecases/migrating"
)

// CreativeSyncConfig representa a configuração do agendador de sincronização de criativos
type CreativeSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CreativeSyncService gerencia o agendamento da resolução de criativos: uma
// passada de backfill seguida da migração de armazenamento
type CreativeSyncService struct {
	scheduler           *gocron.Scheduler
	config              CreativeSyncConfig
	backfiller          backfilling.Backfiller
	migrator            migrating.Migrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunSummary      map[string]any
}

// NewCreativeSyncService cria uma nova instância do serviço de sincronização de criativos
func NewCreativeSyncService(
	backfiller backfilling.Backfiller,
	migrator migrating.Migrator,
	appConfig *config.Config,
) *CreativeSyncService {
	syncConfig := CreativeSyncConfig{
		CronSchedule: appConfig.CreativeBackfill.CronSchedule,
		SyncEnabled:  appConfig.CreativeBackfill.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de criativos carregada")

	return &CreativeSyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		backfiller: backfiller,
		migrator:   migrator,
	}
}

// Start inicia o agendador
func (s *CreativeSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de criativos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de criativos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCreatives(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de criativos: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de criativos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCreatives executa o backfill e, em seguida, a migração de armazenamento
func (s *CreativeSyncService) syncCreatives(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de criativos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de criativos")

	summary := map[string]any{}

	backfillStats, err := s.backfiller.Run(ctx, backfilling.Options{})
	if err != nil {
		logrus.WithError(err).Error("Erro na passada de backfill da sincronização de criativos")
	}
	summary["backfill"] = backfillStats

	migrationStats, err := s.migrator.Run(ctx, migrating.Options{})
	if err != nil {
		logrus.WithError(err).Error("Erro na passada de migração da sincronização de criativos")
	}
	summary["migration"] = migrationStats

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":          duration.String(),
		"backfill_updated":  backfillStats.Updated,
		"backfill_errored":  backfillStats.Errored,
		"migration_success": migrationStats.Succeeded,
		"migration_failed":  migrationStats.Failed,
	}).Info("Sincronização de criativos concluída")

	s.lastRunSummary = summary
	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de criativos
func (s *CreativeSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de criativos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de criativos")
	go s.syncCreatives(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CreativeSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_summary":       s.lastRunSummary,
	}
}
