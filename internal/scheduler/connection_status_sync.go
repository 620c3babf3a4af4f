package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/connecting"
)

// ConnectionSyncConfig representa a configuração do agendador de status de conexão
type ConnectionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ConnectionSyncService gerencia o agendamento e execução da atualização do
// retrato de conexão das plataformas
type ConnectionSyncService struct {
	scheduler           *gocron.Scheduler
	config              ConnectionSyncConfig
	connectionService   connecting.ConnectionService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncCount       int
}

// NewConnectionSyncService cria uma nova instância do serviço de sincronização de status de conexão
func NewConnectionSyncService(
	connectionService connecting.ConnectionService,
	appConfig *config.Config,
) *ConnectionSyncService {
	syncConfig := ConnectionSyncConfig{
		CronSchedule: appConfig.ConnectionSync.CronSchedule,
		SyncEnabled:  appConfig.ConnectionSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de status de conexão carregada")

	return &ConnectionSyncService{
		scheduler:         scheduler,
		config:            syncConfig,
		connectionService: connectionService,
		syncRunning:       false,
	}
}

// Start inicia o agendador
func (s *ConnectionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de status de conexão desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de status de conexão")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncConnectionStatuses()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de status de conexão: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de status de conexão")
		s.scheduler.Stop()
	}()

	return nil
}

// syncConnectionStatuses recalcula e materializa o retrato de conexão de
// todas as credenciais cadastradas
func (s *ConnectionSyncService) syncConnectionStatuses() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status de conexão já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de status de conexão")

	count, err := s.connectionService.RefreshSnapshots()
	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar retratos de conexão")
		return
	}

	s.lastSyncCount = count
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"snapshots": count,
	}).Info("Sincronização de status de conexão concluída")
}

// TriggerManualSync inicia manualmente uma sincronização de status de conexão
func (s *ConnectionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status de conexão já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de status de conexão")
	go s.syncConnectionStatuses()
}

// GetStatus retorna o status atual do agendador
func (s *ConnectionSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_snapshots":    s.lastSyncCount,
	}
}
