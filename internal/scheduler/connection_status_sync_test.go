package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	connectingmocks "github.com/vfg2006/campaign-hub-api/internal/usecases/connecting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(config ConnectionSyncConfig, connectionService *connectingmocks.MockConnectionService) *ConnectionSyncService {
	return &ConnectionSyncService{
		scheduler:         gocron.NewScheduler(time.Local),
		config:            config,
		connectionService: connectionService,
	}
}

func TestConnectionSyncService_syncConnectionStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnectionService := connectingmocks.NewMockConnectionService(ctrl)
	service := newTestService(ConnectionSyncConfig{SyncEnabled: true}, mockConnectionService)

	t.Run("Sincronização bem-sucedida atualiza o status do agendador", func(t *testing.T) {
		mockConnectionService.EXPECT().RefreshSnapshots().Return(3, nil)

		service.syncConnectionStatuses()

		status := service.GetStatus()
		assert.Equal(t, 3, status["last_sync_snapshots"])
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Falha na atualização não registra conclusão", func(t *testing.T) {
		before := service.lastSyncCompletedAt

		mockConnectionService.EXPECT().RefreshSnapshots().Return(0, assert.AnError)

		service.syncConnectionStatuses()

		assert.Equal(t, before, service.lastSyncCompletedAt)
	})
}

func TestConnectionSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(ConnectionSyncConfig{
		CronSchedule: "0 */6 * * *",
		SyncEnabled:  true,
	}, connectingmocks.NewMockConnectionService(ctrl))

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 */6 * * *", status["sync_cron"])
	assert.Equal(t, 0, status["last_sync_snapshots"])
}

func TestConnectionSyncService_Start_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnectionService := connectingmocks.NewMockConnectionService(ctrl)
	service := newTestService(ConnectionSyncConfig{SyncEnabled: false}, mockConnectionService)

	// Desabilitado: nenhum job é agendado e RefreshSnapshots nunca roda
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, len(service.scheduler.Jobs()))
}
