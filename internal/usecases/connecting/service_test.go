package connecting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestService_PlatformStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCredentialRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, connection *domain.PlatformConnection, err error)
	}{
		{
			name: "Credencial vigente - conectado",
			setup: func() {
				mockRepo.EXPECT().
					GetByUserAndPlatform(1, domain.PlatformMeta).
					Return(&domain.StoredCredential{
						UserID:      1,
						Platform:    domain.PlatformMeta,
						AccessToken: "token",
						ExpiresAt:   timePtr(time.Now().Add(24 * time.Hour)),
					}, nil)
			},
			validate: func(t *testing.T, connection *domain.PlatformConnection, err error) {
				assert.NoError(t, err)
				assert.True(t, connection.Connected)
				assert.Equal(t, "conectado", connection.Message)
			},
		},
		{
			name: "Credencial sem validade definida - conectado",
			setup: func() {
				mockRepo.EXPECT().
					GetByUserAndPlatform(1, domain.PlatformMeta).
					Return(&domain.StoredCredential{
						UserID:      1,
						Platform:    domain.PlatformMeta,
						AccessToken: "token",
					}, nil)
			},
			validate: func(t *testing.T, connection *domain.PlatformConnection, err error) {
				assert.NoError(t, err)
				assert.True(t, connection.Connected)
			},
		},
		{
			name: "Token expirado",
			setup: func() {
				mockRepo.EXPECT().
					GetByUserAndPlatform(1, domain.PlatformMeta).
					Return(&domain.StoredCredential{
						UserID:      1,
						Platform:    domain.PlatformMeta,
						AccessToken: "token",
						ExpiresAt:   timePtr(time.Now().Add(-time.Hour)),
					}, nil)
			},
			validate: func(t *testing.T, connection *domain.PlatformConnection, err error) {
				assert.NoError(t, err)
				assert.False(t, connection.Connected)
				assert.Equal(t, "token expirado", connection.Message)
			},
		},
		{
			name: "Sem credencial cadastrada",
			setup: func() {
				mockRepo.EXPECT().
					GetByUserAndPlatform(1, domain.PlatformMeta).
					Return(nil, nil)
			},
			validate: func(t *testing.T, connection *domain.PlatformConnection, err error) {
				assert.NoError(t, err)
				assert.False(t, connection.Connected)
				assert.Equal(t, "nenhuma credencial cadastrada", connection.Message)
			},
		},
		{
			name: "Falha de banco vira erro de conexão",
			setup: func() {
				mockRepo.EXPECT().
					GetByUserAndPlatform(1, domain.PlatformMeta).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, connection *domain.PlatformConnection, err error) {
				assert.Nil(t, connection)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			connection, err := service.PlatformStatus(1, domain.PlatformMeta)
			tt.validate(t, connection, err)
		})
	}
}

func TestService_ListStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCredentialRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		ListByUser(1).
		Return([]*domain.StoredCredential{
			{UserID: 1, Platform: domain.PlatformTikTok, AccessToken: "token"},
		}, nil)

	connections, err := service.ListStatuses(1)

	assert.NoError(t, err)
	// Todas as plataformas aparecem na ordem canônica, com ou sem credencial
	assert.Len(t, connections, len(domain.AllPlatforms))
	assert.Equal(t, domain.PlatformMeta, connections[0].Platform)
	assert.False(t, connections[0].Connected)
	assert.Equal(t, domain.PlatformTikTok, connections[2].Platform)
	assert.True(t, connections[2].Connected)
}

func TestService_SaveCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCredentialRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Sem access token - rejeitado antes de tocar o banco", func(t *testing.T) {
		credential, err := service.SaveCredential(1, domain.PlatformMeta, &domain.SaveCredentialRequest{})

		assert.Nil(t, credential)
		assert.ErrorIs(t, err, ErrMissingAccessToken)
	})

	t.Run("Credencial completa - persistida com identificador gerado", func(t *testing.T) {
		mockRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(credential *domain.StoredCredential) error {
				assert.NotEmpty(t, credential.ID)
				assert.Equal(t, 1, credential.UserID)
				assert.Equal(t, domain.PlatformMeta, credential.Platform)
				assert.Equal(t, "token", credential.AccessToken)
				assert.Equal(t, "123", *credential.AdAccountID)
				return nil
			})

		credential, err := service.SaveCredential(1, domain.PlatformMeta, &domain.SaveCredentialRequest{
			AccessToken: "token",
			AdAccountID: stringPtr("123"),
		})

		assert.NoError(t, err)
		assert.NotNil(t, credential)
	})
}

func TestService_CredentialsFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCredentialRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		GetByUserAndPlatform(1, domain.PlatformMeta).
		Return(&domain.StoredCredential{
			UserID:      1,
			Platform:    domain.PlatformMeta,
			AccessToken: "token-m",
			AdAccountID: stringPtr("999"),
		}, nil)

	// TikTok sem credencial cadastrada
	mockRepo.EXPECT().
		GetByUserAndPlatform(1, domain.PlatformTikTok).
		Return(nil, nil)

	credentials, err := service.CredentialsFor(1, []domain.Platform{domain.PlatformMeta, domain.PlatformTikTok})

	assert.NoError(t, err)
	assert.Len(t, credentials, 2)

	// A ordem pedida é preservada
	assert.Equal(t, domain.PlatformMeta, credentials[0].Platform)
	assert.Equal(t, "token-m", credentials[0].AccessToken)
	assert.Equal(t, "999", credentials[0].AdAccountID)

	// Plataforma sem credencial entra vazia; o distribuidor é quem reporta
	// a falta, mantendo o isolamento entre plataformas
	assert.Equal(t, domain.PlatformTikTok, credentials[1].Platform)
	assert.Empty(t, credentials[1].AccessToken)
}

func TestService_RefreshSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCredentialRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Sem credenciais cadastradas - nada a materializar", func(t *testing.T) {
		mockRepo.EXPECT().ListAll().Return(nil, nil)

		count, err := service.RefreshSnapshots()

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Materializa um retrato por credencial", func(t *testing.T) {
		mockRepo.EXPECT().
			ListAll().
			Return([]*domain.StoredCredential{
				{UserID: 1, Platform: domain.PlatformMeta, AccessToken: "token"},
				{UserID: 2, Platform: domain.PlatformGoogle, AccessToken: "token", ExpiresAt: timePtr(time.Now().Add(-time.Hour))},
			}, nil)

		mockRepo.EXPECT().
			SaveConnectionSnapshots(gomock.Any()).
			DoAndReturn(func(snapshots []*domain.ConnectionSnapshot) error {
				assert.Len(t, snapshots, 2)
				assert.True(t, snapshots[0].Connected)
				assert.False(t, snapshots[1].Connected)
				assert.Equal(t, "token expirado", snapshots[1].Message)
				return nil
			})

		count, err := service.RefreshSnapshots()

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
