package distributing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/campaign-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/distributing/mocks"
	"github.com/vfg2006/campaign-hub-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_DistributeToAll_ErrosEstruturais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{
		registry:         Registry{},
		distributionRepo: repomocks.NewMockDistributionRepository(ctrl),
	}

	campaign := &domain.UnifiedCampaignData{Name: "Campanha Teste"}

	tests := []struct {
		name        string
		campaign    *domain.UnifiedCampaignData
		credentials []domain.PlatformCredentials
		expected    error
	}{
		{
			name:        "Campanha ausente",
			campaign:    nil,
			credentials: []domain.PlatformCredentials{{Platform: domain.PlatformMeta}},
			expected:    ErrMissingCampaign,
		},
		{
			name:        "Nenhuma plataforma informada",
			campaign:    campaign,
			credentials: nil,
			expected:    ErrNoCredentials,
		},
		{
			name:     "Plataforma duplicada na requisição",
			campaign: campaign,
			credentials: []domain.PlatformCredentials{
				{Platform: domain.PlatformMeta},
				{Platform: domain.PlatformMeta},
			},
			expected: ErrDuplicatePlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.DistributeToAll(context.Background(), 1, tt.campaign, tt.credentials)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_DistributeToAll_IsolamentoEOrdem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockDistributor(ctrl)
	mockGoogle := mocks.NewMockDistributor(ctrl)
	mockTikTok := mocks.NewMockDistributor(ctrl)
	mockRepo := repomocks.NewMockDistributionRepository(ctrl)

	service := &Service{
		registry: Registry{
			domain.PlatformMeta:   mockMeta,
			domain.PlatformGoogle: mockGoogle,
			domain.PlatformTikTok: mockTikTok,
		},
		distributionRepo: mockRepo,
	}

	campaign := &domain.UnifiedCampaignData{Name: "Lançamento Verão"}

	// O primeiro distribuidor demora mais que os demais: a ordem do
	// resultado deve seguir a ordem da requisição, não a de término
	mockMeta.EXPECT().
		Distribute(gomock.Any(), campaign, gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *domain.UnifiedCampaignData, creds domain.PlatformCredentials) *domain.PlatformCampaignResult {
			time.Sleep(30 * time.Millisecond)
			return &domain.PlatformCampaignResult{
				Platform:    domain.PlatformMeta,
				Success:     true,
				Identifiers: domain.IdentifierChain{CampaignID: "123", AdGroupID: "456", AdIDs: []string{"789"}},
			}
		})

	mockGoogle.EXPECT().
		Distribute(gomock.Any(), campaign, gomock.Any()).
		Return(&domain.PlatformCampaignResult{
			Platform:     domain.PlatformGoogle,
			Success:      false,
			FailedStage:  domain.StageCreatingAdGroup,
			ErrorCode:    apiErrors.ErrDistributionRemote,
			ErrorMessage: "INVALID_ARGUMENT",
			Identifiers:  domain.IdentifierChain{CampaignID: "customers/1/campaigns/10"},
		})

	mockTikTok.EXPECT().
		Distribute(gomock.Any(), campaign, gomock.Any()).
		Return(&domain.PlatformCampaignResult{
			Platform:    domain.PlatformTikTok,
			Success:     true,
			Identifiers: domain.IdentifierChain{CampaignID: "tt_campaign_abc123"},
		})

	mockRepo.EXPECT().
		SaveRecords(gomock.Any()).
		DoAndReturn(func(records []*domain.DistributionRecord) error {
			assert.Len(t, records, 3)
			for _, record := range records {
				assert.Equal(t, 7, record.UserID)
				assert.Equal(t, "Lançamento Verão", record.CampaignName)
				assert.NotEmpty(t, record.ID)
			}
			return nil
		})

	credentials := []domain.PlatformCredentials{
		{Platform: domain.PlatformMeta, AccessToken: "token-m", AdAccountID: "1"},
		{Platform: domain.PlatformGoogle, AccessToken: "token-g", CustomerID: "2"},
		{Platform: domain.PlatformTikTok, AccessToken: "token-t", AdvertiserID: "3"},
	}

	result, err := service.DistributeToAll(context.Background(), 7, campaign, credentials)

	assert.NoError(t, err)
	assert.Equal(t, 3, result.TotalPlatforms)
	assert.Equal(t, 2, result.Successful)
	assert.Equal(t, 1, result.Failed)

	// A falha do Google não impediu as demais plataformas, e cada posição
	// corresponde à plataforma pedida naquela posição
	assert.Equal(t, domain.PlatformMeta, result.Results[0].Platform)
	assert.True(t, result.Results[0].Success)
	assert.Equal(t, domain.PlatformGoogle, result.Results[1].Platform)
	assert.False(t, result.Results[1].Success)
	assert.Equal(t, "customers/1/campaigns/10", result.Results[1].Identifiers.CampaignID)
	assert.Equal(t, domain.PlatformTikTok, result.Results[2].Platform)
	assert.True(t, result.Results[2].Success)
}

func TestService_DistributeToAll_PanicViraFalhaDaPlataforma(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockDistributor(ctrl)
	mockTikTok := mocks.NewMockDistributor(ctrl)
	mockRepo := repomocks.NewMockDistributionRepository(ctrl)

	service := &Service{
		registry: Registry{
			domain.PlatformMeta:   mockMeta,
			domain.PlatformTikTok: mockTikTok,
		},
		distributionRepo: mockRepo,
	}

	campaign := &domain.UnifiedCampaignData{Name: "Campanha Teste"}

	mockMeta.EXPECT().
		Distribute(gomock.Any(), campaign, gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *domain.UnifiedCampaignData, creds domain.PlatformCredentials) *domain.PlatformCampaignResult {
			panic("nil pointer dentro do distribuidor")
		})

	mockTikTok.EXPECT().
		Distribute(gomock.Any(), campaign, gomock.Any()).
		Return(&domain.PlatformCampaignResult{Platform: domain.PlatformTikTok, Success: true})

	mockRepo.EXPECT().SaveRecords(gomock.Any()).Return(nil)

	credentials := []domain.PlatformCredentials{
		{Platform: domain.PlatformMeta, AccessToken: "token-m"},
		{Platform: domain.PlatformTikTok, AccessToken: "token-t"},
	}

	result, err := service.DistributeToAll(context.Background(), 1, campaign, credentials)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)

	// O panic vira resultado de falha interno da plataforma ofensora
	assert.False(t, result.Results[0].Success)
	assert.Equal(t, apiErrors.ErrDistributionInternal, result.Results[0].ErrorCode)

	// E a outra plataforma segue intacta
	assert.True(t, result.Results[1].Success)
}

func TestService_DistributeToAll_PlataformaSemDistribuidor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockDistributor(ctrl)
	mockRepo := repomocks.NewMockDistributionRepository(ctrl)

	service := &Service{
		registry:         Registry{domain.PlatformMeta: mockMeta},
		distributionRepo: mockRepo,
	}

	campaign := &domain.UnifiedCampaignData{Name: "Campanha Teste"}

	mockMeta.EXPECT().
		Distribute(gomock.Any(), campaign, gomock.Any()).
		Return(&domain.PlatformCampaignResult{Platform: domain.PlatformMeta, Success: true})

	mockRepo.EXPECT().SaveRecords(gomock.Any()).Return(nil)

	credentials := []domain.PlatformCredentials{
		{Platform: domain.PlatformMeta, AccessToken: "token-m"},
		{Platform: domain.PlatformLinkedIn, AccessToken: "token-l"},
	}

	result, err := service.DistributeToAll(context.Background(), 1, campaign, credentials)

	assert.NoError(t, err)
	assert.True(t, result.Results[0].Success)
	assert.False(t, result.Results[1].Success)
	assert.Equal(t, apiErrors.ErrDistributionUnsupported, result.Results[1].ErrorCode)
}

func TestService_FalhaDePersistenciaNaoAlteraOResultado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockDistributor(ctrl)
	mockRepo := repomocks.NewMockDistributionRepository(ctrl)

	service := &Service{
		registry:         Registry{domain.PlatformMeta: mockMeta},
		distributionRepo: mockRepo,
	}

	campaign := &domain.UnifiedCampaignData{Name: "Campanha Teste"}

	mockMeta.EXPECT().
		Distribute(gomock.Any(), campaign, gomock.Any()).
		Return(&domain.PlatformCampaignResult{Platform: domain.PlatformMeta, Success: true})

	mockRepo.EXPECT().SaveRecords(gomock.Any()).Return(assert.AnError)

	result, err := service.DistributeToAll(context.Background(), 1, campaign, []domain.PlatformCredentials{
		{Platform: domain.PlatformMeta, AccessToken: "token-m"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Successful)
}

func TestService_ValidateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockDistributor(ctrl)
	mockGoogle := mocks.NewMockDistributor(ctrl)

	service := &Service{
		registry: Registry{
			domain.PlatformMeta:   mockMeta,
			domain.PlatformGoogle: mockGoogle,
		},
	}

	campaign := &domain.UnifiedCampaignData{Name: "Campanha Teste"}

	t.Run("Campanha ausente", func(t *testing.T) {
		validations, err := service.ValidateCampaign(nil, nil)

		assert.Nil(t, validations)
		assert.ErrorIs(t, err, ErrMissingCampaign)
	})

	t.Run("Plataforma desconhecida", func(t *testing.T) {
		validations, err := service.ValidateCampaign(campaign, []domain.Platform{domain.PlatformTikTok})

		assert.Nil(t, validations)
		assert.ErrorIs(t, err, ErrUnknownPlatform)
	})

	t.Run("Sem plataformas valida contra todas as registradas", func(t *testing.T) {
		mockMeta.EXPECT().
			ValidateCampaignData(campaign).
			Return(&domain.ValidationResult{Valid: true, Errors: []string{}})
		mockGoogle.EXPECT().
			ValidateCampaignData(campaign).
			Return(&domain.ValidationResult{Valid: false, Errors: []string{"objetivo não suportado"}})

		validations, err := service.ValidateCampaign(campaign, nil)

		assert.NoError(t, err)
		assert.Len(t, validations, 2)
		assert.True(t, validations[domain.PlatformMeta].Valid)
		assert.False(t, validations[domain.PlatformGoogle].Valid)
	})
}

func TestService_ListDistributions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockDistributionRepository(ctrl)
	service := &Service{distributionRepo: mockRepo}

	expected := []*domain.DistributionRecord{
		{ID: "abc123", UserID: 7, Platform: domain.PlatformMeta, Success: true},
	}

	mockRepo.EXPECT().ListByUser(7).Return(expected, nil)

	records, err := service.ListDistributions(7)

	assert.NoError(t, err)
	assert.Equal(t, expected, records)
}
