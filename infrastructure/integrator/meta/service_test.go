package meta

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/campaign-hub-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func validCampaign() *domain.UnifiedCampaignData {
	return &domain.UnifiedCampaignData{
		Name:      "Lançamento Verão",
		Objective: domain.ObjectiveTraffic,
		Budget: domain.Budget{
			Type:     domain.BudgetTypeDaily,
			Amount:   50.00,
			Currency: "BRL",
		},
		Schedule: domain.Schedule{
			StartDate: time.Now().Add(48 * time.Hour).Format("2006-01-02"),
			EndDate:   time.Now().Add(30 * 24 * time.Hour).Format("2006-01-02"),
		},
		Targeting: domain.UnifiedTargeting{
			AgeMin:  18,
			AgeMax:  45,
			Genders: []domain.Gender{domain.GenderAll},
			Locations: []domain.Location{
				{Type: domain.LocationCountry, Value: "BR"},
			},
		},
		Creative: domain.UnifiedCreative{
			Headline:       "Coleção nova chegou",
			Body:           "Aproveite o lançamento com frete grátis",
			CallToAction:   "SHOP_NOW",
			DestinationURL: "https://loja.example.com/verao",
			Media: []domain.MediaItem{
				{Type: domain.MediaTypeImage, URL: "https://cdn.example.com/banner.jpg"},
			},
		},
	}
}

func validCredentials() domain.PlatformCredentials {
	return domain.PlatformCredentials{
		Platform:    domain.PlatformMeta,
		AccessToken: "EAAB-token",
		AdAccountID: "1234567890",
	}
}

func TestMetaDistributor_ValidateCampaignData(t *testing.T) {
	distributor := New(&config.Config{}, nil)

	tests := []struct {
		name     string
		mutate   func(campaign *domain.UnifiedCampaignData)
		validate func(t *testing.T, result *domain.ValidationResult)
	}{
		{
			name:   "Campanha válida - aprovada sem erros",
			mutate: func(campaign *domain.UnifiedCampaignData) {},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.True(t, result.Valid)
				assert.Empty(t, result.Errors)
			},
		},
		{
			name: "Múltiplas violações - todas reportadas de uma vez",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Name = ""
				campaign.Budget.Amount = 0.50
				campaign.Creative.DestinationURL = ""
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Len(t, result.Errors, 3)
			},
		},
		{
			name: "Orçamento diário abaixo do mínimo",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Budget.Amount = 0.99
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "orçamento diário mínimo")
			},
		},
		{
			name: "Orçamento total abaixo do mínimo de lifetime",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Budget.Type = domain.BudgetTypeLifetime
				campaign.Budget.Amount = 34.99
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "orçamento total mínimo")
			},
		},
		{
			name: "Idade mínima abaixo de 13 anos",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Targeting.AgeMin = 12
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "idade mínima no Facebook é 13 anos")
			},
		},
		{
			name: "Idade máxima acima de 65 anos",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Targeting.AgeMax = 70
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "idade máxima no Facebook é 65 anos")
			},
		},
		{
			name: "Sem localização de segmentação",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Targeting.Locations = nil
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "pelo menos uma localização")
			},
		},
		{
			name: "Título excede o limite de 40 caracteres",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Creative.Headline = strings.Repeat("a", 41)
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "limite de 40 caracteres")
			},
		},
		{
			name: "Título com 40 caracteres acentuados - dentro do limite",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Creative.Headline = strings.Repeat("ã", 40)
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.True(t, result.Valid)
			},
		},
		{
			name: "Texto principal excede o limite de 125 caracteres",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Creative.Body = strings.Repeat("a", 126)
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "limite de 125 caracteres")
			},
		},
		{
			name: "Call to action fora da lista aceita",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Creative.CallToAction = "SWIPE_UP"
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], `call to action "SWIPE_UP"`)
			},
		},
		{
			name: "Criativo sem mídia",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Creative.Media = nil
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "pelo menos um item de mídia")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := validCampaign()
			tt.mutate(campaign)

			tt.validate(t, distributor.ValidateCampaignData(campaign))
		})
	}
}

func TestMetaDistributor_Distribute(t *testing.T) {
	t.Run("Sucesso - cadeia completa de identificadores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mocks.NewMockClient(ctrl)
		distributor := New(&config.Config{}, mockClient)

		campaign := validCampaign()
		credentials := validCredentials()

		mockClient.EXPECT().
			CreateCampaign(gomock.Any(), credentials, gomock.Any()).
			DoAndReturn(func(ctx context.Context, creds domain.PlatformCredentials, payload *metadomain.CampaignPayload) (string, error) {
				assert.Equal(t, "OUTCOME_TRAFFIC", payload.Objective)
				assert.Equal(t, "PAUSED", payload.Status)
				// Graph API recebe o orçamento em centavos
				assert.Equal(t, int64(5000), payload.DailyBudget)
				return "120210000000000001", nil
			})

		mockClient.EXPECT().
			CreateAdSet(gomock.Any(), credentials, gomock.Any()).
			DoAndReturn(func(ctx context.Context, creds domain.PlatformCredentials, payload *metadomain.AdSetPayload) (string, error) {
				assert.Equal(t, "120210000000000001", payload.CampaignID)
				assert.Equal(t, []string{"BR"}, payload.Targeting.GeoLocations.Countries)
				return "120210000000000002", nil
			})

		mockClient.EXPECT().
			CreateAd(gomock.Any(), credentials, gomock.Any()).
			DoAndReturn(func(ctx context.Context, creds domain.PlatformCredentials, payload *metadomain.AdPayload) (string, error) {
				assert.Equal(t, "120210000000000002", payload.AdSetID)
				assert.Equal(t, "https://cdn.example.com/banner.jpg", payload.Creative.ImageURL)
				return "120210000000000003", nil
			})

		result := distributor.Distribute(context.Background(), campaign, credentials)

		assert.True(t, result.Success)
		assert.Equal(t, "120210000000000001", result.Identifiers.CampaignID)
		assert.Equal(t, "120210000000000002", result.Identifiers.AdGroupID)
		assert.Equal(t, []string{"120210000000000003"}, result.Identifiers.AdIDs)
	})

	t.Run("Campanha inválida - falha antes de qualquer chamada remota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mocks.NewMockClient(ctrl)
		distributor := New(&config.Config{}, mockClient)

		campaign := validCampaign()
		campaign.Creative.Headline = ""

		result := distributor.Distribute(context.Background(), campaign, validCredentials())

		assert.False(t, result.Success)
		assert.Equal(t, domain.StageValidating, result.FailedStage)
		assert.Equal(t, apiErrors.ErrDistributionValidation, result.ErrorCode)
		assert.Empty(t, result.Identifiers.CampaignID)
	})

	t.Run("Credenciais incompletas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		distributor := New(&config.Config{}, mocks.NewMockClient(ctrl))

		credentials := validCredentials()
		credentials.AdAccountID = ""

		result := distributor.Distribute(context.Background(), validCampaign(), credentials)

		assert.False(t, result.Success)
		assert.Equal(t, apiErrors.ErrDistributionCredential, result.ErrorCode)
	})

	t.Run("API rejeita o conjunto de anúncios - cadeia parcial preservada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mocks.NewMockClient(ctrl)
		distributor := New(&config.Config{}, mockClient)

		credentials := validCredentials()

		mockClient.EXPECT().
			CreateCampaign(gomock.Any(), credentials, gomock.Any()).
			Return("120210000000000001", nil)

		mockClient.EXPECT().
			CreateAdSet(gomock.Any(), credentials, gomock.Any()).
			Return("", &metadomain.APIError{
				Message:   "Invalid parameter",
				Type:      "OAuthException",
				Code:      100,
				FBTraceID: "AbCdEf123",
			})

		result := distributor.Distribute(context.Background(), validCampaign(), credentials)

		assert.False(t, result.Success)
		assert.Equal(t, domain.StageCreatingAdGroup, result.FailedStage)
		assert.Equal(t, apiErrors.ErrDistributionRemote, result.ErrorCode)
		assert.Equal(t, "Invalid parameter", result.ErrorMessage)

		// A campanha já criada permanece no resultado para limpeza manual
		assert.Equal(t, "120210000000000001", result.Identifiers.CampaignID)
		assert.Empty(t, result.Identifiers.AdGroupID)

		details, ok := result.ErrorDetails.(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, 100, details["code"])
		assert.Equal(t, "AbCdEf123", details["fbtrace_id"])
	})

	t.Run("Falha de rede - classificada como transporte", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mocks.NewMockClient(ctrl)
		distributor := New(&config.Config{}, mockClient)

		credentials := validCredentials()

		mockClient.EXPECT().
			CreateCampaign(gomock.Any(), credentials, gomock.Any()).
			Return("", errors.New("dial tcp: i/o timeout"))

		result := distributor.Distribute(context.Background(), validCampaign(), credentials)

		assert.False(t, result.Success)
		assert.Equal(t, domain.StageCreatingCampaign, result.FailedStage)
		assert.Equal(t, apiErrors.ErrDistributionTransport, result.ErrorCode)
	})
}

func TestBuildTargetingSpec(t *testing.T) {
	radius := 25.0

	targeting := domain.UnifiedTargeting{
		AgeMin:  21,
		AgeMax:  55,
		Genders: []domain.Gender{domain.GenderFemale},
		Locations: []domain.Location{
			{Type: domain.LocationCountry, Value: "BR"},
			{Type: domain.LocationRegion, Value: "3844"},
			{Type: domain.LocationCity, Value: "2643743", RadiusKm: &radius},
			{Type: domain.LocationZip, Value: "01310-100"},
		},
		Interests: []string{"6003139266461"},
		Extensions: domain.TargetingExtensions{
			Meta: &domain.MetaTargeting{
				LifeEvents:      []string{"recently_moved"},
				CustomAudiences: []string{"23850000000000001"},
			},
			// A extensão de outra plataforma nunca vaza para o Facebook
			TikTok: &domain.TikTokTargeting{Hashtags: []string{"#promo"}},
		},
	}

	spec := buildTargetingSpec(targeting)

	assert.Equal(t, 21, spec.AgeMin)
	assert.Equal(t, 55, spec.AgeMax)
	assert.Equal(t, []int{2}, spec.Genders)
	assert.Equal(t, []string{"BR"}, spec.GeoLocations.Countries)
	assert.Equal(t, []string{"3844"}, spec.GeoLocations.Regions)
	assert.Equal(t, []string{"01310-100"}, spec.GeoLocations.Zips)
	assert.Len(t, spec.GeoLocations.Cities, 1)
	assert.Equal(t, "2643743", spec.GeoLocations.Cities[0].Key)
	assert.Equal(t, 25.0, spec.GeoLocations.Cities[0].RadiusKm)
	assert.Equal(t, []string{"recently_moved"}, spec.LifeEvents)
	assert.Equal(t, []string{"23850000000000001"}, spec.CustomAudiences)
}
