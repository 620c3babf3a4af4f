package linkedin

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/pkg/apiErrors"
)

func simulatedConfig() *config.Config {
	return &config.Config{
		LinkedIn: config.LinkedIn{SimulatedDelayMillis: 5},
	}
}

func validCampaign() *domain.UnifiedCampaignData {
	return &domain.UnifiedCampaignData{
		Name:      "Geração de Demanda B2B",
		Objective: domain.ObjectiveLeads,
		Budget: domain.Budget{
			Type:     domain.BudgetTypeDaily,
			Amount:   40.00,
			Currency: "USD",
		},
		Schedule: domain.Schedule{
			StartDate: time.Now().Add(48 * time.Hour).Format("2006-01-02"),
			EndDate:   time.Now().Add(30 * 24 * time.Hour).Format("2006-01-02"),
		},
		Targeting: domain.UnifiedTargeting{
			AgeMin: 25,
			AgeMax: 54,
		},
		Creative: domain.UnifiedCreative{
			Headline:       "Baixe o relatório do setor",
			Body:           "Dados exclusivos sobre o mercado para orientar seu planejamento",
			CallToAction:   "DOWNLOAD",
			DestinationURL: "https://example.com/relatorio",
		},
	}
}

func validCredentials() domain.PlatformCredentials {
	return domain.PlatformCredentials{
		Platform:    domain.PlatformLinkedIn,
		AccessToken: "li-token",
		AdAccountID: "512345678",
	}
}

func TestLinkedInDistributor_ValidateCampaignData(t *testing.T) {
	cfg := simulatedConfig()
	distributor := New(cfg, linkedinclient.NewClient(cfg))

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
			name: "Objetivo app_promotion não é suportado",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Objective = domain.ObjectiveAppPromotion
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], `objetivo "app_promotion" não é suportado`)
			},
		},
		{
			name: "Orçamento abaixo do mínimo de 10.00",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Budget.Amount = 9.99
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "orçamento mínimo do LinkedIn é 10.00")
			},
		},
		{
			name: "Título com 70 caracteres acentuados - dentro do limite",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Creative.Headline = strings.Repeat("é", 70)
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.True(t, result.Valid)
			},
		},
		{
			name: "Título com 71 caracteres excede o limite",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Creative.Headline = strings.Repeat("é", 71)
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "limite de 70 caracteres")
			},
		},
		{
			name: "Público menor de idade - rejeitado",
			mutate: func(campaign *domain.UnifiedCampaignData) {
				campaign.Targeting.AgeMin = 16
			},
			validate: func(t *testing.T, result *domain.ValidationResult) {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors[0], "idade mínima no LinkedIn é 18 anos")
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

func TestLinkedInDistributor_Distribute(t *testing.T) {
	t.Run("Sucesso - grupo de campanhas ocupa o nível de campanha na cadeia", func(t *testing.T) {
		cfg := simulatedConfig()
		distributor := New(cfg, linkedinclient.NewClient(cfg))

		result := distributor.Distribute(context.Background(), validCampaign(), validCredentials())

		assert.True(t, result.Success)
		assert.Contains(t, result.Identifiers.CampaignID, "urn:li:sponsoredCampaignGroup:")
		assert.Contains(t, result.Identifiers.AdGroupID, "urn:li:sponsoredCampaign:")
		assert.Len(t, result.Identifiers.AdIDs, 1)
		assert.Contains(t, result.Identifiers.AdIDs[0], "urn:li:sponsoredCreative:")
	})

	t.Run("Credenciais sem ad account id", func(t *testing.T) {
		cfg := simulatedConfig()
		distributor := New(cfg, linkedinclient.NewClient(cfg))

		credentials := validCredentials()
		credentials.AdAccountID = ""

		result := distributor.Distribute(context.Background(), validCampaign(), credentials)

		assert.False(t, result.Success)
		assert.Equal(t, apiErrors.ErrDistributionCredential, result.ErrorCode)
	})

	t.Run("Contexto cancelado - falha de transporte sem identificadores", func(t *testing.T) {
		cfg := &config.Config{
			LinkedIn: config.LinkedIn{SimulatedDelayMillis: 200},
		}
		distributor := New(cfg, linkedinclient.NewClient(cfg))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		result := distributor.Distribute(ctx, validCampaign(), validCredentials())

		assert.False(t, result.Success)
		assert.Equal(t, domain.StageCreatingCampaign, result.FailedStage)
		assert.Equal(t, apiErrors.ErrDistributionTransport, result.ErrorCode)
	})
}

func TestBuildTargetingQuery(t *testing.T) {
	targeting := domain.UnifiedTargeting{
		AgeMin:  25,
		AgeMax:  54,
		Genders: []domain.Gender{domain.GenderMale, domain.GenderFemale},
		Locations: []domain.Location{
			{Type: domain.LocationCountry, Value: "br"},
		},
		Extensions: domain.TargetingExtensions{
			LinkedIn: &domain.LinkedInTargeting{
				JobTitles:     []string{"Engenheiro de Dados"},
				JobFunctions:  []string{"eng"},
				Industries:    []string{"software"},
				CompanySizes:  []string{"SIZE_51_TO_200"},
				SeniorityTags: []string{"senior"},
			},
			// Extensão de outra plataforma não pode vazar para o LinkedIn
			Google: &domain.GoogleTargeting{Keywords: []string{"crm"}},
		},
	}

	query := buildTargetingQuery(targeting)

	assert.Equal(t, []string{"AGE_25_54"}, query.AgeRanges)
	assert.Equal(t, []string{"MALE", "FEMALE"}, query.Genders)
	assert.Equal(t, []string{"br"}, query.Locations)
	assert.Equal(t, []string{"Engenheiro de Dados"}, query.JobTitles)
	assert.Equal(t, []string{"senior"}, query.Seniorities)
}
