package tiktok

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/campaign-hub-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/distributing"
)

// TikTokDistributor traduz a campanha unificada para a hierarquia da
// Marketing API do TikTok (campanha → grupo de anúncios → anúncio)
type TikTokDistributor struct {
	cfg    *config.Config
	Client tiktokclient.Client
}

func New(cfg *config.Config, client tiktokclient.Client) *TikTokDistributor {
	return &TikTokDistributor{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TikTokDistributor) ValidateCampaignData(campaign *domain.UnifiedCampaignData) *domain.ValidationResult {
	validationErrors := make([]string, 0)

	if campaign.Name == "" {
		validationErrors = append(validationErrors, "nome da campanha é obrigatório")
	}

	if _, ok := tiktokdomain.ObjectiveMap[campaign.Objective]; !ok {
		validationErrors = append(validationErrors, fmt.Sprintf("objetivo %q não é suportado pelo TikTok", campaign.Objective))
	}

	switch campaign.Budget.Type {
	case domain.BudgetTypeDaily:
		if campaign.Budget.Amount < tiktokdomain.MinDailyBudget {
			validationErrors = append(validationErrors, fmt.Sprintf("orçamento diário mínimo do TikTok é %.2f %s", tiktokdomain.MinDailyBudget, campaign.Budget.Currency))
		}
	case domain.BudgetTypeLifetime:
		if campaign.Budget.Amount < tiktokdomain.MinDailyBudget {
			validationErrors = append(validationErrors, fmt.Sprintf("orçamento total mínimo do TikTok é %.2f %s", tiktokdomain.MinDailyBudget, campaign.Budget.Currency))
		}
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("tipo de orçamento inválido: %q", campaign.Budget.Type))
	}

	if campaign.Budget.Currency == "" {
		validationErrors = append(validationErrors, "moeda do orçamento é obrigatória")
	}

	validationErrors = append(validationErrors, distributing.ValidateSchedule(campaign.Schedule)...)

	if campaign.Targeting.AgeMin < tiktokdomain.MinAge {
		validationErrors = append(validationErrors, fmt.Sprintf("idade mínima no TikTok é %d anos", tiktokdomain.MinAge))
	}

	if campaign.Targeting.AgeMin > campaign.Targeting.AgeMax {
		validationErrors = append(validationErrors, "idade mínima maior que a idade máxima")
	}

	// O TikTok veicula vídeo e imagem (formato carrossel); sem nenhuma
	// mídia no criativo não há anúncio possível
	if len(campaign.Creative.Media) == 0 {
		validationErrors = append(validationErrors, "TikTok exige pelo menos um item de mídia no criativo")
	}

	if campaign.Creative.Body == "" {
		validationErrors = append(validationErrors, "texto principal do criativo é obrigatório")
	}

	if campaign.Creative.DestinationURL == "" {
		validationErrors = append(validationErrors, "URL de destino do criativo é obrigatória")
	}

	return &domain.ValidationResult{
		Valid:  len(validationErrors) == 0,
		Errors: validationErrors,
	}
}

func (s *TikTokDistributor) Distribute(ctx context.Context, campaign *domain.UnifiedCampaignData, credentials domain.PlatformCredentials) *domain.PlatformCampaignResult {
	logger := logrus.WithField("platform", domain.PlatformTikTok)

	if validation := s.ValidateCampaignData(campaign); !validation.Valid {
		return distributing.FailureResult(domain.PlatformTikTok, distributing.NewValidationError(validation.Errors))
	}

	if credentials.AccessToken == "" || credentials.AdvertiserID == "" {
		return distributing.FailureResult(domain.PlatformTikTok,
			distributing.NewCredentialError("access token e advertiser id são obrigatórios para o TikTok"))
	}

	objective, ok := tiktokdomain.ObjectiveMap[campaign.Objective]
	if !ok {
		return distributing.FailureResult(domain.PlatformTikTok,
			distributing.NewMappingError(campaign.Objective, domain.PlatformTikTok))
	}

	partial := domain.IdentifierChain{}

	campaignID, err := s.Client.CreateCampaign(ctx, credentials, s.buildCampaignPayload(campaign, credentials, objective))
	if err != nil {
		logger.WithError(err).Error("platform: campaign creation failed")
		return distributing.FailureResult(domain.PlatformTikTok,
			distributing.NewTransportError(domain.StageCreatingCampaign, err, partial))
	}
	partial.CampaignID = campaignID

	adGroupID, err := s.Client.CreateAdGroup(ctx, credentials, s.buildAdGroupPayload(campaign, credentials, campaignID))
	if err != nil {
		logger.WithError(err).Error("platform: ad group creation failed")
		return distributing.FailureResult(domain.PlatformTikTok,
			distributing.NewTransportError(domain.StageCreatingAdGroup, err, partial))
	}
	partial.AdGroupID = adGroupID

	adID, err := s.Client.CreateAd(ctx, credentials, s.buildAdPayload(campaign, credentials, adGroupID))
	if err != nil {
		logger.WithError(err).Error("platform: ad creation failed")
		return distributing.FailureResult(domain.PlatformTikTok,
			distributing.NewTransportError(domain.StageCreatingAd, err, partial))
	}
	partial.AdIDs = []string{adID}

	logger.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"ad_group_id": adGroupID,
	}).Info("platform: campaign hierarchy created")

	return distributing.SuccessResult(domain.PlatformTikTok, partial)
}

func (s *TikTokDistributor) buildCampaignPayload(campaign *domain.UnifiedCampaignData, credentials domain.PlatformCredentials, objective string) *tiktokdomain.CampaignPayload {
	budgetMode := "BUDGET_MODE_DAY"
	if campaign.Budget.Type == domain.BudgetTypeLifetime {
		budgetMode = "BUDGET_MODE_TOTAL"
	}

	return &tiktokdomain.CampaignPayload{
		AdvertiserID:  credentials.AdvertiserID,
		CampaignName:  campaign.Name,
		ObjectiveType: objective,
		BudgetMode:    budgetMode,
		Budget:        campaign.Budget.Amount,
	}
}

func (s *TikTokDistributor) buildAdGroupPayload(campaign *domain.UnifiedCampaignData, credentials domain.PlatformCredentials, campaignID string) *tiktokdomain.AdGroupPayload {
	payload := &tiktokdomain.AdGroupPayload{
		AdvertiserID:  credentials.AdvertiserID,
		CampaignID:    campaignID,
		AdGroupName:   fmt.Sprintf("%s - Ad Group", campaign.Name),
		ScheduleStart: campaign.Schedule.StartDate,
		ScheduleEnd:   campaign.Schedule.EndDate,
		Interests:     campaign.Targeting.Interests,
	}

	for _, gender := range campaign.Targeting.Genders {
		switch gender {
		case domain.GenderMale:
			payload.Genders = append(payload.Genders, "GENDER_MALE")
		case domain.GenderFemale:
			payload.Genders = append(payload.Genders, "GENDER_FEMALE")
		}
	}

	for _, location := range campaign.Targeting.Locations {
		payload.Locations = append(payload.Locations, location.Value)
	}

	if ext, ok := campaign.Targeting.Extensions.ForPlatform(domain.PlatformTikTok).(*domain.TikTokTargeting); ok && ext != nil {
		payload.Hashtags = ext.Hashtags
		payload.DeviceOS = ext.DeviceOS
	}

	return payload
}

func (s *TikTokDistributor) buildAdPayload(campaign *domain.UnifiedCampaignData, credentials domain.PlatformCredentials, adGroupID string) *tiktokdomain.AdPayload {
	payload := &tiktokdomain.AdPayload{
		AdvertiserID: credentials.AdvertiserID,
		AdGroupID:    adGroupID,
		AdName:       fmt.Sprintf("%s - Ad", campaign.Name),
		AdText:       campaign.Creative.Body,
		CallToAction: campaign.Creative.CallToAction,
		LandingPage:  campaign.Creative.DestinationURL,
	}

	// Vídeo tem preferência; sem vídeo o anúncio sai no formato imagem
	if video := campaign.Creative.FirstVideo(); video != nil {
		payload.VideoURL = video.URL
	} else if len(campaign.Creative.Media) > 0 {
		payload.ImageURL = campaign.Creative.Media[0].URL
	}

	return payload
}
