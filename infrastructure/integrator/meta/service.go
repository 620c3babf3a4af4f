package meta

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-hub-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/distributing"
	"github.com/vfg2006/campaign-hub-api/pkg/utils"
)

// MetaDistributor traduz a campanha unificada para a hierarquia da Graph
// API (campanha → conjunto de anúncios → anúncio) do Facebook/Instagram
type MetaDistributor struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaDistributor {
	return &MetaDistributor{
		cfg:    cfg,
		Client: client,
	}
}

// ValidateCampaignData aplica as regras do Facebook sem nenhum I/O e
// devolve todas as violações de uma vez
func (s *MetaDistributor) ValidateCampaignData(campaign *domain.UnifiedCampaignData) *domain.ValidationResult {
	validationErrors := make([]string, 0)

	if campaign.Name == "" {
		validationErrors = append(validationErrors, "nome da campanha é obrigatório")
	}

	if _, ok := metadomain.ObjectiveMap[campaign.Objective]; !ok {
		validationErrors = append(validationErrors, fmt.Sprintf("objetivo %q não é suportado pelo Facebook", campaign.Objective))
	}

	switch campaign.Budget.Type {
	case domain.BudgetTypeDaily:
		if campaign.Budget.Amount < metadomain.MinDailyBudget {
			validationErrors = append(validationErrors, fmt.Sprintf("orçamento diário mínimo do Facebook é %.2f %s", metadomain.MinDailyBudget, campaign.Budget.Currency))
		}
	case domain.BudgetTypeLifetime:
		if campaign.Budget.Amount < metadomain.MinLifetimeBudget {
			validationErrors = append(validationErrors, fmt.Sprintf("orçamento total mínimo do Facebook é %.2f %s", metadomain.MinLifetimeBudget, campaign.Budget.Currency))
		}
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("tipo de orçamento inválido: %q", campaign.Budget.Type))
	}

	if campaign.Budget.Currency == "" {
		validationErrors = append(validationErrors, "moeda do orçamento é obrigatória")
	}

	validationErrors = append(validationErrors, distributing.ValidateSchedule(campaign.Schedule)...)

	if campaign.Targeting.AgeMin < metadomain.MinAge {
		validationErrors = append(validationErrors, fmt.Sprintf("idade mínima no Facebook é %d anos", metadomain.MinAge))
	}

	if campaign.Targeting.AgeMax > metadomain.MaxAge {
		validationErrors = append(validationErrors, fmt.Sprintf("idade máxima no Facebook é %d anos", metadomain.MaxAge))
	}

	if campaign.Targeting.AgeMin > campaign.Targeting.AgeMax {
		validationErrors = append(validationErrors, "idade mínima maior que a idade máxima")
	}

	if len(campaign.Targeting.Locations) == 0 {
		validationErrors = append(validationErrors, "Facebook exige pelo menos uma localização de segmentação")
	}

	// Limites da plataforma são em caracteres, não em bytes
	if campaign.Creative.Headline == "" {
		validationErrors = append(validationErrors, "título do criativo é obrigatório")
	} else if utf8.RuneCountInString(campaign.Creative.Headline) > metadomain.MaxHeadlineLength {
		validationErrors = append(validationErrors, fmt.Sprintf("título do criativo excede o limite de %d caracteres do Facebook", metadomain.MaxHeadlineLength))
	}

	if campaign.Creative.Body == "" {
		validationErrors = append(validationErrors, "texto principal do criativo é obrigatório")
	} else if utf8.RuneCountInString(campaign.Creative.Body) > metadomain.MaxBodyLength {
		validationErrors = append(validationErrors, fmt.Sprintf("texto principal excede o limite de %d caracteres do Facebook", metadomain.MaxBodyLength))
	}

	if _, ok := metadomain.AllowedCallToActions[campaign.Creative.CallToAction]; !ok {
		validationErrors = append(validationErrors, fmt.Sprintf("call to action %q não é aceito pelo Facebook", campaign.Creative.CallToAction))
	}

	if campaign.Creative.DestinationURL == "" {
		validationErrors = append(validationErrors, "URL de destino do criativo é obrigatória")
	}

	if len(campaign.Creative.Media) == 0 {
		validationErrors = append(validationErrors, "criativo precisa de pelo menos um item de mídia")
	}

	return &domain.ValidationResult{
		Valid:  len(validationErrors) == 0,
		Errors: validationErrors,
	}
}

// Distribute executa a tentativa única: revalida, mapeia e cria a
// hierarquia de três níveis no Facebook. Em falha parcial devolve os
// identificadores já criados; a limpeza fica a cargo do operador.
func (s *MetaDistributor) Distribute(ctx context.Context, campaign *domain.UnifiedCampaignData, credentials domain.PlatformCredentials) *domain.PlatformCampaignResult {
	logger := logrus.WithField("platform", domain.PlatformMeta)

	// Revalidação defensiva: o distribuidor não confia que o chamador
	// validou antes
	if validation := s.ValidateCampaignData(campaign); !validation.Valid {
		return distributing.FailureResult(domain.PlatformMeta, distributing.NewValidationError(validation.Errors))
	}

	if credentials.AccessToken == "" || credentials.AdAccountID == "" {
		return distributing.FailureResult(domain.PlatformMeta,
			distributing.NewCredentialError("access token e ad account id são obrigatórios para o Facebook"))
	}

	objective, ok := metadomain.ObjectiveMap[campaign.Objective]
	if !ok {
		return distributing.FailureResult(domain.PlatformMeta,
			distributing.NewMappingError(campaign.Objective, domain.PlatformMeta))
	}

	partial := domain.IdentifierChain{}

	campaignID, err := s.Client.CreateCampaign(ctx, credentials, s.buildCampaignPayload(campaign, objective))
	if err != nil {
		logger.WithError(err).Error("platform: campaign creation failed")
		return distributing.FailureResult(domain.PlatformMeta, classifyCreateError(domain.StageCreatingCampaign, err, partial))
	}
	partial.CampaignID = campaignID

	adSetID, err := s.Client.CreateAdSet(ctx, credentials, s.buildAdSetPayload(campaign, campaignID))
	if err != nil {
		logger.WithError(err).Error("platform: ad set creation failed")
		return distributing.FailureResult(domain.PlatformMeta, classifyCreateError(domain.StageCreatingAdGroup, err, partial))
	}
	partial.AdGroupID = adSetID

	adID, err := s.Client.CreateAd(ctx, credentials, s.buildAdPayload(campaign, adSetID))
	if err != nil {
		logger.WithError(err).Error("platform: ad creation failed")
		return distributing.FailureResult(domain.PlatformMeta, classifyCreateError(domain.StageCreatingAd, err, partial))
	}
	partial.AdIDs = []string{adID}

	logger.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"ad_set_id":   adSetID,
	}).Info("platform: campaign hierarchy created")

	return distributing.SuccessResult(domain.PlatformMeta, partial)
}

func (s *MetaDistributor) buildCampaignPayload(campaign *domain.UnifiedCampaignData, objective string) *metadomain.CampaignPayload {
	payload := &metadomain.CampaignPayload{
		Name:                campaign.Name,
		Objective:           objective,
		Status:              "PAUSED",
		SpecialAdCategories: []string{},
	}

	// Graph API espera orçamento em centavos
	amountCents := int64(utils.RoundWithTwoDecimalPlace(campaign.Budget.Amount) * 100)
	if campaign.Budget.Type == domain.BudgetTypeDaily {
		payload.DailyBudget = amountCents
	} else {
		payload.LifetimeBudget = amountCents
	}

	return payload
}

func (s *MetaDistributor) buildAdSetPayload(campaign *domain.UnifiedCampaignData, campaignID string) *metadomain.AdSetPayload {
	payload := &metadomain.AdSetPayload{
		Name:         fmt.Sprintf("%s - Ad Set", campaign.Name),
		CampaignID:   campaignID,
		Status:       "PAUSED",
		StartTime:    campaign.Schedule.StartDate,
		EndTime:      campaign.Schedule.EndDate,
		BillingEvent: "IMPRESSIONS",
		Targeting:    buildTargetingSpec(campaign.Targeting),
	}

	if campaign.Bidding != nil {
		switch campaign.Bidding.Type {
		case domain.BiddingLowestCost:
			payload.BidStrategy = "LOWEST_COST_WITHOUT_CAP"
		case domain.BiddingCostCap:
			payload.BidStrategy = "COST_CAP"
		case domain.BiddingBidCap:
			payload.BidStrategy = "LOWEST_COST_WITH_BID_CAP"
		}

		if campaign.Bidding.CapAmount != nil {
			payload.BidAmount = int64(utils.RoundWithTwoDecimalPlace(*campaign.Bidding.CapAmount) * 100)
		}
	}

	return payload
}

func buildTargetingSpec(targeting domain.UnifiedTargeting) metadomain.TargetingSpec {
	spec := metadomain.TargetingSpec{
		AgeMin:    targeting.AgeMin,
		AgeMax:    targeting.AgeMax,
		Interests: targeting.Interests,
		Behaviors: targeting.Behaviors,
		Locales:   targeting.Languages,
	}

	for _, gender := range targeting.Genders {
		switch gender {
		case domain.GenderMale:
			spec.Genders = append(spec.Genders, 1)
		case domain.GenderFemale:
			spec.Genders = append(spec.Genders, 2)
		}
		// "all" omite o filtro de gênero
	}

	for _, location := range targeting.Locations {
		switch location.Type {
		case domain.LocationCountry:
			spec.GeoLocations.Countries = append(spec.GeoLocations.Countries, location.Value)
		case domain.LocationRegion:
			spec.GeoLocations.Regions = append(spec.GeoLocations.Regions, location.Value)
		case domain.LocationCity:
			city := metadomain.CityTarget{Key: location.Value}
			if location.RadiusKm != nil {
				city.RadiusKm = *location.RadiusKm
			}
			spec.GeoLocations.Cities = append(spec.GeoLocations.Cities, city)
		case domain.LocationZip:
			spec.GeoLocations.Zips = append(spec.GeoLocations.Zips, location.Value)
		}
	}

	// Somente a extensão do próprio Facebook é lida aqui
	if ext, ok := targeting.Extensions.ForPlatform(domain.PlatformMeta).(*domain.MetaTargeting); ok && ext != nil {
		spec.LifeEvents = ext.LifeEvents
		spec.CustomAudiences = ext.CustomAudiences
		spec.Placements = ext.Placements
	}

	return spec
}

func (s *MetaDistributor) buildAdPayload(campaign *domain.UnifiedCampaignData, adSetID string) *metadomain.AdPayload {
	creative := metadomain.CreativeSpec{
		Title:        campaign.Creative.Headline,
		Body:         campaign.Creative.Body,
		Description:  campaign.Creative.Description,
		CallToAction: campaign.Creative.CallToAction,
		LinkURL:      campaign.Creative.DestinationURL,
	}

	for _, media := range campaign.Creative.Media {
		if media.Type == domain.MediaTypeVideo {
			creative.VideoURL = media.URL
		} else if creative.ImageURL == "" {
			creative.ImageURL = media.URL
		}
	}

	return &metadomain.AdPayload{
		Name:     fmt.Sprintf("%s - Ad", campaign.Name),
		AdSetID:  adSetID,
		Status:   "PAUSED",
		Creative: creative,
	}
}

// classifyCreateError separa rejeição da API (RemoteCreateError) de falha
// de rede (TransportError); ambas carregam a cadeia parcial
func classifyCreateError(stage domain.DistributionStage, err error, partial domain.IdentifierChain) *distributing.DistributionError {
	var apiErr *metadomain.APIError
	if errors.As(err, &apiErr) {
		return distributing.NewRemoteCreateError(stage, apiErr.Message, map[string]any{
			"code":       apiErr.Code,
			"subcode":    apiErr.Subcode,
			"type":       apiErr.Type,
			"fbtrace_id": apiErr.FBTraceID,
		}, partial)
	}

	return distributing.NewTransportError(stage, err, partial)
}
