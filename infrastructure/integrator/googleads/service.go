package googleads

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/campaign-hub-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/googleads/googleclient"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/distributing"
	"github.com/vfg2006/campaign-hub-api/pkg/utils"
)

// GoogleDistributor traduz a campanha unificada para a hierarquia do
// Google Ads (orçamento → campanha → grupo de anúncios → anúncio)
type GoogleDistributor struct {
	cfg    *config.Config
	Client googleclient.Client
}

func New(cfg *config.Config, client googleclient.Client) *GoogleDistributor {
	return &GoogleDistributor{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoogleDistributor) ValidateCampaignData(campaign *domain.UnifiedCampaignData) *domain.ValidationResult {
	validationErrors := make([]string, 0)

	if campaign.Name == "" {
		validationErrors = append(validationErrors, "nome da campanha é obrigatório")
	}

	if _, ok := googledomain.ObjectiveMap[campaign.Objective]; !ok {
		validationErrors = append(validationErrors, fmt.Sprintf("objetivo %q não é suportado pelo Google Ads", campaign.Objective))
	}

	switch campaign.Budget.Type {
	case domain.BudgetTypeDaily, domain.BudgetTypeLifetime:
		if campaign.Budget.Amount < googledomain.MinDailyBudget {
			validationErrors = append(validationErrors, fmt.Sprintf("orçamento mínimo do Google Ads é %.2f %s", googledomain.MinDailyBudget, campaign.Budget.Currency))
		}
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("tipo de orçamento inválido: %q", campaign.Budget.Type))
	}

	if campaign.Budget.Currency == "" {
		validationErrors = append(validationErrors, "moeda do orçamento é obrigatória")
	}

	validationErrors = append(validationErrors, distributing.ValidateSchedule(campaign.Schedule)...)

	if campaign.Targeting.AgeMin > campaign.Targeting.AgeMax {
		validationErrors = append(validationErrors, "idade mínima maior que a idade máxima")
	}

	// Limites da plataforma são em caracteres, não em bytes
	if campaign.Creative.Headline == "" {
		validationErrors = append(validationErrors, "título do criativo é obrigatório")
	} else if utf8.RuneCountInString(campaign.Creative.Headline) > googledomain.MaxHeadlineLength {
		validationErrors = append(validationErrors, fmt.Sprintf("título do criativo excede o limite de %d caracteres do Google Ads", googledomain.MaxHeadlineLength))
	}

	if description := adDescription(campaign.Creative); description == "" {
		validationErrors = append(validationErrors, "descrição do criativo é obrigatória")
	} else if utf8.RuneCountInString(description) > googledomain.MaxDescriptionLength {
		validationErrors = append(validationErrors, fmt.Sprintf("descrição excede o limite de %d caracteres do Google Ads", googledomain.MaxDescriptionLength))
	}

	if campaign.Creative.DestinationURL == "" {
		validationErrors = append(validationErrors, "URL de destino do criativo é obrigatória")
	}

	return &domain.ValidationResult{
		Valid:  len(validationErrors) == 0,
		Errors: validationErrors,
	}
}

func (s *GoogleDistributor) Distribute(ctx context.Context, campaign *domain.UnifiedCampaignData, credentials domain.PlatformCredentials) *domain.PlatformCampaignResult {
	logger := logrus.WithField("platform", domain.PlatformGoogle)

	if validation := s.ValidateCampaignData(campaign); !validation.Valid {
		return distributing.FailureResult(domain.PlatformGoogle, distributing.NewValidationError(validation.Errors))
	}

	if credentials.AccessToken == "" || credentials.CustomerID == "" || credentials.DeveloperToken == "" {
		return distributing.FailureResult(domain.PlatformGoogle,
			distributing.NewCredentialError("access token, customer id e developer token são obrigatórios para o Google Ads"))
	}

	channelType, ok := googledomain.ObjectiveMap[campaign.Objective]
	if !ok {
		return distributing.FailureResult(domain.PlatformGoogle,
			distributing.NewMappingError(campaign.Objective, domain.PlatformGoogle))
	}

	partial := domain.IdentifierChain{}

	// O orçamento é um recurso próprio no Google Ads e precisa existir
	// antes da campanha
	budgetResource, err := s.Client.CreateCampaignBudget(ctx, credentials, s.buildBudgetOperation(campaign))
	if err != nil {
		logger.WithError(err).Error("platform: campaign budget creation failed")
		return distributing.FailureResult(domain.PlatformGoogle, classifyCreateError(domain.StageCreatingCampaign, err, partial))
	}

	campaignResource, err := s.Client.CreateCampaign(ctx, credentials, s.buildCampaignOperation(campaign, channelType, budgetResource))
	if err != nil {
		logger.WithError(err).Error("platform: campaign creation failed")
		return distributing.FailureResult(domain.PlatformGoogle, classifyCreateError(domain.StageCreatingCampaign, err, partial))
	}
	partial.CampaignID = campaignResource

	adGroupResource, err := s.Client.CreateAdGroup(ctx, credentials, s.buildAdGroupOperation(campaign, campaignResource))
	if err != nil {
		logger.WithError(err).Error("platform: ad group creation failed")
		return distributing.FailureResult(domain.PlatformGoogle, classifyCreateError(domain.StageCreatingAdGroup, err, partial))
	}
	partial.AdGroupID = adGroupResource

	// Critérios pertencem ao grupo de anúncios; falha aqui deixa o grupo
	// criado sem segmentação e é reportada no mesmo estágio
	if criteria := s.buildCriteriaOperations(campaign, adGroupResource); len(criteria) > 0 {
		if err := s.Client.CreateAdGroupCriteria(ctx, credentials, criteria); err != nil {
			logger.WithError(err).Error("platform: ad group criteria creation failed")
			return distributing.FailureResult(domain.PlatformGoogle, classifyCreateError(domain.StageCreatingAdGroup, err, partial))
		}
	}

	adResource, err := s.Client.CreateAd(ctx, credentials, s.buildAdOperation(campaign, adGroupResource))
	if err != nil {
		logger.WithError(err).Error("platform: ad creation failed")
		return distributing.FailureResult(domain.PlatformGoogle, classifyCreateError(domain.StageCreatingAd, err, partial))
	}
	partial.AdIDs = []string{adResource}

	logger.WithFields(logrus.Fields{
		"campaign": campaignResource,
		"ad_group": adGroupResource,
	}).Info("platform: campaign hierarchy created")

	return distributing.SuccessResult(domain.PlatformGoogle, partial)
}

func (s *GoogleDistributor) buildBudgetOperation(campaign *domain.UnifiedCampaignData) *googledomain.CampaignBudgetOperation {
	return &googledomain.CampaignBudgetOperation{
		Name: fmt.Sprintf("%s - Budget", campaign.Name),
		// 1 unidade monetária = 1.000.000 micros
		AmountMicros:   int64(utils.RoundWithTwoDecimalPlace(campaign.Budget.Amount) * 1_000_000),
		DeliveryMethod: "STANDARD",
	}
}

func (s *GoogleDistributor) buildCampaignOperation(campaign *domain.UnifiedCampaignData, channelType, budgetResource string) *googledomain.CampaignOperation {
	operation := &googledomain.CampaignOperation{
		Name:                   campaign.Name,
		AdvertisingChannelType: channelType,
		Status:                 "PAUSED",
		CampaignBudget:         budgetResource,
		// A API espera datas no formato YYYY-MM-DD, igual ao modelo
		// unificado
		StartDate: campaign.Schedule.StartDate,
		EndDate:   campaign.Schedule.EndDate,
	}

	if campaign.Bidding != nil {
		operation.BiddingStrategyType = googledomain.BiddingStrategyMap[campaign.Bidding.Type]
	}

	return operation
}

func (s *GoogleDistributor) buildAdGroupOperation(campaign *domain.UnifiedCampaignData, campaignResource string) *googledomain.AdGroupOperation {
	operation := &googledomain.AdGroupOperation{
		Name:     fmt.Sprintf("%s - Ad Group", campaign.Name),
		Campaign: campaignResource,
		Status:   "PAUSED",
	}

	if campaign.Bidding != nil && campaign.Bidding.Type == domain.BiddingBidCap && campaign.Bidding.CapAmount != nil {
		operation.CPCBidMicro = int64(utils.RoundWithTwoDecimalPlace(*campaign.Bidding.CapAmount) * 1_000_000)
	}

	return operation
}

func (s *GoogleDistributor) buildAdOperation(campaign *domain.UnifiedCampaignData, adGroupResource string) *googledomain.AdGroupAdOperation {
	headlines := []googledomain.AdTextAsset{{Text: campaign.Creative.Headline}}
	descriptions := []googledomain.AdTextAsset{{Text: adDescription(campaign.Creative)}}

	return &googledomain.AdGroupAdOperation{
		AdGroup: adGroupResource,
		Status:  "PAUSED",
		Ad: googledomain.Ad{
			FinalURLs: []string{campaign.Creative.DestinationURL},
			ResponsiveAd: googledomain.ResponsiveAd{
				Headlines:    headlines,
				Descriptions: descriptions,
			},
		},
	}
}

// buildCriteriaOperations traduz a extensão de segmentação do Google em
// critérios do grupo de anúncios: keywords (broad match), keywords
// negativas, tópicos e grupos de afinidade. Sem extensão não há critério a
// criar.
func (s *GoogleDistributor) buildCriteriaOperations(campaign *domain.UnifiedCampaignData, adGroupResource string) []*googledomain.AdGroupCriterionOperation {
	ext, ok := campaign.Targeting.Extensions.ForPlatform(domain.PlatformGoogle).(*domain.GoogleTargeting)
	if !ok || ext == nil {
		return nil
	}

	operations := make([]*googledomain.AdGroupCriterionOperation, 0,
		len(ext.Keywords)+len(ext.NegativeWords)+len(ext.TopicIDs)+len(ext.AffinityGroups))

	for _, keyword := range ext.Keywords {
		operations = append(operations, &googledomain.AdGroupCriterionOperation{
			AdGroup: adGroupResource,
			Status:  "ENABLED",
			Keyword: &googledomain.KeywordInfo{Text: keyword, MatchType: "BROAD"},
		})
	}

	for _, keyword := range ext.NegativeWords {
		operations = append(operations, &googledomain.AdGroupCriterionOperation{
			AdGroup:  adGroupResource,
			Negative: true,
			Keyword:  &googledomain.KeywordInfo{Text: keyword, MatchType: "BROAD"},
		})
	}

	for _, topicID := range ext.TopicIDs {
		operations = append(operations, &googledomain.AdGroupCriterionOperation{
			AdGroup: adGroupResource,
			Status:  "ENABLED",
			Topic:   &googledomain.TopicInfo{TopicConstant: fmt.Sprintf("topicConstants/%s", topicID)},
		})
	}

	for _, interestID := range ext.AffinityGroups {
		operations = append(operations, &googledomain.AdGroupCriterionOperation{
			AdGroup:      adGroupResource,
			Status:       "ENABLED",
			UserInterest: &googledomain.UserInterestInfo{UserInterestCategory: fmt.Sprintf("userInterests/%s", interestID)},
		})
	}

	return operations
}

// adDescription prefere a descrição curta e usa o texto principal como
// fallback
func adDescription(creative domain.UnifiedCreative) string {
	if creative.Description != "" {
		return creative.Description
	}

	return strings.TrimSpace(creative.Body)
}

func classifyCreateError(stage domain.DistributionStage, err error, partial domain.IdentifierChain) *distributing.DistributionError {
	var apiErr *googledomain.APIError
	if errors.As(err, &apiErr) {
		return distributing.NewRemoteCreateError(stage, apiErr.Message, map[string]any{
			"code":   apiErr.Code,
			"status": apiErr.Status,
		}, partial)
	}

	return distributing.NewTransportError(stage, err, partial)
}
