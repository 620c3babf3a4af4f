package linkedin

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	linkedindomain "github.com/vfg2006/campaign-hub-api/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/campaign-hub-api/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/distributing"
	"github.com/vfg2006/campaign-hub-api/pkg/utils"
)

// LinkedInDistributor traduz a campanha unificada para a hierarquia da
// Campaign Manager API (grupo de campanhas → campanha → criativo)
type LinkedInDistributor struct {
	cfg    *config.Config
	Client linkedinclient.Client
}

func New(cfg *config.Config, client linkedinclient.Client) *LinkedInDistributor {
	return &LinkedInDistributor{
		cfg:    cfg,
		Client: client,
	}
}

func (s *LinkedInDistributor) ValidateCampaignData(campaign *domain.UnifiedCampaignData) *domain.ValidationResult {
	validationErrors := make([]string, 0)

	if campaign.Name == "" {
		validationErrors = append(validationErrors, "nome da campanha é obrigatório")
	}

	if _, ok := linkedindomain.ObjectiveMap[campaign.Objective]; !ok {
		validationErrors = append(validationErrors, fmt.Sprintf("objetivo %q não é suportado pelo LinkedIn", campaign.Objective))
	}

	switch campaign.Budget.Type {
	case domain.BudgetTypeDaily, domain.BudgetTypeLifetime:
		if campaign.Budget.Amount < linkedindomain.MinDailyBudget {
			validationErrors = append(validationErrors, fmt.Sprintf("orçamento mínimo do LinkedIn é %.2f %s", linkedindomain.MinDailyBudget, campaign.Budget.Currency))
		}
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("tipo de orçamento inválido: %q", campaign.Budget.Type))
	}

	if campaign.Budget.Currency == "" {
		validationErrors = append(validationErrors, "moeda do orçamento é obrigatória")
	}

	validationErrors = append(validationErrors, distributing.ValidateSchedule(campaign.Schedule)...)

	// O LinkedIn só veicula anúncios para maiores de idade
	if campaign.Targeting.AgeMin < linkedindomain.MinAge {
		validationErrors = append(validationErrors, fmt.Sprintf("idade mínima no LinkedIn é %d anos", linkedindomain.MinAge))
	}

	if campaign.Targeting.AgeMin > campaign.Targeting.AgeMax {
		validationErrors = append(validationErrors, "idade mínima maior que a idade máxima")
	}

	// Limites da plataforma são em caracteres, não em bytes
	if campaign.Creative.Headline == "" {
		validationErrors = append(validationErrors, "título do criativo é obrigatório")
	} else if utf8.RuneCountInString(campaign.Creative.Headline) > linkedindomain.MaxHeadlineLength {
		validationErrors = append(validationErrors, fmt.Sprintf("título do criativo excede o limite de %d caracteres do LinkedIn", linkedindomain.MaxHeadlineLength))
	}

	if campaign.Creative.Body == "" {
		validationErrors = append(validationErrors, "texto principal do criativo é obrigatório")
	} else if utf8.RuneCountInString(campaign.Creative.Body) > linkedindomain.MaxBodyLength {
		validationErrors = append(validationErrors, fmt.Sprintf("texto principal excede o limite de %d caracteres do LinkedIn", linkedindomain.MaxBodyLength))
	}

	if campaign.Creative.DestinationURL == "" {
		validationErrors = append(validationErrors, "URL de destino do criativo é obrigatória")
	}

	return &domain.ValidationResult{
		Valid:  len(validationErrors) == 0,
		Errors: validationErrors,
	}
}

func (s *LinkedInDistributor) Distribute(ctx context.Context, campaign *domain.UnifiedCampaignData, credentials domain.PlatformCredentials) *domain.PlatformCampaignResult {
	logger := logrus.WithField("platform", domain.PlatformLinkedIn)

	if validation := s.ValidateCampaignData(campaign); !validation.Valid {
		return distributing.FailureResult(domain.PlatformLinkedIn, distributing.NewValidationError(validation.Errors))
	}

	if credentials.AccessToken == "" || credentials.AdAccountID == "" {
		return distributing.FailureResult(domain.PlatformLinkedIn,
			distributing.NewCredentialError("access token e ad account id são obrigatórios para o LinkedIn"))
	}

	objective, ok := linkedindomain.ObjectiveMap[campaign.Objective]
	if !ok {
		return distributing.FailureResult(domain.PlatformLinkedIn,
			distributing.NewMappingError(campaign.Objective, domain.PlatformLinkedIn))
	}

	account := fmt.Sprintf("urn:li:sponsoredAccount:%s", credentials.AdAccountID)
	partial := domain.IdentifierChain{}

	// No LinkedIn o primeiro nível é o grupo de campanhas; ele ocupa a
	// posição de "campanha" na cadeia de identificadores
	groupID, err := s.Client.CreateCampaignGroup(ctx, credentials, &linkedindomain.CampaignGroupPayload{
		Account: account,
		Name:    fmt.Sprintf("%s - Group", campaign.Name),
		Status:  "DRAFT",
	})
	if err != nil {
		logger.WithError(err).Error("platform: campaign group creation failed")
		return distributing.FailureResult(domain.PlatformLinkedIn,
			distributing.NewTransportError(domain.StageCreatingCampaign, err, partial))
	}
	partial.CampaignID = groupID

	campaignID, err := s.Client.CreateCampaign(ctx, credentials, s.buildCampaignPayload(campaign, account, groupID, objective))
	if err != nil {
		logger.WithError(err).Error("platform: campaign creation failed")
		return distributing.FailureResult(domain.PlatformLinkedIn,
			distributing.NewTransportError(domain.StageCreatingAdGroup, err, partial))
	}
	partial.AdGroupID = campaignID

	creativeID, err := s.Client.CreateCreative(ctx, credentials, s.buildCreativePayload(campaign, campaignID))
	if err != nil {
		logger.WithError(err).Error("platform: creative creation failed")
		return distributing.FailureResult(domain.PlatformLinkedIn,
			distributing.NewTransportError(domain.StageCreatingAd, err, partial))
	}
	partial.AdIDs = []string{creativeID}

	logger.WithFields(logrus.Fields{
		"campaign_group_id": groupID,
		"campaign_id":       campaignID,
	}).Info("platform: campaign hierarchy created")

	return distributing.SuccessResult(domain.PlatformLinkedIn, partial)
}

func (s *LinkedInDistributor) buildCampaignPayload(campaign *domain.UnifiedCampaignData, account, groupID, objective string) *linkedindomain.CampaignPayload {
	amount := fmt.Sprintf("%.2f", utils.RoundWithTwoDecimalPlace(campaign.Budget.Amount))
	money := &linkedindomain.MoneyAmount{
		Amount:       amount,
		CurrencyCode: campaign.Budget.Currency,
	}

	payload := &linkedindomain.CampaignPayload{
		Account:       account,
		CampaignGroup: groupID,
		Name:          campaign.Name,
		Objective:     objective,
		Status:        "DRAFT",
		RunSchedule: linkedindomain.RunSchedule{
			Start: campaign.Schedule.StartDate,
			End:   campaign.Schedule.EndDate,
		},
		Targeting: buildTargetingQuery(campaign.Targeting),
	}

	if campaign.Budget.Type == domain.BudgetTypeDaily {
		payload.DailyBudget = money
	} else {
		payload.TotalBudget = money
	}

	return payload
}

func buildTargetingQuery(targeting domain.UnifiedTargeting) linkedindomain.TargetingQuery {
	query := linkedindomain.TargetingQuery{
		AgeRanges: []string{fmt.Sprintf("AGE_%d_%d", targeting.AgeMin, targeting.AgeMax)},
		Interests: targeting.Interests,
		Languages: targeting.Languages,
	}

	for _, gender := range targeting.Genders {
		switch gender {
		case domain.GenderMale:
			query.Genders = append(query.Genders, "MALE")
		case domain.GenderFemale:
			query.Genders = append(query.Genders, "FEMALE")
		}
	}

	for _, location := range targeting.Locations {
		query.Locations = append(query.Locations, location.Value)
	}

	if ext, ok := targeting.Extensions.ForPlatform(domain.PlatformLinkedIn).(*domain.LinkedInTargeting); ok && ext != nil {
		query.JobTitles = ext.JobTitles
		query.JobFunctions = ext.JobFunctions
		query.Industries = ext.Industries
		query.CompanySizes = ext.CompanySizes
		query.Seniorities = ext.SeniorityTags
	}

	return query
}

func (s *LinkedInDistributor) buildCreativePayload(campaign *domain.UnifiedCampaignData, campaignID string) *linkedindomain.CreativePayload {
	payload := &linkedindomain.CreativePayload{
		Campaign:       campaignID,
		Headline:       campaign.Creative.Headline,
		Body:           campaign.Creative.Body,
		CallToAction:   campaign.Creative.CallToAction,
		DestinationURL: campaign.Creative.DestinationURL,
		Status:         "DRAFT",
	}

	if len(campaign.Creative.Media) > 0 {
		payload.MediaURL = campaign.Creative.Media[0].URL
	}

	return payload
}
