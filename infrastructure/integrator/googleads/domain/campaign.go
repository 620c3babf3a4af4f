package domain

import "github.com/vfg2006/campaign-hub-api/internal/domain"

const (
	MinDailyBudget = 1.00

	MaxHeadlineLength    = 30
	MaxDescriptionLength = 90
)

// ObjectiveMap traduz o objetivo unificado para o advertising channel type
// do Google Ads. "engagement" fica de fora: não existe canal equivalente e
// a campanha é rejeitada na validação.
var ObjectiveMap = map[domain.Objective]string{
	domain.ObjectiveAwareness:    "DISPLAY",
	domain.ObjectiveTraffic:      "SEARCH",
	domain.ObjectiveLeads:        "SEARCH",
	domain.ObjectiveConversions:  "PERFORMANCE_MAX",
	domain.ObjectiveAppPromotion: "MULTI_CHANNEL",
}

// BiddingStrategyMap traduz a estratégia de lance unificada
var BiddingStrategyMap = map[domain.BiddingStrategyType]string{
	domain.BiddingLowestCost: "MAXIMIZE_CONVERSIONS",
	domain.BiddingCostCap:    "TARGET_CPA",
	domain.BiddingBidCap:     "MANUAL_CPC",
}

// CampaignBudgetOperation cria o orçamento que a campanha referencia.
// O Google exige o valor em micros (1 unidade = 1.000.000 micros).
type CampaignBudgetOperation struct {
	Name           string `json:"name"`
	AmountMicros   int64  `json:"amountMicros"`
	DeliveryMethod string `json:"deliveryMethod"`
}

type CampaignOperation struct {
	Name                   string `json:"name"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
	Status                 string `json:"status"`
	CampaignBudget         string `json:"campaignBudget"`
	BiddingStrategyType    string `json:"biddingStrategyType,omitempty"`
	StartDate              string `json:"startDate"`
	EndDate                string `json:"endDate"`
}

type AdGroupOperation struct {
	Name        string `json:"name"`
	Campaign    string `json:"campaign"`
	Status      string `json:"status"`
	CPCBidMicro int64  `json:"cpcBidMicros,omitempty"`
}

type AdGroupAdOperation struct {
	AdGroup string `json:"adGroup"`
	Status  string `json:"status"`
	Ad      Ad     `json:"ad"`
}

type Ad struct {
	FinalURLs      []string       `json:"finalUrls"`
	ResponsiveAd   ResponsiveAd   `json:"responsiveSearchAd"`
	TrackingParams map[string]any `json:"-"`
}

type ResponsiveAd struct {
	Headlines    []AdTextAsset `json:"headlines"`
	Descriptions []AdTextAsset `json:"descriptions"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

// AdGroupCriterionOperation anexa um critério de segmentação ao grupo de
// anúncios (keyword, keyword negativa, tópico ou interesse). Exatamente um
// dos campos de critério deve estar preenchido.
type AdGroupCriterionOperation struct {
	AdGroup      string            `json:"adGroup"`
	Status       string            `json:"status,omitempty"`
	Negative     bool              `json:"negative,omitempty"`
	Keyword      *KeywordInfo      `json:"keyword,omitempty"`
	Topic        *TopicInfo        `json:"topic,omitempty"`
	UserInterest *UserInterestInfo `json:"userInterest,omitempty"`
}

type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type TopicInfo struct {
	TopicConstant string `json:"topicConstant"`
}

type UserInterestInfo struct {
	UserInterestCategory string `json:"userInterestCategory"`
}

// MutateResponse devolve o resource name do objeto criado
// (ex: customers/123/campaigns/456)
type MutateResponse struct {
	Results []MutateResult `json:"results"`
}

type MutateResult struct {
	ResourceName string `json:"resourceName"`
}
