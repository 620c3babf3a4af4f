package metadomain

import "github.com/vfg2006/campaign-hub-api/internal/domain"

// Limites impostos pela plataforma na validação. Orçamento em unidades
// monetárias maiores.
const (
	MinDailyBudget    = 1.00
	MinLifetimeBudget = 35.00
	MaxHeadlineLength = 40
	MaxBodyLength     = 125
	MinAge            = 13
	MaxAge            = 65
)

// ObjectiveMap traduz o objetivo unificado para o enum ODAX da Graph API.
// Objetivo fora da tabela é erro de mapeamento, nunca aproximação.
var ObjectiveMap = map[domain.Objective]string{
	domain.ObjectiveAwareness:    "OUTCOME_AWARENESS",
	domain.ObjectiveTraffic:      "OUTCOME_TRAFFIC",
	domain.ObjectiveEngagement:   "OUTCOME_ENGAGEMENT",
	domain.ObjectiveLeads:        "OUTCOME_LEADS",
	domain.ObjectiveConversions:  "OUTCOME_SALES",
	domain.ObjectiveAppPromotion: "OUTCOME_APP_PROMOTION",
}

// AllowedCallToActions são os CTAs aceitos pela Graph API para anúncios de
// link
var AllowedCallToActions = map[string]struct{}{
	"LEARN_MORE": {},
	"SHOP_NOW":   {},
	"SIGN_UP":    {},
	"DOWNLOAD":   {},
	"CONTACT_US": {},
	"BOOK_NOW":   {},
}

// CampaignPayload é o corpo de criação de campanha em act_{id}/campaigns
type CampaignPayload struct {
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status"`
	SpecialAdCategories []string `json:"special_ad_categories"`
	DailyBudget         int64    `json:"daily_budget,omitempty"`
	LifetimeBudget      int64    `json:"lifetime_budget,omitempty"`
}

// AdSetPayload é o corpo de criação de conjunto de anúncios em
// act_{id}/adsets, aninhado na campanha criada na etapa anterior
type AdSetPayload struct {
	Name          string         `json:"name"`
	CampaignID    string         `json:"campaign_id"`
	Status        string         `json:"status"`
	StartTime     string         `json:"start_time"`
	EndTime       string         `json:"end_time"`
	BillingEvent  string         `json:"billing_event"`
	Targeting     TargetingSpec  `json:"targeting"`
	BidStrategy   string         `json:"bid_strategy,omitempty"`
	BidAmount     int64          `json:"bid_amount,omitempty"`
}

// TargetingSpec é o subconjunto do targeting spec da Graph API que o
// distribuidor preenche a partir do UnifiedTargeting
type TargetingSpec struct {
	AgeMin          int          `json:"age_min"`
	AgeMax          int          `json:"age_max"`
	Genders         []int        `json:"genders,omitempty"`
	GeoLocations    GeoLocations `json:"geo_locations"`
	Interests       []string     `json:"interests,omitempty"`
	Behaviors       []string     `json:"behaviors,omitempty"`
	Locales         []string     `json:"locales,omitempty"`
	LifeEvents      []string     `json:"life_events,omitempty"`
	CustomAudiences []string     `json:"custom_audiences,omitempty"`
	Placements      []string     `json:"publisher_platforms,omitempty"`
}

type GeoLocations struct {
	Countries []string     `json:"countries,omitempty"`
	Regions   []string     `json:"regions,omitempty"`
	Cities    []CityTarget `json:"cities,omitempty"`
	Zips      []string     `json:"zips,omitempty"`
}

type CityTarget struct {
	Key      string  `json:"key"`
	RadiusKm float64 `json:"radius,omitempty"`
}

// AdPayload é o corpo de criação de anúncio em act_{id}/ads, com o
// criativo embutido
type AdPayload struct {
	Name     string       `json:"name"`
	AdSetID  string       `json:"adset_id"`
	Status   string       `json:"status"`
	Creative CreativeSpec `json:"creative"`
}

type CreativeSpec struct {
	Title        string `json:"title"`
	Body         string `json:"body"`
	Description  string `json:"description,omitempty"`
	CallToAction string `json:"call_to_action_type"`
	LinkURL      string `json:"link_url"`
	ImageURL     string `json:"image_url,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`
}

// CreateResponse é a resposta das três chamadas de criação
type CreateResponse struct {
	ID string `json:"id"`
}
