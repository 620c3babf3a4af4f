package domain

import "github.com/vfg2006/campaign-hub-api/internal/domain"

const (
	MinDailyBudget = 20.00

	MinAge = 13
)

// ObjectiveMap traduz o objetivo unificado para o enum da Marketing API do
// TikTok. "leads" fica de fora: a plataforma não expõe um objetivo
// equivalente nesta integração e a campanha é rejeitada na validação.
var ObjectiveMap = map[domain.Objective]string{
	domain.ObjectiveAwareness:    "REACH",
	domain.ObjectiveTraffic:      "TRAFFIC",
	domain.ObjectiveEngagement:   "COMMUNITY_INTERACTION",
	domain.ObjectiveConversions:  "CONVERSIONS",
	domain.ObjectiveAppPromotion: "APP_PROMOTION",
}

type CampaignPayload struct {
	AdvertiserID  string  `json:"advertiser_id"`
	CampaignName  string  `json:"campaign_name"`
	ObjectiveType string  `json:"objective_type"`
	BudgetMode    string  `json:"budget_mode"`
	Budget        float64 `json:"budget"`
}

type AdGroupPayload struct {
	AdvertiserID  string   `json:"advertiser_id"`
	CampaignID    string   `json:"campaign_id"`
	AdGroupName   string   `json:"adgroup_name"`
	ScheduleStart string   `json:"schedule_start_time"`
	ScheduleEnd   string   `json:"schedule_end_time"`
	AgeGroups     []string `json:"age_groups,omitempty"`
	Genders       []string `json:"gender,omitempty"`
	Locations     []string `json:"location_ids,omitempty"`
	Interests     []string `json:"interest_category_ids,omitempty"`
	Hashtags      []string `json:"actions_hashtags,omitempty"`
	DeviceOS      []string `json:"operating_systems,omitempty"`
}

type AdPayload struct {
	AdvertiserID string `json:"advertiser_id"`
	AdGroupID    string `json:"adgroup_id"`
	AdName       string `json:"ad_name"`
	AdText       string `json:"ad_text"`
	VideoURL     string `json:"video_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	CallToAction string `json:"call_to_action"`
	LandingPage  string `json:"landing_page_url"`
}
