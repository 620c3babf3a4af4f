package domain

import "github.com/vfg2006/campaign-hub-api/internal/domain"

const (
	MinDailyBudget = 10.00

	MinAge = 18

	MaxHeadlineLength = 70
	MaxBodyLength     = 150
)

// ObjectiveMap traduz o objetivo unificado para a Campaign Manager API do
// LinkedIn. "app_promotion" fica de fora: a plataforma não veicula
// campanhas de instalação de aplicativo e o objetivo é rejeitado na
// validação.
var ObjectiveMap = map[domain.Objective]string{
	domain.ObjectiveAwareness:   "BRAND_AWARENESS",
	domain.ObjectiveTraffic:     "WEBSITE_VISIT",
	domain.ObjectiveEngagement:  "ENGAGEMENT",
	domain.ObjectiveLeads:       "LEAD_GENERATION",
	domain.ObjectiveConversions: "WEBSITE_CONVERSION",
}

type CampaignGroupPayload struct {
	Account string `json:"account"`
	Name    string `json:"name"`
	Status  string `json:"status"`
}

type CampaignPayload struct {
	Account       string         `json:"account"`
	CampaignGroup string         `json:"campaignGroup"`
	Name          string         `json:"name"`
	Objective     string         `json:"objectiveType"`
	Status        string         `json:"status"`
	DailyBudget   *MoneyAmount   `json:"dailyBudget,omitempty"`
	TotalBudget   *MoneyAmount   `json:"totalBudget,omitempty"`
	RunSchedule   RunSchedule    `json:"runSchedule"`
	Targeting     TargetingQuery `json:"targetingCriteria"`
}

type MoneyAmount struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type RunSchedule struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type TargetingQuery struct {
	AgeRanges    []string `json:"ageRanges,omitempty"`
	Genders      []string `json:"genders,omitempty"`
	Locations    []string `json:"locations,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Languages    []string `json:"interfaceLocales,omitempty"`
	JobTitles    []string `json:"jobTitles,omitempty"`
	JobFunctions []string `json:"jobFunctions,omitempty"`
	Industries   []string `json:"industries,omitempty"`
	CompanySizes []string `json:"companySizes,omitempty"`
	Seniorities  []string `json:"seniorities,omitempty"`
}

type CreativePayload struct {
	Campaign       string `json:"campaign"`
	Headline       string `json:"headline"`
	Body           string `json:"commentary"`
	CallToAction   string `json:"callToActionLabel"`
	DestinationURL string `json:"landingPage"`
	MediaURL       string `json:"mediaUrl,omitempty"`
	Status         string `json:"status"`
}
