package domain

// Objective é o objetivo de campanha agnóstico de plataforma. Cada
// distribuidor traduz o objetivo para o enum nativo da plataforma através
// de uma tabela fixa; objetivo sem tradução é erro, nunca substituição.
type Objective string

const (
	ObjectiveAwareness    Objective = "awareness"
	ObjectiveTraffic      Objective = "traffic"
	ObjectiveEngagement   Objective = "engagement"
	ObjectiveLeads        Objective = "leads"
	ObjectiveConversions  Objective = "conversions"
	ObjectiveAppPromotion Objective = "app_promotion"
)

// IsValid verifica se o objetivo pertence à enumeração unificada
func (o Objective) IsValid() bool {
	switch o {
	case ObjectiveAwareness, ObjectiveTraffic, ObjectiveEngagement,
		ObjectiveLeads, ObjectiveConversions, ObjectiveAppPromotion:
		return true
	}
	return false
}

type BudgetType string

const (
	BudgetTypeDaily    BudgetType = "daily"
	BudgetTypeLifetime BudgetType = "lifetime"
)

// Budget em unidades monetárias maiores (ex: 20.50 = USD 20,50)
type Budget struct {
	Type     BudgetType `json:"type"`
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
}

// Schedule com datas no formato ISO (2006-01-02)
type Schedule struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type BiddingStrategyType string

const (
	BiddingLowestCost BiddingStrategyType = "lowest_cost"
	BiddingCostCap    BiddingStrategyType = "cost_cap"
	BiddingBidCap     BiddingStrategyType = "bid_cap"
)

type BiddingStrategy struct {
	Type      BiddingStrategyType `json:"type"`
	CapAmount *float64            `json:"cap_amount,omitempty"`
}

// UnifiedCampaignData é a descrição agnóstica de plataforma de uma campanha,
// única entrada de todo distribuidor. Não possui identidade própria: uma
// instância nova é montada por requisição de distribuição e descartada após
// o uso. Distribuidores nunca a modificam.
type UnifiedCampaignData struct {
	Name      string           `json:"name"`
	Objective Objective        `json:"objective"`
	Budget    Budget           `json:"budget"`
	Schedule  Schedule         `json:"schedule"`
	Targeting UnifiedTargeting `json:"targeting"`
	Creative  UnifiedCreative  `json:"creative"`
	Bidding   *BiddingStrategy `json:"bidding,omitempty"`
}
