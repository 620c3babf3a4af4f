package domain

import "time"

// DistributionStage identifica em que etapa uma tentativa de distribuição
// estava. Cada tentativa percorre Pending → Validating → {Rejected |
// Mapping → CreatingCampaign → CreatingAdGroup → CreatingAd → Succeeded |
// Failed(stage)} sem retentativas internas.
type DistributionStage string

const (
	StageValidating       DistributionStage = "validating"
	StageMapping          DistributionStage = "mapping"
	StageCreatingCampaign DistributionStage = "creating_campaign"
	StageCreatingAdGroup  DistributionStage = "creating_ad_group"
	StageCreatingAd       DistributionStage = "creating_ad"
)

// ValidationResult é a saída de ValidateCampaignData: todas as violações
// encontradas, nunca apenas a primeira
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// IdentifierChain é a cadeia de identificadores atribuídos pela plataforma
// na hierarquia campanha → grupo de anúncios → anúncios. Em caso de falha
// parcial carrega apenas os níveis já criados, para que um operador possa
// decidir pela limpeza manual (o núcleo não desfaz criações remotas).
type IdentifierChain struct {
	CampaignID string   `json:"campaign_id,omitempty"`
	AdGroupID  string   `json:"ad_group_id,omitempty"`
	AdIDs      []string `json:"ad_ids,omitempty"`
}

// PlatformCampaignResult é o resultado normalizado de uma plataforma.
// Exatamente um é produzido por plataforma invocada.
type PlatformCampaignResult struct {
	Platform     Platform          `json:"platform"`
	Success      bool              `json:"success"`
	Identifiers  IdentifierChain   `json:"identifiers,omitempty"`
	FailedStage  DistributionStage `json:"failed_stage,omitempty"`
	ErrorCode    string            `json:"error_code,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	ErrorDetails any               `json:"error_details,omitempty"`
}

// DistributionResult é o agregado sem estado de uma requisição de
// distribuição: successful + failed == totalPlatforms == len(results),
// com uma entrada por plataforma na ordem de invocação
type DistributionResult struct {
	TotalPlatforms int                       `json:"total_platforms"`
	Successful     int                       `json:"successful"`
	Failed         int                       `json:"failed"`
	Results        []*PlatformCampaignResult `json:"results"`
}

// DistributionRecord é a linha gravada no banco para cada resultado por
// plataforma, permitindo que operadores localizem campanhas parcialmente
// criadas que exigem verificação manual
type DistributionRecord struct {
	ID           string            `json:"id"`
	UserID       int               `json:"user_id"`
	CampaignName string            `json:"campaign_name"`
	Platform     Platform          `json:"platform"`
	Success      bool              `json:"success"`
	FailedStage  DistributionStage `json:"failed_stage,omitempty"`
	ErrorCode    string            `json:"error_code,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Identifiers  IdentifierChain   `json:"identifiers"`
	CreatedAt    time.Time         `json:"created_at"`
}
