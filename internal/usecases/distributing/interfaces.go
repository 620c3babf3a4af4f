package distributing

import (
	"context"

	"github.com/vfg2006/campaign-hub-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/distributor.go -package=mocks

// Distributor é o contrato comum a todas as plataformas de anúncio. Cada
// implementação valida a campanha unificada contra as regras da sua
// plataforma e a traduz na sequência de criação nativa (campanha → grupo
// de anúncios → anúncio).
type Distributor interface {
	// ValidateCampaignData é pura, sem I/O, e retorna todas as violações
	// encontradas de uma vez
	ValidateCampaignData(campaign *domain.UnifiedCampaignData) *domain.ValidationResult

	// Distribute executa uma única tentativa: revalida, mapeia e cria a
	// hierarquia de três níveis. Falhas viram resultado, nunca panic; a
	// retentativa é responsabilidade do chamador externo.
	Distribute(ctx context.Context, campaign *domain.UnifiedCampaignData, credentials domain.PlatformCredentials) *domain.PlatformCampaignResult
}

// Registry mapeia a tag de plataforma para o distribuidor correspondente,
// deixando o laço do orquestrador genérico sobre o contrato
type Registry map[domain.Platform]Distributor

// Orchestrator distribui uma campanha unificada para várias plataformas e
// garante que a falha de uma nunca impede as demais de serem tentadas
type Orchestrator interface {
	DistributeToAll(ctx context.Context, userID int, campaign *domain.UnifiedCampaignData, credentials []domain.PlatformCredentials) (*domain.DistributionResult, error)
	ValidateCampaign(campaign *domain.UnifiedCampaignData, platforms []domain.Platform) (map[domain.Platform]*domain.ValidationResult, error)
	ListDistributions(userID int) ([]*domain.DistributionRecord, error)
}
