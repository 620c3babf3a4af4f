package distributing

import "github.com/vfg2006/campaign-hub-api/internal/domain"

// Aggregate reduz os resultados por plataforma em um único resumo. É um
// redutor puro, sem efeitos colaterais, testável independentemente do
// orquestrador. A ordem dos resultados é preservada.
func Aggregate(results []*domain.PlatformCampaignResult) *domain.DistributionResult {
	successful := 0
	for _, r := range results {
		if r.Success {
			successful++
		}
	}

	return &domain.DistributionResult{
		TotalPlatforms: len(results),
		Successful:     successful,
		Failed:         len(results) - successful,
		Results:        results,
	}
}
