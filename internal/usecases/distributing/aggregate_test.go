package distributing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		results  []*domain.PlatformCampaignResult
		validate func(t *testing.T, aggregate *domain.DistributionResult)
	}{
		{
			name:    "Sem resultados - agregado zerado",
			results: []*domain.PlatformCampaignResult{},
			validate: func(t *testing.T, aggregate *domain.DistributionResult) {
				assert.Equal(t, 0, aggregate.TotalPlatforms)
				assert.Equal(t, 0, aggregate.Successful)
				assert.Equal(t, 0, aggregate.Failed)
				assert.Empty(t, aggregate.Results)
			},
		},
		{
			name: "Todos com sucesso",
			results: []*domain.PlatformCampaignResult{
				{Platform: domain.PlatformMeta, Success: true},
				{Platform: domain.PlatformGoogle, Success: true},
			},
			validate: func(t *testing.T, aggregate *domain.DistributionResult) {
				assert.Equal(t, 2, aggregate.TotalPlatforms)
				assert.Equal(t, 2, aggregate.Successful)
				assert.Equal(t, 0, aggregate.Failed)
			},
		},
		{
			name: "Resultado misto - contadores fecham com o total e a ordem é preservada",
			results: []*domain.PlatformCampaignResult{
				{Platform: domain.PlatformMeta, Success: true},
				{Platform: domain.PlatformGoogle, Success: false, FailedStage: domain.StageCreatingAdGroup},
				{Platform: domain.PlatformTikTok, Success: true},
				{Platform: domain.PlatformLinkedIn, Success: false, FailedStage: domain.StageValidating},
			},
			validate: func(t *testing.T, aggregate *domain.DistributionResult) {
				assert.Equal(t, 4, aggregate.TotalPlatforms)
				assert.Equal(t, 2, aggregate.Successful)
				assert.Equal(t, 2, aggregate.Failed)
				assert.Equal(t, aggregate.TotalPlatforms, aggregate.Successful+aggregate.Failed)

				assert.Equal(t, domain.PlatformMeta, aggregate.Results[0].Platform)
				assert.Equal(t, domain.PlatformGoogle, aggregate.Results[1].Platform)
				assert.Equal(t, domain.PlatformTikTok, aggregate.Results[2].Platform)
				assert.Equal(t, domain.PlatformLinkedIn, aggregate.Results[3].Platform)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Aggregate(tt.results))
		})
	}
}
