package distributing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/campaign-hub-api/infrastructure/repository"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-hub-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Erros estruturais da requisição de distribuição (viram resposta 4xx no
// boundary HTTP, diferente das falhas por plataforma que viram dado)
var (
	ErrMissingCampaign   = errors.New("dados da campanha ausentes")
	ErrNoCredentials     = errors.New("nenhuma plataforma informada para distribuição")
	ErrDuplicatePlatform = errors.New("plataforma duplicada na requisição")
	ErrUnknownPlatform   = errors.New("plataforma desconhecida")
)

type Service struct {
	registry         Registry
	distributionRepo repository.DistributionRepository
	cfg              *config.Config
}

func NewService(registry Registry, distributionRepo repository.DistributionRepository, cfg *config.Config) Orchestrator {
	return &Service{
		registry:         registry,
		distributionRepo: distributionRepo,
		cfg:              cfg,
	}
}

// DistributeToAll invoca o distribuidor de cada plataforma requisitada em
// uma goroutine própria. As invocações são isoladas: erro ou panic em um
// distribuidor vira resultado de falha daquela plataforma e nunca aborta
// as demais. A ordem dos resultados segue a ordem de invocação.
func (s *Service) DistributeToAll(
	ctx context.Context,
	userID int,
	campaign *domain.UnifiedCampaignData,
	credentials []domain.PlatformCredentials,
) (*domain.DistributionResult, error) {
	if campaign == nil {
		return nil, ErrMissingCampaign
	}

	if len(credentials) == 0 {
		return nil, ErrNoCredentials
	}

	seen := make(map[domain.Platform]struct{}, len(credentials))
	for _, creds := range credentials {
		if _, dup := seen[creds.Platform]; dup {
			return nil, ErrDuplicatePlatform
		}
		seen[creds.Platform] = struct{}{}
	}

	logrus.WithFields(logrus.Fields{
		"campaign_name": campaign.Name,
		"platforms":     len(credentials),
	}).Info("distribute: starting fan-out to requested platforms")

	// Cada plataforma recebe sua própria posição no slice; não há estado
	// mutável compartilhado entre as goroutines
	results := make([]*domain.PlatformCampaignResult, len(credentials))

	var wg sync.WaitGroup
	for i, creds := range credentials {
		wg.Add(1)

		go func(idx int, creds domain.PlatformCredentials) {
			defer wg.Done()

			// Panic dentro de um distribuidor não pode derrubar a
			// requisição nem suprimir os resultados das outras plataformas
			defer func() {
				if rec := recover(); rec != nil {
					logrus.WithFields(logrus.Fields{
						"platform": creds.Platform,
						"panic":    rec,
					}).Error("distribute: distributor panicked, converting to failure result")

					results[idx] = &domain.PlatformCampaignResult{
						Platform:     creds.Platform,
						Success:      false,
						FailedStage:  domain.StageValidating,
						ErrorCode:    apiErrors.ErrDistributionInternal,
						ErrorMessage: "falha interna no distribuidor da plataforma",
					}
				}
			}()

			results[idx] = s.distributeOne(ctx, campaign, creds)
		}(i, creds)
	}

	wg.Wait()

	aggregate := Aggregate(results)

	logrus.WithFields(logrus.Fields{
		"campaign_name": campaign.Name,
		"successful":    aggregate.Successful,
		"failed":        aggregate.Failed,
	}).Info("distribute: fan-out completed")

	s.persistRecords(userID, campaign.Name, results)

	return aggregate, nil
}

// distributeOne resolve o distribuidor no registro e executa a tentativa
// única daquela plataforma
func (s *Service) distributeOne(
	ctx context.Context,
	campaign *domain.UnifiedCampaignData,
	creds domain.PlatformCredentials,
) *domain.PlatformCampaignResult {
	distributor, ok := s.registry[creds.Platform]
	if !ok {
		return &domain.PlatformCampaignResult{
			Platform:     creds.Platform,
			Success:      false,
			FailedStage:  domain.StageValidating,
			ErrorCode:    apiErrors.ErrDistributionUnsupported,
			ErrorMessage: "plataforma sem distribuidor registrado",
		}
	}

	return distributor.Distribute(ctx, campaign, creds)
}

// ValidateCampaign executa a validação pura de cada plataforma pedida sem
// tocar em nenhuma API remota. Plataformas vazias valida contra todas as
// registradas, na ordem canônica.
func (s *Service) ValidateCampaign(
	campaign *domain.UnifiedCampaignData,
	platforms []domain.Platform,
) (map[domain.Platform]*domain.ValidationResult, error) {
	if campaign == nil {
		return nil, ErrMissingCampaign
	}

	if len(platforms) == 0 {
		for _, p := range domain.AllPlatforms {
			if _, ok := s.registry[p]; ok {
				platforms = append(platforms, p)
			}
		}
	}

	validations := make(map[domain.Platform]*domain.ValidationResult, len(platforms))
	for _, p := range platforms {
		distributor, ok := s.registry[p]
		if !ok {
			return nil, ErrUnknownPlatform
		}

		validations[p] = distributor.ValidateCampaignData(campaign)
	}

	return validations, nil
}

func (s *Service) ListDistributions(userID int) ([]*domain.DistributionRecord, error) {
	return s.distributionRepo.ListByUser(userID)
}

// persistRecords grava o resultado por plataforma como registro burro no
// banco. Falha de escrita não altera o resultado da distribuição, apenas
// é logada.
func (s *Service) persistRecords(userID int, campaignName string, results []*domain.PlatformCampaignResult) {
	if s.distributionRepo == nil {
		return
	}

	records := make([]*domain.DistributionRecord, 0, len(results))
	for _, r := range results {
		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Warn("distribute: failed to generate distribution record id")
			continue
		}

		records = append(records, &domain.DistributionRecord{
			ID:           id,
			UserID:       userID,
			CampaignName: campaignName,
			Platform:     r.Platform,
			Success:      r.Success,
			FailedStage:  r.FailedStage,
			ErrorCode:    r.ErrorCode,
			ErrorMessage: r.ErrorMessage,
			Identifiers:  r.Identifiers,
			CreatedAt:    time.Now(),
		})
	}

	if err := s.distributionRepo.SaveRecords(records); err != nil {
		logrus.WithError(err).Error("distribute: failed to persist distribution records")
	}
}
