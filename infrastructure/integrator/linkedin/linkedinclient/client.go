package linkedinclient

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	linkedindomain "github.com/vfg2006/campaign-hub-api/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/pkg/utils"
)

// Client expõe as três chamadas de criação da hierarquia na Campaign
// Manager API do LinkedIn
type Client interface {
	CreateCampaignGroup(ctx context.Context, credentials domain.PlatformCredentials, payload *linkedindomain.CampaignGroupPayload) (string, error)
	CreateCampaign(ctx context.Context, credentials domain.PlatformCredentials, payload *linkedindomain.CampaignPayload) (string, error)
	CreateCreative(ctx context.Context, credentials domain.PlatformCredentials, payload *linkedindomain.CreativePayload) (string, error)
}

// SimulatedClient reproduz o contrato da API do LinkedIn sem sair do
// processo, nos mesmos moldes do cliente simulado do TikTok
type SimulatedClient struct {
	delay time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &SimulatedClient{
		delay: time.Duration(cfg.LinkedIn.SimulatedDelayMillis) * time.Millisecond,
	}
}

func (c *SimulatedClient) CreateCampaignGroup(ctx context.Context, credentials domain.PlatformCredentials, payload *linkedindomain.CampaignGroupPayload) (string, error) {
	return c.simulateCreate(ctx, "CampaignGroup")
}

func (c *SimulatedClient) CreateCampaign(ctx context.Context, credentials domain.PlatformCredentials, payload *linkedindomain.CampaignPayload) (string, error) {
	return c.simulateCreate(ctx, "Campaign")
}

func (c *SimulatedClient) CreateCreative(ctx context.Context, credentials domain.PlatformCredentials, payload *linkedindomain.CreativePayload) (string, error) {
	return c.simulateCreate(ctx, "Creative")
}

func (c *SimulatedClient) simulateCreate(ctx context.Context, entity string) (string, error) {
	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", errors.Wrapf(ctx.Err(), "erro ao chamar a API do LinkedIn (%s)", entity)
	case <-timer.C:
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar identificador simulado")
	}

	id := fmt.Sprintf("urn:li:sponsored%s:%s", entity, suffix)
	logrus.WithField("id", id).Debug("platform: simulated LinkedIn create")

	return id, nil
}
