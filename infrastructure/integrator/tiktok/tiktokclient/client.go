package tiktokclient

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/campaign-hub-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/pkg/utils"
)

// Client expõe as três chamadas de criação da hierarquia na Marketing API
// do TikTok
type Client interface {
	CreateCampaign(ctx context.Context, credentials domain.PlatformCredentials, payload *tiktokdomain.CampaignPayload) (string, error)
	CreateAdGroup(ctx context.Context, credentials domain.PlatformCredentials, payload *tiktokdomain.AdGroupPayload) (string, error)
	CreateAd(ctx context.Context, credentials domain.PlatformCredentials, payload *tiktokdomain.AdPayload) (string, error)
}

// SimulatedClient reproduz o contrato da API do TikTok sem sair do
// processo: espera o delay configurado e devolve identificadores
// fabricados. O delay respeita o cancelamento do contexto, então o timeout
// por plataforma funciona igual ao dos transportes reais.
type SimulatedClient struct {
	delay time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &SimulatedClient{
		delay: time.Duration(cfg.TikTok.SimulatedDelayMillis) * time.Millisecond,
	}
}

func (c *SimulatedClient) CreateCampaign(ctx context.Context, credentials domain.PlatformCredentials, payload *tiktokdomain.CampaignPayload) (string, error) {
	return c.simulateCreate(ctx, "campaign")
}

func (c *SimulatedClient) CreateAdGroup(ctx context.Context, credentials domain.PlatformCredentials, payload *tiktokdomain.AdGroupPayload) (string, error) {
	return c.simulateCreate(ctx, "adgroup")
}

func (c *SimulatedClient) CreateAd(ctx context.Context, credentials domain.PlatformCredentials, payload *tiktokdomain.AdPayload) (string, error) {
	return c.simulateCreate(ctx, "ad")
}

func (c *SimulatedClient) simulateCreate(ctx context.Context, entity string) (string, error) {
	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", errors.Wrapf(ctx.Err(), "erro ao chamar a API do TikTok (%s)", entity)
	case <-timer.C:
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar identificador simulado")
	}

	id := fmt.Sprintf("tt_%s_%s", entity, suffix)
	logrus.WithField("id", id).Debug("platform: simulated TikTok create")

	return id, nil
}
