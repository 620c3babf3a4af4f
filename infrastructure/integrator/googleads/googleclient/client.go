package googleclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/campaign-hub-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
)

// Client expõe as operações de mutate usadas na criação da hierarquia no
// Google Ads. Cada chamada devolve o resource name atribuído.
type Client interface {
	CreateCampaignBudget(ctx context.Context, credentials domain.PlatformCredentials, operation *googledomain.CampaignBudgetOperation) (string, error)
	CreateCampaign(ctx context.Context, credentials domain.PlatformCredentials, operation *googledomain.CampaignOperation) (string, error)
	CreateAdGroup(ctx context.Context, credentials domain.PlatformCredentials, operation *googledomain.AdGroupOperation) (string, error)
	CreateAd(ctx context.Context, credentials domain.PlatformCredentials, operation *googledomain.AdGroupAdOperation) (string, error)
	CreateAdGroupCriteria(ctx context.Context, credentials domain.PlatformCredentials, operations []*googledomain.AdGroupCriterionOperation) error
}

type GoogleAdsClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Distribution.PlatformTimeout},
	}
}

func (c *GoogleAdsClient) CreateCampaignBudget(ctx context.Context, credentials domain.PlatformCredentials, operation *googledomain.CampaignBudgetOperation) (string, error) {
	return c.mutate(ctx, credentials, "campaignBudgets", operation)
}

func (c *GoogleAdsClient) CreateCampaign(ctx context.Context, credentials domain.PlatformCredentials, operation *googledomain.CampaignOperation) (string, error) {
	return c.mutate(ctx, credentials, "campaigns", operation)
}

func (c *GoogleAdsClient) CreateAdGroup(ctx context.Context, credentials domain.PlatformCredentials, operation *googledomain.AdGroupOperation) (string, error) {
	return c.mutate(ctx, credentials, "adGroups", operation)
}

func (c *GoogleAdsClient) CreateAd(ctx context.Context, credentials domain.PlatformCredentials, operation *googledomain.AdGroupAdOperation) (string, error) {
	return c.mutate(ctx, credentials, "adGroupAds", operation)
}

// CreateAdGroupCriteria anexa os critérios de segmentação ao grupo de
// anúncios em um único mutate. Diferente das criações da hierarquia, não há
// resource name a devolver.
func (c *GoogleAdsClient) CreateAdGroupCriteria(ctx context.Context, credentials domain.PlatformCredentials, operations []*googledomain.AdGroupCriterionOperation) error {
	creates := make([]map[string]any, 0, len(operations))
	for _, operation := range operations {
		creates = append(creates, map[string]any{"create": operation})
	}

	body, err := json.Marshal(map[string]any{"operations": creates})
	if err != nil {
		return errors.Wrap(err, "erro ao serializar operações de criteria do Google Ads")
	}

	endpoint := fmt.Sprintf("%s/customers/%s/adGroupCriteria:mutate", c.Cfg.GoogleAds.URL, credentials.CustomerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credentials.AccessToken)
	req.Header.Set("developer-token", credentials.DeveloperToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao chamar a API do Google Ads (adGroupCriteria)")
	}
	defer resp.Body.Close()

	if _, err := c.HandleResponse(resp); err != nil {
		return err
	}

	return nil
}

// mutate envia uma única operação de criação para
// customers/{customerID}/{resource}:mutate. Erros da API viram
// *googledomain.APIError; erros de rede sobem embrulhados.
func (c *GoogleAdsClient) mutate(ctx context.Context, credentials domain.PlatformCredentials, resource string, operation any) (string, error) {
	payload := map[string]any{
		"operations": []map[string]any{
			{"create": operation},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar operação do Google Ads")
	}

	endpoint := fmt.Sprintf("%s/customers/%s/%s:mutate", c.Cfg.GoogleAds.URL, credentials.CustomerID, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credentials.AccessToken)
	req.Header.Set("developer-token", credentials.DeveloperToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao chamar a API do Google Ads (%s)", resource)
	}
	defer resp.Body.Close()

	respBody, err := c.HandleResponse(resp)
	if err != nil {
		return "", err
	}

	var mutated googledomain.MutateResponse
	if err := json.Unmarshal(respBody, &mutated); err != nil {
		logrus.WithError(err).Error("platform: failed to decode Google Ads mutate response")
		return "", errors.Wrap(err, "erro ao decodificar resposta do Google Ads")
	}

	if len(mutated.Results) == 0 || mutated.Results[0].ResourceName == "" {
		return "", &googledomain.APIError{Message: "resposta do Google Ads sem resource name"}
	}

	return mutated.Results[0].ResourceName, nil
}

// HandleResponse lê o corpo e converte respostas não-2xx no erro tipado da
// API do Google Ads
func (c *GoogleAdsClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta do Google Ads")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var errResp googledomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == nil {
		return nil, &googledomain.APIError{
			Code:    resp.StatusCode,
			Message: fmt.Sprintf("resposta inesperada do Google Ads: status %s", resp.Status),
		}
	}

	return nil, errResp.Error
}
