package metaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-hub-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/pkg/utils"
)

// Client expõe as três chamadas de criação da hierarquia na Graph API.
// Cada chamada retorna o identificador atribuído pela plataforma.
type Client interface {
	CreateCampaign(ctx context.Context, credentials domain.PlatformCredentials, payload *metadomain.CampaignPayload) (string, error)
	CreateAdSet(ctx context.Context, credentials domain.PlatformCredentials, payload *metadomain.AdSetPayload) (string, error)
	CreateAd(ctx context.Context, credentials domain.PlatformCredentials, payload *metadomain.AdPayload) (string, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		// Timeout por chamada remota, não por distribuição inteira
		HTTPClient: &http.Client{Timeout: cfg.Distribution.PlatformTimeout},
	}
}

func (c *MetaClient) CreateCampaign(ctx context.Context, credentials domain.PlatformCredentials, payload *metadomain.CampaignPayload) (string, error) {
	return c.postCreate(ctx, credentials, "campaigns", payload)
}

func (c *MetaClient) CreateAdSet(ctx context.Context, credentials domain.PlatformCredentials, payload *metadomain.AdSetPayload) (string, error) {
	return c.postCreate(ctx, credentials, "adsets", payload)
}

func (c *MetaClient) CreateAd(ctx context.Context, credentials domain.PlatformCredentials, payload *metadomain.AdPayload) (string, error) {
	return c.postCreate(ctx, credentials, "ads", payload)
}

// postCreate envia o corpo JSON para act_{accountID}/{edge} e devolve o id
// criado. Erros da API viram *metadomain.APIError; erros de rede sobem
// embrulhados para o distribuidor classificar como falha de transporte.
func (c *MetaClient) postCreate(ctx context.Context, credentials domain.PlatformCredentials, edge string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar payload da Graph API")
	}

	baseURL := fmt.Sprintf("%s/act_%s/%s", c.Cfg.Meta.URL, credentials.AdAccountID, edge)

	logrus.Debugf("Payload enviado para a Graph API (%s): %s", edge, utils.PrettyJson(body))

	params := url.Values{}
	params.Add("access_token", credentials.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"?"+params.Encode(), bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao chamar a Graph API (%s)", edge)
	}
	defer resp.Body.Close()

	respBody, err := c.HandleResponse(resp)
	if err != nil {
		return "", err
	}

	var created metadomain.CreateResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		logrus.WithError(err).Error("platform: failed to decode Graph API create response")
		return "", errors.Wrap(err, "erro ao decodificar resposta da Graph API")
	}

	if created.ID == "" {
		return "", &metadomain.APIError{Message: "resposta da Graph API sem identificador"}
	}

	return created.ID, nil
}

// HandleResponse lê o corpo e converte respostas não-2xx no erro tipado da
// API do Meta
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta da Graph API")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return nil, &metadomain.APIError{
			Code:    resp.StatusCode,
			Message: fmt.Sprintf("resposta inesperada da Graph API: status %s", resp.Status),
		}
	}

	if errResp.IsTokenExpired() {
		logrus.WithField("fbtrace_id", errResp.Error.FBTraceID).Warn("platform: Graph API token expired")
	}

	return nil, &metadomain.APIError{
		Code:      errResp.Error.Code,
		Subcode:   errResp.Error.ErrorSubcode,
		Type:      errResp.Error.Type,
		Message:   errResp.Error.Message,
		FBTraceID: errResp.Error.FBTraceID,
	}
}
