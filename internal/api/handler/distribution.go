package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/connecting"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/distributing"
	"github.com/vfg2006/campaign-hub-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-hub-api/pkg/middleware"
)

// DistributeRequest carrega a campanha unificada e as plataformas alvo.
// As credenciais podem vir inline (a ordem delas define a ordem dos
// resultados) ou ser resolvidas do repositório de credenciais do usuário a
// partir da lista de plataformas.
type DistributeRequest struct {
	Campaign    *domain.UnifiedCampaignData  `json:"campaign"`
	Platforms   []domain.Platform            `json:"platforms,omitempty"`
	Credentials []domain.PlatformCredentials `json:"credentials,omitempty"`
}

type ValidateRequest struct {
	Campaign  *domain.UnifiedCampaignData `json:"campaign"`
	Platforms []domain.Platform           `json:"platforms,omitempty"`
}

// DistributeCampaign dispara a distribuição concorrente e devolve o
// resultado agregado. Falha por plataforma é dado na resposta, não erro
// HTTP: o status 200 significa que a distribuição foi executada, não que
// todas as plataformas aceitaram a campanha.
func DistributeCampaign(service distributing.Orchestrator, connections connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DistributeCampaign")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req DistributeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		credentials, err := resolveCredentials(userClaims.UserID, &req, connections)
		if err != nil {
			logrus.WithError(err).Error("distribute: failed to resolve credentials")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao resolver credenciais das plataformas", nil)
			return
		}

		result, err := service.DistributeToAll(r.Context(), userClaims.UserID, req.Campaign, credentials)
		if err != nil {
			writeDistributionError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id":    userClaims.UserID,
			"platforms":  result.TotalPlatforms,
			"successful": result.Successful,
			"failed":     result.Failed,
		}).Info("distribute: distribution finished")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// ValidateCampaign roda apenas a etapa de validação dos distribuidores
// pedidos, sem nenhuma chamada remota
func ValidateCampaign(service distributing.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ValidateCampaign")

		var req ValidateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		results, err := service.ValidateCampaign(req.Campaign, req.Platforms)
		if err != nil {
			writeDistributionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

// ListDistributions devolve o histórico de distribuições do usuário,
// incluindo as cadeias parciais de identificadores das falhas
func ListDistributions(service distributing.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListDistributions")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		records, err := service.ListDistributions(userClaims.UserID)
		if err != nil {
			logrus.WithError(err).Error("distributions: failed to list records")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar distribuições", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

// resolveCredentials prioriza as credenciais inline; sem elas, busca no
// repositório as credenciais das plataformas pedidas, na ordem pedida
func resolveCredentials(userID int, req *DistributeRequest, connections connecting.ConnectionService) ([]domain.PlatformCredentials, error) {
	if len(req.Credentials) > 0 {
		return req.Credentials, nil
	}

	if len(req.Platforms) == 0 {
		return nil, nil
	}

	return connections.CredentialsFor(userID, req.Platforms)
}

// writeDistributionError traduz os erros estruturais do orquestrador para
// o código de API correspondente
func writeDistributionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, distributing.ErrMissingCampaign):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados da campanha ausentes", nil)

	case errors.Is(err, distributing.ErrNoCredentials):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma plataforma informada para distribuição", nil)

	case errors.Is(err, distributing.ErrDuplicatePlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma duplicada na requisição", nil)

	case errors.Is(err, distributing.ErrUnknownPlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma desconhecida na requisição", nil)

	default:
		logrus.WithError(err).Error("distribute: unexpected orchestrator error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao distribuir campanha", nil)
	}
}
