package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/internal/usecases/connecting"
	"github.com/vfg2006/campaign-hub-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-hub-api/pkg/middleware"
)

// GetPlatformStatus devolve o estado de conexão do usuário com uma
// plataforma específica
func GetPlatformStatus(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPlatformStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		platform, ok := platformFromRequest(w, r)
		if !ok {
			return
		}

		connection, err := service.PlatformStatus(userClaims.UserID, platform)
		if err != nil {
			writeConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(connection)
	}
}

// ListPlatformStatuses devolve o estado de todas as plataformas suportadas
func ListPlatformStatuses(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListPlatformStatuses")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		connections, err := service.ListStatuses(userClaims.UserID)
		if err != nil {
			writeConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(connections)
	}
}

// SaveCredential cadastra ou atualiza a credencial do usuário para uma
// plataforma. O token nunca volta na resposta.
func SaveCredential(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveCredential")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		platform, ok := platformFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.SaveCredentialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		credential, err := service.SaveCredential(userClaims.UserID, platform, &req)
		if err != nil {
			writeConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(credential)
	}
}

// DeleteCredential remove a credencial do usuário para uma plataforma
func DeleteCredential(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCredential")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		platform, ok := platformFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.RemoveCredential(userClaims.UserID, platform); err != nil {
			writeConnectionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func platformFromRequest(w http.ResponseWriter, r *http.Request) (domain.Platform, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("platform")

	platform, err := domain.ParsePlatform(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma desconhecida", map[string]any{
			"platform": raw,
		})
		return "", false
	}

	return platform, true
}

func writeConnectionError(w http.ResponseWriter, err error) {
	var connErr *connecting.ConnectionError
	if errors.As(err, &connErr) {
		apiErrors.WriteError(w, connErr.Code, connErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("credentials: unexpected connection error")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao consultar conexões", nil)
}
