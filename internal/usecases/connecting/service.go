package connecting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-hub-api/infrastructure/repository"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"github.com/vfg2006/campaign-hub-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-hub-api/pkg/utils"
)

// ConnectionService responde qual o estado do vínculo de cada usuário com
// as plataformas de anúncio e administra as credenciais que sustentam esse
// vínculo
type ConnectionService interface {
	PlatformStatus(userID int, platform domain.Platform) (*domain.PlatformConnection, error)
	ListStatuses(userID int) ([]*domain.PlatformConnection, error)
	SaveCredential(userID int, platform domain.Platform, request *domain.SaveCredentialRequest) (*domain.StoredCredential, error)
	RemoveCredential(userID int, platform domain.Platform) error
	CredentialsFor(userID int, platforms []domain.Platform) ([]domain.PlatformCredentials, error)
	RefreshSnapshots() (int, error)
}

type Service struct {
	credentialRepository repository.CredentialRepository
}

func NewService(credentialRepository repository.CredentialRepository) ConnectionService {
	return &Service{
		credentialRepository: credentialRepository,
	}
}

// PlatformStatus deriva o estado de conexão do repositório de credenciais:
// conectado significa token cadastrado e dentro da validade
func (s *Service) PlatformStatus(userID int, platform domain.Platform) (*domain.PlatformConnection, error) {
	credential, err := s.credentialRepository.GetByUserAndPlatform(userID, platform)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(platform), "falha ao buscar credencial")
	}

	return connectionFrom(platform, credential, time.Now()), nil
}

// ListStatuses devolve o estado de todas as plataformas suportadas, na
// ordem canônica, tenham ou não credencial cadastrada
func (s *Service) ListStatuses(userID int) ([]*domain.PlatformConnection, error) {
	credentials, err := s.credentialRepository.ListByUser(userID)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "falha ao listar credenciais")
	}

	byPlatform := make(map[domain.Platform]*domain.StoredCredential, len(credentials))
	for _, credential := range credentials {
		byPlatform[credential.Platform] = credential
	}

	now := time.Now()
	connections := make([]*domain.PlatformConnection, 0, len(domain.AllPlatforms))
	for _, platform := range domain.AllPlatforms {
		connections = append(connections, connectionFrom(platform, byPlatform[platform], now))
	}

	return connections, nil
}

func (s *Service) SaveCredential(userID int, platform domain.Platform, request *domain.SaveCredentialRequest) (*domain.StoredCredential, error) {
	if request == nil || request.AccessToken == "" {
		return nil, NewConnectionError(ErrMissingAccessToken, apiErrors.ErrMissingRequiredData, string(platform), "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewConnectionError(err, apiErrors.ErrInternalServer, string(platform), "falha ao gerar identificador")
	}

	credential := &domain.StoredCredential{
		ID:             id,
		UserID:         userID,
		Platform:       platform,
		AccessToken:    request.AccessToken,
		AdAccountID:    request.AdAccountID,
		CustomerID:     request.CustomerID,
		DeveloperToken: request.DeveloperToken,
		AdvertiserID:   request.AdvertiserID,
		ExpiresAt:      request.ExpiresAt,
	}

	if err := s.credentialRepository.SaveOrUpdate(credential); err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(platform), "falha ao salvar credencial")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"platform": platform,
	}).Info("credentials: credential saved")

	return credential, nil
}

func (s *Service) RemoveCredential(userID int, platform domain.Platform) error {
	if err := s.credentialRepository.Delete(userID, platform); err != nil {
		return NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(platform), "falha ao remover credencial")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"platform": platform,
	}).Info("credentials: credential removed")

	return nil
}

// CredentialsFor resolve as credenciais armazenadas das plataformas
// pedidas, preservando a ordem da lista. Plataforma sem credencial entra
// com o registro vazio: o distribuidor é quem reporta a falta como falha
// de credencial, mantendo o isolamento entre plataformas.
func (s *Service) CredentialsFor(userID int, platforms []domain.Platform) ([]domain.PlatformCredentials, error) {
	resolved := make([]domain.PlatformCredentials, 0, len(platforms))

	for _, platform := range platforms {
		credential, err := s.credentialRepository.GetByUserAndPlatform(userID, platform)
		if err != nil {
			return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(platform), "falha ao buscar credencial")
		}

		if credential == nil {
			resolved = append(resolved, domain.PlatformCredentials{Platform: platform})
			continue
		}

		resolved = append(resolved, credential.ToPlatformCredentials())
	}

	return resolved, nil
}

// RefreshSnapshots materializa o retrato de conexão de todos os usuários
// com credencial cadastrada. Chamado pelo agendador de sincronização.
func (s *Service) RefreshSnapshots() (int, error) {
	credentials, err := s.credentialRepository.ListAll()
	if err != nil {
		return 0, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "falha ao listar credenciais")
	}

	now := time.Now()
	snapshots := make([]*domain.ConnectionSnapshot, 0, len(credentials))
	for _, credential := range credentials {
		connection := connectionFrom(credential.Platform, credential, now)
		snapshots = append(snapshots, &domain.ConnectionSnapshot{
			UserID:    credential.UserID,
			Platform:  credential.Platform,
			Connected: connection.Connected,
			Message:   connection.Message,
			CheckedAt: connection.CheckedAt,
		})
	}

	if len(snapshots) == 0 {
		return 0, nil
	}

	if err := s.credentialRepository.SaveConnectionSnapshots(snapshots); err != nil {
		return 0, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "falha ao salvar retratos de conexão")
	}

	return len(snapshots), nil
}

func connectionFrom(platform domain.Platform, credential *domain.StoredCredential, now time.Time) *domain.PlatformConnection {
	connection := &domain.PlatformConnection{
		Platform:  platform,
		CheckedAt: now,
	}

	switch {
	case credential == nil:
		connection.Message = "nenhuma credencial cadastrada"
	case credential.IsExpired(now):
		connection.Message = "token expirado"
	default:
		connection.Connected = true
		connection.Message = "conectado"
	}

	return connection
}
