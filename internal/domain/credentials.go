package domain

import "time"

// PlatformCredentials carrega o token e os identificadores de conta que uma
// plataforma exige para criar campanhas. Os campos extras são específicos
// por plataforma: AdAccountID (Facebook), CustomerID + DeveloperToken
// (Google), AdvertiserID (TikTok e LinkedIn). O núcleo nunca persiste o
// valor do token em logs ou respostas.
type PlatformCredentials struct {
	Platform       Platform `json:"platform"`
	AccessToken    string   `json:"access_token"`
	AdAccountID    string   `json:"ad_account_id,omitempty"`
	CustomerID     string   `json:"customer_id,omitempty"`
	DeveloperToken string   `json:"developer_token,omitempty"`
	AdvertiserID   string   `json:"advertiser_id,omitempty"`
}

// StoredCredential é o registro de credencial guardado por usuário e
// plataforma no repositório de credenciais
type StoredCredential struct {
	ID             string     `json:"id"`
	UserID         int        `json:"user_id"`
	Platform       Platform   `json:"platform"`
	AccessToken    string     `json:"-"`
	AdAccountID    *string    `json:"ad_account_id,omitempty"`
	CustomerID     *string    `json:"customer_id,omitempty"`
	DeveloperToken *string    `json:"-"`
	AdvertiserID   *string    `json:"advertiser_id,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToPlatformCredentials converte o registro armazenado no formato consumido
// pelos distribuidores
func (s *StoredCredential) ToPlatformCredentials() PlatformCredentials {
	creds := PlatformCredentials{
		Platform:    s.Platform,
		AccessToken: s.AccessToken,
	}

	if s.AdAccountID != nil {
		creds.AdAccountID = *s.AdAccountID
	}
	if s.CustomerID != nil {
		creds.CustomerID = *s.CustomerID
	}
	if s.DeveloperToken != nil {
		creds.DeveloperToken = *s.DeveloperToken
	}
	if s.AdvertiserID != nil {
		creds.AdvertiserID = *s.AdvertiserID
	}

	return creds
}

// IsExpired indica se o token armazenado já passou da validade
func (s *StoredCredential) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(now)
}

// PlatformConnection é o retrato do vínculo de um usuário com uma
// plataforma, derivado do repositório de credenciais
type PlatformConnection struct {
	Platform  Platform  `json:"platform"`
	Connected bool      `json:"connected"`
	Message   string    `json:"message"`
	CheckedAt time.Time `json:"checked_at"`
}

// ConnectionSnapshot é a linha materializada pelo agendador de status de
// conexão, consumida pelo dashboard sem recalcular credencial por credencial
type ConnectionSnapshot struct {
	UserID    int       `json:"user_id"`
	Platform  Platform  `json:"platform"`
	Connected bool      `json:"connected"`
	Message   string    `json:"message"`
	CheckedAt time.Time `json:"checked_at"`
}

// SaveCredentialRequest é o corpo aceito para cadastrar ou atualizar a
// credencial de uma plataforma
type SaveCredentialRequest struct {
	AccessToken    string     `json:"access_token"`
	AdAccountID    *string    `json:"ad_account_id,omitempty"`
	CustomerID     *string    `json:"customer_id,omitempty"`
	DeveloperToken *string    `json:"developer_token,omitempty"`
	AdvertiserID   *string    `json:"advertiser_id,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}
