package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
)

const (
	credentialsTable         = "platform_credentials"
	platformConnectionsTable = "platform_connections"
)

// CredentialRepository é o colaborador de guarda de credenciais: fornece,
// por usuário e plataforma, o token de acesso e os identificadores de conta
// necessários para chamar a plataforma. O núcleo de distribuição nunca
// persiste credenciais por conta própria.
type CredentialRepository interface {
	GetByUserAndPlatform(userID int, platform domain.Platform) (*domain.StoredCredential, error)
	ListByUser(userID int) ([]*domain.StoredCredential, error)
	ListAll() ([]*domain.StoredCredential, error)
	SaveOrUpdate(credential *domain.StoredCredential) error
	Delete(userID int, platform domain.Platform) error
	SaveConnectionSnapshots(snapshots []*domain.ConnectionSnapshot) error
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

func (r *credentialRepository) GetByUserAndPlatform(userID int, platform domain.Platform) (*domain.StoredCredential, error) {
	credentialSQL, credentialArgs, err := squirrel.
		Select("id, user_id, platform, access_token, ad_account_id, customer_id, developer_token, advertiser_id, expires_at, created_at, updated_at").
		From(credentialsTable).
		Where(squirrel.Eq{"user_id": userID, "platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(credentialSQL, credentialArgs...)

	credential, err := deserializeCredential(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return credential, nil
}

func (r *credentialRepository) ListByUser(userID int) ([]*domain.StoredCredential, error) {
	return r.listCredentials(squirrel.Eq{"user_id": userID})
}

func (r *credentialRepository) ListAll() ([]*domain.StoredCredential, error) {
	return r.listCredentials(nil)
}

func (r *credentialRepository) listCredentials(whereClause map[string]interface{}) ([]*domain.StoredCredential, error) {
	queryBuilder := squirrel.
		Select("id, user_id, platform, access_token, ad_account_id, customer_id, developer_token, advertiser_id, expires_at, created_at, updated_at").
		From(credentialsTable).
		OrderBy("user_id ASC, platform ASC").
		PlaceholderFormat(squirrel.Dollar)

	if whereClause != nil {
		queryBuilder = queryBuilder.Where(whereClause)
	}

	credentialsSQL, credentialsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(credentialsSQL, credentialsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	credentials := make([]*domain.StoredCredential, 0)
	for rows.Next() {
		credential := &domain.StoredCredential{}
		if err := rows.Scan(
			&credential.ID,
			&credential.UserID,
			&credential.Platform,
			&credential.AccessToken,
			&credential.AdAccountID,
			&credential.CustomerID,
			&credential.DeveloperToken,
			&credential.AdvertiserID,
			&credential.ExpiresAt,
			&credential.CreatedAt,
			&credential.UpdatedAt,
		); err != nil {
			return nil, err
		}

		credentials = append(credentials, credential)
	}

	return credentials, rows.Err()
}

func (r *credentialRepository) SaveOrUpdate(credential *domain.StoredCredential) error {
	now := time.Now()

	upsertSQL, upsertArgs, err := squirrel.
		Insert(credentialsTable).
		Columns("id", "user_id", "platform", "access_token", "ad_account_id", "customer_id", "developer_token", "advertiser_id", "expires_at", "created_at", "updated_at").
		Values(
			credential.ID,
			credential.UserID,
			credential.Platform,
			credential.AccessToken,
			credential.AdAccountID,
			credential.CustomerID,
			credential.DeveloperToken,
			credential.AdvertiserID,
			credential.ExpiresAt,
			now,
			now,
		).
		Suffix(`ON CONFLICT (user_id, platform) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			ad_account_id = EXCLUDED.ad_account_id,
			customer_id = EXCLUDED.customer_id,
			developer_token = EXCLUDED.developer_token,
			advertiser_id = EXCLUDED.advertiser_id,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(upsertSQL, upsertArgs...)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":  credential.UserID,
			"platform": credential.Platform,
		}).WithError(err).Error("credentials: failed to save credential")
		return err
	}

	return nil
}

func (r *credentialRepository) Delete(userID int, platform domain.Platform) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(credentialsTable).
		Where(squirrel.Eq{"user_id": userID, "platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(deleteSQL, deleteArgs...)
	return err
}

// SaveConnectionSnapshots materializa o retrato de conexão calculado pelo
// agendador, uma linha por usuário e plataforma
func (r *credentialRepository) SaveConnectionSnapshots(snapshots []*domain.ConnectionSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, snapshot := range snapshots {
			upsertSQL, upsertArgs, err := squirrel.
				Insert(platformConnectionsTable).
				Columns("user_id", "platform", "connected", "message", "checked_at").
				Values(snapshot.UserID, snapshot.Platform, snapshot.Connected, snapshot.Message, snapshot.CheckedAt).
				Suffix(`ON CONFLICT (user_id, platform) DO UPDATE SET
					connected = EXCLUDED.connected,
					message = EXCLUDED.message,
					checked_at = EXCLUDED.checked_at`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			if _, err := tx.Exec(upsertSQL, upsertArgs...); err != nil {
				return err
			}
		}

		return nil
	})
}

func deserializeCredential(row *sql.Row) (*domain.StoredCredential, error) {
	credential := &domain.StoredCredential{}

	if err := row.Scan(
		&credential.ID,
		&credential.UserID,
		&credential.Platform,
		&credential.AccessToken,
		&credential.AdAccountID,
		&credential.CustomerID,
		&credential.DeveloperToken,
		&credential.AdvertiserID,
		&credential.ExpiresAt,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return credential, nil
}
