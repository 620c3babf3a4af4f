package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
)

const distributionsTable = "distribution_results"

// DistributionRepository guarda o resultado por plataforma de cada
// distribuição como registro burro. A cadeia de identificadores é
// serializada em JSON para que um operador localize campanhas parcialmente
// criadas que exigem limpeza manual.
type DistributionRepository interface {
	SaveRecords(records []*domain.DistributionRecord) error
	ListByUser(userID int) ([]*domain.DistributionRecord, error)
}

type distributionRepository struct {
	conn *postgres.Connection
}

func NewDistributionRepository(conn *postgres.Connection) DistributionRepository {
	return &distributionRepository{
		conn: conn,
	}
}

func (r *distributionRepository) SaveRecords(records []*domain.DistributionRecord) error {
	if len(records) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(distributionsTable).
		Columns("id", "user_id", "campaign_name", "platform", "success", "failed_stage", "error_code", "error_message", "identifiers", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		identifiersJSON, err := json.Marshal(record.Identifiers)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"record_id": record.ID,
				"platform":  record.Platform,
			}).WithError(err).Error("distributions: failed to serialize identifier chain")
			return err
		}

		queryBuilder = queryBuilder.Values(
			record.ID,
			record.UserID,
			record.CampaignName,
			record.Platform,
			record.Success,
			nullableStage(record.FailedStage),
			nullableString(record.ErrorCode),
			nullableString(record.ErrorMessage),
			identifiersJSON,
			record.CreatedAt,
		)
	}

	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(insertSQL, insertArgs...)
	return err
}

func (r *distributionRepository) ListByUser(userID int) ([]*domain.DistributionRecord, error) {
	recordsSQL, recordsArgs, err := squirrel.
		Select("id, user_id, campaign_name, platform, success, failed_stage, error_code, error_message, identifiers, created_at").
		From(distributionsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(recordsSQL, recordsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.DistributionRecord, 0)
	for rows.Next() {
		record, err := deserializeDistributionRecord(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func deserializeDistributionRecord(rows *sql.Rows) (*domain.DistributionRecord, error) {
	record := &domain.DistributionRecord{}

	var failedStage, errorCode, errorMessage sql.NullString
	var identifiersJSON []byte

	if err := rows.Scan(
		&record.ID,
		&record.UserID,
		&record.CampaignName,
		&record.Platform,
		&record.Success,
		&failedStage,
		&errorCode,
		&errorMessage,
		&identifiersJSON,
		&record.CreatedAt,
	); err != nil {
		return nil, err
	}

	if failedStage.Valid {
		record.FailedStage = domain.DistributionStage(failedStage.String)
	}
	record.ErrorCode = errorCode.String
	record.ErrorMessage = errorMessage.String

	if len(identifiersJSON) > 0 {
		if err := json.Unmarshal(identifiersJSON, &record.Identifiers); err != nil {
			return nil, err
		}
	}

	return record, nil
}

func nullableStage(stage domain.DistributionStage) any {
	if stage == "" {
		return nil
	}
	return string(stage)
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
