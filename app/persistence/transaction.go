/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package persistence

import (
	"context"
	"database/sql"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	hErrors "github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/jackc/pgtype"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	insertTransactionRecord = `insert into transaction_record (
                               consensus_timestamp,
                               child_records,
                               entity_id,
                               hbar_transfers,
                               memo,
                               nft_transfers,
                               payer_account_id,
                               status,
                               token_transfers,
                               transaction_id,
                               type,
                               valid_start_ns
                             ) values (
                               @consensus_timestamp,
                               @child_records,
                               @entity_id,
                               @hbar_transfers,
                               @memo,
                               @nft_transfers,
                               @payer_account_id,
                               @status,
                               @token_transfers,
                               @transaction_id,
                               @type,
                               @valid_start_ns
                             )`
	selectTransactionRecordByTransactionId = `select * from transaction_record
                                            where transaction_id = @transaction_id
                                            order by consensus_timestamp desc
                                            limit 1`
	selectTransactionRecordsInTimestampRange = `select * from transaction_record
                                              where consensus_timestamp <@ @timestamp_range ::int8range
                                              order by consensus_timestamp`
)

// transactionRecord is the row of a settled transaction, the transfer lists and the child records are stored as
// jsonb in the same shape the api renders them
type transactionRecord struct {
	ChildRecords       pgtype.JSONB
	ConsensusTimestamp int64 `gorm:"primaryKey"`
	EntityId           *domain.EntityId
	HbarTransfers      pgtype.JSONB
	Memo               string
	NftTransfers       pgtype.JSONB
	PayerAccountId     domain.EntityId
	Status             string
	TokenTransfers     pgtype.JSONB
	TransactionId      string
	Type               string
	ValidStartNs       int64
}

func (transactionRecord) TableName() string {
	return "transaction_record"
}

func newTransactionRecord(record *types.TransactionRecord) (*transactionRecord, error) {
	row := &transactionRecord{
		ConsensusTimestamp: record.ConsensusTimestamp,
		Memo:               record.Memo,
		PayerAccountId:     record.TransactionId.PayerAccountId,
		Status:             record.Status,
		TransactionId:      record.TransactionId.String(),
		Type:               record.Type,
		ValidStartNs:       record.TransactionId.ValidStartNs,
	}

	if !record.EntityId.IsZero() {
		entityId := record.EntityId
		row.EntityId = &entityId
	}

	if err := setJsonb(&row.ChildRecords, record.ChildRecords); err != nil {
		return nil, err
	}
	if err := setJsonb(&row.HbarTransfers, record.HbarTransfers); err != nil {
		return nil, err
	}
	if err := setJsonb(&row.NftTransfers, record.NftTransfers); err != nil {
		return nil, err
	}
	if err := setJsonb(&row.TokenTransfers, record.TokenTransfers); err != nil {
		return nil, err
	}

	return row, nil
}

func (t *transactionRecord) toTransactionRecord() (*types.TransactionRecord, error) {
	record := &types.TransactionRecord{
		ConsensusTimestamp: t.ConsensusTimestamp,
		Memo:               t.Memo,
		Status:             t.Status,
		TransactionId:      types.TransactionId{PayerAccountId: t.PayerAccountId, ValidStartNs: t.ValidStartNs},
		Type:               t.Type,
	}

	if t.EntityId != nil {
		record.EntityId = *t.EntityId
	}

	columns := []struct {
		src pgtype.JSONB
		dst interface{}
	}{
		{t.ChildRecords, &record.ChildRecords},
		{t.HbarTransfers, &record.HbarTransfers},
		{t.NftTransfers, &record.NftTransfers},
		{t.TokenTransfers, &record.TokenTransfers},
	}
	for _, column := range columns {
		if column.src.Status != pgtype.Present {
			continue
		}

		if err := column.src.AssignTo(column.dst); err != nil {
			return nil, errors.Wrapf(err, "failed to decode jsonb of record %s", t.TransactionId)
		}
	}

	return record, nil
}

// setJsonb stores the slice, an empty slice is stored as null
func setJsonb[T any](dst *pgtype.JSONB, src []T) error {
	if len(src) == 0 {
		*dst = pgtype.JSONB{Status: pgtype.Null}
		return nil
	}

	return errors.WithStack(dst.Set(src))
}

// transactionRecordRepository implements interfaces.RecordRepository on top of postgres
type transactionRecordRepository struct {
	dbClient interfaces.DbClient
}

// NewTransactionRecordRepository creates an instance of a transactionRecordRepository struct
func NewTransactionRecordRepository(dbClient interfaces.DbClient) interfaces.RecordRepository {
	return &transactionRecordRepository{dbClient: dbClient}
}

func (tr *transactionRecordRepository) Add(ctx context.Context, record *types.TransactionRecord) *rTypes.Error {
	row, err := newTransactionRecord(record)
	if err != nil {
		log.Errorf("Failed to encode record of transaction %s: %s", record.TransactionId, err)
		return hErrors.ErrInternalServerError
	}

	db, cancel := tr.dbClient.GetDbWithContext(ctx)
	defer cancel()

	if err := db.Exec(
		insertTransactionRecord,
		sql.Named("consensus_timestamp", row.ConsensusTimestamp),
		sql.Named("child_records", row.ChildRecords),
		sql.Named("entity_id", row.EntityId),
		sql.Named("hbar_transfers", row.HbarTransfers),
		sql.Named("memo", row.Memo),
		sql.Named("nft_transfers", row.NftTransfers),
		sql.Named("payer_account_id", row.PayerAccountId),
		sql.Named("status", row.Status),
		sql.Named("token_transfers", row.TokenTransfers),
		sql.Named("transaction_id", row.TransactionId),
		sql.Named("type", row.Type),
		sql.Named("valid_start_ns", row.ValidStartNs),
	).Error; err != nil {
		return handleDatabaseError(err, hErrors.ErrDatabaseError)
	}

	return nil
}

func (tr *transactionRecordRepository) FindBetween(ctx context.Context, start, end int64) (
	[]*types.TransactionRecord,
	*rTypes.Error,
) {
	if start > end {
		return nil, hErrors.AddErrorDetails(hErrors.ErrInvalidArgument, "cause", "start is after end")
	}

	db, cancel := tr.dbClient.GetDbWithContext(ctx)
	defer cancel()

	rows := make([]transactionRecord, 0)
	if err := db.Raw(
		selectTransactionRecordsInTimestampRange,
		sql.Named(timestampRangeSqlArgName, getInclusiveInt8Range(start, end)),
	).Find(&rows).Error; err != nil {
		return nil, handleDatabaseError(err, hErrors.ErrDatabaseError)
	}

	records := make([]*types.TransactionRecord, 0, len(rows))
	for i := range rows {
		record, err := rows[i].toTransactionRecord()
		if err != nil {
			log.Errorf(databaseErrorFormat, hErrors.ErrDatabaseError.Message, err)
			return nil, hErrors.ErrDatabaseError
		}
		records = append(records, record)
	}

	return records, nil
}

func (tr *transactionRecordRepository) FindByTransactionId(ctx context.Context, transactionId string) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	db, cancel := tr.dbClient.GetDbWithContext(ctx)
	defer cancel()

	row := &transactionRecord{}
	if err := db.Raw(
		selectTransactionRecordByTransactionId,
		sql.Named("transaction_id", transactionId),
	).First(row).Error; err != nil {
		return nil, handleDatabaseError(err, hErrors.ErrNotFound)
	}

	record, err := row.toTransactionRecord()
	if err != nil {
		log.Errorf(databaseErrorFormat, hErrors.ErrDatabaseError.Message, err)
		return nil, hErrors.ErrDatabaseError
	}

	return record, nil
}
