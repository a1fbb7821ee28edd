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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hashgraph/hedera-settlement/app/db"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	hErrors "github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/hashgraph/hedera-settlement/test/mocks"
	"github.com/jackc/pgtype"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	consensusTimestamp int64 = 1700000000000000123
	validStartNs       int64 = 1700000000000000000
)

var (
	payerId     = domain.MustDecodeEntityId(1001)
	receiverId  = domain.MustDecodeEntityId(1002)
	collectorId = domain.MustDecodeEntityId(1003)
	createdId   = domain.MustDecodeEntityId(2001)
	tokenId     = domain.MustDecodeEntityId(3001)
	nftId       = domain.MustDecodeEntityId(3010)

	recordColumns = []string{
		"consensus_timestamp",
		"child_records",
		"entity_id",
		"hbar_transfers",
		"memo",
		"nft_transfers",
		"payer_account_id",
		"status",
		"token_transfers",
		"transaction_id",
		"type",
		"valid_start_ns",
	}
)

func newRecord(consensusTimestamp int64) *types.TransactionRecord {
	return &types.TransactionRecord{
		ChildRecords: []types.ChildRecord{
			{AccountId: createdId, Alias: []byte{0x12, 0x20, 0x01}, Kind: types.ChildRecordAccountCreated},
			{AccountId: payerId, Amount: 10, CollectorId: collectorId, Kind: types.ChildRecordFeePaid, TokenId: tokenId},
		},
		ConsensusTimestamp: consensusTimestamp,
		HbarTransfers: []types.HbarTransfer{
			{AccountId: payerId, Amount: -100},
			{AccountId: receiverId, Amount: 100},
		},
		Memo: "memo",
		NftTransfers: []types.NftMovement{
			{ReceiverAccountId: receiverId, SenderAccountId: payerId, SerialNumber: 1, TokenId: nftId},
		},
		Status: types.Success.String(),
		TokenTransfers: []types.TokenTransfer{
			{AccountId: payerId, Amount: -60, TokenId: tokenId},
			{AccountId: receiverId, Amount: 50, TokenId: tokenId},
			{AccountId: collectorId, Amount: 10, TokenId: tokenId},
		},
		TransactionId: types.TransactionId{PayerAccountId: payerId, ValidStartNs: validStartNs},
		Type:          types.TransactionTypeCryptoTransfer,
	}
}

func addRecordRow(t *testing.T, rows *sqlmock.Rows, record *types.TransactionRecord) *sqlmock.Rows {
	row, err := newTransactionRecord(record)
	require.NoError(t, err)

	var entityId interface{}
	if row.EntityId != nil {
		entityId = row.EntityId.EncodedId
	}

	return rows.AddRow(
		row.ConsensusTimestamp,
		jsonbValue(row.ChildRecords),
		entityId,
		jsonbValue(row.HbarTransfers),
		row.Memo,
		jsonbValue(row.NftTransfers),
		row.PayerAccountId.EncodedId,
		row.Status,
		jsonbValue(row.TokenTransfers),
		row.TransactionId,
		row.Type,
		row.ValidStartNs,
	)
}

func jsonbValue(jsonb pgtype.JSONB) interface{} {
	if jsonb.Status != pgtype.Present {
		return nil
	}

	return jsonb.Bytes
}

func TestTransactionRecordTableName(t *testing.T) {
	assert.Equal(t, "transaction_record", transactionRecord{}.TableName())
}

func TestTransactionRecordConversion(t *testing.T) {
	for _, record := range []*types.TransactionRecord{
		newRecord(consensusTimestamp),
		{
			ConsensusTimestamp: consensusTimestamp,
			EntityId:           createdId,
			Status:             types.Success.String(),
			TransactionId:      types.TransactionId{PayerAccountId: payerId, ValidStartNs: validStartNs},
			Type:               types.TransactionTypeCryptoCreateAccount,
		},
	} {
		row, err := newTransactionRecord(record)
		require.NoError(t, err)
		assert.Equal(t, "0.0.1001-1700000000-000000000", row.TransactionId)

		actual, err := row.toTransactionRecord()
		require.NoError(t, err)
		assert.Equal(t, record, actual)
	}
}

func TestTransactionRecordEmptyListsStoredAsNull(t *testing.T) {
	record := newRecord(consensusTimestamp)
	record.ChildRecords = nil
	record.NftTransfers = []types.NftMovement{}

	row, err := newTransactionRecord(record)
	require.NoError(t, err)
	assert.Equal(t, pgtype.Null, row.ChildRecords.Status)
	assert.Equal(t, pgtype.Null, row.NftTransfers.Status)
	assert.Nil(t, row.EntityId)

	actual, err := row.toTransactionRecord()
	require.NoError(t, err)
	assert.Nil(t, actual.ChildRecords)
	assert.Nil(t, actual.NftTransfers)
}

func TestTransactionRecordInvalidJsonb(t *testing.T) {
	row := transactionRecord{
		HbarTransfers: pgtype.JSONB{Bytes: []byte(`{"not":"a list"}`), Status: pgtype.Present},
		TransactionId: "0.0.1001-1700000000-000000000",
	}

	_, err := row.toTransactionRecord()
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	gormDb, mock := mocks.DatabaseMock(t)
	repo := NewTransactionRecordRepository(db.NewDbClient(gormDb, 0))
	record := newRecord(consensusTimestamp)
	mock.ExpectExec(insertTransactionRecord).
		WithArgs(
			consensusTimestamp,
			sqlmock.AnyArg(),
			nil,
			sqlmock.AnyArg(),
			"memo",
			sqlmock.AnyArg(),
			payerId.EncodedId,
			"SUCCESS",
			sqlmock.AnyArg(),
			"0.0.1001-1700000000-000000000",
			types.TransactionTypeCryptoTransfer,
			validStartNs,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Add(context.Background(), record)

	assert.Nil(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddDbError(t *testing.T) {
	gormDb, mock := mocks.DatabaseMock(t)
	repo := NewTransactionRecordRepository(db.NewDbClient(gormDb, 0))
	mock.ExpectExec(insertTransactionRecord).WillReturnError(errors.New("duplicate key"))

	err := repo.Add(context.Background(), newRecord(consensusTimestamp))

	assert.Equal(t, hErrors.ErrDatabaseError, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindBetween(t *testing.T) {
	gormDb, mock := mocks.DatabaseMock(t)
	repo := NewTransactionRecordRepository(db.NewDbClient(gormDb, 0))
	first := newRecord(consensusTimestamp)
	second := newRecord(consensusTimestamp + 1)
	second.TransactionId.ValidStartNs++
	rows := sqlmock.NewRows(recordColumns)
	addRecordRow(t, rows, first)
	addRecordRow(t, rows, second)
	mock.ExpectQuery(selectTransactionRecordsInTimestampRange).
		WithArgs(getInclusiveInt8Range(consensusTimestamp, consensusTimestamp+10)).
		WillReturnRows(rows)

	actual, err := repo.FindBetween(context.Background(), consensusTimestamp, consensusTimestamp+10)

	assert.Nil(t, err)
	assert.Equal(t, []*types.TransactionRecord{first, second}, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindBetweenNoRecords(t *testing.T) {
	gormDb, mock := mocks.DatabaseMock(t)
	repo := NewTransactionRecordRepository(db.NewDbClient(gormDb, 0))
	mock.ExpectQuery(selectTransactionRecordsInTimestampRange).WillReturnRows(sqlmock.NewRows(recordColumns))

	actual, err := repo.FindBetween(context.Background(), 1, 2)

	assert.Nil(t, err)
	assert.Empty(t, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindBetweenInvalidRange(t *testing.T) {
	gormDb, mock := mocks.DatabaseMock(t)
	repo := NewTransactionRecordRepository(db.NewDbClient(gormDb, 0))

	actual, err := repo.FindBetween(context.Background(), 2, 1)

	assert.Equal(t, hErrors.ErrInvalidArgument.Code, err.Code)
	assert.Nil(t, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindBetweenDbError(t *testing.T) {
	gormDb, mock := mocks.DatabaseMock(t)
	repo := NewTransactionRecordRepository(db.NewDbClient(gormDb, 0))
	mock.ExpectQuery(selectTransactionRecordsInTimestampRange).WillReturnError(errors.New("connection reset"))

	actual, err := repo.FindBetween(context.Background(), 1, 2)

	assert.Equal(t, hErrors.ErrDatabaseError, err)
	assert.Nil(t, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByTransactionId(t *testing.T) {
	gormDb, mock := mocks.DatabaseMock(t)
	repo := NewTransactionRecordRepository(db.NewDbClient(gormDb, 0))
	record := newRecord(consensusTimestamp)
	transactionId := record.TransactionId.String()
	mock.ExpectQuery(selectTransactionRecordByTransactionId).
		WithArgs(transactionId).
		WillReturnRows(addRecordRow(t, sqlmock.NewRows(recordColumns), record))

	actual, err := repo.FindByTransactionId(context.Background(), transactionId)

	assert.Nil(t, err)
	assert.Equal(t, record, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByTransactionIdNotFound(t *testing.T) {
	gormDb, mock := mocks.DatabaseMock(t)
	repo := NewTransactionRecordRepository(db.NewDbClient(gormDb, 0))
	mock.ExpectQuery(selectTransactionRecordByTransactionId).
		WithArgs("0.0.1001-1-000000000").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	actual, err := repo.FindByTransactionId(context.Background(), "0.0.1001-1-000000000")

	assert.Equal(t, hErrors.ErrNotFound, err)
	assert.Nil(t, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByTransactionIdDbError(t *testing.T) {
	gormDb, mock := mocks.DatabaseMock(t)
	repo := NewTransactionRecordRepository(db.NewDbClient(gormDb, 0))
	mock.ExpectQuery(selectTransactionRecordByTransactionId).WillReturnError(errors.New("connection reset"))

	actual, err := repo.FindByTransactionId(context.Background(), "0.0.1001-1-000000000")

	assert.Equal(t, hErrors.ErrDatabaseError, err)
	assert.Nil(t, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}
