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

	"github.com/hashgraph/hedera-settlement/app/domain/types"
	hErrors "github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMemoryRecordRepository(t *testing.T) {
	repo := NewMemoryRecordRepository(10)
	ctx := context.Background()
	records := make([]*types.TransactionRecord, 0)
	for _, offset := range []int64{2, 0, 1} {
		record := newRecord(consensusTimestamp + offset)
		record.TransactionId.ValidStartNs += offset
		assert.Nil(t, repo.Add(ctx, record))
		records = append(records, record)
	}

	actual, err := repo.FindBetween(ctx, consensusTimestamp, consensusTimestamp+1)
	assert.Nil(t, err)
	assert.Equal(t, []*types.TransactionRecord{records[1], records[2]}, actual)

	found, err := repo.FindByTransactionId(ctx, records[0].TransactionId.String())
	assert.Nil(t, err)
	assert.Equal(t, records[0], found)
}

func TestMemoryRecordRepositoryEvictsLeastRecentlyUsed(t *testing.T) {
	repo := NewMemoryRecordRepository(2)
	ctx := context.Background()
	first := newRecord(consensusTimestamp)
	second := newRecord(consensusTimestamp + 1)
	second.TransactionId.ValidStartNs++
	third := newRecord(consensusTimestamp + 2)
	third.TransactionId.ValidStartNs += 2

	assert.Nil(t, repo.Add(ctx, first))
	assert.Nil(t, repo.Add(ctx, second))
	assert.Nil(t, repo.Add(ctx, third))

	_, err := repo.FindByTransactionId(ctx, first.TransactionId.String())
	assert.Equal(t, hErrors.ErrNotFound, err)

	actual, err := repo.FindBetween(ctx, 0, consensusTimestamp+10)
	assert.Nil(t, err)
	assert.Equal(t, []*types.TransactionRecord{second, third}, actual)
}

func TestMemoryRecordRepositoryInvalid(t *testing.T) {
	repo := NewMemoryRecordRepository(2)

	_, err := repo.FindBetween(context.Background(), 2, 1)
	assert.Equal(t, hErrors.ErrInvalidArgument.Code, err.Code)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = repo.Add(ctx, newRecord(consensusTimestamp))
	assert.Equal(t, hErrors.ErrInternalServerError.Code, err.Code)
}

func TestCachedRecordRepositoryFindByTransactionId(t *testing.T) {
	delegate := &mocks.MockRecordRepository{}
	record := newRecord(consensusTimestamp)
	transactionId := record.TransactionId.String()
	delegate.On("FindByTransactionId", mock.Anything, transactionId).Return(record, mocks.NilError).Once()
	repo := NewCachedRecordRepository(delegate, 10)

	for i := 0; i < 3; i++ {
		actual, err := repo.FindByTransactionId(context.Background(), transactionId)
		assert.Nil(t, err)
		assert.Equal(t, record, actual)
	}

	delegate.AssertNumberOfCalls(t, "FindByTransactionId", 1)
}

func TestCachedRecordRepositoryAdd(t *testing.T) {
	delegate := mocks.NewMockRecordRepositoryAcceptingAll()
	record := newRecord(consensusTimestamp)
	repo := NewCachedRecordRepository(delegate, 10)

	assert.Nil(t, repo.Add(context.Background(), record))
	actual, err := repo.FindByTransactionId(context.Background(), record.TransactionId.String())

	assert.Nil(t, err)
	assert.Equal(t, record, actual)
	delegate.AssertNotCalled(t, "FindByTransactionId", mock.Anything, mock.Anything)
}

func TestCachedRecordRepositoryErrors(t *testing.T) {
	delegate := &mocks.MockRecordRepository{}
	record := newRecord(consensusTimestamp)
	transactionId := record.TransactionId.String()
	delegate.On("Add", mock.Anything, record).Return(hErrors.ErrDatabaseError)
	delegate.On("FindByTransactionId", mock.Anything, transactionId).
		Return((*types.TransactionRecord)(nil), hErrors.ErrNotFound)
	delegate.On("FindBetween", mock.Anything, int64(1), int64(2)).
		Return([]*types.TransactionRecord{record}, mocks.NilError)
	repo := NewCachedRecordRepository(delegate, 10)

	assert.Equal(t, hErrors.ErrDatabaseError, repo.Add(context.Background(), record))

	for i := 0; i < 2; i++ {
		actual, err := repo.FindByTransactionId(context.Background(), transactionId)
		assert.Equal(t, hErrors.ErrNotFound, err)
		assert.Nil(t, actual)
	}
	delegate.AssertNumberOfCalls(t, "FindByTransactionId", 2)

	actual, err := repo.FindBetween(context.Background(), 1, 2)
	assert.Nil(t, err)
	assert.Equal(t, []*types.TransactionRecord{record}, actual)
}
