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

package mocks

import (
	"context"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Add(ctx context.Context, record *types.TransactionRecord) *rTypes.Error {
	args := m.Called(ctx, record)
	return args.Get(0).(*rTypes.Error)
}

func (m *MockRecordRepository) FindBetween(ctx context.Context, start, end int64) (
	[]*types.TransactionRecord,
	*rTypes.Error,
) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]*types.TransactionRecord), args.Get(1).(*rTypes.Error)
}

func (m *MockRecordRepository) FindByTransactionId(ctx context.Context, transactionId string) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	args := m.Called(ctx, transactionId)
	return args.Get(0).(*types.TransactionRecord), args.Get(1).(*rTypes.Error)
}

// NewMockRecordRepositoryAcceptingAll returns a MockRecordRepository which accepts every record added
func NewMockRecordRepositoryAcceptingAll() *MockRecordRepository {
	repo := &MockRecordRepository{}
	repo.On("Add", mock.Anything, mock.Anything).Return(NilError)
	return repo
}
