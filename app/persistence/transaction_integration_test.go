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

	"github.com/hashgraph/hedera-settlement/app/db"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	hErrors "github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRecordRepositorySuite(t *testing.T) {
	suite.Run(t, new(transactionRecordRepositorySuite))
}

type transactionRecordRepositorySuite struct {
	integrationTest
}

func (suite *transactionRecordRepositorySuite) TestAddAndFind() {
	repo := NewTransactionRecordRepository(suite.dbClient)
	ctx := context.Background()
	records := make([]*types.TransactionRecord, 0)
	for i := int64(0); i < 3; i++ {
		record := newRecord(consensusTimestamp + i)
		record.TransactionId.ValidStartNs += i
		suite.Nil(repo.Add(ctx, record))
		records = append(records, record)
	}

	actual, err := repo.FindBetween(ctx, consensusTimestamp+1, consensusTimestamp+2)
	suite.Nil(err)
	suite.Equal(records[1:], actual)

	found, err := repo.FindByTransactionId(ctx, records[0].TransactionId.String())
	suite.Nil(err)
	suite.Equal(records[0], found)
}

func (suite *transactionRecordRepositorySuite) TestFindByTransactionIdNotFound() {
	repo := NewTransactionRecordRepository(suite.dbClient)

	actual, err := repo.FindByTransactionId(context.Background(), "0.0.1001-1-000000000")

	suite.Equal(hErrors.ErrNotFound, err)
	suite.Nil(actual)
}

func (suite *transactionRecordRepositorySuite) TestAddDuplicateConsensusTimestamp() {
	repo := NewTransactionRecordRepository(suite.dbClient)
	suite.Nil(repo.Add(context.Background(), newRecord(consensusTimestamp)))

	suite.Equal(hErrors.ErrDatabaseError, repo.Add(context.Background(), newRecord(consensusTimestamp)))
}

func (suite *transactionRecordRepositorySuite) TestInvalidDbClient() {
	repo := NewTransactionRecordRepository(db.NewDbClient(suite.InvalidDbClient, 0))

	actual, err := repo.FindBetween(context.Background(), 1, 2)

	suite.Equal(hErrors.ErrDatabaseError, err)
	suite.Nil(actual)
}
