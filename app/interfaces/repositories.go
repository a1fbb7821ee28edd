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

package interfaces

import (
	"context"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
)

// RecordRepository Interface that all RecordRepository structs must implement
type RecordRepository interface {

	// Add persists the transaction record
	Add(ctx context.Context, record *types.TransactionRecord) *rTypes.Error

	// FindBetween retrieves the records with consensus timestamp between start and end inclusively, ordered by
	// consensus timestamp
	FindBetween(ctx context.Context, start, end int64) ([]*types.TransactionRecord, *rTypes.Error)

	// FindByTransactionId retrieves the record of the transaction id in the payer-seconds-nanos form
	FindByTransactionId(ctx context.Context, transactionId string) (*types.TransactionRecord, *rTypes.Error)
}
