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

package record

import (
	"context"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	log "github.com/sirupsen/logrus"
)

// recordService implements the interfaces.RecordService interface.
type recordService struct {
	recordRepo interfaces.RecordRepository
}

// GetRecord returns the persisted record of the transaction id in the payer-seconds-nanos form
func (r *recordService) GetRecord(ctx context.Context, transactionId string) (*types.TransactionRecord, *rTypes.Error) {
	parsed, err := types.TransactionIdFromString(transactionId)
	if err != nil {
		log.Debugf("Rejected record query: %s", err)
		return nil, errors.AddErrorDetails(errors.ErrInvalidArgument, "cause", err.Error())
	}

	return r.recordRepo.FindByTransactionId(ctx, parsed.String())
}

// NewRecordService creates the service serving the persisted transaction records
func NewRecordService(recordRepo interfaces.RecordRepository) interfaces.RecordService {
	return &recordService{recordRepo: recordRepo}
}
