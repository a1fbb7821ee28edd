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

package settlement

import (
	"sort"

	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"golang.org/x/exp/maps"
)

// fillRecord writes the net effect of the committed changes into the record. Hbar and token transfers are netted per
// account, zero nets dropped, and sorted; nft movements keep request order. Account creations come first among the
// child records, then fee payments and automatic associations in the order they happened.
func fillRecord(
	record *types.TransactionRecord,
	changes []balanceChange,
	creations []types.ChildRecord,
	feePayments []types.ChildRecord,
	associations []types.ChildRecord,
) {
	hbar := make(map[domain.EntityId]*types.HbarTransfer)
	tokens := make(map[adjustmentKey]*types.TokenTransfer)
	for _, change := range changes {
		switch {
		case change.isNft():
			record.NftTransfers = append(record.NftTransfers, types.NftMovement{
				IsApproval:        change.isApproval,
				ReceiverAccountId: change.counterparty,
				SenderAccountId:   change.accountId,
				SerialNumber:      change.serialNumber,
				TokenId:           change.tokenId,
			})
		case change.isHbar():
			transfer, ok := hbar[change.accountId]
			if !ok {
				transfer = &types.HbarTransfer{AccountId: change.accountId}
				hbar[change.accountId] = transfer
			}
			transfer.Amount += change.amount
			transfer.IsApproval = transfer.IsApproval || change.isApproval
		default:
			key := adjustmentKey{accountId: change.accountId, tokenId: change.tokenId}
			transfer, ok := tokens[key]
			if !ok {
				transfer = &types.TokenTransfer{AccountId: change.accountId, TokenId: change.tokenId}
				tokens[key] = transfer
			}
			transfer.Amount += change.amount
			transfer.IsApproval = transfer.IsApproval || change.isApproval
		}
	}

	accountIds := maps.Keys(hbar)
	sort.Slice(accountIds, func(i, j int) bool {
		return accountIds[i].Less(accountIds[j])
	})
	for _, accountId := range accountIds {
		if transfer := hbar[accountId]; transfer.Amount != 0 {
			record.HbarTransfers = append(record.HbarTransfers, *transfer)
		}
	}

	keys := maps.Keys(tokens)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].tokenId != keys[j].tokenId {
			return keys[i].tokenId.Less(keys[j].tokenId)
		}
		return keys[i].accountId.Less(keys[j].accountId)
	})
	for _, key := range keys {
		if transfer := tokens[key]; transfer.Amount != 0 {
			record.TokenTransfers = append(record.TokenTransfers, *transfer)
		}
	}

	record.ChildRecords = append(record.ChildRecords, creations...)
	record.ChildRecords = append(record.ChildRecords, feePayments...)
	record.ChildRecords = append(record.ChildRecords, associations...)
}
