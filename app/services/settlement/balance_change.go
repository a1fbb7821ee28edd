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
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
)

type changeKind int8

const (
	changeKindTransfer changeKind = iota
	changeKindCustomFee
	changeKindCreationFee
)

// balanceChange is one pending adjustment. A fungible change moves amount units of the token, or tinybars when the
// token is zero. An nft change moves the serial from accountId to counterparty.
type balanceChange struct {
	accountId    domain.EntityId
	amount       int64
	counterparty domain.EntityId
	isApproval   bool
	kind         changeKind
	level        int
	serialNumber int64
	tokenId      domain.EntityId
}

func (c balanceChange) isHbar() bool {
	return c.tokenId.IsZero()
}

func (c balanceChange) isNft() bool {
	return c.serialNumber != 0
}

// expand flattens the resolved request into balance changes, hbar first and then the token lists in request order
func expand(request *resolvedRequest) []balanceChange {
	changes := make([]balanceChange, 0, len(request.hbarTransfers))
	for _, transfer := range request.hbarTransfers {
		changes = append(changes, balanceChange{
			accountId:  transfer.party.id(),
			amount:     transfer.amount,
			isApproval: transfer.isApproval,
		})
	}

	for _, tokenList := range request.tokenLists {
		for _, transfer := range tokenList.transfers {
			changes = append(changes, balanceChange{
				accountId:  transfer.party.id(),
				amount:     transfer.amount,
				isApproval: transfer.isApproval,
				tokenId:    tokenList.tokenId,
			})
		}

		for _, nftTransfer := range tokenList.nftTransfers {
			changes = append(changes, balanceChange{
				accountId:    nftTransfer.sender.id(),
				counterparty: nftTransfer.receiver.id(),
				isApproval:   nftTransfer.isApproval,
				serialNumber: nftTransfer.serialNumber,
				tokenId:      tokenList.tokenId,
			})
		}
	}

	return changes
}
