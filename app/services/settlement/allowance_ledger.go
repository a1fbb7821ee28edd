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
	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	log "github.com/sirupsen/logrus"
)

// consumeAllowances checks the approval debits against the allowances the owners granted to the payer and deducts the
// fungible amounts. An approval debit of the payer's own account needs no allowance.
func consumeAllowances(view *ledger.View, changes []balanceChange, payer domain.EntityId) *rTypes.Error {
	for _, change := range changes {
		if !change.isApproval || change.accountId == payer {
			continue
		}

		var err *rTypes.Error
		if change.isNft() {
			err = checkNftApproval(view, change, payer)
		} else if change.amount < 0 {
			err = spendAllowance(view, change, payer)
		}

		if err != nil {
			log.Debugf("Approved debit of account %s by spender %s rejected: %s", change.accountId, payer,
				err.Message)
			return err
		}
	}

	return nil
}

func spendAllowance(view *ledger.View, change balanceChange, spender domain.EntityId) *rTypes.Error {
	key := types.AllowanceKey{Kind: types.AllowanceKindCrypto, Owner: change.accountId, Spender: spender}
	if !change.isHbar() {
		key.Kind = types.AllowanceKindFungibleToken
		key.TokenId = change.tokenId
	}

	allowance, ok := view.GetAllowance(key)
	if !ok {
		return errors.ForCode(types.SpenderDoesNotHaveAllowance)
	}

	remaining, _ := types.FungibleAmount(allowance)
	amount := -change.amount
	if amount > remaining {
		return errors.ForCode(types.AmountExceedsAllowance)
	}

	if remaining == amount {
		view.RemoveAllowance(key)
	} else {
		view.PutAllowance(types.WithAmount(allowance, remaining-amount))
	}

	return nil
}

// checkNftApproval requires the spender to be approved for all serials of the owner or for the serial itself
func checkNftApproval(view *ledger.View, change balanceChange, spender domain.EntityId) *rTypes.Error {
	nft, ok := view.GetNft(types.NftId{TokenId: change.tokenId, SerialNumber: change.serialNumber})
	if !ok {
		return errors.ForCode(types.InvalidNftId)
	}

	if nft.Owner != change.accountId {
		return errors.ForCode(types.SenderDoesNotOwnNftSerialNo)
	}

	key := types.AllowanceKey{
		Kind:    types.AllowanceKindNft,
		Owner:   change.accountId,
		Spender: spender,
		TokenId: change.tokenId,
	}
	if allowance, ok := view.GetAllowance(key); ok {
		if nftAllowance, ok := allowance.(types.NftAllowance); ok && nftAllowance.ApprovedForAll {
			return nil
		}
	}

	if nft.Spender == spender {
		return nil
	}

	return errors.ForCode(types.SpenderDoesNotHaveAllowance)
}
