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
	"bytes"
	"sort"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	log "github.com/sirupsen/logrus"
)

// createAccounts materializes the pending accounts in ascending alias order. Each creation bills the creation fee to
// the payer in favor of the funding account, returned as balance changes, and yields one AccountCreated record.
func createAccounts(
	view *ledger.View,
	pendingAccounts []*pendingAccount,
	feeCalculator interfaces.FeeCalculator,
	payer domain.EntityId,
	fundingAccount domain.EntityId,
) ([]balanceChange, []types.ChildRecord, *rTypes.Error) {
	if len(pendingAccounts) == 0 {
		return nil, nil, nil
	}

	sorted := make([]*pendingAccount, len(pendingAccounts))
	copy(sorted, pendingAccounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].sortKey(), sorted[j].sortKey()) < 0
	})

	changes := make([]balanceChange, 0, 2*len(sorted))
	records := make([]types.ChildRecord, 0, len(sorted))
	for _, pending := range sorted {
		accountId, err := view.NewEntityId()
		if err != nil {
			log.Errorf("Failed to allocate account id: %s", err)
			return nil, nil, errors.ForCode(types.FailInvalid)
		}

		account := newAccount(accountId, pending)
		view.PutAccount(account)
		if !pending.isHollow() {
			view.PutAlias(pending.alias, accountId)
		}
		if len(pending.evmAddress) != 0 {
			view.PutAlias(pending.evmAddress, accountId)
		}
		pending.accountId = accountId

		records = append(records, types.ChildRecord{
			AccountId:     accountId,
			Alias:         account.Alias,
			EvmAddress:    account.EvmAddress,
			Kind:          types.ChildRecordAccountCreated,
			Memo:          account.Memo,
			TransferIndex: pending.firstIndex,
		})

		if fee := feeCalculator.AccountCreationFee(pending.isHollow()); fee > 0 {
			changes = append(changes,
				balanceChange{accountId: payer, amount: -fee, kind: changeKindCreationFee},
				balanceChange{accountId: fundingAccount, amount: fee, kind: changeKindCreationFee},
			)
		}

		log.Debugf("Created account %s for alias %x", accountId, pending.sortKey())
	}

	return changes, records, nil
}

func newAccount(accountId domain.EntityId, pending *pendingAccount) types.Account {
	account := types.Account{
		Id:              accountId,
		AutoRenewPeriod: types.DefaultAutoRenewPeriod,
		EvmAddress:      pending.evmAddress,
	}

	if pending.isHollow() {
		account.MaxAutoAssociations = types.UnlimitedAutoAssociations
		account.Memo = types.LazyCreatedAccountMemo
		return account
	}

	key := *pending.key
	account.Alias = pending.alias
	account.Key = &key
	account.MaxAutoAssociations = int32(len(pending.creditedToken))
	account.Memo = types.AutoCreatedAccountMemo
	return account
}
