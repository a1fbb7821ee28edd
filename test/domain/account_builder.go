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

package domain

import (
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
)

type AccountBuilder struct {
	account       types.Account
	registerAlias bool
	store         *ledger.Store
}

func (b *AccountBuilder) Balance(balance int64) *AccountBuilder {
	b.account.Balance = balance
	return b
}

func (b *AccountBuilder) Deleted() *AccountBuilder {
	b.account.Deleted = true
	return b
}

// EvmAddress makes the account a hollow account with the EVM address registered as its alias
func (b *AccountBuilder) EvmAddress(evmAddress []byte) *AccountBuilder {
	b.account.EvmAddress = evmAddress
	b.account.Key = nil
	b.registerAlias = true
	return b
}

// Key sets the account key, with alias true the key alias and the EVM address of an ECDSA key are registered
func (b *AccountBuilder) Key(publicKey types.PublicKey, alias bool) *AccountBuilder {
	b.account.Key = &publicKey
	if alias {
		b.account.Alias = KeyAlias(publicKey)
		b.account.EvmAddress = publicKey.EvmAddress()
		b.registerAlias = true
	}
	return b
}

func (b *AccountBuilder) MaxAutoAssociations(maxAutoAssociations int32) *AccountBuilder {
	b.account.MaxAutoAssociations = maxAutoAssociations
	return b
}

func (b *AccountBuilder) UsedAutoAssociations(usedAutoAssociations int32) *AccountBuilder {
	b.account.UsedAutoAssociations = usedAutoAssociations
	return b
}

func (b *AccountBuilder) Persist() types.Account {
	account := b.account
	persist(b.store, func(view *ledger.View) {
		view.PutAccount(account)
		if b.registerAlias {
			if len(account.Alias) != 0 {
				view.PutAlias(account.Alias, account.Id)
			}
			if len(account.EvmAddress) != 0 {
				view.PutAlias(account.EvmAddress, account.Id)
			}
		}
	})
	return account
}

func NewAccountBuilder(store *ledger.Store, num, balance int64) *AccountBuilder {
	return &AccountBuilder{
		account: types.Account{
			Id:              domain.MustDecodeEntityId(num),
			AutoRenewPeriod: types.DefaultAutoRenewPeriod,
			Balance:         balance,
		},
		store: store,
	}
}
