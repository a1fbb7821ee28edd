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

package types

import (
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
)

const (
	AutoCreatedAccountMemo = "auto-created account"
	LazyCreatedAccountMemo = "lazy-created account"

	// DefaultAutoRenewPeriod is three months in seconds
	DefaultAutoRenewPeriod int64 = 7776000

	// UnlimitedAutoAssociations allows any number of automatic token associations
	UnlimitedAutoAssociations int32 = -1
)

// Account is the ledger state of a crypto account. A hollow account has an EVM address but neither a key nor a key
// alias until it is finalized.
type Account struct {
	Id                   domain.EntityId
	Alias                []byte
	AutoRenewPeriod      int64
	Balance              int64
	Deleted              bool
	EvmAddress           []byte
	Key                  *PublicKey
	MaxAutoAssociations  int32
	Memo                 string
	UsedAutoAssociations int32
}

func (a Account) IsHollow() bool {
	return a.Key == nil && len(a.EvmAddress) != 0
}

// HasFreeAutoAssociationSlot tells if the account can be associated with one more token automatically
func (a Account) HasFreeAutoAssociationSlot() bool {
	return a.MaxAutoAssociations == UnlimitedAutoAssociations || a.UsedAutoAssociations < a.MaxAutoAssociations
}
