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
	"testing"

	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccountIsHollow(t *testing.T) {
	tests := []struct {
		name     string
		account  Account
		expected bool
	}{
		{name: "Keyed", account: Account{Key: &ed25519PublicKey}},
		{
			name:    "KeyedWithEvmAddress",
			account: Account{Key: &secp256k1PublicKey, EvmAddress: secp256k1PublicKey.EvmAddress()},
		},
		{name: "Hollow", account: Account{EvmAddress: secp256k1PublicKey.EvmAddress()}, expected: true},
		{name: "Empty", account: Account{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.account.IsHollow())
		})
	}
}

func TestAccountHasFreeAutoAssociationSlot(t *testing.T) {
	tests := []struct {
		name     string
		max      int32
		used     int32
		expected bool
	}{
		{name: "Unlimited", max: UnlimitedAutoAssociations, used: 1000, expected: true},
		{name: "Free", max: 2, used: 1, expected: true},
		{name: "Exhausted", max: 2, used: 2},
		{name: "None", max: 0, used: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := Account{MaxAutoAssociations: tt.max, UsedAutoAssociations: tt.used}
			assert.Equal(t, tt.expected, account.HasFreeAutoAssociationSlot())
		})
	}
}

func TestAccountId(t *testing.T) {
	account := Account{Id: domain.MustDecodeEntityId(1001)}
	assert.Equal(t, "0.0.1001", account.Id.String())
}
