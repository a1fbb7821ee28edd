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
	"bytes"
	"encoding/binary"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/hashgraph/hedera-settlement/app/tools"
	"github.com/pkg/errors"
)

const (
	evmAddressLength = common.AddressLength
	longZeroPrefix   = 12
)

// AccountId identifies an account either by its entity id or by an alias. The alias is either a serialized protobuf
// Key message or a 20-byte EVM address.
type AccountId struct {
	accountId domain.EntityId
	alias     []byte
}

// GetAlias returns a copy of the alias bytes if the alias exists
func (a AccountId) GetAlias() []byte {
	if !a.HasAlias() {
		return nil
	}

	alias := make([]byte, len(a.alias))
	copy(alias, a.alias)
	return alias
}

func (a AccountId) GetId() int64 {
	return a.accountId.EncodedId
}

func (a AccountId) EntityId() domain.EntityId {
	return a.accountId
}

func (a AccountId) HasAlias() bool {
	return len(a.alias) != 0
}

func (a AccountId) IsEvmAddress() bool {
	return len(a.alias) == evmAddressLength
}

func (a AccountId) IsZero() bool {
	return !a.HasAlias() && a.accountId.IsZero()
}

func (a AccountId) String() string {
	if a.HasAlias() {
		return tools.EncodeHex(a.alias)
	}
	return a.accountId.String()
}

func (a AccountId) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccountId) UnmarshalJSON(data []byte) error {
	accountId, err := NewAccountIdFromString(tools.SafeUnquote(string(data)))
	if err != nil {
		return err
	}

	*a = accountId
	return nil
}

// NewAccountIdFromString creates AccountId from either the shard.realm.num form or the 0x-prefixed hex string of the
// alias bytes
func NewAccountIdFromString(address string) (zero AccountId, _ error) {
	if strings.Contains(address, ".") {
		entityId, err := domain.EntityIdFromString(address)
		if err != nil {
			return zero, err
		}
		return AccountId{accountId: entityId}, nil
	}

	if !strings.HasPrefix(address, tools.HexPrefix) {
		return zero, errors.Errorf("Invalid Account Alias")
	}

	alias, err := tools.DecodeHex(address)
	if err != nil {
		return zero, err
	}

	if len(alias) == 0 {
		return zero, errEmptyAlias
	}

	return NewAccountIdFromAlias(alias), nil
}

// NewAccountIdFromAlias creates AccountId from the alias bytes as is, the alias is validated at settlement
func NewAccountIdFromAlias(alias []byte) AccountId {
	aliasCopy := make([]byte, len(alias))
	copy(aliasCopy, alias)
	return AccountId{alias: aliasCopy}
}

func NewAccountIdFromEntityId(accountId domain.EntityId) AccountId {
	return AccountId{accountId: accountId}
}

func NewAccountIdFromEvmAddress(address common.Address) AccountId {
	return AccountId{alias: address.Bytes()}
}

func NewAccountIdFromPublicKey(publicKey PublicKey) (zero AccountId, _ error) {
	alias, _, err := publicKey.ToAlias()
	if err != nil {
		return zero, err
	}

	return AccountId{alias: alias}, nil
}

// LongZeroEntityId returns the entity id encoded in a long-zero EVM address, i.e. an address whose first 12 bytes
// are the shard (4 bytes) and the realm (8 bytes) of the network
func LongZeroEntityId(address []byte, shard, realm int64) (domain.EntityId, bool) {
	if len(address) != evmAddressLength || !bytes.Equal(address[:longZeroPrefix], longZeroAddressPrefix(shard, realm)) {
		return domain.EntityId{}, false
	}

	num := binary.BigEndian.Uint64(address[longZeroPrefix:])
	entityId, err := domain.EntityIdOf(shard, realm, int64(num))
	if err != nil {
		return domain.EntityId{}, false
	}

	return entityId, true
}

// ToLongZeroAddress encodes the entity id as a long-zero EVM address
func ToLongZeroAddress(entityId domain.EntityId) common.Address {
	address := make([]byte, 0, evmAddressLength)
	address = append(address, longZeroAddressPrefix(entityId.ShardNum, entityId.RealmNum)...)
	address = binary.BigEndian.AppendUint64(address, uint64(entityId.EntityNum))
	return common.BytesToAddress(address)
}

func longZeroAddressPrefix(shard, realm int64) []byte {
	prefix := make([]byte, 0, longZeroPrefix)
	prefix = binary.BigEndian.AppendUint32(prefix, uint32(shard))
	return binary.BigEndian.AppendUint64(prefix, uint64(realm))
}
