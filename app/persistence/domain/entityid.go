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
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashgraph/hedera-settlement/app/tools"
	"github.com/pkg/errors"
)

// bit layout of the packed id: 15 bits shard, 16 bits realm, 32 bits num
const (
	numBits   = 32
	realmBits = 16
	shardBits = 15

	maxNum   int64 = 1<<numBits - 1
	maxRealm int64 = 1<<realmBits - 1
	maxShard int64 = 1<<shardBits - 1
)

// EntityId is the shard.realm.num identifier of an account or token, EncodedId is the packed form used as the
// primary key in the ledger state and the database
type EntityId struct {
	ShardNum  int64
	RealmNum  int64
	EntityNum int64
	EncodedId int64
}

func (e EntityId) IsZero() bool {
	return e.EncodedId == 0
}

// Less orders entity ids by shard, realm, then num
func (e EntityId) Less(other EntityId) bool {
	return e.EncodedId < other.EncodedId
}

func (e EntityId) String() string {
	return fmt.Sprintf("%d.%d.%d", e.ShardNum, e.RealmNum, e.EntityNum)
}

func (e EntityId) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON accepts the shard.realm.num string and the encoded id, either quoted or as a number
func (e *EntityId) UnmarshalJSON(data []byte) error {
	entityId, err := parseEntityId(tools.SafeUnquote(string(data)))
	if err != nil {
		return err
	}

	*e = entityId
	return nil
}

func (e *EntityId) Scan(value interface{}) error {
	encodedId, ok := value.(int64)
	if !ok {
		return errors.Errorf("Unsupported EntityId column value %v", value)
	}

	entityId, err := DecodeEntityId(encodedId)
	if err != nil {
		return err
	}

	*e = entityId
	return nil
}

// Value stores the zero id as NULL
func (e EntityId) Value() (driver.Value, error) {
	if e.IsZero() {
		return nil, nil
	}

	return e.EncodedId, nil
}

// EncodeEntityId packs shard, realm and num into one int64
func EncodeEntityId(shardNum, realmNum, entityNum int64) (int64, error) {
	if shardNum < 0 || shardNum > maxShard || realmNum < 0 || realmNum > maxRealm || entityNum < 0 ||
		entityNum > maxNum {
		return 0, errors.Errorf("Invalid entity id %d.%d.%d", shardNum, realmNum, entityNum)
	}

	return shardNum<<(realmBits+numBits) | realmNum<<numBits | entityNum, nil
}

func DecodeEntityId(encodedId int64) (EntityId, error) {
	if encodedId < 0 {
		return EntityId{}, errors.Errorf("Invalid encoded entity id %d", encodedId)
	}

	return EntityId{
		ShardNum:  encodedId >> (realmBits + numBits),
		RealmNum:  (encodedId >> numBits) & maxRealm,
		EntityNum: encodedId & maxNum,
		EncodedId: encodedId,
	}, nil
}

func MustDecodeEntityId(encodedId int64) EntityId {
	entityId, err := DecodeEntityId(encodedId)
	if err != nil {
		panic(err)
	}

	return entityId
}

func EntityIdOf(shardNum, realmNum, entityNum int64) (EntityId, error) {
	encodedId, err := EncodeEntityId(shardNum, realmNum, entityNum)
	if err != nil {
		return EntityId{}, err
	}

	return EntityId{ShardNum: shardNum, RealmNum: realmNum, EntityNum: entityNum, EncodedId: encodedId}, nil
}

// EntityIdFromString parses the shard.realm.num form
func EntityIdFromString(entityId string) (EntityId, error) {
	parts := strings.Split(entityId, ".")
	if len(parts) != 3 {
		return EntityId{}, errors.Errorf("Invalid entity id %s", entityId)
	}

	var nums [3]int64
	for i, part := range parts {
		num, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return EntityId{}, errors.Errorf("Invalid entity id %s", entityId)
		}
		nums[i] = num
	}

	return EntityIdOf(nums[0], nums[1], nums[2])
}

func parseEntityId(s string) (EntityId, error) {
	if strings.Contains(s, ".") {
		return EntityIdFromString(s)
	}

	encodedId, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return EntityId{}, errors.Errorf("Invalid entity id %s", s)
	}

	return DecodeEntityId(encodedId)
}
