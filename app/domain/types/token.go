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

type TokenType int8

const (
	TokenTypeFungibleCommon TokenType = iota
	TokenTypeNonFungibleUnique
)

func (t TokenType) String() string {
	if t == TokenTypeNonFungibleUnique {
		return "NON_FUNGIBLE_UNIQUE"
	}
	return "FUNGIBLE_COMMON"
}

type TokenSupplyType int8

const (
	TokenSupplyTypeInfinite TokenSupplyType = iota
	TokenSupplyTypeFinite
)

type Token struct {
	TokenId        domain.EntityId
	CustomFees     []CustomFee
	Decimals       uint32
	Deleted        bool
	FeeScheduleKey *PublicKey
	FreezeDefault  bool
	MaxSupply      int64
	Name           string
	Paused         bool
	SupplyType     TokenSupplyType
	Symbol         string
	TotalSupply    int64
	Treasury       domain.EntityId
	Type           TokenType
}

func (t Token) IsNft() bool {
	return t.Type == TokenTypeNonFungibleUnique
}

// IsFeeCollector tells if the account collects any of the token's custom fees
func (t Token) IsFeeCollector(accountId domain.EntityId) bool {
	for _, fee := range t.CustomFees {
		if fee.Collector == accountId {
			return true
		}
	}
	return false
}

// TokenRelationship is the association between an account and a token
type TokenRelationship struct {
	AccountId      domain.EntityId
	AutomaticAssoc bool
	Balance        int64
	Frozen         bool
	TokenId        domain.EntityId
}

type TokenRelationshipKey struct {
	AccountId domain.EntityId
	TokenId   domain.EntityId
}

type NftId struct {
	TokenId      domain.EntityId
	SerialNumber int64
}

// Nft is a unique token instance. Spender is the account with an explicit allowance for this serial, zero if none.
type Nft struct {
	NftId
	Owner   domain.EntityId
	Spender domain.EntityId
}
