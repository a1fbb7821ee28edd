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

type AllowanceKind int8

const (
	AllowanceKindCrypto AllowanceKind = iota
	AllowanceKindFungibleToken
	AllowanceKindNft
)

// AllowanceKey identifies an allowance record, there is at most one record per key
type AllowanceKey struct {
	Kind    AllowanceKind
	Owner   domain.EntityId
	Spender domain.EntityId
	TokenId domain.EntityId
}

// Allowance is one of CryptoAllowance, TokenAllowance, or NftAllowance. Explicit per-serial NFT grants are kept on
// Nft.Spender instead.
type Allowance interface {
	GetKey() AllowanceKey
	isAllowance()
}

type CryptoAllowance struct {
	Amount  int64
	Owner   domain.EntityId
	Spender domain.EntityId
}

func (c CryptoAllowance) GetKey() AllowanceKey {
	return AllowanceKey{Kind: AllowanceKindCrypto, Owner: c.Owner, Spender: c.Spender}
}

func (CryptoAllowance) isAllowance() {}

type TokenAllowance struct {
	Amount  int64
	Owner   domain.EntityId
	Spender domain.EntityId
	TokenId domain.EntityId
}

func (t TokenAllowance) GetKey() AllowanceKey {
	return AllowanceKey{Kind: AllowanceKindFungibleToken, Owner: t.Owner, Spender: t.Spender, TokenId: t.TokenId}
}

func (TokenAllowance) isAllowance() {}

// NftAllowance grants the spender every serial of the token the owner holds
type NftAllowance struct {
	ApprovedForAll bool
	Owner          domain.EntityId
	Spender        domain.EntityId
	TokenId        domain.EntityId
}

func (n NftAllowance) GetKey() AllowanceKey {
	return AllowanceKey{Kind: AllowanceKindNft, Owner: n.Owner, Spender: n.Spender, TokenId: n.TokenId}
}

func (NftAllowance) isAllowance() {}

// FungibleAmount returns the remaining amount of a crypto or fungible token allowance
func FungibleAmount(allowance Allowance) (int64, bool) {
	switch a := allowance.(type) {
	case CryptoAllowance:
		return a.Amount, true
	case TokenAllowance:
		return a.Amount, true
	case NftAllowance:
		return 0, false
	default:
		return 0, false
	}
}

// WithAmount returns a copy of the crypto or fungible token allowance with the new amount
func WithAmount(allowance Allowance, amount int64) Allowance {
	switch a := allowance.(type) {
	case CryptoAllowance:
		a.Amount = amount
		return a
	case TokenAllowance:
		a.Amount = amount
		return a
	default:
		return allowance
	}
}
