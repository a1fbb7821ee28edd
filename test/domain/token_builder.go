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
	"fmt"

	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
)

type TokenBuilder struct {
	store *ledger.Store
	token types.Token
}

func (b *TokenBuilder) CustomFees(customFees ...types.CustomFee) *TokenBuilder {
	b.token.CustomFees = customFees
	return b
}

func (b *TokenBuilder) Decimals(decimals uint32) *TokenBuilder {
	b.token.Decimals = decimals
	return b
}

func (b *TokenBuilder) Deleted() *TokenBuilder {
	b.token.Deleted = true
	return b
}

func (b *TokenBuilder) FeeScheduleKey(publicKey types.PublicKey) *TokenBuilder {
	b.token.FeeScheduleKey = &publicKey
	return b
}

func (b *TokenBuilder) FreezeDefault() *TokenBuilder {
	b.token.FreezeDefault = true
	return b
}

func (b *TokenBuilder) MaxSupply(maxSupply int64) *TokenBuilder {
	b.token.MaxSupply = maxSupply
	b.token.SupplyType = types.TokenSupplyTypeFinite
	return b
}

func (b *TokenBuilder) Paused() *TokenBuilder {
	b.token.Paused = true
	return b
}

func (b *TokenBuilder) TotalSupply(totalSupply int64) *TokenBuilder {
	b.token.TotalSupply = totalSupply
	return b
}

func (b *TokenBuilder) Type(tokenType types.TokenType) *TokenBuilder {
	b.token.Type = tokenType
	return b
}

// Persist writes the token and the treasury relationship holding the total supply of a fungible token
func (b *TokenBuilder) Persist() types.Token {
	token := b.token
	persist(b.store, func(view *ledger.View) {
		view.PutToken(token)
		relationship := types.TokenRelationship{AccountId: token.Treasury, TokenId: token.TokenId}
		if !token.IsNft() {
			relationship.Balance = token.TotalSupply
		}
		view.PutRelationship(relationship)
	})
	return token
}

func NewTokenBuilder(store *ledger.Store, tokenId, treasury int64) *TokenBuilder {
	return &TokenBuilder{
		store: store,
		token: types.Token{
			TokenId:    domain.MustDecodeEntityId(tokenId),
			Name:       fmt.Sprintf("%d_name", tokenId),
			SupplyType: types.TokenSupplyTypeInfinite,
			Symbol:     fmt.Sprintf("%d_symbol", tokenId),
			Treasury:   domain.MustDecodeEntityId(treasury),
			Type:       types.TokenTypeFungibleCommon,
		},
	}
}

type TokenRelationshipBuilder struct {
	relationship types.TokenRelationship
	store        *ledger.Store
}

func (b *TokenRelationshipBuilder) AutomaticAssoc() *TokenRelationshipBuilder {
	b.relationship.AutomaticAssoc = true
	return b
}

func (b *TokenRelationshipBuilder) Balance(balance int64) *TokenRelationshipBuilder {
	b.relationship.Balance = balance
	return b
}

func (b *TokenRelationshipBuilder) Frozen() *TokenRelationshipBuilder {
	b.relationship.Frozen = true
	return b
}

func (b *TokenRelationshipBuilder) Persist() types.TokenRelationship {
	relationship := b.relationship
	persist(b.store, func(view *ledger.View) {
		view.PutRelationship(relationship)
	})
	return relationship
}

func NewTokenRelationshipBuilder(store *ledger.Store, accountId, tokenId int64) *TokenRelationshipBuilder {
	return &TokenRelationshipBuilder{
		relationship: types.TokenRelationship{
			AccountId: domain.MustDecodeEntityId(accountId),
			TokenId:   domain.MustDecodeEntityId(tokenId),
		},
		store: store,
	}
}

type NftBuilder struct {
	nft   types.Nft
	store *ledger.Store
}

func (b *NftBuilder) Spender(spender int64) *NftBuilder {
	b.nft.Spender = domain.MustDecodeEntityId(spender)
	return b
}

// Persist writes the nft and bumps the owner's relationship balance and the token total supply
func (b *NftBuilder) Persist() types.Nft {
	nft := b.nft
	persist(b.store, func(view *ledger.View) {
		view.PutNft(nft)
		if relationship, ok := view.GetRelationship(nft.Owner, nft.TokenId); ok {
			relationship.Balance++
			view.PutRelationship(relationship)
		}
		if token, ok := view.GetToken(nft.TokenId); ok {
			token.TotalSupply++
			view.PutToken(token)
		}
	})
	return nft
}

func NewNftBuilder(store *ledger.Store, tokenId, serialNumber, owner int64) *NftBuilder {
	return &NftBuilder{
		nft: types.Nft{
			NftId: types.NftId{TokenId: domain.MustDecodeEntityId(tokenId), SerialNumber: serialNumber},
			Owner: domain.MustDecodeEntityId(owner),
		},
		store: store,
	}
}
