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

package ledger

import (
	"sort"
	"time"

	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/pkg/errors"
)

// View is a copy-on-write window over the ledger state. Reads see the view's own writes, and nothing written through
// the view is visible to others until the store commits it.
type View struct {
	accounts      *table[domain.EntityId, types.Account]
	aliases       *table[string, domain.EntityId]
	allowances    *table[types.AllowanceKey, types.Allowance]
	consensusNs   int64
	lastNs        int64
	nextEntityNum int64
	nfts          *table[types.NftId, types.Nft]
	realm         int64
	relationships *table[types.TokenRelationshipKey, types.TokenRelationship]
	shard         int64
	tokens        *table[domain.EntityId, types.Token]
}

func newView(s *state, realm, shard int64) *View {
	return &View{
		accounts:      newTable(s.accounts),
		aliases:       newTable(s.aliases),
		allowances:    newTable(s.allowances),
		lastNs:        s.lastConsensusNs,
		nextEntityNum: s.nextEntityNum,
		nfts:          newTable(s.nfts),
		realm:         realm,
		relationships: newTable(s.relationships),
		shard:         shard,
		tokens:        newTable(s.tokens),
	}
}

func (v *View) Realm() int64 {
	return v.realm
}

func (v *View) Shard() int64 {
	return v.shard
}

// ConsensusTimestamp assigns the consensus timestamp of the transaction, strictly greater than every timestamp
// committed before. Calling it again returns the same timestamp.
func (v *View) ConsensusTimestamp(now time.Time) int64 {
	if v.consensusNs != 0 {
		return v.consensusNs
	}

	v.consensusNs = now.UnixNano()
	if v.consensusNs <= v.lastNs {
		v.consensusNs = v.lastNs + 1
	}
	return v.consensusNs
}

// NewEntityId allocates the next entity number, shared by accounts and tokens
func (v *View) NewEntityId() (domain.EntityId, error) {
	entityId, err := domain.EntityIdOf(v.shard, v.realm, v.nextEntityNum)
	if err != nil {
		return domain.EntityId{}, errors.Wrap(err, "Entity numbers exhausted")
	}

	v.nextEntityNum++
	return entityId, nil
}

func (v *View) GetAccount(accountId domain.EntityId) (types.Account, bool) {
	return v.accounts.get(accountId)
}

func (v *View) PutAccount(account types.Account) {
	v.accounts.put(account.Id, account)
}

// LookupAlias returns the account the alias, either a key alias or an EVM address, is bound to
func (v *View) LookupAlias(alias []byte) (domain.EntityId, bool) {
	if len(alias) == 0 {
		return domain.EntityId{}, false
	}

	return v.aliases.get(string(alias))
}

func (v *View) PutAlias(alias []byte, accountId domain.EntityId) {
	v.aliases.put(string(alias), accountId)
}

func (v *View) RemoveAlias(alias []byte) {
	v.aliases.erase(string(alias))
}

func (v *View) GetToken(tokenId domain.EntityId) (types.Token, bool) {
	return v.tokens.get(tokenId)
}

func (v *View) PutToken(token types.Token) {
	v.tokens.put(token.TokenId, token)
}

func (v *View) GetRelationship(accountId, tokenId domain.EntityId) (types.TokenRelationship, bool) {
	return v.relationships.get(types.TokenRelationshipKey{AccountId: accountId, TokenId: tokenId})
}

func (v *View) PutRelationship(relationship types.TokenRelationship) {
	key := types.TokenRelationshipKey{AccountId: relationship.AccountId, TokenId: relationship.TokenId}
	v.relationships.put(key, relationship)
}

func (v *View) RemoveRelationship(accountId, tokenId domain.EntityId) {
	v.relationships.erase(types.TokenRelationshipKey{AccountId: accountId, TokenId: tokenId})
}

// RelationshipsOf returns the token relationships of the account ordered by token id
func (v *View) RelationshipsOf(accountId domain.EntityId) []types.TokenRelationship {
	relationships := make([]types.TokenRelationship, 0)
	v.relationships.forEach(func(key types.TokenRelationshipKey, relationship types.TokenRelationship) bool {
		if key.AccountId == accountId {
			relationships = append(relationships, relationship)
		}
		return true
	})

	sort.Slice(relationships, func(i, j int) bool {
		return relationships[i].TokenId.Less(relationships[j].TokenId)
	})
	return relationships
}

func (v *View) GetNft(nftId types.NftId) (types.Nft, bool) {
	return v.nfts.get(nftId)
}

func (v *View) PutNft(nft types.Nft) {
	v.nfts.put(nft.NftId, nft)
}

// CountNfts returns the number of serials of the token the account owns
func (v *View) CountNfts(accountId, tokenId domain.EntityId) int64 {
	var count int64
	v.nfts.forEach(func(nftId types.NftId, nft types.Nft) bool {
		if nftId.TokenId == tokenId && nft.Owner == accountId {
			count++
		}
		return true
	})
	return count
}

func (v *View) GetAllowance(key types.AllowanceKey) (types.Allowance, bool) {
	return v.allowances.get(key)
}

func (v *View) PutAllowance(allowance types.Allowance) {
	v.allowances.put(allowance.GetKey(), allowance)
}

func (v *View) RemoveAllowance(key types.AllowanceKey) {
	v.allowances.erase(key)
}

// CountAllowances returns the number of crypto, fungible token, and approve-for-all allowance records the owner has
// granted
func (v *View) CountAllowances(ownerId domain.EntityId) int {
	count := 0
	v.allowances.forEach(func(key types.AllowanceKey, _ types.Allowance) bool {
		if key.Owner == ownerId {
			count++
		}
		return true
	})
	return count
}

func (v *View) isDirty() bool {
	return v.accounts.isDirty() || v.aliases.isDirty() || v.allowances.isDirty() || v.nfts.isDirty() ||
		v.relationships.isDirty() || v.tokens.isDirty()
}

func (v *View) commit(s *state) {
	v.accounts.commit()
	v.aliases.commit()
	v.allowances.commit()
	v.nfts.commit()
	v.relationships.commit()
	v.tokens.commit()

	s.nextEntityNum = v.nextEntityNum
	if v.consensusNs != 0 {
		s.lastConsensusNs = v.consensusNs
	}
}
