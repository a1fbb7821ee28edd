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
	"fmt"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/config"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
)

// pendingAccount is an alias no account is bound to yet, it becomes an account if the request credits it
type pendingAccount struct {
	accountId     domain.EntityId
	alias         []byte
	creditedHbar  int64
	creditedNfts  int
	creditedToken map[domain.EntityId]struct{}
	evmAddress    []byte
	firstIndex    int
	key           *types.PublicKey
}

func (p *pendingAccount) isHollow() bool {
	return p.key == nil
}

// sortKey orders the creations, a key alias sorts by its alias bytes and a hollow account by its EVM address
func (p *pendingAccount) sortKey() []byte {
	if p.isHollow() {
		return p.evmAddress
	}
	return p.alias
}

// party is the account a transfer leg refers to, either an existing account or a pending one
type party struct {
	accountId domain.EntityId
	pending   *pendingAccount
}

func (p party) id() domain.EntityId {
	if p.pending != nil {
		return p.pending.accountId
	}
	return p.accountId
}

// identity is equal for two parties only if they are the same account
func (p party) identity() string {
	if p.pending != nil {
		return fmt.Sprintf("pending/%p", p.pending)
	}
	return fmt.Sprintf("#%d", p.accountId.EncodedId)
}

type resolvedTransfer struct {
	amount     int64
	isApproval bool
	party      party
}

type resolvedNftTransfer struct {
	isApproval   bool
	receiver     party
	sender       party
	serialNumber int64
}

type resolvedTokenList struct {
	expectedDecimals *uint32
	nftTransfers     []resolvedNftTransfer
	tokenId          domain.EntityId
	transfers        []resolvedTransfer
}

type resolvedRequest struct {
	hbarTransfers []resolvedTransfer
	pending       []*pendingAccount
	tokenLists    []resolvedTokenList
}

// aliasResolver binds every account named in a request to an existing account or to a pending account, two names of
// one account resolve to the same party
type aliasResolver struct {
	autoCreation config.EntityCreation
	index        int
	lazyCreation config.EntityCreation
	pending      map[string]*pendingAccount
	realm        int64
	request      *resolvedRequest
	shard        int64
	view         *ledger.View
}

func newAliasResolver(view *ledger.View, cfg *config.Config) *aliasResolver {
	return &aliasResolver{
		autoCreation: cfg.AutoCreation,
		lazyCreation: cfg.LazyCreation,
		pending:      make(map[string]*pendingAccount),
		realm:        view.Realm(),
		request:      &resolvedRequest{},
		shard:        view.Shard(),
		view:         view,
	}
}

func (r *aliasResolver) resolveRequest(request *types.TransferRequest) (*resolvedRequest, *rTypes.Error) {
	hbarTransfers, err := r.resolveTransfers(request.HbarTransfers, domain.EntityId{})
	if err != nil {
		return nil, err
	}
	r.request.hbarTransfers = hbarTransfers

	for _, tokenTransfer := range request.TokenTransfers {
		transfers, err := r.resolveTransfers(tokenTransfer.Transfers, tokenTransfer.TokenId)
		if err != nil {
			return nil, err
		}

		nftTransfers, err := r.resolveNftTransfers(tokenTransfer.NftTransfers, tokenTransfer.TokenId)
		if err != nil {
			return nil, err
		}

		r.request.tokenLists = append(r.request.tokenLists, resolvedTokenList{
			expectedDecimals: tokenTransfer.ExpectedDecimals,
			nftTransfers:     nftTransfers,
			tokenId:          tokenTransfer.TokenId,
			transfers:        transfers,
		})
	}

	for _, pending := range r.request.pending {
		if pending.creditedHbar <= 0 && len(pending.creditedToken) == 0 && pending.creditedNfts == 0 {
			return nil, errors.ForCode(types.InvalidAccountId)
		}
	}

	return r.request, nil
}

func (r *aliasResolver) resolveTransfers(transfers []types.AccountAmount, tokenId domain.EntityId) (
	[]resolvedTransfer,
	*rTypes.Error,
) {
	resolved := make([]resolvedTransfer, 0, len(transfers))
	seen := make(map[string]struct{}, len(transfers))
	for _, transfer := range transfers {
		p, err := r.resolve(transfer.AccountId)
		if err != nil {
			return nil, err
		}

		key := fmt.Sprintf("%s/%t", p.identity(), transfer.IsApproval)
		if _, ok := seen[key]; ok {
			return nil, errors.ForCode(types.AccountRepeatedInAccountAmounts)
		}
		seen[key] = struct{}{}

		if p.pending != nil {
			if transfer.Amount < 0 || transfer.IsApproval {
				return nil, errors.ForCode(types.InvalidAccountId)
			}

			if tokenId.IsZero() {
				p.pending.creditedHbar += transfer.Amount
			} else {
				p.pending.creditedToken[tokenId] = struct{}{}
			}
		}

		resolved = append(resolved, resolvedTransfer{amount: transfer.Amount, isApproval: transfer.IsApproval, party: p})
		r.index++
	}

	return resolved, nil
}

func (r *aliasResolver) resolveNftTransfers(nftTransfers []types.NftTransfer, tokenId domain.EntityId) (
	[]resolvedNftTransfer,
	*rTypes.Error,
) {
	resolved := make([]resolvedNftTransfer, 0, len(nftTransfers))
	for _, nftTransfer := range nftTransfers {
		sender, err := r.resolve(nftTransfer.SenderAccountId)
		if err != nil {
			return nil, err
		}
		if sender.pending != nil {
			return nil, errors.ForCode(types.InvalidAccountId)
		}

		receiver, err := r.resolve(nftTransfer.ReceiverAccountId)
		if err != nil {
			return nil, err
		}
		if sender.identity() == receiver.identity() {
			return nil, errors.ForCode(types.AccountRepeatedInAccountAmounts)
		}
		if receiver.pending != nil {
			receiver.pending.creditedNfts++
			receiver.pending.creditedToken[tokenId] = struct{}{}
		}

		resolved = append(resolved, resolvedNftTransfer{
			isApproval:   nftTransfer.IsApproval,
			receiver:     receiver,
			sender:       sender,
			serialNumber: nftTransfer.SerialNumber,
		})
		r.index++
	}

	return resolved, nil
}

// resolve binds the account id to an account. A long-zero EVM address is the entity id in disguise, any other alias
// is looked up in the alias table and becomes a pending account when no account is bound to it.
func (r *aliasResolver) resolve(accountId types.AccountId) (party, *rTypes.Error) {
	if !accountId.HasAlias() {
		return r.existing(accountId.EntityId())
	}

	alias := accountId.GetAlias()
	if accountId.IsEvmAddress() {
		if entityId, ok := types.LongZeroEntityId(alias, r.shard, r.realm); ok {
			return r.existing(entityId)
		}

		if entityId, ok := r.view.LookupAlias(alias); ok {
			return r.existing(entityId)
		}

		if !r.lazyCreation.Enabled {
			return party{}, errors.ForCode(types.NotSupported)
		}
		return party{pending: r.pendingFor(string(alias), alias, alias, nil)}, nil
	}

	if entityId, ok := r.view.LookupAlias(alias); ok {
		return r.existing(entityId)
	}

	_, publicKey, err := types.NewPublicKeyFromAlias(alias)
	if err != nil {
		return party{}, errors.ForCode(types.InvalidAliasKey)
	}

	evmAddress := publicKey.EvmAddress()
	if evmAddress != nil {
		// an ECDSA key alias also names the account its EVM address is bound to
		if entityId, ok := r.view.LookupAlias(evmAddress); ok {
			return r.existing(entityId)
		}
	}

	if !r.autoCreation.Enabled {
		return party{}, errors.ForCode(types.NotSupported)
	}

	canonical := string(alias)
	if evmAddress != nil {
		canonical = string(evmAddress)
	}
	return party{pending: r.pendingFor(canonical, alias, evmAddress, &publicKey)}, nil
}

func (r *aliasResolver) existing(entityId domain.EntityId) (party, *rTypes.Error) {
	account, ok := r.view.GetAccount(entityId)
	if !ok {
		return party{}, errors.ForCode(types.InvalidAccountId)
	}

	if account.Deleted {
		return party{}, errors.ForCode(types.AccountDeleted)
	}

	return party{accountId: entityId}, nil
}

// pendingFor returns the pending account of the canonical alias, an ECDSA key alias and its EVM address share one
// pending account which is keyed if any of the names is the key alias
func (r *aliasResolver) pendingFor(
	canonical string,
	alias []byte,
	evmAddress []byte,
	key *types.PublicKey,
) *pendingAccount {
	if pending, ok := r.pending[canonical]; ok {
		if pending.key == nil && key != nil {
			pending.alias = alias
			pending.key = key
		}
		return pending
	}

	pending := &pendingAccount{
		alias:         alias,
		creditedToken: make(map[domain.EntityId]struct{}),
		evmAddress:    evmAddress,
		firstIndex:    r.index,
		key:           key,
	}
	r.pending[canonical] = pending
	r.request.pending = append(r.request.pending, pending)
	return pending
}
