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
	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/hashgraph/hedera-settlement/app/tools"
	log "github.com/sirupsen/logrus"
)

// adjustment sums the changes of one account in one asset per kind of change
type adjustment struct {
	accountId     domain.EntityId
	creationFee   int64
	customFee     int64
	feeDebit      bool
	tokenId       domain.EntityId
	transfer      int64
	transferDebit bool
}

func (a *adjustment) add(change balanceChange) bool {
	var ok bool
	switch change.kind {
	case changeKindCustomFee:
		a.customFee, ok = tools.SafeAddInt64(a.customFee, change.amount)
		a.feeDebit = a.feeDebit || change.amount < 0
	case changeKindCreationFee:
		a.creationFee, ok = tools.SafeAddInt64(a.creationFee, change.amount)
	default:
		a.transfer, ok = tools.SafeAddInt64(a.transfer, change.amount)
		a.transferDebit = a.transferDebit || change.amount < 0
	}
	return ok
}

// apply returns the new balance, the buckets are applied in order so a shortfall is blamed on the first bucket which
// takes the balance below zero
func (a *adjustment) apply(balance int64, transferCode, customFeeCode, creationFeeCode types.ResponseCode) (
	int64,
	*rTypes.Error,
) {
	buckets := []struct {
		amount int64
		code   types.ResponseCode
	}{
		{a.transfer, transferCode},
		{a.customFee, customFeeCode},
		{a.creationFee, creationFeeCode},
	}

	for _, bucket := range buckets {
		var ok bool
		if balance, ok = tools.SafeAddInt64(balance, bucket.amount); !ok {
			return 0, errors.ForCode(types.InvalidAccountAmounts)
		}
		if balance < 0 {
			return 0, errors.ForCode(bucket.code)
		}
	}

	return balance, nil
}

type adjustmentKey struct {
	accountId domain.EntityId
	tokenId   domain.EntityId
}

// committer applies balance changes to the view, it emits an association record for every automatic association
type committer struct {
	associations []types.ChildRecord
	view         *ledger.View
}

func commitChanges(view *ledger.View, changes []balanceChange) ([]types.ChildRecord, *rTypes.Error) {
	c := &committer{view: view}
	if err := checkZeroSum(changes); err != nil {
		return nil, err
	}

	adjustments, err := aggregate(changes)
	if err != nil {
		return nil, err
	}

	for _, adj := range adjustments {
		if adj.tokenId.IsZero() {
			err = c.applyHbar(adj)
		} else {
			err = c.applyToken(adj)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, change := range changes {
		if change.isNft() {
			if err = c.moveNft(change); err != nil {
				return nil, err
			}
		}
	}

	return c.associations, nil
}

func (c *committer) applyHbar(adj *adjustment) *rTypes.Error {
	account, err := c.liveAccount(adj.accountId)
	if err != nil {
		return err
	}

	balance, err := adj.apply(account.Balance, types.InsufficientAccountBalance,
		types.InsufficientSenderAccountBalanceForCustomFee, types.InsufficientPayerBalance)
	if err != nil {
		return err
	}

	account.Balance = balance
	c.view.PutAccount(account)
	return nil
}

func (c *committer) applyToken(adj *adjustment) *rTypes.Error {
	token, err := c.liveToken(adj.tokenId)
	if err != nil {
		return err
	}

	if _, err = c.liveAccount(adj.accountId); err != nil {
		return err
	}

	relationship, ok := c.view.GetRelationship(adj.accountId, adj.tokenId)
	if !ok {
		switch {
		case adj.transferDebit:
			return errors.ForCode(types.TokenNotAssociatedToAccount)
		case adj.feeDebit:
			return errors.ForCode(types.InsufficientSenderAccountBalanceForCustomFee)
		}

		if relationship, err = c.autoAssociate(adj.accountId, token); err != nil {
			return err
		}
	}

	if relationship.Frozen {
		return errors.ForCode(types.AccountFrozenForToken)
	}

	balance, err := adj.apply(relationship.Balance, types.InsufficientTokenBalance,
		types.InsufficientSenderAccountBalanceForCustomFee, types.InsufficientTokenBalance)
	if err != nil {
		return err
	}

	relationship.Balance = balance
	c.view.PutRelationship(relationship)
	return nil
}

func (c *committer) moveNft(change balanceChange) *rTypes.Error {
	token, err := c.liveToken(change.tokenId)
	if err != nil {
		return err
	}

	nft, ok := c.view.GetNft(types.NftId{TokenId: change.tokenId, SerialNumber: change.serialNumber})
	if !ok {
		return errors.ForCode(types.InvalidNftId)
	}

	if nft.Owner != change.accountId {
		return errors.ForCode(types.SenderDoesNotOwnNftSerialNo)
	}

	if _, err = c.liveAccount(change.accountId); err != nil {
		return err
	}
	if _, err = c.liveAccount(change.counterparty); err != nil {
		return err
	}

	sender, ok := c.view.GetRelationship(change.accountId, change.tokenId)
	if !ok {
		return errors.ForCode(types.TokenNotAssociatedToAccount)
	}

	receiver, ok := c.view.GetRelationship(change.counterparty, change.tokenId)
	if !ok {
		if receiver, err = c.autoAssociate(change.counterparty, token); err != nil {
			return err
		}
	}

	if sender.Frozen || receiver.Frozen {
		return errors.ForCode(types.AccountFrozenForToken)
	}

	sender.Balance--
	receiver.Balance++
	c.view.PutRelationship(sender)
	c.view.PutRelationship(receiver)

	nft.Owner = change.counterparty
	nft.Spender = domain.EntityId{}
	c.view.PutNft(nft)
	return nil
}

func (c *committer) autoAssociate(accountId domain.EntityId, token types.Token) (
	types.TokenRelationship,
	*rTypes.Error,
) {
	account, err := c.liveAccount(accountId)
	if err != nil {
		return types.TokenRelationship{}, err
	}

	if !account.HasFreeAutoAssociationSlot() {
		return types.TokenRelationship{}, errors.ForCode(types.NoRemainingAutomaticAssociations)
	}

	account.UsedAutoAssociations++
	c.view.PutAccount(account)

	relationship := types.TokenRelationship{
		AccountId:      accountId,
		AutomaticAssoc: true,
		Frozen:         token.FreezeDefault,
		TokenId:        token.TokenId,
	}
	c.view.PutRelationship(relationship)
	c.associations = append(c.associations, types.ChildRecord{
		AccountId: accountId,
		Kind:      types.ChildRecordAssociationCreated,
		TokenId:   token.TokenId,
	})

	log.Debugf("Automatically associated account %s with token %s", accountId, token.TokenId)
	return relationship, nil
}

func (c *committer) liveAccount(accountId domain.EntityId) (types.Account, *rTypes.Error) {
	account, ok := c.view.GetAccount(accountId)
	if !ok {
		return types.Account{}, errors.ForCode(types.InvalidAccountId)
	}

	if account.Deleted {
		return types.Account{}, errors.ForCode(types.AccountDeleted)
	}

	return account, nil
}

func (c *committer) liveToken(tokenId domain.EntityId) (types.Token, *rTypes.Error) {
	return liveToken(c.view, tokenId)
}

func liveToken(view *ledger.View, tokenId domain.EntityId) (types.Token, *rTypes.Error) {
	token, ok := view.GetToken(tokenId)
	if !ok {
		return types.Token{}, errors.ForCode(types.InvalidTokenId)
	}

	if token.Deleted {
		return types.Token{}, errors.ForCode(types.TokenWasDeleted)
	}

	if token.Paused {
		return types.Token{}, errors.ForCode(types.TokenIsPaused)
	}

	return token, nil
}

// aggregate groups the fungible changes per account and asset in order of first appearance
func aggregate(changes []balanceChange) ([]*adjustment, *rTypes.Error) {
	var adjustments []*adjustment
	index := make(map[adjustmentKey]*adjustment)
	for _, change := range changes {
		if change.isNft() {
			continue
		}

		key := adjustmentKey{accountId: change.accountId, tokenId: change.tokenId}
		adj, ok := index[key]
		if !ok {
			adj = &adjustment{accountId: change.accountId, tokenId: change.tokenId}
			index[key] = adj
			adjustments = append(adjustments, adj)
		}

		if !adj.add(change) {
			return nil, errors.ForCode(types.InvalidAccountAmounts)
		}
	}

	return adjustments, nil
}

// checkZeroSum verifies every asset nets to zero, a violation is a bug in the assessment of the changes
func checkZeroSum(changes []balanceChange) *rTypes.Error {
	sums := make(map[domain.EntityId]int64)
	for _, change := range changes {
		if change.isNft() {
			continue
		}

		sum, ok := tools.SafeAddInt64(sums[change.tokenId], change.amount)
		if !ok {
			return errors.ForCode(types.InvalidAccountAmounts)
		}
		sums[change.tokenId] = sum
	}

	for tokenId, sum := range sums {
		if sum != 0 {
			log.Errorf("Balance changes of %s net to %d", tokenId, sum)
			return errors.ForCode(types.FailInvalid)
		}
	}

	return nil
}
