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

package allowance

import (
	"context"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/hashgraph/hedera-settlement/app/services/base"
	log "github.com/sirupsen/logrus"
)

// allowanceService implements the interfaces.AllowanceService interface.
type allowanceService struct {
	base.BaseService
}

// ApproveAllowance grants, replaces, or revokes allowances. Every entry is validated before any of them is applied,
// the entries are then applied in order so a later duplicate wins.
func (a *allowanceService) ApproveAllowance(ctx context.Context, request *types.ApproveAllowanceRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	count := len(request.CryptoAllowances) + len(request.TokenAllowances) + len(request.NftAllowances)
	if count == 0 {
		return nil, errors.ForCode(types.EmptyAllowances)
	}

	if countApprovals(request) > a.Config().Allowances.MaxTransactionLimit {
		return nil, errors.ForCode(types.MaxAllowancesExceeded)
	}

	return a.Execute(ctx, types.TransactionTypeCryptoApproveAllowance, request.TransactionId, "", request.Signers,
		func(view *ledger.View, _ *types.TransactionRecord) *rTypes.Error {
			return a.approve(view, request)
		})
}

// DeleteAllowance removes the explicit spender of the listed serials
func (a *allowanceService) DeleteAllowance(ctx context.Context, request *types.DeleteAllowanceRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if len(request.NftAllowances) == 0 {
		return nil, errors.ForCode(types.EmptyAllowances)
	}

	count := 0
	for _, nftAllowance := range request.NftAllowances {
		count += len(nftAllowance.SerialNumbers)
	}
	if count > a.Config().Allowances.MaxTransactionLimit {
		return nil, errors.ForCode(types.MaxAllowancesExceeded)
	}

	return a.Execute(ctx, types.TransactionTypeCryptoDeleteAllowance, request.TransactionId, "", request.Signers,
		func(view *ledger.View, _ *types.TransactionRecord) *rTypes.Error {
			return a.delete(view, request)
		})
}

func (a *allowanceService) approve(view *ledger.View, request *types.ApproveAllowanceRequest) *rTypes.Error {
	payer := request.TransactionId.PayerAccountId
	signers := request.Signers

	for _, grant := range request.CryptoAllowances {
		owner, err := validateOwnerAndSpender(view, ownerOrPayer(grant.Owner, payer), grant.Spender, grant.Amount)
		if err != nil {
			return err
		}
		if err = a.RequireSignature(signers, owner); err != nil {
			return err
		}
	}

	for _, grant := range request.TokenAllowances {
		if err := a.validateTokenGrant(view, signers, ownerOrPayer(grant.Owner, payer), grant); err != nil {
			return err
		}
	}

	for _, grant := range request.NftAllowances {
		if err := a.validateNftGrant(view, signers, ownerOrPayer(grant.Owner, payer), grant); err != nil {
			return err
		}
	}

	owners := make(map[domain.EntityId]struct{})
	for _, grant := range request.CryptoAllowances {
		allowance := types.CryptoAllowance{
			Amount:  grant.Amount,
			Owner:   ownerOrPayer(grant.Owner, payer),
			Spender: grant.Spender,
		}
		putOrRemove(view, allowance, grant.Amount == 0)
		owners[allowance.Owner] = struct{}{}
	}

	for _, grant := range request.TokenAllowances {
		allowance := types.TokenAllowance{
			Amount:  grant.Amount,
			Owner:   ownerOrPayer(grant.Owner, payer),
			Spender: grant.Spender,
			TokenId: grant.TokenId,
		}
		putOrRemove(view, allowance, grant.Amount == 0)
		owners[allowance.Owner] = struct{}{}
	}

	for _, grant := range request.NftAllowances {
		owner := ownerOrPayer(grant.Owner, payer)
		if grant.ApprovedForAll != nil {
			allowance := types.NftAllowance{
				ApprovedForAll: true,
				Owner:          owner,
				Spender:        grant.Spender,
				TokenId:        grant.TokenId,
			}
			putOrRemove(view, allowance, !*grant.ApprovedForAll)
			owners[owner] = struct{}{}
		}

		for _, serialNumber := range grant.SerialNumbers {
			nft, _ := view.GetNft(types.NftId{TokenId: grant.TokenId, SerialNumber: serialNumber})
			nft.Spender = grant.Spender
			view.PutNft(nft)
		}
	}

	maxAccountLimit := a.Config().Allowances.MaxAccountLimit
	for owner := range owners {
		if count := view.CountAllowances(owner); count > maxAccountLimit {
			log.Debugf("Account %s would hold %d allowances", owner, count)
			return errors.ForCode(types.MaxAllowancesExceeded)
		}
	}

	return nil
}

func (a *allowanceService) delete(view *ledger.View, request *types.DeleteAllowanceRequest) *rTypes.Error {
	payer := request.TransactionId.PayerAccountId
	for _, nftAllowance := range request.NftAllowances {
		ownerId := ownerOrPayer(nftAllowance.Owner, payer)
		owner, err := base.GetLiveAccount(view, ownerId, types.InvalidAllowanceOwnerId, types.InvalidAllowanceOwnerId)
		if err != nil {
			return err
		}

		if err = validateNftToken(view, nftAllowance.TokenId); err != nil {
			return err
		}

		if err = validateSerialNumbers(view, ownerId, nftAllowance.TokenId, nftAllowance.SerialNumbers); err != nil {
			return err
		}

		if err = a.RequireSignature(request.Signers, owner); err != nil {
			return err
		}
	}

	for _, nftAllowance := range request.NftAllowances {
		for _, serialNumber := range nftAllowance.SerialNumbers {
			nft, _ := view.GetNft(types.NftId{TokenId: nftAllowance.TokenId, SerialNumber: serialNumber})
			nft.Spender = domain.EntityId{}
			view.PutNft(nft)
		}
	}

	return nil
}

// validateOwnerAndSpender checks the parties of a grant, a deleted spender may only have its allowance revoked
func validateOwnerAndSpender(
	view *ledger.View,
	ownerId domain.EntityId,
	spenderId domain.EntityId,
	amount int64,
) (types.Account, *rTypes.Error) {
	owner, err := base.GetLiveAccount(view, ownerId, types.InvalidAllowanceOwnerId, types.InvalidAllowanceOwnerId)
	if err != nil {
		return types.Account{}, err
	}

	spender, ok := view.GetAccount(spenderId)
	if !ok || (spender.Deleted && amount != 0) {
		return types.Account{}, errors.ForCode(types.InvalidAllowanceSpenderId)
	}

	if ownerId == spenderId {
		return types.Account{}, errors.ForCode(types.SpenderAccountSameAsOwner)
	}

	if amount < 0 {
		return types.Account{}, errors.ForCode(types.NegativeAllowanceAmount)
	}

	return owner, nil
}

func (a *allowanceService) validateTokenGrant(
	view *ledger.View,
	signers []types.PublicKey,
	ownerId domain.EntityId,
	grant types.TokenAllowanceGrant,
) *rTypes.Error {
	owner, err := validateOwnerAndSpender(view, ownerId, grant.Spender, grant.Amount)
	if err != nil {
		return err
	}

	token, ok := view.GetToken(grant.TokenId)
	if !ok {
		return errors.ForCode(types.InvalidTokenId)
	}

	if token.IsNft() {
		return errors.ForCode(types.NftInFungibleTokenAllowances)
	}

	if _, ok = view.GetRelationship(ownerId, grant.TokenId); !ok {
		return errors.ForCode(types.TokenNotAssociatedToAccount)
	}

	if token.SupplyType == types.TokenSupplyTypeFinite && grant.Amount > token.MaxSupply {
		return errors.ForCode(types.AmountExceedsTokenMaxSupply)
	}

	return a.RequireSignature(signers, owner)
}

func (a *allowanceService) validateNftGrant(
	view *ledger.View,
	signers []types.PublicKey,
	ownerId domain.EntityId,
	grant types.NftAllowanceGrant,
) *rTypes.Error {
	revoke := grant.ApprovedForAll != nil && !*grant.ApprovedForAll && len(grant.SerialNumbers) == 0
	amount := int64(1)
	if revoke {
		amount = 0
	}

	owner, err := validateOwnerAndSpender(view, ownerId, grant.Spender, amount)
	if err != nil {
		return err
	}

	if err = validateNftToken(view, grant.TokenId); err != nil {
		return err
	}

	if _, ok := view.GetRelationship(ownerId, grant.TokenId); !ok {
		return errors.ForCode(types.TokenNotAssociatedToAccount)
	}

	approvedForAll := grant.ApprovedForAll != nil && *grant.ApprovedForAll
	if approvedForAll && len(grant.SerialNumbers) != 0 {
		return errors.ForCode(types.InvalidAllowanceSpenderId)
	}

	signer := owner
	if !grant.DelegatingSpender.IsZero() {
		if approvedForAll {
			return errors.ForCode(types.DelegatingSpenderCannotGrantApproveForAll)
		}

		key := types.AllowanceKey{
			Kind:    types.AllowanceKindNft,
			Owner:   ownerId,
			Spender: grant.DelegatingSpender,
			TokenId: grant.TokenId,
		}
		if _, ok := view.GetAllowance(key); !ok {
			return errors.ForCode(types.DelegatingSpenderDoesNotHaveApproveForAll)
		}

		if signer, err = base.GetLiveAccount(view, grant.DelegatingSpender, types.InvalidAllowanceSpenderId,
			types.InvalidAllowanceSpenderId); err != nil {
			return err
		}
	}

	if err = validateSerialNumbers(view, ownerId, grant.TokenId, grant.SerialNumbers); err != nil {
		return err
	}

	return a.RequireSignature(signers, signer)
}

func validateNftToken(view *ledger.View, tokenId domain.EntityId) *rTypes.Error {
	token, ok := view.GetToken(tokenId)
	if !ok {
		return errors.ForCode(types.InvalidTokenId)
	}

	if !token.IsNft() {
		return errors.ForCode(types.FungibleTokenInNftAllowances)
	}

	return nil
}

func validateSerialNumbers(
	view *ledger.View,
	ownerId domain.EntityId,
	tokenId domain.EntityId,
	serialNumbers []int64,
) *rTypes.Error {
	for _, serialNumber := range serialNumbers {
		if serialNumber <= 0 {
			return errors.ForCode(types.InvalidTokenNftSerialNumber)
		}

		nft, ok := view.GetNft(types.NftId{TokenId: tokenId, SerialNumber: serialNumber})
		if !ok {
			return errors.ForCode(types.InvalidTokenNftSerialNumber)
		}

		if nft.Owner != ownerId {
			return errors.ForCode(types.SenderDoesNotOwnNftSerialNo)
		}
	}

	return nil
}

// countApprovals counts the entries toward the transaction limit, every serial of an nft entry counts
func countApprovals(request *types.ApproveAllowanceRequest) int {
	count := len(request.CryptoAllowances) + len(request.TokenAllowances)
	for _, grant := range request.NftAllowances {
		entries := len(grant.SerialNumbers)
		if grant.ApprovedForAll != nil || entries == 0 {
			entries++
		}
		count += entries
	}
	return count
}

func ownerOrPayer(owner, payer domain.EntityId) domain.EntityId {
	if owner.IsZero() {
		return payer
	}
	return owner
}

func putOrRemove(view *ledger.View, allowance types.Allowance, remove bool) {
	if remove {
		view.RemoveAllowance(allowance.GetKey())
	} else {
		view.PutAllowance(allowance)
	}
}

// NewAllowanceService creates a new instance of an allowanceService.
func NewAllowanceService(baseService base.BaseService) interfaces.AllowanceService {
	return &allowanceService{BaseService: baseService}
}
