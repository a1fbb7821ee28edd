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
	"github.com/hashgraph/hedera-settlement/app/tools"
)

const maxMemoLength = 100

// prevalidate runs the checks which only need the request, in the order the network applies them
func prevalidate(request *types.TransferRequest, ledgerConfig config.Ledger) *rTypes.Error {
	if len(request.Memo) > maxMemoLength {
		return errors.ForCode(types.MemoTooLong)
	}

	if err := validateHbarTransfers(request.HbarTransfers, ledgerConfig); err != nil {
		return err
	}

	if err := validateTokenTransfers(request.TokenTransfers, ledgerConfig); err != nil {
		return err
	}

	return validateAliases(request)
}

func validateHbarTransfers(transfers []types.AccountAmount, ledgerConfig config.Ledger) *rTypes.Error {
	if !isNetZero(transfers) {
		return errors.ForCode(types.InvalidAccountAmounts)
	}

	if len(transfers) > ledgerConfig.TransfersMaxLen {
		return errors.ForCode(types.TransferListSizeLimitExceeded)
	}

	if hasRepeatedAccount(transfers) {
		return errors.ForCode(types.AccountRepeatedInAccountAmounts)
	}

	for _, transfer := range transfers {
		if transfer.AccountId.IsZero() {
			return errors.ForCode(types.InvalidAccountId)
		}
	}

	return nil
}

func validateTokenTransfers(tokenTransfers []types.TokenTransferList, ledgerConfig config.Ledger) *rTypes.Error {
	if len(tokenTransfers) > ledgerConfig.TokenTransfersMaxLen {
		return errors.ForCode(types.TokenTransferListSizeLimitExceeded)
	}

	fungibleCount := 0
	nftCount := 0
	for _, tokenTransfer := range tokenTransfers {
		hasFungible := len(tokenTransfer.Transfers) != 0
		hasNft := len(tokenTransfer.NftTransfers) != 0
		if hasFungible && hasNft {
			return errors.ForCode(types.InvalidAccountAmounts)
		}
		if !hasFungible && !hasNft {
			return errors.ForCode(types.EmptyTokenTransferAccountAmounts)
		}

		fungibleCount += len(tokenTransfer.Transfers)
		nftCount += len(tokenTransfer.NftTransfers)
	}

	if fungibleCount > ledgerConfig.TokenTransfersMaxLen {
		return errors.ForCode(types.TokenTransferListSizeLimitExceeded)
	}

	if nftCount > ledgerConfig.NftTransfersMaxLen {
		return errors.ForCode(types.BatchSizeLimitExceeded)
	}

	seenTokens := make(map[int64]struct{}, len(tokenTransfers))
	for _, tokenTransfer := range tokenTransfers {
		if tokenTransfer.TokenId.IsZero() {
			return errors.ForCode(types.InvalidTokenId)
		}

		if err := validateNftTransfers(tokenTransfer.NftTransfers); err != nil {
			return err
		}

		if err := validateFungibleTransfers(tokenTransfer.Transfers); err != nil {
			return err
		}

		if _, ok := seenTokens[tokenTransfer.TokenId.EncodedId]; ok {
			return errors.ForCode(types.TokenIdRepeatedInTokenList)
		}
		seenTokens[tokenTransfer.TokenId.EncodedId] = struct{}{}
	}

	return nil
}

func validateNftTransfers(nftTransfers []types.NftTransfer) *rTypes.Error {
	serialNumbers := make(map[int64]struct{}, len(nftTransfers))
	for _, nftTransfer := range nftTransfers {
		if nftTransfer.SenderAccountId.IsZero() || nftTransfer.ReceiverAccountId.IsZero() {
			return errors.ForCode(types.InvalidAccountId)
		}

		if rawIdentity(nftTransfer.SenderAccountId) == rawIdentity(nftTransfer.ReceiverAccountId) {
			return errors.ForCode(types.AccountRepeatedInAccountAmounts)
		}

		if nftTransfer.SerialNumber <= 0 {
			return errors.ForCode(types.InvalidTokenNftSerialNumber)
		}

		if _, ok := serialNumbers[nftTransfer.SerialNumber]; ok {
			return errors.ForCode(types.InvalidAccountAmounts)
		}
		serialNumbers[nftTransfer.SerialNumber] = struct{}{}
	}

	return nil
}

func validateFungibleTransfers(transfers []types.AccountAmount) *rTypes.Error {
	for _, transfer := range transfers {
		if transfer.AccountId.IsZero() {
			return errors.ForCode(types.InvalidAccountId)
		}

		if transfer.Amount == 0 {
			return errors.ForCode(types.InvalidAccountAmounts)
		}
	}

	if hasRepeatedAccount(transfers) {
		return errors.ForCode(types.AccountRepeatedInAccountAmounts)
	}

	if !isNetZero(transfers) {
		return errors.ForCode(types.TransfersNotZeroSumForToken)
	}

	return nil
}

// validateAliases checks every key alias is a serialized ed25519 or ECDSA secp256k1 key
func validateAliases(request *types.TransferRequest) *rTypes.Error {
	accountIds := make([]types.AccountId, 0, len(request.HbarTransfers))
	for _, transfer := range request.HbarTransfers {
		accountIds = append(accountIds, transfer.AccountId)
	}
	for _, tokenTransfer := range request.TokenTransfers {
		for _, transfer := range tokenTransfer.Transfers {
			accountIds = append(accountIds, transfer.AccountId)
		}
		for _, nftTransfer := range tokenTransfer.NftTransfers {
			accountIds = append(accountIds, nftTransfer.SenderAccountId, nftTransfer.ReceiverAccountId)
		}
	}

	for _, accountId := range accountIds {
		if !accountId.HasAlias() || accountId.IsEvmAddress() {
			continue
		}

		if _, _, err := types.NewPublicKeyFromAlias(accountId.GetAlias()); err != nil {
			return errors.AddErrorDetails(errors.ForCode(types.InvalidAliasKey), "alias", err.Error())
		}
	}

	return nil
}

func isNetZero(transfers []types.AccountAmount) bool {
	var sum int64
	for _, transfer := range transfers {
		var ok bool
		if sum, ok = tools.SafeAddInt64(sum, transfer.Amount); !ok {
			return false
		}
	}
	return sum == 0
}

func hasRepeatedAccount(transfers []types.AccountAmount) bool {
	seen := make(map[string]struct{}, len(transfers))
	for _, transfer := range transfers {
		key := fmt.Sprintf("%s/%t", rawIdentity(transfer.AccountId), transfer.IsApproval)
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// rawIdentity identifies an account by what the request names it with, before any alias is resolved
func rawIdentity(accountId types.AccountId) string {
	if accountId.HasAlias() {
		return "@" + string(accountId.GetAlias())
	}
	return fmt.Sprintf("#%d", accountId.GetId())
}
