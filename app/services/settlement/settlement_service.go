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
	"context"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/services/base"
	log "github.com/sirupsen/logrus"
)

// settlementService implements the interfaces.SettlementService interface.
type settlementService struct {
	base.BaseService
}

// Transfer settles the request as one unit, on failure the ledger is left unchanged
func (s *settlementService) Transfer(ctx context.Context, request *types.TransferRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if err := prevalidate(request, s.Config().Ledger); err != nil {
		log.Debugf("Transfer %s failed prevalidation: %s", request.TransactionId, err.Message)
		return nil, err
	}

	return s.Execute(ctx, types.TransactionTypeCryptoTransfer, request.TransactionId, request.Memo, request.Signers,
		func(view *ledger.View, record *types.TransactionRecord) *rTypes.Error {
			return s.settle(view, request, record)
		})
}

func (s *settlementService) settle(
	view *ledger.View,
	request *types.TransferRequest,
	record *types.TransactionRecord,
) *rTypes.Error {
	cfg := s.Config()
	payer := request.TransactionId.PayerAccountId

	resolved, err := newAliasResolver(view, cfg).resolveRequest(request)
	if err != nil {
		return err
	}

	if err = validateTokens(view, resolved); err != nil {
		return err
	}

	if err = s.requireSenderSignatures(view, resolved, request.Signers); err != nil {
		return err
	}

	creationFees, creations, err := createAccounts(view, resolved.pending, s.FeeCalculator(), payer,
		cfg.Ledger.FundingAccount)
	if err != nil {
		return err
	}

	changes := append(expand(resolved), creationFees...)
	charges, feePayments, err := assessCustomFees(view, changes, cfg.Tokens.MaxCustomFeeDepth)
	if err != nil {
		return err
	}

	all := append(changes, charges...)
	if count := countAdjustments(all); count > cfg.Ledger.XferBalanceChangesMaxLen {
		log.Debugf("Transfer %s expands to %d balance changes", request.TransactionId, count)
		return errors.ForCode(types.CustomFeeChargingExceededMaxAccountAmounts)
	}

	if err = consumeAllowances(view, changes, payer); err != nil {
		return err
	}

	associations, err := commitChanges(view, all)
	if err != nil {
		return err
	}

	fillRecord(record, all, creations, feePayments, associations)
	return nil
}

// requireSenderSignatures requires the signature of every existing account debited without an allowance
func (s *settlementService) requireSenderSignatures(
	view *ledger.View,
	request *resolvedRequest,
	signers []types.PublicKey,
) *rTypes.Error {
	var senders []party
	for _, transfer := range request.hbarTransfers {
		if transfer.amount < 0 && !transfer.isApproval {
			senders = append(senders, transfer.party)
		}
	}

	for _, tokenList := range request.tokenLists {
		for _, transfer := range tokenList.transfers {
			if transfer.amount < 0 && !transfer.isApproval {
				senders = append(senders, transfer.party)
			}
		}
		for _, nftTransfer := range tokenList.nftTransfers {
			if !nftTransfer.isApproval {
				senders = append(senders, nftTransfer.sender)
			}
		}
	}

	for _, sender := range senders {
		if sender.pending != nil {
			continue
		}

		account, _ := view.GetAccount(sender.accountId)
		if err := s.RequireSignature(signers, account); err != nil {
			return err
		}
	}

	return nil
}

// validateTokens checks every token list refers to a usable token of the matching type
func validateTokens(view *ledger.View, request *resolvedRequest) *rTypes.Error {
	for _, tokenList := range request.tokenLists {
		token, err := liveToken(view, tokenList.tokenId)
		if err != nil {
			return err
		}

		if len(tokenList.transfers) != 0 && token.IsNft() {
			return errors.ForCode(types.AccountAmountTransfersOnlyAllowedForFungibleCommon)
		}

		if len(tokenList.nftTransfers) != 0 && !token.IsNft() {
			return errors.ForCode(types.InvalidNftId)
		}

		if tokenList.expectedDecimals != nil && *tokenList.expectedDecimals != token.Decimals {
			return errors.ForCode(types.UnexpectedTokenDecimals)
		}
	}

	return nil
}

// countAdjustments counts the distinct fungible adjustments plus the nft movements
func countAdjustments(changes []balanceChange) int {
	count := 0
	seen := make(map[adjustmentKey]struct{})
	for _, change := range changes {
		if change.isNft() {
			count++
			continue
		}

		key := adjustmentKey{accountId: change.accountId, tokenId: change.tokenId}
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			count++
		}
	}
	return count
}

// NewSettlementService creates a new instance of a settlementService.
func NewSettlementService(baseService base.BaseService) interfaces.SettlementService {
	return &settlementService{BaseService: baseService}
}

