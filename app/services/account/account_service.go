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

package account

import (
	"bytes"
	"context"
	"sort"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/services/base"
	log "github.com/sirupsen/logrus"
)

const maxMemoLength = 100

// accountService implements the interfaces.AccountService interface.
type accountService struct {
	base.BaseService
}

// CreateAccount creates an account funded by the payer. An alias, if given, must be the key alias or the EVM address
// of the account's key.
func (a *accountService) CreateAccount(ctx context.Context, request *types.CreateAccountRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if request.Key == nil || request.Key.IsEmpty() {
		return nil, errors.ForCode(types.KeyRequired)
	}

	if request.InitialBalance < 0 {
		return nil, errors.ForCode(types.InvalidInitialBalance)
	}

	if request.MaxAutoAssociations < types.UnlimitedAutoAssociations {
		return nil, errors.ForCode(types.InvalidMaxAutoAssociations)
	}

	if len(request.Memo) > maxMemoLength {
		return nil, errors.ForCode(types.MemoTooLong)
	}

	key := *request.Key
	alias, evmAddress, err := accountAliases(key, request.Alias)
	if err != nil {
		return nil, err
	}

	return a.Execute(ctx, types.TransactionTypeCryptoCreateAccount, request.TransactionId, request.Memo,
		request.Signers, func(view *ledger.View, record *types.TransactionRecord) *rTypes.Error {
			for _, name := range [][]byte{alias, evmAddress} {
				if _, ok := view.LookupAlias(name); ok && len(name) != 0 {
					return errors.ForCode(types.AliasAlreadyAssigned)
				}
			}

			payer, _ := view.GetAccount(request.TransactionId.PayerAccountId)
			if payer.Balance < request.InitialBalance {
				return errors.ForCode(types.InsufficientPayerBalance)
			}

			accountId, err := view.NewEntityId()
			if err != nil {
				log.Errorf("Failed to allocate account id: %s", err)
				return errors.ForCode(types.FailInvalid)
			}

			payer.Balance -= request.InitialBalance
			view.PutAccount(payer)
			view.PutAccount(types.Account{
				Id:                  accountId,
				Alias:               alias,
				AutoRenewPeriod:     types.DefaultAutoRenewPeriod,
				Balance:             request.InitialBalance,
				EvmAddress:          evmAddress,
				Key:                 &key,
				MaxAutoAssociations: request.MaxAutoAssociations,
				Memo:                request.Memo,
			})
			for _, name := range [][]byte{alias, evmAddress} {
				if len(name) != 0 {
					view.PutAlias(name, accountId)
				}
			}

			record.EntityId = accountId
			record.HbarTransfers = hbarTransfers(
				types.HbarTransfer{AccountId: payer.Id, Amount: -request.InitialBalance},
				types.HbarTransfer{AccountId: accountId, Amount: request.InitialBalance},
			)
			log.Debugf("Created account %s", accountId)
			return nil
		})
}

// DeleteAccount marks the account deleted and moves its hbar balance to the transfer account. The account must not
// hold any token balance nor be the treasury of a token.
func (a *accountService) DeleteAccount(ctx context.Context, request *types.DeleteAccountRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if request.TransferAccountId.IsZero() {
		return nil, errors.ForCode(types.InvalidTransferAccountId)
	}

	if request.TransferAccountId == request.AccountId {
		return nil, errors.ForCode(types.TransferAccountSameAsDeleteAccount)
	}

	return a.Execute(ctx, types.TransactionTypeCryptoDeleteAccount, request.TransactionId, "", request.Signers,
		func(view *ledger.View, record *types.TransactionRecord) *rTypes.Error {
			account, err := base.GetLiveAccount(view, request.AccountId, types.InvalidAccountId, types.AccountDeleted)
			if err != nil {
				return err
			}

			transferAccount, err := base.GetLiveAccount(view, request.TransferAccountId, types.InvalidTransferAccountId,
				types.AccountDeleted)
			if err != nil {
				return err
			}

			if err = a.RequireSignature(request.Signers, account); err != nil {
				return err
			}

			for _, relationship := range view.RelationshipsOf(account.Id) {
				if token, ok := view.GetToken(relationship.TokenId); ok && token.Treasury == account.Id {
					return errors.ForCode(types.AccountIsTreasury)
				}

				if relationship.Balance != 0 {
					return errors.ForCode(types.TransactionRequiresZeroTokenBalances)
				}
			}

			record.HbarTransfers = hbarTransfers(
				types.HbarTransfer{AccountId: account.Id, Amount: -account.Balance},
				types.HbarTransfer{AccountId: transferAccount.Id, Amount: account.Balance},
			)

			transferAccount.Balance += account.Balance
			account.Balance = 0
			account.Deleted = true
			view.PutAccount(transferAccount)
			view.PutAccount(account)

			if a.Config().Accounts.ReleaseAliasAfterDeletion {
				for _, name := range [][]byte{account.Alias, account.EvmAddress} {
					if len(name) != 0 {
						view.RemoveAlias(name)
					}
				}
			}

			log.Debugf("Deleted account %s", account.Id)
			return nil
		})
}

// FinalizeHollowAccount sets the key of a hollow account, the key must be the ECDSA secp256k1 key its EVM address is
// derived from and must sign the transaction
func (a *accountService) FinalizeHollowAccount(ctx context.Context, request *types.FinalizeHollowAccountRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if request.AccountId.IsEvmAddress() && !bytes.Equal(request.Key.EvmAddress(), request.AccountId.GetAlias()) {
		return nil, errors.ForCode(types.InvalidAliasKey)
	}

	return a.Execute(ctx, types.TransactionTypeCryptoUpdateAccount, request.TransactionId, "", request.Signers,
		func(view *ledger.View, record *types.TransactionRecord) *rTypes.Error {
			accountId, ok := base.ResolveAccountId(view, request.AccountId)
			if !ok {
				return errors.ForCode(types.InvalidAccountId)
			}

			account, err := base.GetLiveAccount(view, accountId, types.InvalidAccountId, types.AccountDeleted)
			if err != nil {
				return err
			}

			if !account.IsHollow() {
				return errors.ForCode(types.NotSupported)
			}

			evmAddress := request.Key.EvmAddress()
			if !bytes.Equal(evmAddress, account.EvmAddress) {
				return errors.ForCode(types.InvalidAliasKey)
			}

			if err = a.RequireKeySignature(request.Signers, request.Key); err != nil {
				return err
			}

			key := request.Key
			account.Key = &key
			view.PutAccount(account)

			record.EntityId = accountId
			log.Debugf("Finalized hollow account %s", accountId)
			return nil
		})
}

// GetAccountInfo returns the account named by the id and its token relationships
func (a *accountService) GetAccountInfo(ctx context.Context, accountId types.AccountId) (
	*types.AccountInfo,
	*rTypes.Error,
) {
	var info *types.AccountInfo
	err := a.Read(ctx, func(view *ledger.View) *rTypes.Error {
		entityId, ok := base.ResolveAccountId(view, accountId)
		if !ok {
			return errors.ForCode(types.InvalidAccountId)
		}

		account, ok := view.GetAccount(entityId)
		if !ok {
			return errors.ForCode(types.InvalidAccountId)
		}

		info = &types.AccountInfo{Account: account, Relationships: view.RelationshipsOf(entityId)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return info, nil
}

// accountAliases returns the key alias and the EVM address to bind to a new account. Without a requested alias only
// the EVM address of an ECDSA key is bound.
func accountAliases(key types.PublicKey, requested []byte) (alias []byte, evmAddress []byte, _ *rTypes.Error) {
	evmAddress = key.EvmAddress()
	if len(requested) == 0 {
		return nil, evmAddress, nil
	}

	if types.NewAccountIdFromAlias(requested).IsEvmAddress() {
		if !bytes.Equal(requested, evmAddress) {
			return nil, nil, errors.ForCode(types.InvalidAliasKey)
		}
		return nil, evmAddress, nil
	}

	_, aliasKey, err := types.NewPublicKeyFromAlias(requested)
	if err != nil || !aliasKey.Equal(key) {
		log.Debugf("Alias %x does not match the account key: %v", requested, err)
		return nil, nil, errors.ForCode(types.InvalidAliasKey)
	}

	return requested, evmAddress, nil
}

func hbarTransfers(transfers ...types.HbarTransfer) []types.HbarTransfer {
	result := make([]types.HbarTransfer, 0, len(transfers))
	for _, transfer := range transfers {
		if transfer.Amount != 0 {
			result = append(result, transfer)
		}
	}

	if len(result) == 0 {
		return nil
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].AccountId.Less(result[j].AccountId)
	})
	return result
}

// NewAccountService creates a new instance of an accountService.
func NewAccountService(baseService base.BaseService) interfaces.AccountService {
	return &accountService{BaseService: baseService}
}
