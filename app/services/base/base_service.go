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

package base

import (
	"context"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/config"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	log "github.com/sirupsen/logrus"
)

// TransactionBody applies a transaction to the ledger view and fills in the record, a non-nil error discards the view
type TransactionBody func(view *ledger.View, record *types.TransactionRecord) *rTypes.Error

// BaseService - Struct implementing common functionalities used by more than 1 service
type BaseService struct {
	clock         interfaces.Clock
	config        *config.Config
	feeCalculator interfaces.FeeCalculator
	recordRepo    interfaces.RecordRepository
	store         *ledger.Store
	verifier      interfaces.SignatureVerifier
}

// NewBaseService - Service containing common functions that are shared between other services
func NewBaseService(
	cfg *config.Config,
	store *ledger.Store,
	recordRepo interfaces.RecordRepository,
	clock interfaces.Clock,
	feeCalculator interfaces.FeeCalculator,
	verifier interfaces.SignatureVerifier,
) BaseService {
	return BaseService{
		clock:         clock,
		config:        cfg,
		feeCalculator: feeCalculator,
		recordRepo:    recordRepo,
		store:         store,
		verifier:      verifier,
	}
}

func (b *BaseService) Config() *config.Config {
	return b.config
}

func (b *BaseService) FeeCalculator() interfaces.FeeCalculator {
	return b.feeCalculator
}

func (b *BaseService) Store() *ledger.Store {
	return b.store
}

// Execute runs the transaction paid by the payer of the transaction id. The payer must exist and must have signed,
// the body then runs against a fresh view which is committed only when the body succeeds. The record of a committed
// transaction is persisted, a persistence failure is logged and does not undo the transaction.
func (b *BaseService) Execute(
	ctx context.Context,
	transactionType string,
	transactionId types.TransactionId,
	memo string,
	signers []types.PublicKey,
	body TransactionBody,
) (*types.TransactionRecord, *rTypes.Error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.AddErrorDetails(errors.ErrInternalServerError, "cause", err.Error())
	}

	record := &types.TransactionRecord{
		Memo:          memo,
		TransactionId: transactionId,
		Type:          transactionType,
	}
	rErr := b.store.Update(func(view *ledger.View) *rTypes.Error {
		payer, ok := view.GetAccount(transactionId.PayerAccountId)
		if !ok {
			return errors.ForCode(types.PayerAccountNotFound)
		}
		if payer.Deleted {
			return errors.ForCode(types.AccountDeleted)
		}
		if err := b.RequireSignature(signers, payer); err != nil {
			return err
		}

		record.ConsensusTimestamp = view.ConsensusTimestamp(b.clock.Now())
		return body(view, record)
	})

	if rErr != nil {
		transactionsCounter.WithLabelValues(transactionType, rErr.Message).Inc()
		log.Debugf("Transaction %s failed: %s", transactionId, rErr.Message)
		return nil, rErr
	}

	record.Status = types.Success.String()
	transactionsCounter.WithLabelValues(transactionType, record.Status).Inc()
	log.Debugf("Transaction %s reached consensus at %d", transactionId, record.ConsensusTimestamp)

	if err := b.recordRepo.Add(ctx, record); err != nil {
		log.Errorf("Failed to persist the record of transaction %s: %s", transactionId, err.Message)
	}

	return record, nil
}

// RequireSignature checks the signers cover the account
func (b *BaseService) RequireSignature(signers []types.PublicKey, account types.Account) *rTypes.Error {
	if !b.verifier.IsSignedBy(signers, account) {
		log.Debugf("Missing signature of account %s", account.Id)
		return errors.ForCode(types.InvalidSignature)
	}

	return nil
}

// RequireKeySignature checks the signers cover the key
func (b *BaseService) RequireKeySignature(signers []types.PublicKey, key types.PublicKey) *rTypes.Error {
	if !b.verifier.IsSignedByKey(signers, key) {
		return errors.ForCode(types.InvalidSignature)
	}

	return nil
}

// Read runs fn against a read-only view of the ledger
func (b *BaseService) Read(ctx context.Context, fn func(view *ledger.View) *rTypes.Error) *rTypes.Error {
	if err := ctx.Err(); err != nil {
		return errors.AddErrorDetails(errors.ErrInternalServerError, "cause", err.Error())
	}

	var rErr *rTypes.Error
	b.store.Read(func(view *ledger.View) {
		rErr = fn(view)
	})
	return rErr
}

// GetLiveAccount returns the account if it exists and is not deleted, the error codes for the two failures are
// supplied by the caller
func GetLiveAccount(
	view *ledger.View,
	accountId domain.EntityId,
	missingCode types.ResponseCode,
	deletedCode types.ResponseCode,
) (types.Account, *rTypes.Error) {
	account, ok := view.GetAccount(accountId)
	if !ok {
		return types.Account{}, errors.ForCode(missingCode)
	}

	if account.Deleted {
		return types.Account{}, errors.ForCode(deletedCode)
	}

	return account, nil
}

// ResolveAccountId finds the account an id names, by entity id, long-zero EVM address, or alias
func ResolveAccountId(view *ledger.View, accountId types.AccountId) (domain.EntityId, bool) {
	if !accountId.HasAlias() {
		return accountId.EntityId(), !accountId.IsZero()
	}

	if accountId.IsEvmAddress() {
		if entityId, ok := types.LongZeroEntityId(accountId.GetAlias(), view.Shard(), view.Realm()); ok {
			return entityId, true
		}
	}

	return view.LookupAlias(accountId.GetAlias())
}
