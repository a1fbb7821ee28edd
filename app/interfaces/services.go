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

package interfaces

import (
	"context"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
)

// SettlementService Interface that all SettlementService structs must implement
type SettlementService interface {

	// Transfer settles the crypto transfer atomically, either every balance change is committed or none is
	Transfer(ctx context.Context, request *types.TransferRequest) (*types.TransactionRecord, *rTypes.Error)
}

// AllowanceService Interface that all AllowanceService structs must implement
type AllowanceService interface {
	ApproveAllowance(ctx context.Context, request *types.ApproveAllowanceRequest) (
		*types.TransactionRecord,
		*rTypes.Error,
	)
	DeleteAllowance(ctx context.Context, request *types.DeleteAllowanceRequest) (
		*types.TransactionRecord,
		*rTypes.Error,
	)
}

// AccountService Interface that all AccountService structs must implement
type AccountService interface {
	CreateAccount(ctx context.Context, request *types.CreateAccountRequest) (*types.TransactionRecord, *rTypes.Error)
	DeleteAccount(ctx context.Context, request *types.DeleteAccountRequest) (*types.TransactionRecord, *rTypes.Error)
	FinalizeHollowAccount(ctx context.Context, request *types.FinalizeHollowAccountRequest) (
		*types.TransactionRecord,
		*rTypes.Error,
	)
	GetAccountInfo(ctx context.Context, accountId types.AccountId) (*types.AccountInfo, *rTypes.Error)
}

// TokenService Interface that all TokenService structs must implement
type TokenService interface {
	AssociateTokens(ctx context.Context, request *types.TokenAssociationRequest) (
		*types.TransactionRecord,
		*rTypes.Error,
	)
	CreateToken(ctx context.Context, request *types.CreateTokenRequest) (*types.TransactionRecord, *rTypes.Error)
	DissociateTokens(ctx context.Context, request *types.TokenAssociationRequest) (
		*types.TransactionRecord,
		*rTypes.Error,
	)
	GetToken(ctx context.Context, tokenId domain.EntityId) (*types.Token, *rTypes.Error)
	MintNft(ctx context.Context, request *types.MintNftRequest) (*types.TransactionRecord, *rTypes.Error)
	UpdateFeeSchedule(ctx context.Context, request *types.UpdateFeeScheduleRequest) (
		*types.TransactionRecord,
		*rTypes.Error,
	)
}

// RecordService Interface that all RecordService structs must implement
type RecordService interface {
	GetRecord(ctx context.Context, transactionId string) (*types.TransactionRecord, *rTypes.Error)
}
