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

package mocks

import (
	"context"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/stretchr/testify/mock"
)

type recordResult struct {
	mock.Mock
}

func (m *recordResult) record(method string, args ...interface{}) (*types.TransactionRecord, *rTypes.Error) {
	result := m.MethodCalled(method, args...)
	return result.Get(0).(*types.TransactionRecord), result.Get(1).(*rTypes.Error)
}

type MockSettlementService struct {
	recordResult
}

func (m *MockSettlementService) Transfer(ctx context.Context, request *types.TransferRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	return m.record("Transfer", ctx, request)
}

type MockAllowanceService struct {
	recordResult
}

func (m *MockAllowanceService) ApproveAllowance(ctx context.Context, request *types.ApproveAllowanceRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	return m.record("ApproveAllowance", ctx, request)
}

func (m *MockAllowanceService) DeleteAllowance(ctx context.Context, request *types.DeleteAllowanceRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	return m.record("DeleteAllowance", ctx, request)
}

type MockAccountService struct {
	recordResult
}

func (m *MockAccountService) CreateAccount(ctx context.Context, request *types.CreateAccountRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	return m.record("CreateAccount", ctx, request)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, request *types.DeleteAccountRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	return m.record("DeleteAccount", ctx, request)
}

func (m *MockAccountService) FinalizeHollowAccount(
	ctx context.Context,
	request *types.FinalizeHollowAccountRequest,
) (*types.TransactionRecord, *rTypes.Error) {
	return m.record("FinalizeHollowAccount", ctx, request)
}

func (m *MockAccountService) GetAccountInfo(ctx context.Context, accountId types.AccountId) (
	*types.AccountInfo,
	*rTypes.Error,
) {
	args := m.Called(ctx, accountId)
	return args.Get(0).(*types.AccountInfo), args.Get(1).(*rTypes.Error)
}

type MockTokenService struct {
	recordResult
}

func (m *MockTokenService) AssociateTokens(ctx context.Context, request *types.TokenAssociationRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	return m.record("AssociateTokens", ctx, request)
}

func (m *MockTokenService) CreateToken(ctx context.Context, request *types.CreateTokenRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	return m.record("CreateToken", ctx, request)
}

func (m *MockTokenService) DissociateTokens(ctx context.Context, request *types.TokenAssociationRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	return m.record("DissociateTokens", ctx, request)
}

func (m *MockTokenService) GetToken(ctx context.Context, tokenId domain.EntityId) (*types.Token, *rTypes.Error) {
	args := m.Called(ctx, tokenId)
	return args.Get(0).(*types.Token), args.Get(1).(*rTypes.Error)
}

func (m *MockTokenService) MintNft(ctx context.Context, request *types.MintNftRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	return m.record("MintNft", ctx, request)
}

func (m *MockTokenService) UpdateFeeSchedule(ctx context.Context, request *types.UpdateFeeScheduleRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	return m.record("UpdateFeeSchedule", ctx, request)
}

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) GetRecord(ctx context.Context, transactionId string) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	args := m.Called(ctx, transactionId)
	return args.Get(0).(*types.TransactionRecord), args.Get(1).(*rTypes.Error)
}
