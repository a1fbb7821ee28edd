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
	"fmt"
	"reflect"
	"testing"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/cucumber/godog"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/services/allowance"
	"github.com/hashgraph/hedera-settlement/app/services/base"
	tdomain "github.com/hashgraph/hedera-settlement/test/domain"
	"github.com/hashgraph/hedera-settlement/test/mocks"
)

func TestSettlementFeatures(t *testing.T) {
	status := godog.TestSuite{
		Name:                "settlement",
		ScenarioInitializer: initializeSettlementScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			Strict:   true,
			TestingT: t,
		},
	}.Run()

	if status != 0 {
		t.Fatalf("settlement features exited with status %d", status)
	}
}

// settlementFeature drives the services through the fixtures of settlementServiceSuite, it never calls the suite's
// assertions since there is no *testing.T behind them
type settlementFeature struct {
	*settlementServiceSuite
	err      *rTypes.Error
	record   *types.TransactionRecord
	snapshot ledger.Snapshot
}

func (f *settlementFeature) setupLedger() error {
	f.settlementServiceSuite = new(settlementServiceSuite)
	f.SetupTest()
	return nil
}

func (f *settlementFeature) nftToken() error {
	f.persistNftToken(nftToken)
	tdomain.NewTokenRelationshipBuilder(f.store, receiverNum, nftToken).Persist()
	return nil
}

func (f *settlementFeature) nftTokenWithRoyaltyFallback(fallback int64) error {
	f.persistNftToken(nftToken, types.CustomFee{
		Collector: entityId(collectorNum),
		Fee: &types.RoyaltyFee{
			Denominator: 10,
			FallbackFee: &types.FixedFee{Amount: fallback},
			Numerator:   1,
		},
	})
	return nil
}

func (f *settlementFeature) serialOwnedBySender(serialNumber int64) error {
	tdomain.NewTokenRelationshipBuilder(f.store, senderNum, nftToken).Persist()
	tdomain.NewNftBuilder(f.store, nftToken, serialNumber, senderNum).Persist()
	return nil
}

func (f *settlementFeature) customFeeChain(last string) error {
	f.persistCascade(last == "D")
	return nil
}

func (f *settlementFeature) approveCryptoAllowance(amount int64) error {
	service := allowance.NewAllowanceService(base.NewBaseService(
		f.config,
		f.store,
		f.recordRepo,
		mocks.NewFixedClock(consensusTime),
		base.NewFeeCalculator(f.config),
		base.NewSignatureVerifier(),
	))

	_, err := service.ApproveAllowance(context.Background(), &types.ApproveAllowanceRequest{
		CryptoAllowances: []types.CryptoAllowanceGrant{
			{Amount: amount, Owner: entityId(senderNum), Spender: entityId(payerNum)},
		},
		Signers:       []types.PublicKey{f.payerKey, f.senderKey},
		TransactionId: transactionId(payerNum),
	})
	if err != nil {
		return fmt.Errorf("approve allowance failed with %s", err.Message)
	}
	return nil
}

func (f *settlementFeature) transferNftAsSpender(serialNumber int64) error {
	return f.transfer(f.newRequest(hbar(payerNum, 0), nftList(nftToken, approvedNft(senderNum, receiverNum,
		serialNumber))))
}

func (f *settlementFeature) transferToNewAlias(amount int64) error {
	_, publicKey := tdomain.GenerateEd25519Key()
	return f.transfer(f.newRequest(hbar(payerNum, -amount), aliasHbar(tdomain.KeyAlias(publicKey), amount)))
}

func (f *settlementFeature) transferNftToNewAlias(serialNumber int64) error {
	_, publicKey := tdomain.GenerateEd25519Key()
	return f.transfer(f.newRequest(hbar(payerNum, 0), types.TokenTransferList{
		NftTransfers: []types.NftTransfer{
			{
				ReceiverAccountId: types.NewAccountIdFromAlias(tdomain.KeyAlias(publicKey)),
				SenderAccountId:   accountId(senderNum),
				SerialNumber:      serialNumber,
			},
		},
		TokenId: entityId(nftToken),
	}))
}

func (f *settlementFeature) spendCryptoAllowance(amount int64) error {
	return f.transfer(f.newRequestSignedBy([]types.PublicKey{f.payerKey}, approvedHbar(senderNum, -amount),
		hbar(receiverNum, amount)))
}

func (f *settlementFeature) transferTokenA(amount int64) error {
	return f.transfer(f.newRequest(hbar(payerNum, 0), tokenList(tokenA, fungible(senderNum, -amount),
		fungible(receiverNum, amount))))
}

func (f *settlementFeature) transfer(request *types.TransferRequest) error {
	f.snapshot = f.store.Snapshot()
	f.record, f.err = f.service.Transfer(context.Background(), request)
	return nil
}

func (f *settlementFeature) transferSucceeds() error {
	if f.err != nil {
		return fmt.Errorf("expected success, got %s", f.err.Message)
	}
	return nil
}

func (f *settlementFeature) transferFails(code string) error {
	if f.err == nil {
		return fmt.Errorf("expected %s, the transfer succeeded", code)
	}

	if f.err.Message != code {
		return fmt.Errorf("expected %s, got %s", code, f.err.Message)
	}
	return nil
}

func (f *settlementFeature) ledgerUnchanged() error {
	if !reflect.DeepEqual(f.snapshot, f.store.Snapshot()) {
		return fmt.Errorf("ledger changed by a failed transfer")
	}
	return nil
}

func (f *settlementFeature) accountBalance(num, expected int64) error {
	if actual := tdomain.GetAccount(f.store, entityId(num)).Balance; actual != expected {
		return fmt.Errorf("account %d has balance %d, expected %d", num, actual, expected)
	}
	return nil
}

func (f *settlementFeature) childRecords(expected int) error {
	if f.record == nil {
		return fmt.Errorf("no transaction record")
	}

	if actual := len(f.record.ChildRecords); actual != expected {
		return fmt.Errorf("record has %d child records, expected %d", actual, expected)
	}
	return nil
}

func (f *settlementFeature) noCryptoAllowance() error {
	key := types.AllowanceKey{Kind: types.AllowanceKindCrypto, Owner: entityId(senderNum), Spender: entityId(payerNum)}
	if allowance, ok := tdomain.GetAllowance(f.store, key); ok {
		return fmt.Errorf("unexpected allowance %+v", allowance)
	}
	return nil
}

func initializeSettlementScenario(ctx *godog.ScenarioContext) {
	feature := &settlementFeature{}

	ctx.Step(`^a ledger with funded accounts$`, feature.setupLedger)
	ctx.Step(`^a non fungible token$`, feature.nftToken)
	ctx.Step(`^a non fungible token with a royalty fee falling back to (\d+) tinybars$`,
		feature.nftTokenWithRoyaltyFallback)
	ctx.Step(`^serial (\d+) of the token is owned by the sender$`, feature.serialOwnedBySender)
	ctx.Step(`^a chain of custom fees from token A to token (C|D)$`, feature.customFeeChain)
	ctx.Step(`^the sender approves the payer to spend (\d+) tinybars$`, feature.approveCryptoAllowance)

	ctx.Step(`^the payer transfers serial (\d+) from the sender to the receiver as spender$`,
		feature.transferNftAsSpender)
	ctx.Step(`^the payer transfers (\d+) tinybars to a new ed25519 alias$`, feature.transferToNewAlias)
	ctx.Step(`^the sender transfers serial (\d+) to a new ed25519 alias$`, feature.transferNftToNewAlias)
	ctx.Step(`^the payer spends (\d+) tinybars of the sender's allowance on the receiver$`,
		feature.spendCryptoAllowance)
	ctx.Step(`^the sender transfers (\d+) of token A to the receiver$`, feature.transferTokenA)

	ctx.Step(`^the transfer succeeds$`, feature.transferSucceeds)
	ctx.Step(`^the transfer fails with ([A-Z_]+)$`, feature.transferFails)
	ctx.Step(`^the ledger is unchanged$`, feature.ledgerUnchanged)
	ctx.Step(`^account (\d+) has a balance of (\d+) tinybars$`, feature.accountBalance)
	ctx.Step(`^the record has (\d+) child records?$`, feature.childRecords)
	ctx.Step(`^the sender has no crypto allowance for the payer$`, feature.noCryptoAllowance)
}
