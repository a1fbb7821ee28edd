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

package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/pkg/errors"
)

type TransactionId struct {
	PayerAccountId domain.EntityId `json:"payer_account_id"`
	ValidStartNs   int64           `json:"valid_start_ns" validate:"gt=0"`
}

func (t TransactionId) String() string {
	seconds := t.ValidStartNs / int64(time.Second)
	nanos := t.ValidStartNs % int64(time.Second)
	return fmt.Sprintf("%s-%d-%09d", t.PayerAccountId, seconds, nanos)
}

// TransactionIdFromString parses the payer-seconds-nanos form produced by TransactionId.String
func TransactionIdFromString(transactionId string) (TransactionId, error) {
	parts := strings.Split(transactionId, "-")
	if len(parts) != 3 || len(parts[2]) != 9 {
		return TransactionId{}, errors.Errorf("Invalid transaction id %s", transactionId)
	}

	payer, err := domain.EntityIdFromString(parts[0])
	if err != nil {
		return TransactionId{}, errors.Wrapf(err, "Invalid payer of transaction id %s", transactionId)
	}

	seconds, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || seconds < 0 {
		return TransactionId{}, errors.Errorf("Invalid seconds of transaction id %s", transactionId)
	}

	nanos, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || nanos < 0 {
		return TransactionId{}, errors.Errorf("Invalid nanos of transaction id %s", transactionId)
	}

	return TransactionId{PayerAccountId: payer, ValidStartNs: seconds*int64(time.Second) + nanos}, nil
}

// AccountAmount is one hbar or fungible token adjustment. IsApproval marks a debit authorized by an allowance the
// owner granted to the payer.
type AccountAmount struct {
	AccountId  AccountId `json:"account_id"`
	Amount     int64     `json:"amount"`
	IsApproval bool      `json:"is_approval"`
}

type NftTransfer struct {
	IsApproval        bool      `json:"is_approval"`
	ReceiverAccountId AccountId `json:"receiver_account_id"`
	SenderAccountId   AccountId `json:"sender_account_id"`
	SerialNumber      int64     `json:"serial_number"`
}

// TokenTransferList holds either the fungible adjustments or the NFT ownership changes of one token
type TokenTransferList struct {
	ExpectedDecimals *uint32         `json:"expected_decimals,omitempty"`
	NftTransfers     []NftTransfer   `json:"nft_transfers,omitempty" validate:"dive"`
	TokenId          domain.EntityId `json:"token_id"`
	Transfers        []AccountAmount `json:"transfers,omitempty" validate:"dive"`
}

// TransferRequest is a crypto transfer, Signers are the public keys whose signatures have been verified
type TransferRequest struct {
	HbarTransfers  []AccountAmount     `json:"hbar_transfers,omitempty" validate:"dive"`
	Memo           string              `json:"memo,omitempty"`
	Signers        []PublicKey         `json:"signers,omitempty"`
	TokenTransfers []TokenTransferList `json:"token_transfers,omitempty" validate:"dive"`
	TransactionId  TransactionId       `json:"transaction_id"`
}

type CryptoAllowanceGrant struct {
	Amount  int64           `json:"amount"`
	Owner   domain.EntityId `json:"owner,omitempty"`
	Spender domain.EntityId `json:"spender"`
}

type TokenAllowanceGrant struct {
	Amount  int64           `json:"amount"`
	Owner   domain.EntityId `json:"owner,omitempty"`
	Spender domain.EntityId `json:"spender"`
	TokenId domain.EntityId `json:"token_id"`
}

// NftAllowanceGrant either approves the spender for all serials or for the listed serials. A nonzero
// DelegatingSpender grants the serials on behalf of the owner using its own approve-for-all allowance.
type NftAllowanceGrant struct {
	ApprovedForAll    *bool           `json:"approved_for_all,omitempty"`
	DelegatingSpender domain.EntityId `json:"delegating_spender,omitempty"`
	Owner             domain.EntityId `json:"owner,omitempty"`
	SerialNumbers     []int64         `json:"serial_numbers,omitempty"`
	Spender           domain.EntityId `json:"spender"`
	TokenId           domain.EntityId `json:"token_id"`
}

type ApproveAllowanceRequest struct {
	CryptoAllowances []CryptoAllowanceGrant `json:"crypto_allowances,omitempty"`
	NftAllowances    []NftAllowanceGrant    `json:"nft_allowances,omitempty"`
	Signers          []PublicKey            `json:"signers,omitempty"`
	TokenAllowances  []TokenAllowanceGrant  `json:"token_allowances,omitempty"`
	TransactionId    TransactionId          `json:"transaction_id"`
}

type NftRemoveAllowance struct {
	Owner         domain.EntityId `json:"owner,omitempty"`
	SerialNumbers []int64         `json:"serial_numbers"`
	TokenId       domain.EntityId `json:"token_id"`
}

type DeleteAllowanceRequest struct {
	NftAllowances []NftRemoveAllowance `json:"nft_allowances"`
	Signers       []PublicKey          `json:"signers,omitempty"`
	TransactionId TransactionId        `json:"transaction_id"`
}

type CreateAccountRequest struct {
	Alias               []byte        `json:"alias,omitempty"`
	InitialBalance      int64         `json:"initial_balance"`
	Key                 *PublicKey    `json:"key"`
	MaxAutoAssociations int32         `json:"max_auto_associations"`
	Memo                string        `json:"memo,omitempty"`
	Signers             []PublicKey   `json:"signers,omitempty"`
	TransactionId       TransactionId `json:"transaction_id"`
}

type DeleteAccountRequest struct {
	AccountId         domain.EntityId `json:"account_id"`
	Signers           []PublicKey     `json:"signers,omitempty"`
	TransactionId     TransactionId   `json:"transaction_id"`
	TransferAccountId domain.EntityId `json:"transfer_account_id"`
}

// FinalizeHollowAccountRequest completes a hollow account with the ECDSA key its EVM address was derived from
type FinalizeHollowAccountRequest struct {
	AccountId     AccountId     `json:"account_id"`
	Key           PublicKey     `json:"key"`
	Signers       []PublicKey   `json:"signers,omitempty"`
	TransactionId TransactionId `json:"transaction_id"`
}

type CreateTokenRequest struct {
	CustomFees     []CustomFee     `json:"-"`
	Decimals       uint32          `json:"decimals"`
	FeeScheduleKey *PublicKey      `json:"fee_schedule_key,omitempty"`
	FreezeDefault  bool            `json:"freeze_default"`
	InitialSupply  int64           `json:"initial_supply"`
	MaxSupply      int64           `json:"max_supply"`
	Name           string          `json:"name"`
	Signers        []PublicKey     `json:"signers,omitempty"`
	SupplyType     TokenSupplyType `json:"supply_type"`
	Symbol         string          `json:"symbol"`
	TransactionId  TransactionId   `json:"transaction_id"`
	Treasury       domain.EntityId `json:"treasury"`
	Type           TokenType       `json:"type"`
}

type TokenAssociationRequest struct {
	AccountId     domain.EntityId   `json:"account_id"`
	Signers       []PublicKey       `json:"signers,omitempty"`
	TokenIds      []domain.EntityId `json:"token_ids"`
	TransactionId TransactionId     `json:"transaction_id"`
}

type MintNftRequest struct {
	Count         int64           `json:"count"`
	Signers       []PublicKey     `json:"signers,omitempty"`
	TokenId       domain.EntityId `json:"token_id"`
	TransactionId TransactionId   `json:"transaction_id"`
}

type UpdateFeeScheduleRequest struct {
	CustomFees    []CustomFee     `json:"-"`
	Signers       []PublicKey     `json:"signers,omitempty"`
	TokenId       domain.EntityId `json:"token_id"`
	TransactionId TransactionId   `json:"transaction_id"`
}
