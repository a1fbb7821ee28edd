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
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/pkg/errors"
)

const (
	TransactionTypeCryptoApproveAllowance = "CRYPTOAPPROVEALLOWANCE"
	TransactionTypeCryptoCreateAccount    = "CRYPTOCREATEACCOUNT"
	TransactionTypeCryptoDeleteAccount    = "CRYPTODELETE"
	TransactionTypeCryptoDeleteAllowance  = "CRYPTODELETEALLOWANCE"
	TransactionTypeCryptoTransfer         = "CRYPTOTRANSFER"
	TransactionTypeCryptoUpdateAccount    = "CRYPTOUPDATEACCOUNT"
	TransactionTypeTokenAssociate         = "TOKENASSOCIATE"
	TransactionTypeTokenCreation          = "TOKENCREATION"
	TransactionTypeTokenDissociate        = "TOKENDISSOCIATE"
	TransactionTypeTokenFeeScheduleUpdate = "TOKENFEESCHEDULEUPDATE"
	TransactionTypeTokenMint              = "TOKENMINT"
)

type ChildRecordKind int8

const (
	ChildRecordAccountCreated ChildRecordKind = iota
	ChildRecordAssociationCreated
	ChildRecordFeePaid
)

func (k ChildRecordKind) String() string {
	switch k {
	case ChildRecordAccountCreated:
		return "ACCOUNT_CREATED"
	case ChildRecordAssociationCreated:
		return "ASSOCIATION_CREATED"
	case ChildRecordFeePaid:
		return "FEE_PAID"
	default:
		return "UNKNOWN"
	}
}

func (k ChildRecordKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ChildRecordKind) UnmarshalText(text []byte) error {
	for _, kind := range []ChildRecordKind{
		ChildRecordAccountCreated,
		ChildRecordAssociationCreated,
		ChildRecordFeePaid,
	} {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}

	return errors.Errorf("Unknown child record kind %s", text)
}

// ChildRecord is a side effect of a settled transaction. AccountCreated records carry the new account, its alias,
// and the index of the first transfer that referenced the alias. AssociationCreated records carry the account and
// the token. FeePaid records carry the payer, the collector, the token (zero for hbar), and the amount.
type ChildRecord struct {
	AccountId     domain.EntityId `json:"account_id"`
	Alias         []byte          `json:"alias,omitempty"`
	Amount        int64           `json:"amount,omitempty"`
	CollectorId   domain.EntityId `json:"collector_id,omitempty"`
	EvmAddress    []byte          `json:"evm_address,omitempty"`
	Kind          ChildRecordKind `json:"kind"`
	Memo          string          `json:"memo,omitempty"`
	TokenId       domain.EntityId `json:"token_id,omitempty"`
	TransferIndex int             `json:"transfer_index"`
}

type HbarTransfer struct {
	AccountId  domain.EntityId `json:"account_id"`
	Amount     int64           `json:"amount"`
	IsApproval bool            `json:"is_approval"`
}

type TokenTransfer struct {
	AccountId  domain.EntityId `json:"account_id"`
	Amount     int64           `json:"amount"`
	IsApproval bool            `json:"is_approval"`
	TokenId    domain.EntityId `json:"token_id"`
}

type NftMovement struct {
	IsApproval        bool            `json:"is_approval"`
	ReceiverAccountId domain.EntityId `json:"receiver_account_id"`
	SenderAccountId   domain.EntityId `json:"sender_account_id"`
	SerialNumber      int64           `json:"serial_number"`
	TokenId           domain.EntityId `json:"token_id"`
}

// TransactionRecord is the deterministic outcome of a committed transaction. EntityId is the account or token the
// transaction created, zero if none.
type TransactionRecord struct {
	ChildRecords       []ChildRecord   `json:"child_records,omitempty"`
	ConsensusTimestamp int64           `json:"consensus_timestamp"`
	EntityId           domain.EntityId `json:"entity_id,omitempty"`
	HbarTransfers      []HbarTransfer  `json:"hbar_transfers,omitempty"`
	Memo               string          `json:"memo,omitempty"`
	NftTransfers       []NftMovement   `json:"nft_transfers,omitempty"`
	Status             string          `json:"status"`
	TokenTransfers     []TokenTransfer `json:"token_transfers,omitempty"`
	TransactionId      TransactionId   `json:"transaction_id"`
	Type               string          `json:"type"`
}

// AccountInfo is the query view of an account and its token relationships
type AccountInfo struct {
	Account       Account
	Relationships []TokenRelationship
}
