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

package domain

import (
	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
)

// GenerateEd25519Key returns a new ed25519 private key and its public key
func GenerateEd25519Key() (hedera.PrivateKey, types.PublicKey) {
	privateKey, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		panic(err)
	}
	return privateKey, types.PublicKey{PublicKey: privateKey.PublicKey()}
}

// GenerateSecp256k1Key returns a new ECDSA secp256k1 private key and its public key
func GenerateSecp256k1Key() (hedera.PrivateKey, types.PublicKey) {
	privateKey, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		panic(err)
	}
	return privateKey, types.PublicKey{PublicKey: privateKey.PublicKey()}
}

// KeyAlias returns the serialized Key message of the public key
func KeyAlias(publicKey types.PublicKey) []byte {
	alias, _, err := publicKey.ToAlias()
	if err != nil {
		panic(err)
	}
	return alias
}

func persist(store *ledger.Store, fn func(view *ledger.View)) {
	_ = store.Update(func(view *ledger.View) *rTypes.Error {
		fn(view)
		return nil
	})
}

// PersistAllowance writes the allowance to the ledger as is
func PersistAllowance(store *ledger.Store, allowance types.Allowance) {
	persist(store, func(view *ledger.View) {
		view.PutAllowance(allowance)
	})
}

// GetAccount reads the account from the ledger, the zero Account if it does not exist
func GetAccount(store *ledger.Store, accountId domain.EntityId) types.Account {
	var account types.Account
	store.Read(func(view *ledger.View) {
		account, _ = view.GetAccount(accountId)
	})
	return account
}

func GetAllowance(store *ledger.Store, key types.AllowanceKey) (types.Allowance, bool) {
	var allowance types.Allowance
	var ok bool
	store.Read(func(view *ledger.View) {
		allowance, ok = view.GetAllowance(key)
	})
	return allowance, ok
}

func GetNft(store *ledger.Store, tokenId domain.EntityId, serialNumber int64) types.Nft {
	var nft types.Nft
	store.Read(func(view *ledger.View) {
		nft, _ = view.GetNft(types.NftId{TokenId: tokenId, SerialNumber: serialNumber})
	})
	return nft
}

func GetRelationship(store *ledger.Store, accountId, tokenId domain.EntityId) (types.TokenRelationship, bool) {
	var relationship types.TokenRelationship
	var ok bool
	store.Read(func(view *ledger.View) {
		relationship, ok = view.GetRelationship(accountId, tokenId)
	})
	return relationship, ok
}

func GetToken(store *ledger.Store, tokenId domain.EntityId) types.Token {
	var token types.Token
	store.Read(func(view *ledger.View) {
		token, _ = view.GetToken(tokenId)
	})
	return token
}

func LookupAlias(store *ledger.Store, alias []byte) (domain.EntityId, bool) {
	var accountId domain.EntityId
	var ok bool
	store.Read(func(view *ledger.View) {
		accountId, ok = view.LookupAlias(alias)
	})
	return accountId, ok
}
