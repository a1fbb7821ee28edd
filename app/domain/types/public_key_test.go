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
	"encoding/json"
	"testing"

	"github.com/coinbase/rosetta-sdk-go/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"
)

var (
	ecdsaSecp256k1PublicKeyProtoPrefix = []byte{0x3a, 0x21}
	ed25519PublicKeyProtoPrefix        = []byte{0x12, 0x20}
)

func TestPublicKeyIsEmpty(t *testing.T) {
	assert.True(t, PublicKey{}.IsEmpty())
	assert.False(t, ed25519PublicKey.IsEmpty())
}

func TestPublicKeyEqual(t *testing.T) {
	other, _ := hedera.PrivateKeyGenerateEd25519()
	assert.True(t, ed25519PublicKey.Equal(PublicKey{ed25519PrivateKey.PublicKey()}))
	assert.False(t, ed25519PublicKey.Equal(PublicKey{other.PublicKey()}))
	assert.False(t, PublicKey{}.Equal(PublicKey{}))
}

func TestPublicKeyToAlias(t *testing.T) {
	tests := []struct {
		name        string
		publicKey   PublicKey
		protoPrefix []byte
		curveType   types.CurveType
	}{
		{
			name:        "EcdsaSecp256k1",
			publicKey:   secp256k1PublicKey,
			protoPrefix: ecdsaSecp256k1PublicKeyProtoPrefix,
			curveType:   types.Secp256k1,
		},
		{
			name:        "Ed25519",
			publicKey:   ed25519PublicKey,
			protoPrefix: ed25519PublicKeyProtoPrefix,
			curveType:   types.Edwards25519,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := append(append([]byte{}, tt.protoPrefix...), tt.publicKey.BytesRaw()...)

			alias, curveType, err := tt.publicKey.ToAlias()

			assert.NoError(t, err)
			assert.Equal(t, expected, alias)
			assert.Equal(t, tt.curveType, curveType)
		})
	}
}

func TestPublicKeyToAliasInvalidKey(t *testing.T) {
	_, _, err := PublicKey{}.ToAlias()
	assert.Error(t, err)
}

func TestNewPublicKeyFromAlias(t *testing.T) {
	for _, publicKey := range []PublicKey{ed25519PublicKey, secp256k1PublicKey} {
		alias, expectedCurveType, err := publicKey.ToAlias()
		require.NoError(t, err)

		curveType, actual, err := NewPublicKeyFromAlias(alias)

		assert.NoError(t, err)
		assert.Equal(t, expectedCurveType, curveType)
		assert.True(t, publicKey.Equal(actual))
	}
}

func TestNewPublicKeyFromAliasInvalid(t *testing.T) {
	ed25519Alias, _, _ := ed25519PublicKey.ToAlias()
	invalidPoint := append([]byte{0x3a, 0x21, 0x05}, randstr.Bytes(32)...)

	tests := []struct {
		name  string
		alias []byte
	}{
		{name: "Empty", alias: []byte{}},
		{name: "TruncatedTag", alias: []byte{0x80}},
		{name: "Truncated", alias: ed25519Alias[:20]},
		{name: "TrailingBytes", alias: append(append([]byte{}, ed25519Alias...), 0x01)},
		{name: "ContractId", alias: []byte{0x0a, 0x02, 0x18, 0x01}},
		{name: "Rsa3072", alias: append([]byte{0x1a, 0x20}, randstr.Bytes(32)...)},
		{name: "Ecdsa384", alias: append([]byte{0x22, 0x20}, randstr.Bytes(32)...)},
		{name: "ThresholdKey", alias: append([]byte{0x2a, 0x24, 0x08, 0x01, 0x12, 0x20}, randstr.Bytes(32)...)},
		{name: "KeyList", alias: append([]byte{0x32, 0x24, 0x0a, 0x22}, ed25519Alias...)},
		{name: "DelegatableContractId", alias: []byte{0x42, 0x02, 0x18, 0x01}},
		{name: "ShortEd25519", alias: append([]byte{0x12, 0x10}, randstr.Bytes(16)...)},
		{name: "ShortSecp256k1", alias: append([]byte{0x3a, 0x20}, randstr.Bytes(32)...)},
		{name: "InvalidSecp256k1Point", alias: invalidPoint},
		{name: "WrongWireType", alias: []byte{0x10, 0x01}},
		{name: "RepeatedKey", alias: append(append([]byte{}, ed25519Alias...), ed25519Alias...)},
		{name: "UnknownField", alias: append(append([]byte{}, ed25519Alias...), 0x48, 0x01)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewPublicKeyFromAlias(tt.alias)
			assert.Error(t, err)
		})
	}
}

func TestPublicKeyEvmAddress(t *testing.T) {
	ecdsaKey, err := crypto.DecompressPubkey(secp256k1PublicKey.BytesRaw())
	require.NoError(t, err)

	assert.Equal(t, crypto.PubkeyToAddress(*ecdsaKey).Bytes(), secp256k1PublicKey.EvmAddress())
	assert.Len(t, secp256k1PublicKey.EvmAddress(), 20)
	assert.Nil(t, ed25519PublicKey.EvmAddress())
}

func TestPublicKeyJSON(t *testing.T) {
	for _, publicKey := range []PublicKey{ed25519PublicKey, secp256k1PublicKey} {
		data, err := json.Marshal(publicKey)
		require.NoError(t, err)

		var actual PublicKey
		require.NoError(t, json.Unmarshal(data, &actual))
		assert.True(t, publicKey.Equal(actual))
	}

	var actual PublicKey
	assert.Error(t, json.Unmarshal([]byte(`"0x0102"`), &actual))
	assert.Error(t, json.Unmarshal([]byte(`"xyz"`), &actual))
}
