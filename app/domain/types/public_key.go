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
	"bytes"
	"encoding/json"

	"github.com/coinbase/rosetta-sdk-go/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/hashgraph/hedera-sdk-go/v2/proto/services"
	"github.com/hashgraph/hedera-settlement/app/tools"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

const (
	ecdsaSecp256k1PublicKeySize = 33
	ed25519PublicKeySize        = 32
)

var (
	errEmptyAlias         = errors.New("Empty alias provided")
	errMalformedAlias     = errors.New("Malformed alias Key message")
	errUnsupportedKeyType = errors.New("Unsupported key type")
)

// PublicKey embed hedera.PublicKey and implement the Unmarshaler interface
type PublicKey struct {
	hedera.PublicKey
}

func (pk PublicKey) IsEmpty() bool {
	return len(pk.PublicKey.BytesRaw()) == 0
}

func (pk PublicKey) CurveType() types.CurveType {
	switch len(pk.PublicKey.BytesRaw()) {
	case ed25519PublicKeySize:
		return types.Edwards25519
	case ecdsaSecp256k1PublicKeySize:
		return types.Secp256k1
	default:
		return ""
	}
}

// Equal compares the raw key bytes
func (pk PublicKey) Equal(other PublicKey) bool {
	return !pk.IsEmpty() && bytes.Equal(pk.PublicKey.BytesRaw(), other.PublicKey.BytesRaw())
}

// EvmAddress returns the 20-byte address derived from an ECDSA secp256k1 key, nil for other key types
func (pk PublicKey) EvmAddress() []byte {
	if pk.CurveType() != types.Secp256k1 {
		return nil
	}

	ecdsaKey, err := crypto.DecompressPubkey(pk.PublicKey.BytesRaw())
	if err != nil {
		return nil
	}

	return crypto.PubkeyToAddress(*ecdsaKey).Bytes()
}

// ToAlias serializes the key as a protobuf Key message. HIP-32 defines the alias as "a byte array (protobuf bytes)
// that is formed by serializing a protobuf Key that represents a primitive public key".
func (pk PublicKey) ToAlias() (_ []byte, zeroCurveType types.CurveType, _ error) {
	rawKey := pk.PublicKey.BytesRaw()
	var key services.Key
	var curveType types.CurveType
	switch keySize := len(rawKey); keySize {
	case ed25519PublicKeySize:
		curveType = types.Edwards25519
		key = services.Key{Key: &services.Key_Ed25519{Ed25519: rawKey}}
	case ecdsaSecp256k1PublicKeySize:
		curveType = types.Secp256k1
		key = services.Key{Key: &services.Key_ECDSASecp256K1{ECDSASecp256K1: rawKey}}
	default:
		return nil, zeroCurveType, errors.Errorf("Unknown public key type with %d raw bytes", keySize)
	}

	alias, err := proto.Marshal(&key)
	if err != nil {
		return nil, zeroCurveType, errors.Wrap(err, "Failed to marshal proto Key")
	}
	return alias, curveType, nil
}

func (pk PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(tools.EncodeHex(pk.PublicKey.BytesRaw()))
}

func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	rawKey, err := tools.DecodeHex(tools.SafeUnquote(string(data)))
	if err != nil {
		return err
	}

	pk.PublicKey, err = publicKeyFromRawBytes(rawKey)
	return err
}

// NewPublicKeyFromAlias parses a serialized Key message holding a single ed25519 or ECDSA secp256k1 key. Threshold
// keys, key lists, contract ids and the other key types are rejected, so is any encoding that is not canonical.
func NewPublicKeyFromAlias(alias []byte) (zeroCurveType types.CurveType, zeroPublicKey PublicKey, _ error) {
	if len(alias) == 0 {
		return zeroCurveType, zeroPublicKey, errEmptyAlias
	}

	var key services.Key
	if err := proto.Unmarshal(alias, &key); err != nil {
		return zeroCurveType, zeroPublicKey, errors.Wrap(errMalformedAlias, err.Error())
	}

	var curveType types.CurveType
	var publicKey hedera.PublicKey
	var err error
	switch value := key.GetKey().(type) {
	case *services.Key_Ed25519:
		if len(value.Ed25519) != ed25519PublicKeySize {
			return zeroCurveType, zeroPublicKey, errors.Errorf("Invalid ed25519 key size %d", len(value.Ed25519))
		}
		curveType = types.Edwards25519
		publicKey, err = hedera.PublicKeyFromBytesEd25519(value.Ed25519)
	case *services.Key_ECDSASecp256K1:
		rawKey := value.ECDSASecp256K1
		if len(rawKey) != ecdsaSecp256k1PublicKeySize {
			return zeroCurveType, zeroPublicKey, errors.Errorf("Invalid ECDSA secp256k1 key size %d", len(rawKey))
		}
		if _, err = crypto.DecompressPubkey(rawKey); err != nil {
			return zeroCurveType, zeroPublicKey, errors.Wrap(err, "Invalid ECDSA secp256k1 key")
		}
		curveType = types.Secp256k1
		publicKey, err = hedera.PublicKeyFromBytesECDSA(rawKey)
	default:
		return zeroCurveType, zeroPublicKey, errUnsupportedKeyType
	}

	if err != nil {
		return zeroCurveType, zeroPublicKey, err
	}

	// one alias per key: no unknown fields, no repeated oneof values
	if len(key.ProtoReflect().GetUnknown()) != 0 {
		return zeroCurveType, zeroPublicKey, errMalformedAlias
	}
	if canonical, err := proto.Marshal(&key); err != nil || !bytes.Equal(canonical, alias) {
		return zeroCurveType, zeroPublicKey, errMalformedAlias
	}

	return curveType, PublicKey{publicKey}, nil
}

func publicKeyFromRawBytes(rawKey []byte) (hedera.PublicKey, error) {
	switch len(rawKey) {
	case ed25519PublicKeySize:
		return hedera.PublicKeyFromBytesEd25519(rawKey)
	case ecdsaSecp256k1PublicKeySize:
		return hedera.PublicKeyFromBytesECDSA(rawKey)
	default:
		return hedera.PublicKey{}, errors.Errorf("Invalid public key size %d", len(rawKey))
	}
}
