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
	"time"

	"github.com/hashgraph/hedera-settlement/app/domain/types"
)

// Clock provides the wall clock time used to assign consensus timestamps
type Clock interface {
	Now() time.Time
}

// FeeCalculator computes the network fees the settlement charges on top of the requested transfers
type FeeCalculator interface {

	// AccountCreationFee returns the fee in tinybars to create an account from a key alias, or from an EVM address
	// when lazy is true
	AccountCreationFee(lazy bool) int64
}

// SignatureVerifier checks the required signatures of a transaction. The public keys passed in are the keys whose
// signatures on the transaction bytes have already been verified.
type SignatureVerifier interface {

	// IsSignedBy tells if the signers cover the key of the account. A hollow account is covered by the ECDSA key
	// its EVM address derives from.
	IsSignedBy(signers []types.PublicKey, account types.Account) bool

	// IsSignedByKey tells if the key is one of the signers
	IsSignedByKey(signers []types.PublicKey, key types.PublicKey) bool
}
