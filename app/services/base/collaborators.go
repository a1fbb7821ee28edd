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
	"bytes"
	"time"

	"github.com/hashgraph/hedera-settlement/app/config"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
)

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// NewSystemClock returns the clock reading the wall clock time
func NewSystemClock() interfaces.Clock {
	return systemClock{}
}

type configuredFeeCalculator struct {
	autoCreationFee int64
	lazyCreationFee int64
}

func (c configuredFeeCalculator) AccountCreationFee(lazy bool) int64 {
	if lazy {
		return c.lazyCreationFee
	}
	return c.autoCreationFee
}

// NewFeeCalculator returns the fee calculator charging the configured account creation fees
func NewFeeCalculator(cfg *config.Config) interfaces.FeeCalculator {
	return configuredFeeCalculator{
		autoCreationFee: cfg.AutoCreation.Fee,
		lazyCreationFee: cfg.LazyCreation.Fee,
	}
}

type signerSetVerifier struct{}

func (signerSetVerifier) IsSignedBy(signers []types.PublicKey, account types.Account) bool {
	if account.Key != nil {
		return signerSetVerifier{}.IsSignedByKey(signers, *account.Key)
	}

	if len(account.EvmAddress) == 0 {
		return false
	}

	for _, signer := range signers {
		if bytes.Equal(signer.EvmAddress(), account.EvmAddress) {
			return true
		}
	}
	return false
}

func (signerSetVerifier) IsSignedByKey(signers []types.PublicKey, key types.PublicKey) bool {
	for _, signer := range signers {
		if signer.Equal(key) {
			return true
		}
	}
	return false
}

// NewSignatureVerifier returns the verifier which requires the key of each required signer to be in the set of
// verified signers
func NewSignatureVerifier() interfaces.SignatureVerifier {
	return signerSetVerifier{}
}
