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
	"testing"

	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/stretchr/testify/assert"
)

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "FUNGIBLE_COMMON", TokenTypeFungibleCommon.String())
	assert.Equal(t, "NON_FUNGIBLE_UNIQUE", TokenTypeNonFungibleUnique.String())
}

func TestTokenIsNft(t *testing.T) {
	assert.True(t, Token{Type: TokenTypeNonFungibleUnique}.IsNft())
	assert.False(t, Token{Type: TokenTypeFungibleCommon}.IsNft())
}

func TestTokenIsFeeCollector(t *testing.T) {
	collector := domain.MustDecodeEntityId(1010)
	token := Token{
		CustomFees: []CustomFee{
			{Collector: collector, Fee: &FixedFee{Amount: 10}},
			{Collector: domain.MustDecodeEntityId(1011), Fee: &FractionalFee{Numerator: 1, Denominator: 10}},
		},
	}

	assert.True(t, token.IsFeeCollector(collector))
	assert.False(t, token.IsFeeCollector(domain.MustDecodeEntityId(1012)))
	assert.False(t, Token{}.IsFeeCollector(collector))
}

func TestFixedFeeIsHbar(t *testing.T) {
	assert.True(t, FixedFee{Amount: 1}.IsHbar())
	assert.False(t, FixedFee{Amount: 1, DenominatingTokenId: domain.MustDecodeEntityId(1020)}.IsHbar())
}
