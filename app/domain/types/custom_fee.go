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
)

// CustomFee is an owner-paid fee attached to a token, Fee is one of *FixedFee, *FractionalFee, or *RoyaltyFee
type CustomFee struct {
	AllCollectorsAreExempt bool
	Collector              domain.EntityId
	Fee                    Fee
}

type Fee interface {
	isFee()
}

// FixedFee charges a flat amount in hbar when DenominatingTokenId is zero, otherwise in the denominating token
type FixedFee struct {
	Amount              int64
	DenominatingTokenId domain.EntityId
}

func (*FixedFee) isFee() {}

func (f FixedFee) IsHbar() bool {
	return f.DenominatingTokenId.IsZero()
}

// FractionalFee charges a fraction of the fungible units transferred, clamped to [MinimumAmount, MaximumAmount]. A
// zero MaximumAmount means no upper bound.
type FractionalFee struct {
	Denominator    int64
	MaximumAmount  int64
	MinimumAmount  int64
	NetOfTransfers bool
	Numerator      int64
}

func (*FractionalFee) isFee() {}

// RoyaltyFee charges a fraction of the fungible value exchanged for an NFT, or the fallback fee to the receiver when
// no value is exchanged
type RoyaltyFee struct {
	Denominator int64
	FallbackFee *FixedFee
	Numerator   int64
}

func (*RoyaltyFee) isFee() {}
