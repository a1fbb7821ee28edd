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
	"math"
	"strings"
	"testing"

	"github.com/hashgraph/hedera-settlement/app/domain/types"
	tdomain "github.com/hashgraph/hedera-settlement/test/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrevalidate(t *testing.T) {
	_, publicKey := tdomain.GenerateEd25519Key()
	keyAlias := types.NewAccountIdFromAlias(tdomain.KeyAlias(publicKey))

	tests := []struct {
		name     string
		request  types.TransferRequest
		expected types.ResponseCode
	}{
		{
			name:     "valid",
			request:  types.TransferRequest{HbarTransfers: []types.AccountAmount{hbar(1, -1), hbar(2, 1)}},
			expected: types.Success,
		},
		{
			name: "valid aliases",
			request: types.TransferRequest{
				HbarTransfers: []types.AccountAmount{
					hbar(1, -2),
					{AccountId: keyAlias, Amount: 1},
					aliasHbar(randomEvmAddress(), 1),
				},
			},
			expected: types.Success,
		},
		{
			name:     "memo too long",
			request:  types.TransferRequest{Memo: strings.Repeat("a", 101)},
			expected: types.MemoTooLong,
		},
		{
			name:     "hbar not zero sum",
			request:  types.TransferRequest{HbarTransfers: []types.AccountAmount{hbar(1, -1), hbar(2, 2)}},
			expected: types.InvalidAccountAmounts,
		},
		{
			name: "hbar overflow",
			request: types.TransferRequest{
				HbarTransfers: []types.AccountAmount{hbar(1, math.MaxInt64), hbar(2, 1), hbar(3, math.MinInt64)},
			},
			expected: types.InvalidAccountAmounts,
		},
		{
			name:     "too many hbar transfers",
			request:  types.TransferRequest{HbarTransfers: evenTransfers(12)},
			expected: types.TransferListSizeLimitExceeded,
		},
		{
			name: "repeated hbar account",
			request: types.TransferRequest{
				HbarTransfers: []types.AccountAmount{hbar(1, -2), hbar(2, 1), hbar(2, 1)},
			},
			expected: types.AccountRepeatedInAccountAmounts,
		},
		{
			name: "same account as approval and direct debit",
			request: types.TransferRequest{
				HbarTransfers: []types.AccountAmount{hbar(1, -1), approvedHbar(1, -1), hbar(2, 2)},
			},
			expected: types.Success,
		},
		{
			name:     "zero hbar account",
			request:  types.TransferRequest{HbarTransfers: []types.AccountAmount{hbar(0, -1), hbar(2, 1)}},
			expected: types.InvalidAccountId,
		},
		{
			name: "too many token lists",
			request: types.TransferRequest{
				TokenTransfers: func() []types.TokenTransferList {
					lists := make([]types.TokenTransferList, 11)
					for i := range lists {
						lists[i] = tokenList(int64(100+i), fungible(1, -1), fungible(2, 1))
					}
					return lists
				}(),
			},
			expected: types.TokenTransferListSizeLimitExceeded,
		},
		{
			name: "too many token transfers",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{tokenList(100, evenTransfers(12)...)},
			},
			expected: types.TokenTransferListSizeLimitExceeded,
		},
		{
			name: "too many nft transfers",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{
					nftList(100, nft(1, 2, 1), nft(1, 2, 2), nft(1, 2, 3), nft(1, 2, 4), nft(1, 2, 5), nft(1, 2, 6)),
					nftList(101, nft(1, 2, 1), nft(1, 2, 2), nft(1, 2, 3), nft(1, 2, 4), nft(1, 2, 5)),
				},
			},
			expected: types.BatchSizeLimitExceeded,
		},
		{
			name: "fungible and nft in one list",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{
					{
						NftTransfers: []types.NftTransfer{nft(1, 2, 1)},
						TokenId:      entityId(100),
						Transfers:    []types.AccountAmount{fungible(1, -1), fungible(2, 1)},
					},
				},
			},
			expected: types.InvalidAccountAmounts,
		},
		{
			name:     "empty token list",
			request:  types.TransferRequest{TokenTransfers: []types.TokenTransferList{{TokenId: entityId(100)}}},
			expected: types.EmptyTokenTransferAccountAmounts,
		},
		{
			name: "zero token",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{tokenList(0, fungible(1, -1), fungible(2, 1))},
			},
			expected: types.InvalidTokenId,
		},
		{
			name: "nft self transfer",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{nftList(100, nft(1, 1, 1))},
			},
			expected: types.AccountRepeatedInAccountAmounts,
		},
		{
			name: "nft serial not positive",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{nftList(100, nft(1, 2, 0))},
			},
			expected: types.InvalidTokenNftSerialNumber,
		},
		{
			name: "repeated nft serial",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{nftList(100, nft(1, 2, 1), nft(3, 4, 1))},
			},
			expected: types.InvalidAccountAmounts,
		},
		{
			name: "zero token amount",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{tokenList(100, fungible(1, 0), fungible(2, 0))},
			},
			expected: types.InvalidAccountAmounts,
		},
		{
			name: "repeated token account",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{
					tokenList(100, fungible(1, -2), fungible(2, 1), fungible(2, 1)),
				},
			},
			expected: types.AccountRepeatedInAccountAmounts,
		},
		{
			name: "token not zero sum",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{tokenList(100, fungible(1, -2), fungible(2, 1))},
			},
			expected: types.TransfersNotZeroSumForToken,
		},
		{
			name: "repeated token",
			request: types.TransferRequest{
				TokenTransfers: []types.TokenTransferList{
					tokenList(100, fungible(1, -1), fungible(2, 1)),
					tokenList(100, fungible(3, -1), fungible(4, 1)),
				},
			},
			expected: types.TokenIdRepeatedInTokenList,
		},
		{
			name: "threshold key alias",
			request: types.TransferRequest{
				HbarTransfers: []types.AccountAmount{hbar(1, -1), aliasHbar([]byte{0x2a, 0x02, 0x08, 0x01}, 1)},
			},
			expected: types.InvalidAliasKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := prevalidate(&tt.request, newTestConfig().Ledger)
			if tt.expected == types.Success {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
				assert.Equal(t, tt.expected.String(), err.Message)
			}
		})
	}
}

func TestFractionOf(t *testing.T) {
	tests := []struct {
		amount, numerator, denominator int64
		expected                       int64
		ok                             bool
	}{
		{amount: 100, numerator: 1, denominator: 10, expected: 10, ok: true},
		{amount: 99, numerator: 1, denominator: 10, expected: 9, ok: true},
		{amount: 5, numerator: 1, denominator: 10, expected: 0, ok: true},
		{amount: math.MaxInt64, numerator: 3, denominator: 4, expected: 6917529027641081855, ok: true},
		{amount: math.MaxInt64, numerator: 2, denominator: 1},
		{amount: 1, numerator: 1, denominator: 0},
	}

	for _, tt := range tests {
		actual, ok := fractionOf(tt.amount, tt.numerator, tt.denominator)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.expected, actual)
	}
}

func TestFractionalAmount(t *testing.T) {
	tests := []struct {
		name     string
		fee      types.FractionalFee
		units    int64
		expected int64
	}{
		{name: "plain", fee: types.FractionalFee{Numerator: 1, Denominator: 4}, units: 100, expected: 25},
		{name: "minimum", fee: types.FractionalFee{Numerator: 1, Denominator: 4, MinimumAmount: 30}, units: 100,
			expected: 30},
		{name: "maximum", fee: types.FractionalFee{Numerator: 1, Denominator: 4, MaximumAmount: 20}, units: 100,
			expected: 20},
		{name: "unbounded", fee: types.FractionalFee{Numerator: 9, Denominator: 10}, units: 100, expected: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := fractionalAmount(&tt.fee, tt.units)
			assert.Nil(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}

	_, err := fractionalAmount(&types.FractionalFee{Numerator: 1}, 100)
	assert.Equal(t, types.FractionDividesByZero.String(), err.Message)
}

func TestConsiderationOf(t *testing.T) {
	changes := []balanceChange{
		{accountId: entityId(1), amount: 10},
		{accountId: entityId(1), amount: 5, tokenId: entityId(100)},
		{accountId: entityId(1), amount: -3},
		{accountId: entityId(2), amount: 7},
		{accountId: entityId(1), amount: 4, tokenId: entityId(100)},
		{accountId: entityId(1), amount: 9, kind: changeKindCustomFee},
		{accountId: entityId(1), counterparty: entityId(2), serialNumber: 1, tokenId: entityId(200)},
	}

	assert.Equal(t, []consideration{
		{amount: 10},
		{amount: 9, tokenId: entityId(100)},
	}, considerationOf(changes, entityId(1)))
	assert.Empty(t, considerationOf(changes, entityId(3)))
}

func TestCountAdjustments(t *testing.T) {
	changes := []balanceChange{
		{accountId: entityId(1), amount: -10},
		{accountId: entityId(2), amount: 10},
		{accountId: entityId(1), amount: -5, kind: changeKindCustomFee},
		{accountId: entityId(1), amount: -5, tokenId: entityId(100)},
		{accountId: entityId(1), counterparty: entityId(2), serialNumber: 1, tokenId: entityId(200)},
		{accountId: entityId(1), counterparty: entityId(2), serialNumber: 2, tokenId: entityId(200)},
	}

	assert.Equal(t, 5, countAdjustments(changes))
}

func TestCheckZeroSum(t *testing.T) {
	assert.Nil(t, checkZeroSum([]balanceChange{
		{accountId: entityId(1), amount: -10},
		{accountId: entityId(2), amount: 10},
		{accountId: entityId(1), amount: -1, tokenId: entityId(100)},
		{accountId: entityId(2), amount: 1, tokenId: entityId(100)},
	}))

	err := checkZeroSum([]balanceChange{
		{accountId: entityId(1), amount: -10},
		{accountId: entityId(2), amount: 9},
	})
	assert.Equal(t, types.FailInvalid.String(), err.Message)
}

func evenTransfers(count int) []types.AccountAmount {
	transfers := make([]types.AccountAmount, 0, count)
	for i := 0; i < count; i += 2 {
		transfers = append(transfers, hbar(int64(i+1), -1), hbar(int64(i+2), 1))
	}
	return transfers
}
