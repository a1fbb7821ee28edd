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

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/hashgraph/hedera-settlement/app/tools"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

type royaltyKey struct {
	feeIndex int
	sender   domain.EntityId
	tokenId  domain.EntityId
}

// feeAssessor charges the custom fees of the tokens a transaction moves. The request is level 0, the charges a level
// triggers land one level deeper and are assessed in turn if they move another token.
type feeAssessor struct {
	charges   []balanceChange
	records   []types.ChildRecord
	royalties map[royaltyKey]struct{}
	topLevel  []balanceChange
}

func assessCustomFees(view *ledger.View, changes []balanceChange, maxDepth int) (
	[]balanceChange,
	[]types.ChildRecord,
	*rTypes.Error,
) {
	assessor := &feeAssessor{
		royalties: make(map[royaltyKey]struct{}),
		topLevel:  changes,
	}

	current := make([]balanceChange, 0, len(changes))
	for _, change := range changes {
		if change.kind == changeKindTransfer {
			current = append(current, change)
		}
	}

	for level := 0; len(current) != 0; level++ {
		var next []balanceChange
		for _, tokenId := range tokensOf(current) {
			token, ok := view.GetToken(tokenId)
			if !ok || len(token.CustomFees) == 0 {
				continue
			}

			charges, err := assessor.assessToken(token, legsOf(current, tokenId), level+1)
			if err != nil {
				return nil, nil, err
			}

			if len(charges) == 0 {
				continue
			}

			if level+1 > maxDepth {
				log.Debugf("Custom fees of token %s charged at level %d exceed max depth %d", tokenId, level+1,
					maxDepth)
				return nil, nil, errors.ForCode(types.CustomFeeChargingExceededMaxRecursionDepth)
			}

			assessor.charges = append(assessor.charges, charges...)
			for _, charge := range charges {
				// hbar has no custom fees and a token's own charges are not assessed again
				if !charge.isHbar() && charge.tokenId != tokenId {
					next = append(next, charge)
				}
			}
		}
		current = next
	}

	return assessor.charges, assessor.records, nil
}

func (a *feeAssessor) assessToken(token types.Token, legs []balanceChange, level int) (
	[]balanceChange,
	*rTypes.Error,
) {
	var charges []balanceChange
	remainingCredits := newCreditTracker(legs)
	for index, customFee := range token.CustomFees {
		switch fee := customFee.Fee.(type) {
		case *types.FixedFee:
			for _, leg := range legs {
				if (leg.isNft() || leg.amount < 0) && !isExempt(token, customFee, leg.accountId) {
					charges = a.charge(charges, leg.accountId, customFee.Collector, fee.DenominatingTokenId,
						fee.Amount, level)
				}
			}
		case *types.FractionalFee:
			if token.IsNft() {
				continue
			}

			for _, leg := range legs {
				if leg.amount >= 0 || isExempt(token, customFee, leg.accountId) {
					continue
				}

				amount, err := fractionalAmount(fee, -leg.amount)
				if err != nil {
					return nil, err
				}
				if amount == 0 {
					continue
				}

				if fee.NetOfTransfers {
					charges = a.charge(charges, leg.accountId, customFee.Collector, token.TokenId, amount, level)
					continue
				}

				if charges, err = a.reclaim(charges, remainingCredits, customFee.Collector, token.TokenId, amount,
					level); err != nil {
					return nil, err
				}
			}
		case *types.RoyaltyFee:
			for _, leg := range legs {
				if !leg.isNft() {
					continue
				}

				key := royaltyKey{feeIndex: index, sender: leg.accountId, tokenId: token.TokenId}
				if _, ok := a.royalties[key]; ok {
					continue
				}
				a.royalties[key] = struct{}{}

				var err *rTypes.Error
				if charges, err = a.chargeRoyalty(charges, token, customFee, fee, leg, level); err != nil {
					return nil, err
				}
			}
		default:
			log.Errorf("Unknown custom fee type %T of token %s", customFee.Fee, token.TokenId)
			return nil, errors.ForCode(types.FailInvalid)
		}
	}

	return charges, nil
}

// chargeRoyalty charges the fraction of every fungible value the nft sender receives at the top level, or the
// fallback fee to the receiver if the sender receives nothing
func (a *feeAssessor) chargeRoyalty(
	charges []balanceChange,
	token types.Token,
	customFee types.CustomFee,
	fee *types.RoyaltyFee,
	leg balanceChange,
	level int,
) ([]balanceChange, *rTypes.Error) {
	consideration := considerationOf(a.topLevel, leg.accountId)
	if len(consideration) == 0 {
		if fee.FallbackFee != nil && !isExempt(token, customFee, leg.counterparty) {
			charges = a.charge(charges, leg.counterparty, customFee.Collector, fee.FallbackFee.DenominatingTokenId,
				fee.FallbackFee.Amount, level)
		}
		return charges, nil
	}

	if isExempt(token, customFee, leg.accountId) {
		return charges, nil
	}

	for _, value := range consideration {
		amount, ok := fractionOf(value.amount, fee.Numerator, fee.Denominator)
		if !ok {
			return nil, errors.ForCode(types.FractionDividesByZero)
		}
		if amount > 0 {
			charges = a.charge(charges, leg.accountId, customFee.Collector, value.tokenId, amount, level)
		}
	}

	return charges, nil
}

// reclaim takes an inclusive fractional fee out of the credits of the token, proportionally to each credit with the
// rounding remainder taken from the credits in order
func (a *feeAssessor) reclaim(
	charges []balanceChange,
	credits *creditTracker,
	collector domain.EntityId,
	tokenId domain.EntityId,
	amount int64,
	level int,
) ([]balanceChange, *rTypes.Error) {
	total := credits.total(collector)
	if total.LessThan(decimal.NewFromInt(amount)) {
		return nil, errors.ForCode(types.InsufficientSenderAccountBalanceForCustomFee)
	}

	portions := make([]int64, len(credits.accounts))
	var reclaimed int64
	for i, accountId := range credits.accounts {
		if accountId == collector {
			continue
		}
		portion := shareOf(amount, credits.remaining[accountId], total)
		portions[i] = portion
		reclaimed += portion
	}

	for i, accountId := range credits.accounts {
		if reclaimed == amount {
			break
		}
		if accountId == collector {
			continue
		}
		extra := min(amount-reclaimed, credits.remaining[accountId]-portions[i])
		portions[i] += extra
		reclaimed += extra
	}

	for i, accountId := range credits.accounts {
		if portions[i] == 0 {
			continue
		}
		credits.remaining[accountId] -= portions[i]
		charges = a.charge(charges, accountId, collector, tokenId, portions[i], level)
	}

	return charges, nil
}

// charge moves the amount from the payer to the collector and records the fee payment
func (a *feeAssessor) charge(
	charges []balanceChange,
	payer domain.EntityId,
	collector domain.EntityId,
	tokenId domain.EntityId,
	amount int64,
	level int,
) []balanceChange {
	a.records = append(a.records, types.ChildRecord{
		AccountId:   payer,
		Amount:      amount,
		CollectorId: collector,
		Kind:        types.ChildRecordFeePaid,
		TokenId:     tokenId,
	})

	return append(charges,
		balanceChange{accountId: payer, amount: -amount, kind: changeKindCustomFee, level: level, tokenId: tokenId},
		balanceChange{accountId: collector, amount: amount, kind: changeKindCustomFee, level: level, tokenId: tokenId},
	)
}

// isExempt tells if the account pays no custom fee, the collector of the fee, the treasury of the token, and any
// collector of a fee exempting all collectors are exempt
func isExempt(token types.Token, customFee types.CustomFee, accountId domain.EntityId) bool {
	return accountId == customFee.Collector || accountId == token.Treasury ||
		(customFee.AllCollectorsAreExempt && token.IsFeeCollector(accountId))
}

func fractionalAmount(fee *types.FractionalFee, units int64) (int64, *rTypes.Error) {
	amount, ok := fractionOf(units, fee.Numerator, fee.Denominator)
	if !ok {
		return 0, errors.ForCode(types.FractionDividesByZero)
	}

	if amount < fee.MinimumAmount {
		amount = fee.MinimumAmount
	}
	if fee.MaximumAmount > 0 && amount > fee.MaximumAmount {
		amount = fee.MaximumAmount
	}
	return amount, nil
}

// shareOf returns floor(amount * part / total), the share of the amount proportional to the part of the total
func shareOf(amount, part int64, total decimal.Decimal) int64 {
	if total.IsZero() {
		return 0
	}

	quotient, _ := decimal.NewFromInt(amount).Mul(decimal.NewFromInt(part)).QuoRem(total, 0)
	return quotient.IntPart()
}

// fractionOf returns floor(amount * numerator / denominator) for non-negative inputs without intermediate overflow,
// false if the denominator is zero or the result overflows
func fractionOf(amount, numerator, denominator int64) (int64, bool) {
	if denominator == 0 {
		return 0, false
	}

	quotient, _ := decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(numerator)).
		QuoRem(decimal.NewFromInt(denominator), 0)
	if quotient.GreaterThan(maxInt64) {
		return 0, false
	}
	return quotient.IntPart(), true
}

type creditTracker struct {
	accounts  []domain.EntityId
	remaining map[domain.EntityId]int64
}

func newCreditTracker(legs []balanceChange) *creditTracker {
	tracker := &creditTracker{remaining: make(map[domain.EntityId]int64)}
	for _, leg := range legs {
		if leg.isNft() || leg.amount <= 0 {
			continue
		}
		remaining, ok := tracker.remaining[leg.accountId]
		if !ok {
			tracker.accounts = append(tracker.accounts, leg.accountId)
		}
		// a credit past int64 can never commit, capping it keeps the shares in range
		if remaining, ok = tools.SafeAddInt64(remaining, leg.amount); !ok {
			remaining = math.MaxInt64
		}
		tracker.remaining[leg.accountId] = remaining
	}
	return tracker
}

// total sums the remaining credits of every account but the excluded one, the sum of several int64 credits may
// not fit an int64
func (c *creditTracker) total(excluded domain.EntityId) decimal.Decimal {
	total := decimal.Zero
	for accountId, amount := range c.remaining {
		if accountId != excluded {
			total = total.Add(decimal.NewFromInt(amount))
		}
	}
	return total
}

type consideration struct {
	amount  int64
	tokenId domain.EntityId
}

// considerationOf sums the top level fungible credits of the account per asset, in order of first appearance
func considerationOf(changes []balanceChange, accountId domain.EntityId) []consideration {
	var values []consideration
	indexes := make(map[domain.EntityId]int)
	for _, change := range changes {
		if change.kind != changeKindTransfer || change.isNft() || change.accountId != accountId || change.amount <= 0 {
			continue
		}

		if index, ok := indexes[change.tokenId]; ok {
			values[index].amount += change.amount
			continue
		}
		indexes[change.tokenId] = len(values)
		values = append(values, consideration{amount: change.amount, tokenId: change.tokenId})
	}
	return values
}

// tokensOf returns the distinct tokens of the changes in order of first appearance, hbar excluded
func tokensOf(changes []balanceChange) []domain.EntityId {
	var tokenIds []domain.EntityId
	seen := make(map[domain.EntityId]struct{})
	for _, change := range changes {
		if change.isHbar() {
			continue
		}
		if _, ok := seen[change.tokenId]; !ok {
			seen[change.tokenId] = struct{}{}
			tokenIds = append(tokenIds, change.tokenId)
		}
	}
	return tokenIds
}

func legsOf(changes []balanceChange, tokenId domain.EntityId) []balanceChange {
	var legs []balanceChange
	for _, change := range changes {
		if change.tokenId == tokenId {
			legs = append(legs, change)
		}
	}
	return legs
}
