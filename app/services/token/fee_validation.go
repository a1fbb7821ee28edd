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

package token

import (
	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	log "github.com/sirupsen/logrus"
)

// feeValidator checks the custom fees of a token. At creation the collectors of fees charged in the token itself are
// associated with it, afterwards they must already be.
type feeValidator struct {
	creating bool
	token    types.Token
	view     *ledger.View
}

func validateCustomFees(view *ledger.View, token types.Token, creating bool) *rTypes.Error {
	validator := feeValidator{creating: creating, token: token, view: view}
	for _, customFee := range token.CustomFees {
		if err := validator.validate(customFee); err != nil {
			return err
		}
	}
	return nil
}

func (v feeValidator) validate(customFee types.CustomFee) *rTypes.Error {
	collector, ok := v.view.GetAccount(customFee.Collector)
	if !ok || collector.Deleted {
		return errors.ForCode(types.InvalidCustomFeeCollector)
	}

	switch fee := customFee.Fee.(type) {
	case *types.FixedFee:
		return v.validateFixedFee(fee, collector.Id)
	case *types.FractionalFee:
		return v.validateFractionalFee(fee, collector.Id)
	case *types.RoyaltyFee:
		return v.validateRoyaltyFee(fee, collector.Id)
	default:
		log.Errorf("Unknown custom fee type %T", customFee.Fee)
		return errors.ForCode(types.NotSupported)
	}
}

func (v feeValidator) validateFixedFee(fee *types.FixedFee, collectorId domain.EntityId) *rTypes.Error {
	if fee == nil || fee.Amount <= 0 {
		return errors.ForCode(types.CustomFeeMustBePositive)
	}

	if fee.IsHbar() {
		return nil
	}

	if fee.DenominatingTokenId == v.token.TokenId {
		if v.token.IsNft() {
			return errors.ForCode(types.CustomFeeDenominationMustBeFungibleCommon)
		}
		return v.requireCollectorAssociation(collectorId)
	}

	denominatingToken, ok := v.view.GetToken(fee.DenominatingTokenId)
	if !ok {
		return errors.ForCode(types.InvalidTokenIdInCustomFees)
	}

	if denominatingToken.IsNft() {
		return errors.ForCode(types.CustomFeeDenominationMustBeFungibleCommon)
	}

	if _, ok = v.view.GetRelationship(collectorId, fee.DenominatingTokenId); !ok {
		return errors.ForCode(types.TokenNotAssociatedToFeeCollector)
	}

	return nil
}

func (v feeValidator) validateFractionalFee(fee *types.FractionalFee, collectorId domain.EntityId) *rTypes.Error {
	if v.token.IsNft() {
		return errors.ForCode(types.CustomFractionalFeeOnlyAllowedForFungibleCommon)
	}

	if fee.Denominator == 0 {
		return errors.ForCode(types.FractionDividesByZero)
	}

	if fee.Numerator <= 0 || fee.Denominator < 0 || fee.MinimumAmount < 0 || fee.MaximumAmount < 0 {
		return errors.ForCode(types.CustomFeeMustBePositive)
	}

	if fee.MaximumAmount > 0 && fee.MaximumAmount < fee.MinimumAmount {
		return errors.ForCode(types.FractionalFeeMaxAmountLessThanMinAmount)
	}

	return v.requireCollectorAssociation(collectorId)
}

func (v feeValidator) validateRoyaltyFee(fee *types.RoyaltyFee, collectorId domain.EntityId) *rTypes.Error {
	if !v.token.IsNft() {
		return errors.ForCode(types.CustomRoyaltyFeeOnlyAllowedForNonFungibleUnique)
	}

	if fee.Denominator == 0 {
		return errors.ForCode(types.FractionDividesByZero)
	}

	if fee.Numerator <= 0 || fee.Denominator < 0 {
		return errors.ForCode(types.CustomFeeMustBePositive)
	}

	if fee.Numerator > fee.Denominator {
		return errors.ForCode(types.RoyaltyFractionCannotExceedOne)
	}

	if fee.FallbackFee != nil {
		return v.validateFixedFee(fee.FallbackFee, collectorId)
	}

	return nil
}

func (v feeValidator) requireCollectorAssociation(collectorId domain.EntityId) *rTypes.Error {
	if _, ok := v.view.GetRelationship(collectorId, v.token.TokenId); ok {
		return nil
	}

	if !v.creating {
		return errors.ForCode(types.TokenNotAssociatedToFeeCollector)
	}

	v.view.PutRelationship(types.TokenRelationship{AccountId: collectorId, TokenId: v.token.TokenId})
	return nil
}
