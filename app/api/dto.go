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

package api

import (
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/hashgraph/hedera-settlement/app/tools"
	"github.com/pkg/errors"
)

type fixedFee struct {
	Amount              int64           `json:"amount"`
	DenominatingTokenId domain.EntityId `json:"denominating_token_id"`
}

type fractionalFee struct {
	Denominator    int64 `json:"denominator"`
	MaximumAmount  int64 `json:"maximum_amount"`
	MinimumAmount  int64 `json:"minimum_amount"`
	NetOfTransfers bool  `json:"net_of_transfers"`
	Numerator      int64 `json:"numerator"`
}

type royaltyFee struct {
	Denominator int64     `json:"denominator"`
	FallbackFee *fixedFee `json:"fallback_fee,omitempty"`
	Numerator   int64     `json:"numerator"`
}

// customFee is the json form of types.CustomFee, exactly one of Fixed, Fractional, and Royalty is set
type customFee struct {
	AllCollectorsAreExempt bool            `json:"all_collectors_are_exempt"`
	Collector              domain.EntityId `json:"collector"`
	Fixed                  *fixedFee       `json:"fixed,omitempty"`
	Fractional             *fractionalFee  `json:"fractional,omitempty"`
	Royalty                *royaltyFee     `json:"royalty,omitempty"`
}

func (c customFee) toCustomFee() (types.CustomFee, error) {
	result := types.CustomFee{AllCollectorsAreExempt: c.AllCollectorsAreExempt, Collector: c.Collector}
	count := 0
	if c.Fixed != nil {
		result.Fee = &types.FixedFee{Amount: c.Fixed.Amount, DenominatingTokenId: c.Fixed.DenominatingTokenId}
		count++
	}
	if c.Fractional != nil {
		result.Fee = &types.FractionalFee{
			Denominator:    c.Fractional.Denominator,
			MaximumAmount:  c.Fractional.MaximumAmount,
			MinimumAmount:  c.Fractional.MinimumAmount,
			NetOfTransfers: c.Fractional.NetOfTransfers,
			Numerator:      c.Fractional.Numerator,
		}
		count++
	}
	if c.Royalty != nil {
		royalty := &types.RoyaltyFee{Denominator: c.Royalty.Denominator, Numerator: c.Royalty.Numerator}
		if c.Royalty.FallbackFee != nil {
			royalty.FallbackFee = &types.FixedFee{
				Amount:              c.Royalty.FallbackFee.Amount,
				DenominatingTokenId: c.Royalty.FallbackFee.DenominatingTokenId,
			}
		}
		result.Fee = royalty
		count++
	}

	if count != 1 {
		return types.CustomFee{}, errors.Errorf("custom fee of collector %s must have exactly one fee type", c.Collector)
	}

	return result, nil
}

func newCustomFee(fee types.CustomFee) customFee {
	result := customFee{AllCollectorsAreExempt: fee.AllCollectorsAreExempt, Collector: fee.Collector}
	switch value := fee.Fee.(type) {
	case *types.FixedFee:
		result.Fixed = newFixedFee(value)
	case *types.FractionalFee:
		result.Fractional = &fractionalFee{
			Denominator:    value.Denominator,
			MaximumAmount:  value.MaximumAmount,
			MinimumAmount:  value.MinimumAmount,
			NetOfTransfers: value.NetOfTransfers,
			Numerator:      value.Numerator,
		}
	case *types.RoyaltyFee:
		result.Royalty = &royaltyFee{
			Denominator: value.Denominator,
			FallbackFee: newFixedFee(value.FallbackFee),
			Numerator:   value.Numerator,
		}
	}
	return result
}

func newFixedFee(fee *types.FixedFee) *fixedFee {
	if fee == nil {
		return nil
	}

	return &fixedFee{Amount: fee.Amount, DenominatingTokenId: fee.DenominatingTokenId}
}

func toCustomFees(fees []customFee) ([]types.CustomFee, error) {
	if len(fees) == 0 {
		return nil, nil
	}

	result := make([]types.CustomFee, 0, len(fees))
	for _, fee := range fees {
		converted, err := fee.toCustomFee()
		if err != nil {
			return nil, err
		}
		result = append(result, converted)
	}
	return result, nil
}

type createTokenRequest struct {
	types.CreateTokenRequest
	CustomFees []customFee `json:"custom_fees,omitempty"`
}

type updateFeeScheduleRequest struct {
	types.UpdateFeeScheduleRequest
	CustomFees []customFee `json:"custom_fees"`
}

type tokenRelationshipResponse struct {
	AutomaticAssociation bool            `json:"automatic_association"`
	Balance              int64           `json:"balance"`
	Frozen               bool            `json:"frozen"`
	TokenId              domain.EntityId `json:"token_id"`
}

type accountResponse struct {
	AccountId            domain.EntityId             `json:"account_id"`
	Alias                string                      `json:"alias,omitempty"`
	AutoRenewPeriod      int64                       `json:"auto_renew_period"`
	Balance              int64                       `json:"balance"`
	Deleted              bool                        `json:"deleted"`
	EvmAddress           string                      `json:"evm_address,omitempty"`
	Key                  *types.PublicKey            `json:"key,omitempty"`
	MaxAutoAssociations  int32                       `json:"max_auto_associations"`
	Memo                 string                      `json:"memo"`
	Relationships        []tokenRelationshipResponse `json:"relationships"`
	UsedAutoAssociations int32                       `json:"used_auto_associations"`
}

func newAccountResponse(info *types.AccountInfo) accountResponse {
	account := info.Account
	response := accountResponse{
		AccountId:            account.Id,
		AutoRenewPeriod:      account.AutoRenewPeriod,
		Balance:              account.Balance,
		Deleted:              account.Deleted,
		Key:                  account.Key,
		MaxAutoAssociations:  account.MaxAutoAssociations,
		Memo:                 account.Memo,
		Relationships:        make([]tokenRelationshipResponse, 0, len(info.Relationships)),
		UsedAutoAssociations: account.UsedAutoAssociations,
	}
	if len(account.Alias) != 0 {
		response.Alias = tools.EncodeHex(account.Alias)
	}
	if len(account.EvmAddress) != 0 {
		response.EvmAddress = tools.EncodeHex(account.EvmAddress)
	}

	for _, relationship := range info.Relationships {
		response.Relationships = append(response.Relationships, tokenRelationshipResponse{
			AutomaticAssociation: relationship.AutomaticAssoc,
			Balance:              relationship.Balance,
			Frozen:               relationship.Frozen,
			TokenId:              relationship.TokenId,
		})
	}
	return response
}

type tokenResponse struct {
	CustomFees     []customFee      `json:"custom_fees"`
	Decimals       uint32           `json:"decimals"`
	Deleted        bool             `json:"deleted"`
	FeeScheduleKey *types.PublicKey `json:"fee_schedule_key,omitempty"`
	FreezeDefault  bool             `json:"freeze_default"`
	MaxSupply      int64            `json:"max_supply"`
	Name           string           `json:"name"`
	Paused         bool             `json:"paused"`
	SupplyType     string           `json:"supply_type"`
	Symbol         string           `json:"symbol"`
	TokenId        domain.EntityId  `json:"token_id"`
	TotalSupply    int64            `json:"total_supply"`
	Treasury       domain.EntityId  `json:"treasury"`
	Type           string           `json:"type"`
}

func newTokenResponse(token *types.Token) tokenResponse {
	supplyType := "INFINITE"
	if token.SupplyType == types.TokenSupplyTypeFinite {
		supplyType = "FINITE"
	}

	customFees := make([]customFee, 0, len(token.CustomFees))
	for _, fee := range token.CustomFees {
		customFees = append(customFees, newCustomFee(fee))
	}

	return tokenResponse{
		CustomFees:     customFees,
		Decimals:       token.Decimals,
		Deleted:        token.Deleted,
		FeeScheduleKey: token.FeeScheduleKey,
		FreezeDefault:  token.FreezeDefault,
		MaxSupply:      token.MaxSupply,
		Name:           token.Name,
		Paused:         token.Paused,
		SupplyType:     supplyType,
		Symbol:         token.Symbol,
		TokenId:        token.TokenId,
		TotalSupply:    token.TotalSupply,
		Treasury:       token.Treasury,
		Type:           token.Type.String(),
	}
}
