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
	"context"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	"github.com/hashgraph/hedera-settlement/app/services/base"
	log "github.com/sirupsen/logrus"
)

const maxTokenNameLength = 100

// tokenService implements the interfaces.TokenService interface.
type tokenService struct {
	base.BaseService
}

// CreateToken creates a token owned by the treasury, the treasury receives the initial supply and the collectors of
// fees charged in the new token are associated with it
func (t *tokenService) CreateToken(ctx context.Context, request *types.CreateTokenRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if err := t.validateCreateRequest(request); err != nil {
		return nil, err
	}

	return t.Execute(ctx, types.TransactionTypeTokenCreation, request.TransactionId, "", request.Signers,
		func(view *ledger.View, record *types.TransactionRecord) *rTypes.Error {
			treasury, err := base.GetLiveAccount(view, request.Treasury, types.InvalidTreasuryAccountForToken,
				types.InvalidTreasuryAccountForToken)
			if err != nil {
				return err
			}

			if err = t.RequireSignature(request.Signers, treasury); err != nil {
				return err
			}

			tokenId, allocErr := view.NewEntityId()
			if allocErr != nil {
				log.Errorf("Failed to allocate token id: %s", allocErr)
				return errors.ForCode(types.FailInvalid)
			}

			token := types.Token{
				TokenId:        tokenId,
				CustomFees:     request.CustomFees,
				Decimals:       request.Decimals,
				FeeScheduleKey: request.FeeScheduleKey,
				FreezeDefault:  request.FreezeDefault,
				MaxSupply:      request.MaxSupply,
				Name:           request.Name,
				SupplyType:     request.SupplyType,
				Symbol:         request.Symbol,
				TotalSupply:    request.InitialSupply,
				Treasury:       treasury.Id,
				Type:           request.Type,
			}
			view.PutToken(token)
			view.PutRelationship(types.TokenRelationship{
				AccountId: treasury.Id,
				Balance:   request.InitialSupply,
				TokenId:   tokenId,
			})

			if err = validateCustomFees(view, token, true); err != nil {
				return err
			}

			record.EntityId = tokenId
			if request.InitialSupply != 0 {
				record.TokenTransfers = []types.TokenTransfer{
					{AccountId: treasury.Id, Amount: request.InitialSupply, TokenId: tokenId},
				}
			}
			log.Debugf("Created %s token %s", token.Type, tokenId)
			return nil
		})
}

// AssociateTokens associates the account with every listed token
func (t *tokenService) AssociateTokens(ctx context.Context, request *types.TokenAssociationRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if err := validateTokenIds(request.TokenIds); err != nil {
		return nil, err
	}

	return t.Execute(ctx, types.TransactionTypeTokenAssociate, request.TransactionId, "", request.Signers,
		func(view *ledger.View, _ *types.TransactionRecord) *rTypes.Error {
			account, err := t.signingAccount(view, request.AccountId, request.Signers)
			if err != nil {
				return err
			}

			for _, tokenId := range request.TokenIds {
				token, err := existingToken(view, tokenId)
				if err != nil {
					return err
				}

				if _, ok := view.GetRelationship(account.Id, tokenId); ok {
					return errors.ForCode(types.TokenAlreadyAssociatedToAccount)
				}

				view.PutRelationship(types.TokenRelationship{
					AccountId: account.Id,
					Frozen:    token.FreezeDefault,
					TokenId:   tokenId,
				})
			}

			return nil
		})
}

// DissociateTokens removes the relationships of the account with the listed tokens. The account must not hold a
// balance of a live token nor be its treasury.
func (t *tokenService) DissociateTokens(ctx context.Context, request *types.TokenAssociationRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if err := validateTokenIds(request.TokenIds); err != nil {
		return nil, err
	}

	return t.Execute(ctx, types.TransactionTypeTokenDissociate, request.TransactionId, "", request.Signers,
		func(view *ledger.View, _ *types.TransactionRecord) *rTypes.Error {
			account, err := t.signingAccount(view, request.AccountId, request.Signers)
			if err != nil {
				return err
			}

			for _, tokenId := range request.TokenIds {
				relationship, ok := view.GetRelationship(account.Id, tokenId)
				if !ok {
					return errors.ForCode(types.TokenNotAssociatedToAccount)
				}

				if token, ok := view.GetToken(tokenId); ok && !token.Deleted {
					if token.Treasury == account.Id {
						return errors.ForCode(types.AccountIsTreasury)
					}

					if relationship.Balance != 0 {
						return errors.ForCode(types.TransactionRequiresZeroTokenBalances)
					}
				}

				if relationship.AutomaticAssoc {
					account.UsedAutoAssociations--
				}
				view.RemoveRelationship(account.Id, tokenId)
			}

			view.PutAccount(account)
			return nil
		})
}

// MintNft mints the next serial numbers of the token to its treasury
func (t *tokenService) MintNft(ctx context.Context, request *types.MintNftRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if request.Count <= 0 {
		return nil, errors.ForCode(types.InvalidTokenMintAmount)
	}

	if request.Count > int64(t.Config().Tokens.MaxBatchSizeMint) {
		return nil, errors.ForCode(types.BatchSizeLimitExceeded)
	}

	return t.Execute(ctx, types.TransactionTypeTokenMint, request.TransactionId, "", request.Signers,
		func(view *ledger.View, record *types.TransactionRecord) *rTypes.Error {
			token, err := existingToken(view, request.TokenId)
			if err != nil {
				return err
			}

			if token.Paused {
				return errors.ForCode(types.TokenIsPaused)
			}

			if !token.IsNft() {
				return errors.ForCode(types.NotSupported)
			}

			treasury, err := base.GetLiveAccount(view, token.Treasury, types.InvalidTreasuryAccountForToken,
				types.AccountDeleted)
			if err != nil {
				return err
			}

			if err = t.RequireSignature(request.Signers, treasury); err != nil {
				return err
			}

			if token.SupplyType == types.TokenSupplyTypeFinite && token.TotalSupply+request.Count > token.MaxSupply {
				return errors.ForCode(types.TokenMaxSupplyReached)
			}

			relationship, ok := view.GetRelationship(treasury.Id, token.TokenId)
			if !ok {
				log.Errorf("Treasury %s is not associated with token %s", treasury.Id, token.TokenId)
				return errors.ForCode(types.FailInvalid)
			}

			record.NftTransfers = make([]types.NftMovement, 0, request.Count)
			for i := int64(1); i <= request.Count; i++ {
				nftId := types.NftId{TokenId: token.TokenId, SerialNumber: token.TotalSupply + i}
				view.PutNft(types.Nft{NftId: nftId, Owner: treasury.Id})
				record.NftTransfers = append(record.NftTransfers, types.NftMovement{
					ReceiverAccountId: treasury.Id,
					SerialNumber:      nftId.SerialNumber,
					TokenId:           token.TokenId,
				})
			}

			relationship.Balance += request.Count
			token.TotalSupply += request.Count
			view.PutRelationship(relationship)
			view.PutToken(token)
			return nil
		})
}

// UpdateFeeSchedule replaces the custom fees of the token, the fee schedule key of the token must sign
func (t *tokenService) UpdateFeeSchedule(ctx context.Context, request *types.UpdateFeeScheduleRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if len(request.CustomFees) > t.Config().Tokens.MaxCustomFeesAllowed {
		return nil, errors.ForCode(types.CustomFeesListTooLong)
	}

	return t.Execute(ctx, types.TransactionTypeTokenFeeScheduleUpdate, request.TransactionId, "", request.Signers,
		func(view *ledger.View, _ *types.TransactionRecord) *rTypes.Error {
			token, err := existingToken(view, request.TokenId)
			if err != nil {
				return err
			}

			if token.FeeScheduleKey == nil {
				return errors.ForCode(types.TokenHasNoFeeScheduleKey)
			}

			if err = t.RequireKeySignature(request.Signers, *token.FeeScheduleKey); err != nil {
				return err
			}

			token.CustomFees = request.CustomFees
			if err = validateCustomFees(view, token, false); err != nil {
				return err
			}

			view.PutToken(token)
			return nil
		})
}

func (t *tokenService) GetToken(ctx context.Context, tokenId domain.EntityId) (*types.Token, *rTypes.Error) {
	var token *types.Token
	err := t.Read(ctx, func(view *ledger.View) *rTypes.Error {
		found, ok := view.GetToken(tokenId)
		if !ok {
			return errors.ForCode(types.InvalidTokenId)
		}

		token = &found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

func (t *tokenService) signingAccount(
	view *ledger.View,
	accountId domain.EntityId,
	signers []types.PublicKey,
) (types.Account, *rTypes.Error) {
	account, err := base.GetLiveAccount(view, accountId, types.InvalidAccountId, types.AccountDeleted)
	if err != nil {
		return types.Account{}, err
	}

	if err = t.RequireSignature(signers, account); err != nil {
		return types.Account{}, err
	}

	return account, nil
}

func (t *tokenService) validateCreateRequest(request *types.CreateTokenRequest) *rTypes.Error {
	switch {
	case request.Name == "":
		return errors.ForCode(types.MissingTokenName)
	case len(request.Name) > maxTokenNameLength:
		return errors.ForCode(types.TokenNameTooLong)
	case request.Symbol == "":
		return errors.ForCode(types.MissingTokenSymbol)
	case len(request.Symbol) > maxTokenNameLength:
		return errors.ForCode(types.TokenSymbolTooLong)
	case request.InitialSupply < 0:
		return errors.ForCode(types.InvalidTokenInitialSupply)
	case request.Type == types.TokenTypeNonFungibleUnique && request.InitialSupply != 0:
		return errors.ForCode(types.InvalidTokenInitialSupply)
	case request.Type == types.TokenTypeNonFungibleUnique && request.Decimals != 0:
		return errors.ForCode(types.InvalidTokenDecimals)
	case len(request.CustomFees) > t.Config().Tokens.MaxCustomFeesAllowed:
		return errors.ForCode(types.CustomFeesListTooLong)
	}

	if request.SupplyType == types.TokenSupplyTypeFinite {
		if request.MaxSupply <= 0 {
			return errors.ForCode(types.InvalidTokenMaxSupply)
		}

		if request.InitialSupply > request.MaxSupply {
			return errors.ForCode(types.InvalidTokenInitialSupply)
		}
	} else if request.MaxSupply != 0 {
		return errors.ForCode(types.InvalidTokenMaxSupply)
	}

	return nil
}

func existingToken(view *ledger.View, tokenId domain.EntityId) (types.Token, *rTypes.Error) {
	token, ok := view.GetToken(tokenId)
	if !ok {
		return types.Token{}, errors.ForCode(types.InvalidTokenId)
	}

	if token.Deleted {
		return types.Token{}, errors.ForCode(types.TokenWasDeleted)
	}

	return token, nil
}

func validateTokenIds(tokenIds []domain.EntityId) *rTypes.Error {
	seen := make(map[domain.EntityId]struct{}, len(tokenIds))
	for _, tokenId := range tokenIds {
		if tokenId.IsZero() {
			return errors.ForCode(types.InvalidTokenId)
		}

		if _, ok := seen[tokenId]; ok {
			return errors.ForCode(types.TokenIdRepeatedInTokenList)
		}
		seen[tokenId] = struct{}{}
	}

	return nil
}

// NewTokenService creates a new instance of a tokenService.
func NewTokenService(baseService base.BaseService) interfaces.TokenService {
	return &tokenService{BaseService: baseService}
}
