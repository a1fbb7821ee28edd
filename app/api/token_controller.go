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
	"context"
	"net/http"

	"github.com/coinbase/rosetta-sdk-go/server"
	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
)

const (
	associateTokensPath   = tokenPath + "/associate"
	dissociateTokensPath  = tokenPath + "/dissociate"
	mintNftPath           = tokenPath + "/mint"
	tokenIdPathVar        = "id"
	tokenInfoPath         = tokenPath + "/{" + tokenIdPathVar + "}"
	tokenPath             = "/token"
	updateFeeSchedulePath = tokenPath + "/fee-schedule"
)

// tokenController serves token creation, association, minting, fee schedule updates, and the token query
type tokenController struct {
	service  interfaces.TokenService
	validate *validator.Validate
}

func NewTokenController(service interfaces.TokenService, validate *validator.Validate) server.Router {
	return &tokenController{service: service, validate: validate}
}

// Routes returns the token controller routes
func (c *tokenController) Routes() server.Routes {
	return server.Routes{
		{
			Name:        "createToken",
			Method:      http.MethodPost,
			Pattern:     tokenPath,
			HandlerFunc: transactionHandler(c.validate, c.createToken),
		},
		{
			Name:        "associateTokens",
			Method:      http.MethodPost,
			Pattern:     associateTokensPath,
			HandlerFunc: transactionHandler(c.validate, c.service.AssociateTokens),
		},
		{
			Name:        "dissociateTokens",
			Method:      http.MethodPost,
			Pattern:     dissociateTokensPath,
			HandlerFunc: transactionHandler(c.validate, c.service.DissociateTokens),
		},
		{
			Name:        "mintNft",
			Method:      http.MethodPost,
			Pattern:     mintNftPath,
			HandlerFunc: transactionHandler(c.validate, c.service.MintNft),
		},
		{
			Name:        "updateFeeSchedule",
			Method:      http.MethodPost,
			Pattern:     updateFeeSchedulePath,
			HandlerFunc: transactionHandler(c.validate, c.updateFeeSchedule),
		},
		{
			Name:        "tokenInfo",
			Method:      http.MethodGet,
			Pattern:     tokenInfoPath,
			HandlerFunc: c.getToken,
		},
	}
}

func (c *tokenController) createToken(ctx context.Context, request *createTokenRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	customFees, err := toCustomFees(request.CustomFees)
	if err != nil {
		return nil, errors.AddErrorDetails(errors.ErrInvalidArgument, "cause", err.Error())
	}

	request.CreateTokenRequest.CustomFees = customFees
	return c.service.CreateToken(ctx, &request.CreateTokenRequest)
}

func (c *tokenController) updateFeeSchedule(ctx context.Context, request *updateFeeScheduleRequest) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	customFees, err := toCustomFees(request.CustomFees)
	if err != nil {
		return nil, errors.AddErrorDetails(errors.ErrInvalidArgument, "cause", err.Error())
	}

	request.UpdateFeeScheduleRequest.CustomFees = customFees
	return c.service.UpdateFeeSchedule(ctx, &request.UpdateFeeScheduleRequest)
}

func (c *tokenController) getToken(w http.ResponseWriter, r *http.Request) {
	tokenId, err := domain.EntityIdFromString(mux.Vars(r)[tokenIdPathVar])
	if err != nil {
		writeError(w, errors.AddErrorDetails(errors.ErrInvalidArgument, "cause", err.Error()))
		return
	}

	token, rErr := c.service.GetToken(r.Context(), tokenId)
	if rErr != nil {
		writeError(w, rErr)
		return
	}

	writeResponse(w, http.StatusOK, newTokenResponse(token))
}
