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
	"net/http"

	"github.com/coinbase/rosetta-sdk-go/server"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
)

const (
	accountIdPathVar    = "id"
	accountPath         = "/account"
	accountInfoPath     = accountPath + "/{" + accountIdPathVar + "}"
	deleteAccountPath   = accountPath + "/delete"
	finalizeAccountPath = accountPath + "/finalize"
)

// accountController serves the account lifecycle and the account info query
type accountController struct {
	service  interfaces.AccountService
	validate *validator.Validate
}

func NewAccountController(service interfaces.AccountService, validate *validator.Validate) server.Router {
	return &accountController{service: service, validate: validate}
}

// Routes returns the account controller routes
func (c *accountController) Routes() server.Routes {
	return server.Routes{
		{
			Name:        "createAccount",
			Method:      http.MethodPost,
			Pattern:     accountPath,
			HandlerFunc: transactionHandler(c.validate, c.service.CreateAccount),
		},
		{
			Name:        "deleteAccount",
			Method:      http.MethodPost,
			Pattern:     deleteAccountPath,
			HandlerFunc: transactionHandler(c.validate, c.service.DeleteAccount),
		},
		{
			Name:        "finalizeHollowAccount",
			Method:      http.MethodPost,
			Pattern:     finalizeAccountPath,
			HandlerFunc: transactionHandler(c.validate, c.service.FinalizeHollowAccount),
		},
		{
			Name:        "accountInfo",
			Method:      http.MethodGet,
			Pattern:     accountInfoPath,
			HandlerFunc: c.getAccountInfo,
		},
	}
}

// getAccountInfo accepts the shard.realm.num form, the hex key alias, or the hex EVM address
func (c *accountController) getAccountInfo(w http.ResponseWriter, r *http.Request) {
	accountId, err := types.NewAccountIdFromString(mux.Vars(r)[accountIdPathVar])
	if err != nil {
		writeError(w, errors.AddErrorDetails(errors.ErrInvalidArgument, "cause", err.Error()))
		return
	}

	info, rErr := c.service.GetAccountInfo(r.Context(), accountId)
	if rErr != nil {
		writeError(w, rErr)
		return
	}

	writeResponse(w, http.StatusOK, newAccountResponse(info))
}
