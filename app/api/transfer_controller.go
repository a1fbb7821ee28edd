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
	"github.com/hashgraph/hedera-settlement/app/interfaces"
)

const transferPath = "/transfer"

// transferController serves crypto transfers
type transferController struct {
	service  interfaces.SettlementService
	validate *validator.Validate
}

// NewTransferController creates the controller of the crypto transfer route
func NewTransferController(service interfaces.SettlementService, validate *validator.Validate) server.Router {
	return &transferController{service: service, validate: validate}
}

// Routes returns the transfer controller routes
func (c *transferController) Routes() server.Routes {
	return server.Routes{
		{
			Name:        "transfer",
			Method:      http.MethodPost,
			Pattern:     transferPath,
			HandlerFunc: transactionHandler(c.validate, c.service.Transfer),
		},
	}
}
