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

const (
	approveAllowancePath = "/allowance/approve"
	deleteAllowancePath  = "/allowance/delete"
)

// allowanceController serves the approval and deletion of allowances
type allowanceController struct {
	service  interfaces.AllowanceService
	validate *validator.Validate
}

func NewAllowanceController(service interfaces.AllowanceService, validate *validator.Validate) server.Router {
	return &allowanceController{service: service, validate: validate}
}

// Routes returns the allowance controller routes
func (c *allowanceController) Routes() server.Routes {
	return server.Routes{
		{
			Name:        "approveAllowance",
			Method:      http.MethodPost,
			Pattern:     approveAllowancePath,
			HandlerFunc: transactionHandler(c.validate, c.service.ApproveAllowance),
		},
		{
			Name:        "deleteAllowance",
			Method:      http.MethodPost,
			Pattern:     deleteAllowancePath,
			HandlerFunc: transactionHandler(c.validate, c.service.DeleteAllowance),
		},
	}
}
