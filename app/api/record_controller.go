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
	"github.com/gorilla/mux"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
)

const (
	recordPath           = "/record/{" + transactionIdPathVar + "}"
	transactionIdPathVar = "transactionId"
)

// recordController serves the persisted transaction records
type recordController struct {
	service interfaces.RecordService
}

func NewRecordController(service interfaces.RecordService) server.Router {
	return &recordController{service: service}
}

// Routes returns the record controller routes
func (c *recordController) Routes() server.Routes {
	return server.Routes{
		{
			Name:        "record",
			Method:      http.MethodGet,
			Pattern:     recordPath,
			HandlerFunc: c.getRecord,
		},
	}
}

func (c *recordController) getRecord(w http.ResponseWriter, r *http.Request) {
	record, err := c.service.GetRecord(r.Context(), mux.Vars(r)[transactionIdPathVar])
	if err != nil {
		writeError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, record)
}
