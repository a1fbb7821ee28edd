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
	"encoding/json"
	"net/http"

	"github.com/coinbase/rosetta-sdk-go/server"
	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/go-playground/validator/v10"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/errors"
)

const maxRequestBytes = 1 << 20

// NewValidator creates the validator of request bodies
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// decodeRequest reads the json body into the request and validates it
func decodeRequest(
	w http.ResponseWriter,
	r *http.Request,
	validate *validator.Validate,
	request interface{},
) *rTypes.Error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(request); err != nil {
		return errors.AddErrorDetails(errors.ErrInvalidArgument, "cause", err.Error())
	}

	if err := validate.Struct(request); err != nil {
		return errors.AddErrorDetails(errors.ErrInvalidArgument, "cause", err.Error())
	}

	return nil
}

// transactionHandler decodes the request of type T, runs it, and renders the record
func transactionHandler[T any](
	validate *validator.Validate,
	execute func(context.Context, *T) (*types.TransactionRecord, *rTypes.Error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request := new(T)
		if err := decodeRequest(w, r, validate, request); err != nil {
			writeError(w, err)
			return
		}

		record, err := execute(r.Context(), request)
		if err != nil {
			writeError(w, err)
			return
		}

		writeResponse(w, http.StatusOK, record)
	}
}

func httpStatus(err *rTypes.Error) int {
	switch err.Code {
	case errors.ErrNotFound.Code:
		return http.StatusNotFound
	case errors.ErrInternalServerError.Code, errors.ErrDatabaseError.Code:
		return http.StatusInternalServerError
	case errors.ErrInvalidArgument.Code:
		return http.StatusBadRequest
	}

	if errors.ToResponseCode(err) == types.FailInvalid {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

func writeError(w http.ResponseWriter, err *rTypes.Error) {
	writeResponse(w, httpStatus(err), err)
}

func writeResponse(w http.ResponseWriter, status int, body interface{}) {
	server.EncodeJSONResponse(body, status, w)
}
