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

package errors

import (
	"github.com/coinbase/rosetta-sdk-go/types"
	dTypes "github.com/hashgraph/hedera-settlement/app/domain/types"
)

const (
	codeInternalError int32 = 1000 + iota
	codeInvalidArgument
	codeNotFound
	codeDatabaseError
)

var (
	ErrInternalServerError = newError("Internal Server Error", codeInternalError, true)
	ErrInvalidArgument     = newError("Invalid Argument", codeInvalidArgument, false)
	ErrNotFound            = newError("Not Found", codeNotFound, false)
	ErrDatabaseError       = newError("Database error", codeDatabaseError, true)

	// Errors holds every error the service can return, ordered by code
	Errors []*types.Error

	responseCodeErrors map[dTypes.ResponseCode]*types.Error
)

func init() {
	codes := dTypes.ResponseCodes()
	responseCodeErrors = make(map[dTypes.ResponseCode]*types.Error, len(codes))
	for _, code := range codes {
		if code == dTypes.Success {
			continue
		}

		responseCodeErrors[code] = newError(code.String(), int32(code), false)
		Errors = append(Errors, responseCodeErrors[code])
	}

	Errors = append(Errors, ErrInternalServerError, ErrInvalidArgument, ErrNotFound, ErrDatabaseError)
}

// ForCode returns the error of the failure response code, nil for SUCCESS
func ForCode(code dTypes.ResponseCode) *types.Error {
	if code == dTypes.Success {
		return nil
	}

	if err, ok := responseCodeErrors[code]; ok {
		return err
	}

	return ErrInternalServerError
}

// ToResponseCode maps the error back to its response code, errors outside the catalogue of response codes map to
// FAIL_INVALID
func ToResponseCode(err *types.Error) dTypes.ResponseCode {
	if err == nil {
		return dTypes.Success
	}

	code := dTypes.ResponseCode(err.Code)
	if _, ok := responseCodeErrors[code]; ok {
		return code
	}

	return dTypes.FailInvalid
}

func AddErrorDetails(err *types.Error, key, description string) *types.Error {
	clone := *err
	clone.Details = make(map[string]interface{})
	for k, v := range err.Details {
		clone.Details[k] = v
	}
	clone.Details[key] = description
	return &clone
}

func newError(message string, statusCode int32, retriable bool) *types.Error {
	return &types.Error{
		Message:   message,
		Code:      statusCode,
		Retriable: retriable,
	}
}
