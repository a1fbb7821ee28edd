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

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashgraph/hedera-settlement/app/config"
	"github.com/hellofresh/health-go/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func okCheck(context.Context) error {
	return nil
}

func TestLiveness(t *testing.T) {
	healthController, err := NewHealthController(&config.Config{}, okCheck)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "http://localhost"+livenessPath, nil)
	recorder := httptest.NewRecorder()
	tracingResponseWriter := newTracingResponseWriter(recorder)
	tracingResponseWriter.statusCode = http.StatusBadGateway
	healthController.Routes()[0].HandlerFunc.ServeHTTP(tracingResponseWriter, req)

	var check health.Check
	err = json.Unmarshal(tracingResponseWriter.data, &check)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, tracingResponseWriter.statusCode)
	require.Equal(t, "application/json", tracingResponseWriter.Header().Get("Content-Type"))
	require.Equal(t, health.StatusOK, check.Status)
	require.Equal(t, application, check.Component.Name)
}

func TestReadiness(t *testing.T) {
	for _, tc := range []struct {
		name        string
		ledgerCheck func(context.Context) error
		status      health.Status
		httpStatus  int
	}{
		{
			name:        "ledger available",
			ledgerCheck: okCheck,
			status:      health.StatusOK,
			httpStatus:  http.StatusOK,
		},
		{
			name:        "ledger unavailable",
			ledgerCheck: func(context.Context) error { return errors.New("ledger locked") },
			status:      health.StatusUnavailable,
			httpStatus:  http.StatusServiceUnavailable,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			healthController, err := NewHealthController(&config.Config{}, tc.ledgerCheck)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "http://localhost"+readinessPath, nil)
			recorder := httptest.NewRecorder()
			tracingResponseWriter := newTracingResponseWriter(recorder)
			tracingResponseWriter.statusCode = http.StatusBadGateway
			healthController.Routes()[1].HandlerFunc.ServeHTTP(tracingResponseWriter, req)

			var check health.Check
			err = json.Unmarshal(tracingResponseWriter.data, &check)
			require.NoError(t, err)
			require.Equal(t, "application/json", tracingResponseWriter.Header().Get("Content-Type"))
			require.Equal(t, tc.status, check.Status)
			require.Equal(t, tc.httpStatus, tracingResponseWriter.statusCode)
		})
	}
}

func TestReadinessRegistersPostgresqlWhenDbEnabled(t *testing.T) {
	cfg := &config.Config{Db: config.Db{Enabled: true, Host: "127.0.0.1", Port: 1, Name: "settlement",
		Username: "settlement", Password: "password"}}
	healthController, err := NewHealthController(cfg, okCheck)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "http://localhost"+readinessPath, nil)
	recorder := httptest.NewRecorder()
	healthController.Routes()[1].HandlerFunc.ServeHTTP(recorder, req)

	var check health.Check
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &check))
	require.Equal(t, health.StatusUnavailable, check.Status)
	require.Contains(t, check.Failures, "postgresql")
	require.NotContains(t, check.Failures, "ledger")
}
