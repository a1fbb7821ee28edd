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

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashgraph/hedera-settlement/app/config"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T) *config.Config {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	return cfg
}

func TestConfigLogger(t *testing.T) {
	level := log.GetLevel()
	defer log.SetLevel(level)

	configLogger("DEBUG")
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	configLogger("unknown")
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestNewRecordRepositoryInMemory(t *testing.T) {
	recordRepo, err := newRecordRepository(loadConfig(t))
	require.NoError(t, err)

	records, rErr := recordRepo.FindBetween(context.Background(), 0, time.Now().UnixNano())
	assert.Nil(t, rErr)
	assert.Empty(t, records)
}

func TestNewRecordRepositoryDbUnreachable(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Db.Enabled = true
	cfg.Db.Port = 1

	recordRepo, err := newRecordRepository(cfg)
	assert.Error(t, err)
	assert.Nil(t, recordRepo)
}

func TestNewSettlementRouter(t *testing.T) {
	handler, err := newSettlementRouter(loadConfig(t))
	require.NoError(t, err)

	for _, tc := range []struct {
		path   string
		status int
	}{
		{path: "/health/liveness", status: http.StatusOK},
		{path: "/health/readiness", status: http.StatusOK},
		{path: "/metrics", status: http.StatusOK},
		{path: "/account/0.0.2", status: http.StatusOK},
		{path: "/account/0.0.5000", status: http.StatusBadRequest},
		{path: "/record/0.0.2-1650000000-000000001", status: http.StatusNotFound},
		{path: "/token/0.x.1", status: http.StatusBadRequest},
	} {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.status, recorder.Code, tc.path)
	}
}

func TestNewSettlementRouterInvalidLedger(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Ledger.FundingAccount = cfg.Ledger.Genesis.Account

	handler, err := newSettlementRouter(cfg)
	assert.Error(t, err)
	assert.Nil(t, handler)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Port = 0
	cfg.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, cfg, http.NotFoundHandler())
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--config", "/tmp/settlement.yml"}))

	configFile, err := cmd.Flags().GetString(configFlag)
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/settlement.yml", configFile)
}
