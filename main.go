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
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coinbase/rosetta-sdk-go/server"
	"github.com/hashgraph/hedera-settlement/app/api"
	"github.com/hashgraph/hedera-settlement/app/config"
	"github.com/hashgraph/hedera-settlement/app/db"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"github.com/hashgraph/hedera-settlement/app/ledger"
	"github.com/hashgraph/hedera-settlement/app/middleware"
	"github.com/hashgraph/hedera-settlement/app/persistence"
	"github.com/hashgraph/hedera-settlement/app/services/account"
	"github.com/hashgraph/hedera-settlement/app/services/allowance"
	"github.com/hashgraph/hedera-settlement/app/services/base"
	"github.com/hashgraph/hedera-settlement/app/services/record"
	"github.com/hashgraph/hedera-settlement/app/services/settlement"
	"github.com/hashgraph/hedera-settlement/app/services/token"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

const configFlag = "config"

func configLogger(level string) {
	logLevel, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		logLevel = log.InfoLevel
	}

	log.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000-0700",
	})
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
}

// newRecordRepository returns the postgres backed record store fronted by an LRU cache when the database is enabled,
// otherwise an in-memory store bounded by the same cache size
func newRecordRepository(cfg *config.Config) (interfaces.RecordRepository, error) {
	maxSize := cfg.Cache[config.RecordCacheKey].MaxSize
	if !cfg.Db.Enabled {
		log.Infof("Keeping up to %d transaction records in memory", maxSize)
		return persistence.NewMemoryRecordRepository(maxSize), nil
	}

	dbClient, err := db.ConnectToDb(cfg.Db)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(dbClient.GetDb()); err != nil {
		return nil, err
	}

	return persistence.NewCachedRecordRepository(persistence.NewTransactionRecordRepository(dbClient), maxSize), nil
}

// newSettlementRouter wires the ledger and the services behind their controllers
func newSettlementRouter(cfg *config.Config) (http.Handler, error) {
	store, err := ledger.NewStoreFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	recordRepo, err := newRecordRepository(cfg)
	if err != nil {
		return nil, err
	}

	baseService := base.NewBaseService(
		cfg,
		store,
		recordRepo,
		base.NewSystemClock(),
		base.NewFeeCalculator(cfg),
		base.NewSignatureVerifier(),
	)
	validate := api.NewValidator()

	healthController, err := middleware.NewHealthController(cfg, store.Ping)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create health controller")
	}

	router := server.NewRouter(
		api.NewAccountController(account.NewAccountService(baseService), validate),
		api.NewAllowanceController(allowance.NewAllowanceService(baseService), validate),
		api.NewRecordController(record.NewRecordService(recordRepo)),
		api.NewTokenController(token.NewTokenService(baseService), validate),
		api.NewTransferController(settlement.NewSettlementService(baseService), validate),
		healthController,
		middleware.NewMetricsController(),
	)
	metricsMiddleware := middleware.MetricsMiddleware(router)
	tracingMiddleware := middleware.TracingMiddleware(metricsMiddleware)
	return server.CorsMiddleware(tracingMiddleware), nil
}

func serve(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		IdleTimeout:       cfg.Http.IdleTimeout,
		ReadHeaderTimeout: cfg.Http.ReadHeaderTimeout,
		ReadTimeout:       cfg.Http.ReadTimeout,
		WriteTimeout:      cfg.Http.WriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Infof("Listening on port %d", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info("Shutting down server")
		return httpServer.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func run(cmd *cobra.Command, _ []string) error {
	configFile, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfigFromFile(configFile)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	configLogger(cfg.Log.Level)

	handler, err := newSettlementRouter(cfg)
	if err != nil {
		return err
	}

	return serve(cmd.Context(), cfg, handler)
}

func addFlags(flags *pflag.FlagSet) {
	flags.String(configFlag, "", "path of an extra yaml config file merged over application.yml")
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hedera-settlement",
		Short:        "Settles Hedera crypto transfers and token operations against an in-memory ledger",
		SilenceUsage: true,
		RunE:         run,
	}
	addFlags(cmd.Flags())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
