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

package db

import (
	"time"

	"github.com/hashgraph/hedera-settlement/app/config"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	gormlogrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// schema is applied in order at startup, every statement is idempotent
var schema = []string{
	`create table if not exists transaction_record (
      consensus_timestamp bigint primary key,
      child_records       jsonb,
      entity_id           bigint,
      hbar_transfers      jsonb,
      memo                text not null default '',
      nft_transfers       jsonb,
      payer_account_id    bigint not null,
      status              text not null,
      token_transfers     jsonb,
      transaction_id      text not null,
      type                text not null,
      valid_start_ns      bigint not null
    )`,
	`create index if not exists transaction_record__transaction_id
      on transaction_record (transaction_id, consensus_timestamp desc)`,
}

// ConnectToDb establishes connection to the Postgres Database
func ConnectToDb(dbConfig config.Db) (interfaces.DbClient, error) {
	db, err := gorm.Open(postgres.Open(dbConfig.GetDsn()), &gorm.Config{Logger: gormlogrus.New()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	log.Info("Successfully connected to database")

	sqlDb, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql DB")
	}

	sqlDb.SetMaxIdleConns(dbConfig.Pool.MaxIdleConnections)
	sqlDb.SetConnMaxLifetime(time.Duration(dbConfig.Pool.MaxLifetime) * time.Minute)
	sqlDb.SetMaxOpenConns(dbConfig.Pool.MaxOpenConnections)

	return NewDbClient(db, dbConfig.StatementTimeout), nil
}

// Migrate creates the tables and indexes of the transaction record store if absent
func Migrate(db *gorm.DB) error {
	for _, statement := range schema {
		if err := db.Exec(statement).Error; err != nil {
			return errors.Wrap(err, "failed to migrate schema")
		}
	}

	log.Info("Database schema is up to date")
	return nil
}
