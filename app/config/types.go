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

package config

import (
	"fmt"
	"time"

	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
)

const RecordCacheKey = "record"

type Config struct {
	Accounts        Accounts
	Allowances      Allowances
	AutoCreation    EntityCreation `yaml:"autoCreation"`
	Cache           map[string]Cache
	Db              Db
	Http            Http
	LazyCreation    EntityCreation `yaml:"lazyCreation"`
	Ledger          Ledger
	Log             Log
	Port            uint16
	Realm           int64
	Shard           int64
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	Tokens          Tokens
}

type Accounts struct {
	ReleaseAliasAfterDeletion bool `yaml:"releaseAliasAfterDeletion"`
}

type Allowances struct {
	MaxAccountLimit     int `yaml:"maxAccountLimit"`
	MaxTransactionLimit int `yaml:"maxTransactionLimit"`
}

type Cache struct {
	MaxSize int `yaml:"maxSize"`
}

type Db struct {
	Enabled          bool
	Host             string
	Name             string
	Password         string
	Pool             Pool
	Port             uint16
	StatementTimeout uint `yaml:"statementTimeout"`
	Username         string
}

func (db Db) GetDsn() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s dbname=%s password=%s sslmode=disable",
		db.Host,
		db.Port,
		db.Username,
		db.Name,
		db.Password,
	)
}

// EntityCreation controls the creation of accounts from key aliases or EVM addresses, Fee is charged in tinybars to
// the payer for each account created
type EntityCreation struct {
	Enabled bool
	Fee     int64
}

type Genesis struct {
	Account domain.EntityId
	Balance int64
	Key     string
}

type Http struct {
	IdleTimeout       time.Duration `yaml:"idleTimeout"`
	ReadTimeout       time.Duration `yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `yaml:"writeTimeout"`
}

type Ledger struct {
	FirstEntityNum           int64           `yaml:"firstEntityNum"`
	FundingAccount           domain.EntityId `yaml:"fundingAccount"`
	Genesis                  Genesis
	NftTransfersMaxLen       int `yaml:"nftTransfersMaxLen"`
	TokenTransfersMaxLen     int `yaml:"tokenTransfersMaxLen"`
	TransfersMaxLen          int `yaml:"transfersMaxLen"`
	XferBalanceChangesMaxLen int `yaml:"xferBalanceChangesMaxLen"`
}

type Log struct {
	Level string
}

type Pool struct {
	MaxIdleConnections int `yaml:"maxIdleConnections"`
	MaxLifetime        int `yaml:"maxLifetime"`
	MaxOpenConnections int `yaml:"maxOpenConnections"`
}

type Tokens struct {
	MaxBatchSizeMint     int `yaml:"maxBatchSizeMint"`
	MaxCustomFeeDepth    int `yaml:"maxCustomFeeDepth"`
	MaxCustomFeesAllowed int `yaml:"maxCustomFeesAllowed"`
}
