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
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hashgraph/hedera-settlement/app/config"
	appDb "github.com/hashgraph/hedera-settlement/app/db"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/thanhpk/randstr"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	cleanupSql  = "truncate transaction_record"
	dbName      = "hedera_settlement"
	dbUsername  = "settlement_integration"
	poolMaxWait = 2 * time.Minute
)

type DbResource struct {
	db       *sql.DB
	params   dbParams
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

func CreateDbRecords(dbClient interfaces.DbClient, records ...interface{}) {
	for _, record := range records {
		dbClient.GetDb().Create(record)
	}
}

func ExecSql(dbClient interfaces.DbClient, sql string) {
	dbClient.GetDb().Exec(sql)
}

// GetDbConfig returns the db config of the session
func (d DbResource) GetDbConfig() config.Db {
	return d.params.toConfig()
}

// GetDb returns the sql db pool
func (d DbResource) GetDb() *sql.DB {
	return d.db
}

// GetGormDb creates a gorm db session
func (d DbResource) GetGormDb() *gorm.DB {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: d.db}), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		log.Fatalf("Failed to create gorm db session: %s", err)
	}

	return gdb
}

type dbParams struct {
	endpoint string
	name     string
	username string
	password string
}

func (d dbParams) toDsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", d.username, d.password, d.endpoint, d.name)
}

func (d dbParams) toConfig() config.Db {
	hostPort := strings.Split(d.endpoint, ":")
	port, _ := strconv.ParseInt(hostPort[1], 10, 32)
	return config.Db{
		Enabled: true,
		Host:    hostPort[0],
		Name:    d.name,
		Pool: config.Pool{
			MaxIdleConnections: 20,
			MaxLifetime:        30,
			MaxOpenConnections: 100,
		},
		Password: d.password,
		Port:     uint16(port),
		Username: d.username,
	}
}

// CleanupDb removes the data written to the db during tests
func CleanupDb(db *sql.DB) {
	if _, err := db.Exec(cleanupSql); err != nil {
		log.Fatalf("Failed to cleanup db: %s", err)
	}
}

// SetupDb starts a postgres container and optionally creates the schema. An error is returned when docker is not
// reachable so callers can skip the integration tests
func SetupDb(migrate bool) (DbResource, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return DbResource{}, errors.Wrap(err, "could not construct docker pool")
	}

	if err = pool.Client.Ping(); err != nil {
		return DbResource{}, errors.Wrap(err, "could not connect to docker")
	}

	// set max wait, used in pool.Retry to timeout
	pool.MaxWait = poolMaxWait

	log.Info("Create postgres container")
	resource, params, err := createPostgresDb(pool)
	if err != nil {
		return DbResource{}, err
	}

	var db *sql.DB
	if err = pool.Retry(func() error {
		var err error
		db, err = sql.Open("postgres", params.toDsn())
		if err != nil {
			return err
		}

		return db.Ping()
	}); err != nil {
		_ = pool.Purge(resource)
		return DbResource{}, errors.Wrap(err, "could not connect to postgres container")
	}

	dbResource := DbResource{db: db, params: params, pool: pool, resource: resource}
	if migrate {
		log.Info("Create schema")
		if err = appDb.Migrate(dbResource.GetGormDb()); err != nil {
			TearDownDb(dbResource)
			return DbResource{}, err
		}
	}

	return dbResource, nil
}

func TearDownDb(dbResource DbResource) {
	if dbResource.pool == nil {
		return
	}

	log.Info("Remove postgres container")
	if err := dbResource.pool.Purge(dbResource.resource); err != nil {
		log.Errorf("Failed to purge postgresql resource: %s", err)
	}
}

func createPostgresDb(pool *dockertest.Pool) (*dockertest.Resource, dbParams, error) {
	dbPassword := randstr.Hex(12)
	options := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_DB=" + dbName,
			"POSTGRES_USER=" + dbUsername,
			"POSTGRES_PASSWORD=" + dbPassword,
		},
	}
	resource, err := pool.RunWithOptions(options)
	if err != nil {
		return nil, dbParams{}, errors.Wrap(err, "could not start postgres container")
	}

	return resource, dbParams{
		// use IPv4 local address, 'localhost' may resolve to IPv6 local address in github CI
		endpoint: "127.0.0.1:" + resource.GetPort("5432/tcp"),
		name:     dbName,
		username: dbUsername,
		password: dbPassword,
	}, nil
}
