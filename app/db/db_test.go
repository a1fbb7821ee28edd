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

package db_test

import (
	"testing"

	appDb "github.com/hashgraph/hedera-settlement/app/db"
	"github.com/hashgraph/hedera-settlement/test/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// run the suite
func TestDbSuite(t *testing.T) {
	suite.Run(t, new(dbSuite))
}

type dbSuite struct {
	suite.Suite
	dbResource db.DbResource
}

func (suite *dbSuite) SetupSuite() {
	dbResource, err := db.SetupDb(false)
	if err != nil {
		suite.T().Skipf("Docker is not available: %s", err)
	}

	suite.dbResource = dbResource
}

func (suite *dbSuite) TearDownSuite() {
	db.TearDownDb(suite.dbResource)
}

func (suite *dbSuite) TestConnectToDb() {
	dbClient, err := appDb.ConnectToDb(suite.dbResource.GetDbConfig())
	require.NoError(suite.T(), err)
	assert.NoError(suite.T(), dbClient.GetDb().Exec("select 1").Error)
}

func (suite *dbSuite) TestConnectToDbInvalidPassword() {
	dbConfig := suite.dbResource.GetDbConfig()
	dbConfig.Password = "bad_password_dab"
	dbClient, err := appDb.ConnectToDb(dbConfig)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), dbClient)
}

func (suite *dbSuite) TestMigrate() {
	gormDb := suite.dbResource.GetGormDb()
	require.NoError(suite.T(), appDb.Migrate(gormDb))

	// idempotent
	require.NoError(suite.T(), appDb.Migrate(gormDb))

	var count int64
	err := gormDb.Raw("select count(*) from transaction_record").Scan(&count).Error
	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), count)
}
