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

package persistence

import (
	"github.com/hashgraph/hedera-settlement/app/db"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"github.com/hashgraph/hedera-settlement/test"
	"github.com/stretchr/testify/suite"
)

// integrationTest runs the suite against a postgres container, the suite is skipped when docker is unavailable
type integrationTest struct {
	suite.Suite
	test.IntegrationTest
	dbClient interfaces.DbClient
}

func (it *integrationTest) SetupSuite() {
	if err := it.IntegrationTest.Setup(); err != nil {
		it.T().Skipf("Docker is not available: %s", err)
	}

	it.dbClient = db.NewDbClient(it.DbResource.GetGormDb(), 0)
}

func (it *integrationTest) TearDownSuite() {
	it.IntegrationTest.TearDown()
}

func (it *integrationTest) SetupTest() {
	it.IntegrationTest.CleanupDb()
}
