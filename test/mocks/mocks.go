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

package mocks

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var NilError *rTypes.Error

var namedParamRegexp = regexp.MustCompile(`(@[^ ,)"'\n]+)`)

// toPositionalParams rewrites @name parameters to $1, $2, ... numbered by first appearance, the way gorm renders
// sql.Named arguments for postgres
func toPositionalParams(query string) string {
	positions := make(map[string]string)
	return namedParamRegexp.ReplaceAllStringFunc(query, func(name string) string {
		position, ok := positions[name]
		if !ok {
			position = fmt.Sprintf("$%d", len(positions)+1)
			positions[name] = position
		}
		return position
	})
}

var queryMatcher = sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
	expected := regexp.QuoteMeta(strings.TrimSpace(toPositionalParams(expectedSQL)))
	return sqlmock.QueryMatcherRegexp.Match(expected, actualSQL)
})

// DatabaseMock returns a gorm.DB over sqlmock, expected queries may use the same @name parameters as the repository
// queries
func DatabaseMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(queryMatcher))
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:                 sqlDb,
		DriverName:           "postgres",
		DSN:                  "sqlmock_settlement",
		PreferSimpleProtocol: true,
	})
	gormDb, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	return gormDb, mock
}
