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
	"context"
	"time"

	"github.com/hashgraph/hedera-settlement/app/interfaces"
	"gorm.io/gorm"
)

// client scopes the queries of the record store to the configured statement timeout
type client struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewDbClient creates the DbClient, a zero statementTimeout (in seconds) leaves queries bounded only by the caller's
// context
func NewDbClient(db *gorm.DB, statementTimeout uint) interfaces.DbClient {
	return &client{db: db, timeout: time.Duration(statementTimeout) * time.Second}
}

func (c *client) GetDb() *gorm.DB {
	return c.db
}

func (c *client) GetDbWithContext(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}

	if c.timeout == 0 {
		return c.db.WithContext(ctx), func() {}
	}

	childCtx, cancel := context.WithTimeout(ctx, c.timeout)
	return c.db.WithContext(childCtx), cancel
}
