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

package interfaces

import (
	"context"

	"gorm.io/gorm"
)

// DbClient Interface that wraps the gorm db session
type DbClient interface {
	// GetDb returns the gorm db session
	GetDb() *gorm.DB

	// GetDbWithContext returns the gorm db session bound to a child context with the configured statement timeout,
	// the caller must call the returned CancelFunc once the query is done
	GetDbWithContext(ctx context.Context) (*gorm.DB, context.CancelFunc)
}
