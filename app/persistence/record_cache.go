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
	"context"
	"sort"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	hErrors "github.com/hashgraph/hedera-settlement/app/errors"
	"github.com/hashgraph/hedera-settlement/app/interfaces"
	log "github.com/sirupsen/logrus"
)

type recordCache = cache.Cache[string, *types.TransactionRecord]

func newRecordCache(maxSize int) *recordCache {
	return cache.New(cache.AsLRU[string, *types.TransactionRecord](lru.WithCapacity(maxSize)))
}

// cachedRecordRepository serves lookups by transaction id from a LRU cache in front of another repository
type cachedRecordRepository struct {
	cache    *recordCache
	delegate interfaces.RecordRepository
}

// NewCachedRecordRepository wraps the repository with a LRU cache holding at most maxSize records
func NewCachedRecordRepository(delegate interfaces.RecordRepository, maxSize int) interfaces.RecordRepository {
	return &cachedRecordRepository{cache: newRecordCache(maxSize), delegate: delegate}
}

func (c *cachedRecordRepository) Add(ctx context.Context, record *types.TransactionRecord) *rTypes.Error {
	if err := c.delegate.Add(ctx, record); err != nil {
		return err
	}

	c.cache.Set(record.TransactionId.String(), record)
	return nil
}

func (c *cachedRecordRepository) FindBetween(ctx context.Context, start, end int64) (
	[]*types.TransactionRecord,
	*rTypes.Error,
) {
	return c.delegate.FindBetween(ctx, start, end)
}

func (c *cachedRecordRepository) FindByTransactionId(ctx context.Context, transactionId string) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if record, ok := c.cache.Get(transactionId); ok {
		return record, nil
	}

	record, err := c.delegate.FindByTransactionId(ctx, transactionId)
	if err != nil {
		return nil, err
	}

	c.cache.Set(transactionId, record)
	return record, nil
}

// memoryRecordRepository keeps the latest records in memory when no database is configured, the least recently
// used records are evicted once maxSize is reached
type memoryRecordRepository struct {
	records *recordCache
}

// NewMemoryRecordRepository creates a record repository backed by a LRU cache
func NewMemoryRecordRepository(maxSize int) interfaces.RecordRepository {
	log.Infof("Keeping up to %d transaction records in memory", maxSize)
	return &memoryRecordRepository{records: newRecordCache(maxSize)}
}

func (m *memoryRecordRepository) Add(ctx context.Context, record *types.TransactionRecord) *rTypes.Error {
	if err := ctx.Err(); err != nil {
		return hErrors.AddErrorDetails(hErrors.ErrInternalServerError, "cause", err.Error())
	}

	m.records.Set(record.TransactionId.String(), record)
	return nil
}

func (m *memoryRecordRepository) FindBetween(_ context.Context, start, end int64) (
	[]*types.TransactionRecord,
	*rTypes.Error,
) {
	if start > end {
		return nil, hErrors.AddErrorDetails(hErrors.ErrInvalidArgument, "cause", "start is after end")
	}

	records := make([]*types.TransactionRecord, 0)
	for _, key := range m.records.Keys() {
		record, ok := m.records.Get(key)
		if !ok || record.ConsensusTimestamp < start || record.ConsensusTimestamp > end {
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ConsensusTimestamp < records[j].ConsensusTimestamp
	})
	return records, nil
}

func (m *memoryRecordRepository) FindByTransactionId(_ context.Context, transactionId string) (
	*types.TransactionRecord,
	*rTypes.Error,
) {
	if record, ok := m.records.Get(transactionId); ok {
		return record, nil
	}

	return nil, hErrors.ErrNotFound
}
