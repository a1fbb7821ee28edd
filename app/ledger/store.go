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

package ledger

import (
	"context"
	"sync"

	rTypes "github.com/coinbase/rosetta-sdk-go/types"
	"github.com/hashgraph/hedera-settlement/app/domain/types"
	"github.com/hashgraph/hedera-settlement/app/persistence/domain"
	log "github.com/sirupsen/logrus"
)

type state struct {
	accounts        map[domain.EntityId]types.Account
	aliases         map[string]domain.EntityId
	allowances      map[types.AllowanceKey]types.Allowance
	lastConsensusNs int64
	nextEntityNum   int64
	nfts            map[types.NftId]types.Nft
	relationships   map[types.TokenRelationshipKey]types.TokenRelationship
	tokens          map[domain.EntityId]types.Token
}

// Store is the in-memory ledger state. Updates are serialized by a single writer lock, readers never observe a
// partially applied update. Stored values are treated as immutable, callers replace them instead of mutating the
// slices they hold.
type Store struct {
	mu    sync.RWMutex
	realm int64
	shard int64
	state state
}

func NewStore(shard, realm, firstEntityNum int64) *Store {
	return &Store{
		realm: realm,
		shard: shard,
		state: state{
			accounts:      make(map[domain.EntityId]types.Account),
			aliases:       make(map[string]domain.EntityId),
			allowances:    make(map[types.AllowanceKey]types.Allowance),
			nextEntityNum: firstEntityNum,
			nfts:          make(map[types.NftId]types.Nft),
			relationships: make(map[types.TokenRelationshipKey]types.TokenRelationship),
			tokens:        make(map[domain.EntityId]types.Token),
		},
	}
}

// Update runs fn against a fresh view under the writer lock and commits the view only if fn succeeds. A failed fn
// leaves the ledger unchanged.
func (s *Store) Update(fn func(view *View) *rTypes.Error) *rTypes.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := newView(&s.state, s.realm, s.shard)
	if err := fn(view); err != nil {
		log.Debugf("Discarded ledger view: %s", err.Message)
		return err
	}

	if view.isDirty() {
		log.Debugf("Committing ledger view at consensus timestamp %d", view.consensusNs)
	}
	view.commit(&s.state)

	return nil
}

// Read runs fn against a view under the reader lock, anything fn writes to the view is discarded
func (s *Store) Read(fn func(view *View)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(newView(&s.state, s.realm, s.shard))
}

// Ping waits for the reader lock, it fails if ctx is done first
func (s *Store) Ping(ctx context.Context) error {
	acquired := make(chan struct{})
	go func() {
		s.mu.RLock()
		s.mu.RUnlock()
		close(acquired)
	}()

	select {
	case <-acquired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot copies the ledger state
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Accounts:      copyMap(s.state.accounts),
		Aliases:       copyMap(s.state.aliases),
		Allowances:    copyMap(s.state.allowances),
		NextEntityNum: s.state.nextEntityNum,
		Nfts:          copyMap(s.state.nfts),
		Relationships: copyMap(s.state.relationships),
		Tokens:        copyMap(s.state.tokens),
	}
}

// Snapshot is a point in time copy of the ledger state
type Snapshot struct {
	Accounts      map[domain.EntityId]types.Account
	Aliases       map[string]domain.EntityId
	Allowances    map[types.AllowanceKey]types.Allowance
	NextEntityNum int64
	Nfts          map[types.NftId]types.Nft
	Relationships map[types.TokenRelationshipKey]types.TokenRelationship
	Tokens        map[domain.EntityId]types.Token
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
