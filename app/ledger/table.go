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

type action int8

const (
	actionInsert action = iota
	actionModify
	actionErase
)

type trackedEntry[V any] struct {
	action  action
	current V
}

// table tracks the modifications made to one map of the ledger state, the base map is only written on commit
type table[K comparable, V any] struct {
	base  map[K]V
	items map[K]*trackedEntry[V]
}

func newTable[K comparable, V any](base map[K]V) *table[K, V] {
	return &table[K, V]{base: base, items: make(map[K]*trackedEntry[V])}
}

func (t *table[K, V]) get(key K) (V, bool) {
	if entry, ok := t.items[key]; ok {
		if entry.action == actionErase {
			var zero V
			return zero, false
		}
		return entry.current, true
	}

	value, ok := t.base[key]
	return value, ok
}

func (t *table[K, V]) put(key K, value V) {
	if entry, ok := t.items[key]; ok {
		if entry.action == actionErase {
			// re-inserting an erased entry becomes a modify
			entry.action = actionModify
		}
		entry.current = value
		return
	}

	act := actionInsert
	if _, ok := t.base[key]; ok {
		act = actionModify
	}
	t.items[key] = &trackedEntry[V]{action: act, current: value}
}

func (t *table[K, V]) erase(key K) {
	if entry, ok := t.items[key]; ok {
		if entry.action == actionInsert {
			delete(t.items, key)
			return
		}
		var zero V
		entry.action = actionErase
		entry.current = zero
		return
	}

	if _, ok := t.base[key]; ok {
		t.items[key] = &trackedEntry[V]{action: actionErase}
	}
}

// forEach visits every live entry until fn returns false, in no particular order
func (t *table[K, V]) forEach(fn func(K, V) bool) {
	for key, value := range t.base {
		if _, ok := t.items[key]; ok {
			continue
		}
		if !fn(key, value) {
			return
		}
	}

	for key, entry := range t.items {
		if entry.action == actionErase {
			continue
		}
		if !fn(key, entry.current) {
			return
		}
	}
}

func (t *table[K, V]) isDirty() bool {
	return len(t.items) != 0
}

func (t *table[K, V]) commit() {
	for key, entry := range t.items {
		if entry.action == actionErase {
			delete(t.base, key)
		} else {
			t.base[key] = entry.current
		}
	}
	t.items = make(map[K]*trackedEntry[V])
}
