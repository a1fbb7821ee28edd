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

package tools

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeAddInt64(t *testing.T) {
	tests := []struct {
		name     string
		a        int64
		b        int64
		expected int64
		ok       bool
	}{
		{name: "positive", a: 5, b: 7, expected: 12, ok: true},
		{name: "negative", a: -5, b: -7, expected: -12, ok: true},
		{name: "mixed", a: math.MaxInt64, b: math.MinInt64, expected: -1, ok: true},
		{name: "overflow", a: math.MaxInt64, b: 1},
		{name: "underflow", a: math.MinInt64, b: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, ok := SafeAddInt64(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestSafeNegateInt64(t *testing.T) {
	actual, ok := SafeNegateInt64(10)
	assert.True(t, ok)
	assert.Equal(t, int64(-10), actual)

	_, ok = SafeNegateInt64(math.MinInt64)
	assert.False(t, ok)
}
