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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeRemoveHexPrefix(t *testing.T) {
	assert.Equal(t, "ab", SafeRemoveHexPrefix("0xab"))
	assert.Equal(t, "ab", SafeRemoveHexPrefix("ab"))
}

func TestSafeUnquote(t *testing.T) {
	assert.Equal(t, "0.0.2", SafeUnquote(`"0.0.2"`))
	assert.Equal(t, "0.0.2", SafeUnquote("0.0.2"))
	assert.Equal(t, `"`, SafeUnquote(`"`))
}

func TestDecodeHex(t *testing.T) {
	actual, err := DecodeHex("0x0102")
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, actual)
	assert.Equal(t, "0x0102", EncodeHex(actual))

	_, err = DecodeHex("0xzz")
	assert.Error(t, err)
}
