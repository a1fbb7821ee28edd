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
	"encoding/hex"
	"strings"
)

const HexPrefix string = "0x"

// SafeRemoveHexPrefix - removes 0x prefix from a string if it has one
func SafeRemoveHexPrefix(string string) string {
	if strings.HasPrefix(string, HexPrefix) {
		return string[2:]
	}
	return string
}

// SafeUnquote - removes the surrounding double quotes of a JSON string value if present
func SafeUnquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// DecodeHex decodes a hex string with or without the 0x prefix
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(SafeRemoveHexPrefix(s))
}

// EncodeHex encodes the bytes as a 0x-prefixed hex string
func EncodeHex(b []byte) string {
	return HexPrefix + hex.EncodeToString(b)
}
