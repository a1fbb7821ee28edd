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

package base

import (
	"github.com/prometheus/client_golang/prometheus"
)

var transactionsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "hedera_settlement_transactions_total",
	Help: "Number of transactions handled by type and status.",
}, []string{"type", "status"})

func init() {
	register := prometheus.WrapRegistererWith(prometheus.Labels{"application": "hedera-settlement"},
		prometheus.DefaultRegisterer)
	register.MustRegister(transactionsCounter)
}
