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

package middleware

import (
	"net/http"

	"github.com/coinbase/rosetta-sdk-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/weaveworks/common/middleware"
)

const (
	application = "hedera-settlement"
	metricsPath = "/metrics"
)

var (
	sizeBuckets = []float64{256, 1024, 4 * 1024, 16 * 1024, 64 * 1024}

	requestBytesHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hedera_settlement_request_bytes",
		Buckets: sizeBuckets,
		Help:    "Size (in bytes) of settlement requests received.",
	}, []string{"method", "route"})

	requestDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hedera_settlement_request_duration",
		Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5},
		Help:    "Time (in seconds) spent settling and serving HTTP requests.",
	}, []string{"method", "route", "status_code", "ws"})

	requestInflightGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hedera_settlement_request_inflight",
		Help: "Current number of inflight HTTP requests.",
	}, []string{"method", "route"})

	responseBytesHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hedera_settlement_response_bytes",
		Buckets: sizeBuckets,
		Help:    "Size (in bytes) of transaction records and errors sent in response.",
	}, []string{"method", "route"})
)

func init() {
	register := prometheus.WrapRegistererWith(prometheus.Labels{"application": application},
		prometheus.DefaultRegisterer)
	register.MustRegister(requestBytesHistogram, requestDurationHistogram, requestInflightGauge,
		responseBytesHistogram)
}

type metricsController struct{}

// NewMetricsController exposes the prometheus registry on /metrics
func NewMetricsController() server.Router {
	return &metricsController{}
}

func (c *metricsController) Routes() server.Routes {
	return server.Routes{
		{
			Name:        "metrics",
			Method:      http.MethodGet,
			Pattern:     metricsPath,
			HandlerFunc: promhttp.Handler().ServeHTTP,
		},
	}
}

// MetricsMiddleware instruments requests by route. next must be a router able to match routes, e.g. the
// *mux.Router returned by server.NewRouter
func MetricsMiddleware(next http.Handler) http.Handler {
	return middleware.Instrument{
		Duration:         requestDurationHistogram,
		InflightRequests: requestInflightGauge,
		RequestBodySize:  requestBytesHistogram,
		ResponseBodySize: responseBytesHistogram,
		RouteMatcher:     next.(middleware.RouteMatcher),
	}.Wrap(next)
}
