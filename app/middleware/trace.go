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
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	xForwardedForHeader = "X-Forwarded-For"
	xRealIpHeader       = "X-Real-IP"
)

// probes and scrapes are logged at debug so they don't drown out settlement traffic
var internalPaths = map[string]bool{livenessPath: true, metricsPath: true, readinessPath: true}

// tracingResponseWriter records the status code and the last written body chunk
type tracingResponseWriter struct {
	http.ResponseWriter
	data       []byte
	statusCode int
}

func newTracingResponseWriter(w http.ResponseWriter) *tracingResponseWriter {
	return &tracingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (w *tracingResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *tracingResponseWriter) Write(data []byte) (int, error) {
	w.data = data
	return w.ResponseWriter.Write(data)
}

// TracingMiddleware logs every request with the client address, the response status and the elapsed time
func TracingMiddleware(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		start := time.Now()
		path := request.URL.RequestURI()
		writer := newTracingResponseWriter(responseWriter)

		inner.ServeHTTP(writer, request)

		entry := log.WithFields(log.Fields{
			"client":   getClientIpAddress(request),
			"duration": time.Since(start).String(),
		})
		level := log.InfoLevel
		if internalPaths[request.URL.Path] {
			level = log.DebugLevel
		} else if writer.statusCode >= http.StatusInternalServerError {
			level = log.WarnLevel
		}
		entry.Logf(level, "%s %s (%d)", request.Method, path, writer.statusCode)
	})
}

func getClientIpAddress(r *http.Request) string {
	if ipAddress := r.Header.Get(xRealIpHeader); ipAddress != "" {
		return ipAddress
	}

	if ipAddress := r.Header.Get(xForwardedForHeader); ipAddress != "" {
		return ipAddress
	}

	ipAddress, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ipAddress
}
