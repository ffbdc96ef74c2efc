// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP plumbing behind cdnverd: routing, the
// middleware chain, structured error responses, probes and metrics.
//
// API handlers live in pkg/api and are registered with WithHandler; each one
// is wrapped in the same middleware chain.
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (github.com/google/uuid)
//   - API version negotiation via the Accept header
//   - Panic recovery
//   - Prometheus RED metrics and a /metrics endpoint
//   - Graceful shutdown on SIGINT/SIGTERM (errgroup + signal.NotifyContext)
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cdnverd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/compare": h.HandleCompare,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig reads these environment variables:
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget (default 30)
//   - LOG_LEVEL: debug, info, warn, error (default info)
//   - RATE_LIMIT, RATE_LIMIT_BURST: token bucket settings (default 100/200)
//
// # System Endpoints
//
//	GET /         server name, version, readiness and routes
//	GET /health   liveness, always 200
//	GET /ready    200 while serving, 503 before Start and after Shutdown
//	GET /metrics  Prometheus exposition
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with Retry-After set to the seconds
//	until the next token.
//
// Metrics:
//
//	cdnver_http_requests_total{method,path,status}
//	cdnver_http_request_duration_seconds{method,path}
//	cdnver_http_requests_in_flight
//	cdnver_rate_limit_rejects_total
//	cdnver_panic_recoveries_total
//	cdnver_versions_parsed_total{variant}
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "query parameter \"v\" is required",
//	  "details": {"parameter": "v"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps pkg/errors codes to HTTP status codes.
package server
