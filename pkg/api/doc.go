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

// Package api provides the HTTP API layer of the cdnverd service.
//
// This package is a thin wrapper around the reusable pkg/server package. It
// configures the server with the version endpoints and leaves lifecycle,
// middleware, health and metrics to pkg/server.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/cdn-mirror/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/parse?v=...         - Parse one or more versions or package URLs
//   - GET /v1/compare?a=...&b=... - Compare two versions
//   - POST /v1/sort               - Sort a list of versions (JSON or YAML body)
//
// System endpoints (no rate limiting):
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// Every application endpoint accepts roman=true to enable roman numeral
// detection for that request.
//
// # Request Body (POST /v1/sort)
//
//	{
//	  "versions": ["3.6.0", "3.10.1", "3.6.0-beta.1"],
//	  "descending": true,
//	  "unique": true,
//	  "latest": true
//	}
//
// The number of versions is bounded by MaxBulkRequests. Blank entries are
// dropped. Send Content-Type: application/yaml for a YAML body.
//
// Example:
//
//	curl -s "http://localhost:8080/v1/compare?a=1.10&b=1.9"
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - RATE_LIMIT, RATE_LIMIT_BURST: request rate limits
//   - CDNVER_ROMAN: enable roman numeral detection for all requests
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/cdn-mirror/pkg/api.serverVersion=1.0.0'"
package api
