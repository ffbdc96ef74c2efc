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

package defaults

// Batch limits.
const (
	// ParseConcurrency is the default number of goroutines used by
	// version.ParseAll.
	ParseConcurrency = 8

	// ParseBatchSize is the number of inputs handed to each ParseAll worker.
	ParseBatchSize = 256

	// MaxBulkRequests is the maximum number of versions in one sort request.
	MaxBulkRequests = 10000

	// MaxRequestBodyBytes bounds the size of a request body.
	MaxRequestBodyBytes = 4 << 20
)

// Rate limiting defaults for the HTTP server.
const (
	// RateLimit is the sustained number of requests per second.
	RateLimit = 100

	// RateLimitBurst is the maximum burst size.
	RateLimitBurst = 200
)
