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

// Package report defines the documents emitted by the cdnver CLI and the
// cdnverd API server.
//
// Every document embeds a header.Header so that JSON and YAML output carry
// kind, apiVersion and generation metadata:
//
//	kind: VersionComparison
//	apiVersion: cdn-mirror.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-06-01T12:00:00Z"
//	  version: v0.4.0
//	a: 1.2.3
//	b: v1.2.3+build.7
//	order: 0
//	equals: true
//	exactEquals: false
//	newer: false
//
// All documents implement serializer.Tabular, so the table output format
// renders them as columns instead of flattened fields.
package report
