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

// Package header provides the common document header for cdn-mirror output.
//
// Every document the cdnver CLI prints and every body the cdnverd server
// returns starts with a Header, so consumers can tell a parsed version from
// a comparison or a sorted list without guessing from the shape.
//
// # Header Structure
//
//	type Header struct {
//	    Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
//	    APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
//	    Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
//	}
//
// # Usage
//
// Initialize a header in place:
//
//	var doc struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Order int     `json:"order"`
//	}
//	doc.Init(header.KindVersionComparison, header.APIVersion, "v0.4.0")
//
// Record where the input came from:
//
//	doc.Annotate(header.MetadataSource, "versions.txt")
//
// # Kind Field
//
// The Kind field identifies the document type:
//   - ParsedVersion: the token breakdown of one version string
//   - VersionComparison: the ordering and equality of two versions
//   - VersionList: a sorted (and optionally de-duplicated) set of versions
//
// # Timestamps
//
// Init stamps metadata["timestamp"] in RFC3339 UTC.
package header
