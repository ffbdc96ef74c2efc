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

package header

import (
	"time"
)

// Kind names a document emitted by cdnver and cdnverd.
type Kind string

const (
	KindParsedVersion     Kind = "ParsedVersion"
	KindVersionComparison Kind = "VersionComparison"
	KindVersionList       Kind = "VersionList"
)

// APIVersion is the schema version stamped on every emitted document.
const APIVersion = "cdn-mirror.nvidia.com/v1alpha1"

// Metadata keys written by Init and Annotate.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataSource    = "source"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the emitted kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindParsedVersion, KindVersionComparison, KindVersionList:
		return true
	}
	return false
}

// Header is inlined at the top of every document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init stamps the header with kind, the schema version, the current UTC time
// and, when set, the version of the tool that produced the document.
func (h *Header) Init(kind Kind, apiVersion string, toolVersion string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if toolVersion != "" {
		h.Metadata[MetadataVersion] = toolVersion
	}
}

// Annotate records where the document's input came from. An empty value is
// ignored.
func (h *Header) Annotate(key, value string) {
	if value == "" {
		return
	}
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata[key] = value
}
