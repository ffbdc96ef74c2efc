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

package report

import (
	"strconv"
	"strings"

	"github.com/NVIDIA/cdn-mirror/pkg/header"
	"github.com/NVIDIA/cdn-mirror/pkg/version"
)

// ParsedEntry is one parsed input.
type ParsedEntry struct {
	// Input is the text as given, which may be a package URL.
	Input string `json:"input" yaml:"input"`

	// Type and Library are set when Input is a package URL.
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Library string `json:"library,omitempty" yaml:"library,omitempty"`

	version.Document `json:",inline" yaml:",inline"`
}

// ParsedVersions is the document emitted for parse requests.
type ParsedVersions struct {
	header.Header `json:",inline" yaml:",inline"`

	Versions []ParsedEntry `json:"versions" yaml:"versions"`
}

// NewParsedVersions builds a ParsedVersions document from references.
// toolVersion is stamped into the header metadata.
func NewParsedVersions(inputs []string, refs []version.Reference, toolVersion string) *ParsedVersions {
	doc := &ParsedVersions{
		Versions: make([]ParsedEntry, 0, len(refs)),
	}
	doc.Init(header.KindParsedVersion, header.APIVersion, toolVersion)

	for i, ref := range refs {
		input := ref.Raw
		if i < len(inputs) {
			input = inputs[i]
		}
		doc.Versions = append(doc.Versions, ParsedEntry{
			Input:    input,
			Type:     ref.Type,
			Library:  ref.Library,
			Document: ref.Version.Document(),
		})
	}
	return doc
}

// TableHeader implements serializer.Tabular.
func (p ParsedVersions) TableHeader() []string {
	return []string{"INPUT", "VARIANT", "PREFIX", "MAJOR", "MINOR", "PATCH", "MICRO", "PRE-RELEASE", "BUILD"}
}

// TableRows implements serializer.Tabular.
func (p ParsedVersions) TableRows() [][]string {
	rows := make([][]string, 0, len(p.Versions))
	for _, e := range p.Versions {
		rows = append(rows, []string{
			e.Input,
			e.Variant,
			cell(e.Prefix),
			e.Major,
			cell(e.Minor),
			cell(e.Patch),
			cell(strings.Join(e.Micro, ".")),
			cell(strings.Join(e.PreRelease, ".")),
			cell(strings.Join(e.Build, ".")),
		})
	}
	return rows
}

// Comparison is the document emitted for compare requests.
type Comparison struct {
	header.Header `json:",inline" yaml:",inline"`

	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`

	// Order is -1, 0 or 1 as A sorts before, equal to, or after B.
	Order int `json:"order" yaml:"order"`

	// Equals reports precedence equality; build metadata and prefix are ignored.
	Equals bool `json:"equals" yaml:"equals"`

	// ExactEquals reports token-for-token equality of the source text.
	ExactEquals bool `json:"exactEquals" yaml:"exactEquals"`

	// Newer reports whether A is strictly newer than B.
	Newer bool `json:"newer" yaml:"newer"`
}

// NewComparison compares a and b.
func NewComparison(a, b version.Reference, toolVersion string) *Comparison {
	doc := &Comparison{
		A:           a.Raw,
		B:           b.Raw,
		Order:       version.Compare(a.Version, b.Version),
		Equals:      version.Equals(a.Version, b.Version),
		ExactEquals: version.ExactEquals(a.Version, b.Version),
		Newer:       a.Version.IsNewer(b.Version),
	}
	doc.Init(header.KindVersionComparison, header.APIVersion, toolVersion)
	return doc
}

// TableHeader implements serializer.Tabular.
func (c Comparison) TableHeader() []string {
	return []string{"A", "B", "ORDER", "EQUALS", "EXACT", "NEWER"}
}

// TableRows implements serializer.Tabular.
func (c Comparison) TableRows() [][]string {
	return [][]string{{
		c.A,
		c.B,
		strconv.Itoa(c.Order),
		strconv.FormatBool(c.Equals),
		strconv.FormatBool(c.ExactEquals),
		strconv.FormatBool(c.Newer),
	}}
}

// VersionList is the document emitted for sort requests.
type VersionList struct {
	header.Header `json:",inline" yaml:",inline"`

	Count    int      `json:"count" yaml:"count"`
	Versions []string `json:"versions" yaml:"versions"`

	// Latest is set when the caller asked for the newest entry.
	Latest string `json:"latest,omitempty" yaml:"latest,omitempty"`
}

// NewVersionList lists vs in their current order using source characters.
func NewVersionList(vs []*version.SoftwareVersion, toolVersion string) *VersionList {
	doc := &VersionList{
		Count:    len(vs),
		Versions: make([]string, 0, len(vs)),
	}
	doc.Init(header.KindVersionList, header.APIVersion, toolVersion)

	for _, v := range vs {
		doc.Versions = append(doc.Versions, v.SourceCharacters())
	}
	return doc
}

// WithLatest records latest, if any, and returns l.
func (l *VersionList) WithLatest(latest *version.SoftwareVersion) *VersionList {
	if latest != nil {
		l.Latest = latest.SourceCharacters()
	}
	return l
}

// TableHeader implements serializer.Tabular.
func (l VersionList) TableHeader() []string {
	return []string{"#", "VERSION"}
}

// TableRows implements serializer.Tabular. The latest entry is marked.
func (l VersionList) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Versions))
	for i, v := range l.Versions {
		if l.Latest != "" && v == l.Latest {
			v += " (latest)"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), v})
	}
	return rows
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
