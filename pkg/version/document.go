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

package version

import (
	"encoding/json"
)

// Document is the serializable view of a SoftwareVersion.
type Document struct {
	Source       string          `json:"source" yaml:"source"`
	Canonical    string          `json:"canonical" yaml:"canonical"`
	Variant      string          `json:"variant" yaml:"variant"`
	Prefix       string          `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Major        string          `json:"major" yaml:"major"`
	Minor        string          `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch        string          `json:"patch,omitempty" yaml:"patch,omitempty"`
	Micro        []string        `json:"micro,omitempty" yaml:"micro,omitempty"`
	PreRelease   []string        `json:"preRelease,omitempty" yaml:"preRelease,omitempty"`
	Build        []string        `json:"build,omitempty" yaml:"build,omitempty"`
	IsPreRelease bool            `json:"isPreRelease" yaml:"isPreRelease"`
	Tokens       []TokenDocument `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// TokenDocument describes one token of a version.
type TokenDocument struct {
	Part      string `json:"part" yaml:"part"`
	Kind      string `json:"kind" yaml:"kind"`
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	Value     string `json:"value" yaml:"value"`
}

// Document returns the serializable view of v. Part values are canonical
// and exclude their delimiters.
func (v *SoftwareVersion) Document() Document {
	if v == nil {
		return Document{}
	}

	d := Document{
		Source:       v.SourceCharacters(),
		Canonical:    v.CanonicalValue(),
		Variant:      v.variant.String(),
		Major:        canonicalOf(v.major),
		IsPreRelease: v.IsPreRelease(),
	}
	add := func(part string, t Token) {
		var delim Textual
		switch dt := t.(type) {
		case DelimitedToken:
			delim, t = dt.delimiter, dt.value
		case DelimitedNumericalToken:
			delim, t = dt.delimiter, dt.value
		}
		if t == nil {
			return
		}
		d.Tokens = append(d.Tokens, TokenDocument{
			Part:      part,
			Kind:      t.Kind().String(),
			Delimiter: canonicalOf(delim),
			Value:     t.CanonicalValue(),
		})
	}

	if v.prefix != nil {
		d.Prefix = v.prefix.CanonicalValue()
		add("prefix", v.prefix)
	}
	if v.major != nil {
		add("major", v.major)
	}
	if v.minor != nil {
		d.Minor = canonicalOf(v.minor.value)
		add("minor", *v.minor)
	}
	if v.patch != nil {
		d.Patch = canonicalOf(v.patch.value)
		add("patch", *v.patch)
	}
	for _, t := range v.micro.items {
		d.Micro = append(d.Micro, canonicalOf(t.value))
		add("micro", t)
	}
	for _, t := range v.preRelease.items {
		d.PreRelease = append(d.PreRelease, canonicalOf(t.value))
		add("preRelease", t)
	}
	for _, t := range v.build.items {
		d.Build = append(d.Build, canonicalOf(t.value))
		add("build", t)
	}
	return d
}

// MarshalJSON encodes the version as its Document.
func (v *SoftwareVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Document())
}

// MarshalYAML encodes the version as its Document.
func (v *SoftwareVersion) MarshalYAML() (any, error) {
	return v.Document(), nil
}
