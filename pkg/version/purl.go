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
	"strings"

	"github.com/package-url/packageurl-go"

	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
)

const purlScheme = "pkg:"

// Reference is a version together with the library it belongs to, when
// known.
type Reference struct {
	// Type is the package URL type, such as "npm" or "cdnjs". Empty for a
	// bare version string.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Library is the namespaced library name, such as "@angular/core".
	Library string `json:"library,omitempty" yaml:"library,omitempty"`

	// Raw is the version text as given.
	Raw string `json:"raw" yaml:"raw"`

	// Version is the parsed Raw value.
	Version *SoftwareVersion `json:"version" yaml:"version"`
}

// IsPackageURL reports whether s looks like a package URL.
func IsPackageURL(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), purlScheme)
}

// ParseReference parses either a bare version ("3.6.0") or a package URL
// ("pkg:npm/jquery@3.6.0"). A package URL with bad syntax or without a
// version, and blank input, fail with INVALID_REQUEST.
func ParseReference(s string, opts ...ParseOption) (Reference, error) {
	s = strings.TrimSpace(s)
	if !IsPackageURL(s) {
		v := Parse(s, opts...)
		if v == nil {
			return Reference{}, cdnerrors.New(cdnerrors.ErrCodeInvalidRequest, "version is empty")
		}
		return Reference{Raw: s, Version: v}, nil
	}

	p, err := packageurl.FromString(s)
	if err != nil {
		return Reference{}, cdnerrors.WrapWithContext(cdnerrors.ErrCodeInvalidRequest,
			"invalid package URL", err, map[string]any{"purl": s})
	}
	if strings.TrimSpace(p.Version) == "" {
		return Reference{}, cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidRequest,
			"package URL has no version", map[string]any{"purl": s})
	}

	library := p.Name
	if p.Namespace != "" {
		library = p.Namespace + "/" + p.Name
	}
	return Reference{
		Type:    p.Type,
		Library: library,
		Raw:     p.Version,
		Version: Parse(p.Version, opts...),
	}, nil
}
