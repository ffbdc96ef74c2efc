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
	"fmt"
	"strings"

	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
)

// Variant distinguishes versions led by a number from versions led by a name.
type Variant int

const (
	// VariantNumericMajor is a version whose Major is numeric, e.g. "1.2.3".
	VariantNumericMajor Variant = iota
	// VariantNameMajor is a version whose Major is a name, e.g. "latest".
	VariantNameMajor
)

// String returns "numeric" or "name".
func (v Variant) String() string {
	if v == VariantNameMajor {
		return "name"
	}
	return "numeric"
}

// SoftwareVersion is a tokenized version string.
//
// Prefix is kept for display but never affects ordering. Minor, Patch and
// each Micro member default to zero when absent. Build is kept for display
// and exact equality only.
//
// A SoftwareVersion is immutable and safe for concurrent use.
type SoftwareVersion struct {
	variant    Variant
	prefix     Textual
	major      Token
	minor      *DelimitedNumericalToken
	patch      *DelimitedNumericalToken
	micro      NumericTokenList
	preRelease TokenList
	build      TokenList
}

// Option configures a SoftwareVersion built with NewNumericMajor or
// NewNameMajor.
type Option func(*SoftwareVersion)

// WithPrefix sets the non-semantic text before Major, e.g. "v".
func WithPrefix(t Textual) Option {
	return func(v *SoftwareVersion) {
		v.prefix = t
	}
}

// WithMinor sets the Minor part.
func WithMinor(t DelimitedNumericalToken) Option {
	return func(v *SoftwareVersion) {
		v.minor = &t
	}
}

// WithPatch sets the Patch part. It requires WithMinor.
func WithPatch(t DelimitedNumericalToken) Option {
	return func(v *SoftwareVersion) {
		v.patch = &t
	}
}

// WithMicro sets the numeric parts after Patch. It requires WithPatch.
func WithMicro(l NumericTokenList) Option {
	return func(v *SoftwareVersion) {
		v.micro = l
	}
}

// WithPreRelease sets the pre-release list.
func WithPreRelease(l TokenList) Option {
	return func(v *SoftwareVersion) {
		v.preRelease = l
	}
}

// WithBuild sets the build metadata list.
func WithBuild(l TokenList) Option {
	return func(v *SoftwareVersion) {
		v.build = l
	}
}

// NewNumericMajor builds a version whose Major is numeric: a digit run, a
// roman numeral or a named number. Any other major fails with
// INVALID_MAJOR_TOKEN.
func NewNumericMajor(major Token, opts ...Option) (*SoftwareVersion, error) {
	if _, ok := major.(Numeric); !ok {
		return nil, invalidMajor(VariantNumericMajor, major)
	}
	return newVersion(VariantNumericMajor, major, opts)
}

// NewNameMajor builds a version whose Major is a name: a character or string
// token, optionally delimited. Any other major fails with INVALID_MAJOR_TOKEN.
func NewNameMajor(major Token, opts ...Option) (*SoftwareVersion, error) {
	switch m := major.(type) {
	case Textual:
	case DelimitedToken:
		if _, ok := m.value.(Textual); !ok {
			return nil, invalidMajor(VariantNameMajor, major)
		}
	default:
		return nil, invalidMajor(VariantNameMajor, major)
	}
	return newVersion(VariantNameMajor, major, opts)
}

func invalidMajor(variant Variant, major Token) error {
	ctx := map[string]any{"variant": variant.String()}
	if major != nil {
		ctx["kind"] = major.Kind().String()
		ctx["value"] = major.SourceCharacters()
	}
	return cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidMajorToken,
		fmt.Sprintf("invalid major token for %s version", variant), ctx)
}

func newVersion(variant Variant, major Token, opts []Option) (*SoftwareVersion, error) {
	v := &SoftwareVersion{variant: variant, major: major}
	for _, opt := range opts {
		opt(v)
	}

	if v.patch != nil && v.minor == nil {
		return nil, cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "patch requires minor")
	}
	if !v.micro.IsEmpty() && v.patch == nil {
		return nil, cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "micro requires patch")
	}
	if err := checkSlot("minor", v.minor, true); err != nil {
		return nil, err
	}
	if err := checkSlot("patch", v.patch, true); err != nil {
		return nil, err
	}
	for _, t := range v.micro.items {
		if err := checkSlot("micro", &t, false); err != nil {
			return nil, err
		}
	}
	if v.prefix != nil && isRomanRune(lastRune(v.prefix.Text())) && leadsWithRoman(major) {
		return nil, cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidDelimiter,
			"prefix ends with a roman numeral character", map[string]any{"prefix": v.prefix.Text()})
	}
	return v, nil
}

// checkSlot requires a numeric slot to be introduced by delimiter runes so
// the canonical value re-parses into the same slots. "+" would start build
// metadata, and "-" after Patch would start a pre-release.
func checkSlot(part string, t *DelimitedNumericalToken, allowDash bool) error {
	if t == nil {
		return nil
	}
	if t.value == nil {
		return cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidToken,
			part+" requires a value", map[string]any{"part": part})
	}
	d := ""
	if t.delimiter != nil {
		d = t.delimiter.Text()
	}
	invalid := d == "" || strings.Contains(d, "+") || (!allowDash && strings.Contains(d, "-"))
	for i := 0; i < len(d) && !invalid; i++ {
		invalid = !isDelimiter(d[i])
	}
	if invalid {
		return cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidDelimiter,
			fmt.Sprintf("%s requires a separating delimiter, got %q", part, d),
			map[string]any{"part": part, "value": t.SourceCharacters()})
	}
	return nil
}

// Accessors are safe on a nil version and report zero values.

// Variant reports whether Major is numeric or a name.
func (v *SoftwareVersion) Variant() Variant {
	if v == nil {
		return VariantNumericMajor
	}
	return v.variant
}

// Prefix returns the text before Major, or nil.
func (v *SoftwareVersion) Prefix() Textual {
	if v == nil {
		return nil
	}
	return v.prefix
}

// Major returns the leading token.
func (v *SoftwareVersion) Major() Token {
	if v == nil {
		return nil
	}
	return v.major
}

// Minor returns the Minor part, or nil when absent.
func (v *SoftwareVersion) Minor() *DelimitedNumericalToken {
	if v == nil {
		return nil
	}
	return v.minor
}

// Patch returns the Patch part, or nil when absent.
func (v *SoftwareVersion) Patch() *DelimitedNumericalToken {
	if v == nil {
		return nil
	}
	return v.patch
}

// Micro returns the numeric parts after Patch.
func (v *SoftwareVersion) Micro() NumericTokenList {
	if v == nil {
		return NumericTokenList{}
	}
	return v.micro
}

// PreRelease returns the pre-release list, empty for a release.
func (v *SoftwareVersion) PreRelease() TokenList {
	if v == nil {
		return TokenList{}
	}
	return v.preRelease
}

// Build returns the build metadata list.
func (v *SoftwareVersion) Build() TokenList {
	if v == nil {
		return TokenList{}
	}
	return v.build
}

// IsPreRelease reports whether the version has pre-release parts.
func (v *SoftwareVersion) IsPreRelease() bool {
	return v != nil && !v.preRelease.IsEmpty()
}

// CanonicalValue returns the normalized form of the version. Parsing the
// canonical value yields the same canonical value.
func (v *SoftwareVersion) CanonicalValue() string {
	return v.render(Token.CanonicalValue)
}

// SourceCharacters reconstructs the exact input the version was parsed from.
func (v *SoftwareVersion) SourceCharacters() string {
	return v.render(Token.SourceCharacters)
}

// String returns the canonical value.
func (v *SoftwareVersion) String() string {
	return v.CanonicalValue()
}

func (v *SoftwareVersion) render(part func(Token) string) string {
	if v == nil {
		return ""
	}
	var b strings.Builder
	for _, t := range v.parts() {
		b.WriteString(part(t))
	}
	return b.String()
}

// parts returns the non-empty components in source order.
func (v *SoftwareVersion) parts() []Token {
	parts := make([]Token, 0, 7)
	if v.prefix != nil {
		parts = append(parts, v.prefix)
	}
	if v.major != nil {
		parts = append(parts, v.major)
	}
	if v.minor != nil {
		parts = append(parts, *v.minor)
	}
	if v.patch != nil {
		parts = append(parts, *v.patch)
	}
	if !v.micro.IsEmpty() {
		parts = append(parts, v.micro)
	}
	if !v.preRelease.IsEmpty() {
		parts = append(parts, v.preRelease)
	}
	if !v.build.IsEmpty() {
		parts = append(parts, v.build)
	}
	return parts
}
