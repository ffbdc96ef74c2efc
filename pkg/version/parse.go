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
)

// Delimiters is the set of characters that separate version segments.
const Delimiters = "./:;+_-"

// ParseOption configures Parse.
type ParseOption func(*parser)

// WithRomanNumerals enables detection of upper-case roman numeral segments
// in canonical form, such as "IV" or "XII". Lower-case runs stay text so that
// names like "mix" or "dev" are never read as numbers.
func WithRomanNumerals() ParseOption {
	return func(p *parser) {
		p.roman = true
	}
}

type parser struct {
	roman bool
}

type segment struct {
	delim string
	value string
}

// Parse tokenizes s into a SoftwareVersion. It returns nil for empty or
// whitespace-only input and never fails otherwise: any text is assigned a
// structure whose SourceCharacters reproduce s exactly.
//
// Supported shapes include "1", "v1.2.3", "1.2.3-rc.1+build.5", "2b",
// "2016-01-02", "1.0.2k", "latest" and "3.0.0-beta.2+sha.3025e55". A
// leading name keeps words joined by a single "-" or "_" up to the first
// segment with a digit, so "jquery-ui-1.12.1" has Major "jquery-ui".
func Parse(s string, opts ...ParseOption) *SoftwareVersion {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var p parser
	for _, opt := range opts {
		opt(&p)
	}
	return p.parse(s)
}

// MustParse is like Parse but panics on empty input.
// Only use this for hardcoded strings or in tests.
func MustParse(s string, opts ...ParseOption) *SoftwareVersion {
	v := Parse(s, opts...)
	if v == nil {
		panic(fmt.Sprintf("MustParse: empty version %q", s))
	}
	return v
}

type parseState int

const (
	stateCore parseState = iota
	statePreRelease
	stateBuild
)

func (p parser) parse(s string) *SoftwareVersion {
	segs, trail := split(s)
	if len(segs) == 0 {
		// Delimiters only.
		return &SoftwareVersion{variant: VariantNameMajor, major: text(s)}
	}

	v := &SoftwareVersion{}
	state := stateCore

	first, tail := segs[0], segs[1:]
	lead, run, rest := splitLead(first.value)
	switch {
	case run != "":
		v.variant = VariantNumericMajor
		v.prefix = delimiter(first.delim + lead)
		switch {
		case rest == "":
			v.major = digits(run)
		case !strings.ContainsFunc(rest, isDigitRune):
			v.major = NamedNumericalToken{number: digits(run), name: text(rest)}
		default:
			v.major = digits(run)
			v.preRelease = v.preRelease.with(DelimitedToken{value: p.value(rest)})
			state = statePreRelease
		}
	default:
		v.prefix = delimiter(first.delim)
		if r, ok := p.romanValue(first.value); ok {
			v.variant = VariantNumericMajor
			v.major = r
		} else {
			v.variant = VariantNameMajor
			name := first.value
			for len(tail) > 0 && p.joinsName(tail[0]) {
				name += tail[0].delim + tail[0].value
				tail = tail[1:]
			}
			v.major = text(name)
		}
	}

	for _, seg := range tail {
		if strings.Contains(seg.delim, "+") {
			state = stateBuild
		}
		val := p.value(seg.value)

		if state == stateCore {
			n, ok := val.(Numeric)
			if ok && !(v.patch != nil && strings.Contains(seg.delim, "-")) {
				p.place(v, DelimitedNumericalToken{delimiter: text(seg.delim), value: n})
				continue
			}
			state = statePreRelease
		}

		t := DelimitedToken{delimiter: text(seg.delim), value: val}
		if state == stateBuild {
			v.build = v.build.with(t)
		} else {
			v.preRelease = v.preRelease.with(t)
		}
	}

	if trail != "" {
		v.build = v.build.with(DelimitedToken{value: text(trail)})
	}
	return v
}

// joinsName reports whether seg continues a multi-word library name such as
// "jquery-ui": text without digits after a single "-" or "_".
func (p parser) joinsName(seg segment) bool {
	if seg.delim != "-" && seg.delim != "_" {
		return false
	}
	if strings.ContainsFunc(seg.value, isDigitRune) {
		return false
	}
	_, roman := p.romanValue(seg.value)
	return !roman
}

// place fills the next free numeric slot.
func (p parser) place(v *SoftwareVersion, t DelimitedNumericalToken) {
	switch {
	case v.minor == nil:
		v.minor = &t
	case v.patch == nil:
		v.patch = &t
	default:
		v.micro = v.micro.with(t)
	}
}

// value classifies a segment value. A pure digit run is a number, digits
// followed by text are a named number, a single run of text is a string or
// character (or a roman numeral when enabled), and any other mix becomes a
// list of its digit and text runs.
func (p parser) value(s string) Token {
	runs := splitRuns(s)
	switch {
	case len(runs) == 1 && isDigit(s[0]):
		return digits(s)
	case len(runs) == 1:
		if r, ok := p.romanValue(s); ok {
			return r
		}
		return text(s)
	case len(runs) == 2 && isDigit(s[0]):
		return NamedNumericalToken{number: digits(runs[0]), name: text(runs[1])}
	}

	items := make([]DelimitedToken, len(runs))
	for i, r := range runs {
		if isDigit(r[0]) {
			items[i] = DelimitedToken{value: digits(r)}
		} else {
			items[i] = DelimitedToken{value: text(r)}
		}
	}
	return TokenList{items: items}
}

func (p parser) romanValue(s string) (RomanNumeral, bool) {
	if !p.roman {
		return RomanNumeral{}, false
	}
	return parseRoman(s)
}

// split cuts s into segments, each a run of delimiters followed by a run of
// other characters. The first segment's delimiter run may be empty. A final
// delimiter run with nothing after it is returned as trail.
func split(s string) (segs []segment, trail string) {
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && isDelimiter(s[i]) {
			i++
		}
		delim := s[start:i]
		vstart := i
		for i < len(s) && !isDelimiter(s[i]) {
			i++
		}
		if vstart == i {
			trail = delim
			break
		}
		segs = append(segs, segment{delim: delim, value: s[vstart:i]})
	}
	return segs, trail
}

// splitLead splits a value into the text before the first digit, the first
// digit run, and the remainder.
func splitLead(s string) (lead, run, rest string) {
	i := 0
	for i < len(s) && !isDigit(s[i]) {
		i++
	}
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	return s[:i], s[i:j], s[j:]
}

// splitRuns splits s into alternating runs of digits and non-digits.
func splitRuns(s string) []string {
	var runs []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[start]) {
			runs = append(runs, s[start:i])
			start = i
		}
	}
	return runs
}

func isDelimiter(b byte) bool {
	return strings.IndexByte(Delimiters, b) >= 0
}
