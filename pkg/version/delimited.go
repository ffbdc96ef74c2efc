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
	"unicode/utf8"

	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
)

// DelimitedToken is a value preceded by an optional delimiter, such as ".3"
// or "-beta". The delimiter is kept for reconstruction only and never takes
// part in ordering.
type DelimitedToken struct {
	delimiter Textual
	value     Token
}

// NewDelimited returns value preceded by delim. A nil delim means the value
// followed its predecessor directly.
//
// It fails with INVALID_DELIMITER when the delimiter's last character is a
// digit, or is a roman numeral character while the value begins with a roman
// numeral. In both cases the boundary between delimiter and value would be
// lost on re-parse.
func NewDelimited(delim Textual, value Token) (DelimitedToken, error) {
	if err := checkDelimited(delim, value); err != nil {
		return DelimitedToken{}, err
	}
	return DelimitedToken{delimiter: delim, value: value}, nil
}

func checkDelimited(delim Textual, value Token) error {
	if value == nil {
		return cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "delimited token requires a value")
	}
	switch value.(type) {
	case DelimitedToken, *DelimitedToken, DelimitedNumericalToken, *DelimitedNumericalToken:
		return cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "delimited token value cannot itself be delimited")
	}
	if delim == nil {
		return nil
	}
	last := lastRune(delim.Text())
	if isDigitRune(last) {
		return cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidDelimiter,
			fmt.Sprintf("delimiter %q ends with a digit", delim.Text()), map[string]any{"value": value.SourceCharacters()})
	}
	if isRomanRune(last) && leadsWithRoman(value) {
		return cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidDelimiter,
			fmt.Sprintf("delimiter %q ends with a roman numeral character", delim.Text()), map[string]any{"value": value.SourceCharacters()})
	}
	return nil
}

// Delimiter returns the delimiter or nil.
func (d DelimitedToken) Delimiter() Textual { return d.delimiter }

// Value returns the delimited value.
func (d DelimitedToken) Value() Token { return d.value }

func (d DelimitedToken) Kind() Kind { return KindDelimited }

func (d DelimitedToken) Len(includeAllSourceChars bool) int {
	return delimitedLen(d.delimiter, d.value, includeAllSourceChars)
}

func (d DelimitedToken) CanonicalValue() string {
	return canonicalOf(d.delimiter) + canonicalOf(d.value)
}

func (d DelimitedToken) SourceCharacters() string {
	return sourceOf(d.delimiter) + sourceOf(d.value)
}

func (d DelimitedToken) Compare(o Token) int { return CompareTokens(d, o) }
func (d DelimitedToken) Equals(o Token) bool { return CompareTokens(d, o) == 0 }
func (DelimitedToken) isToken() {}

// DelimitedNumericalToken is a DelimitedToken whose value is numeric. It is
// used for the Minor, Patch and Micro positions of a version.
type DelimitedNumericalToken struct {
	delimiter Textual
	value     Numeric
}

// NewDelimitedNumerical is NewDelimited for a numeric value. A value that is
// not Numeric fails with INVALID_TOKEN.
func NewDelimitedNumerical(delim Textual, value Token) (DelimitedNumericalToken, error) {
	if value == nil {
		return DelimitedNumericalToken{}, cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "delimited token requires a value")
	}
	n, ok := value.(Numeric)
	if !ok {
		return DelimitedNumericalToken{}, cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidToken,
			"delimited numerical token requires a numeric value",
			map[string]any{"kind": value.Kind().String(), "value": value.SourceCharacters()})
	}
	if err := checkDelimited(delim, n); err != nil {
		return DelimitedNumericalToken{}, err
	}
	return DelimitedNumericalToken{delimiter: delim, value: n}, nil
}

// Delimiter returns the delimiter or nil.
func (d DelimitedNumericalToken) Delimiter() Textual { return d.delimiter }

// Value returns the numeric value.
func (d DelimitedNumericalToken) Value() Numeric { return d.value }

func (d DelimitedNumericalToken) Kind() Kind { return KindDelimitedNumerical }

func (d DelimitedNumericalToken) Len(includeAllSourceChars bool) int {
	return delimitedLen(d.delimiter, d.value, includeAllSourceChars)
}

func (d DelimitedNumericalToken) CanonicalValue() string {
	return canonicalOf(d.delimiter) + canonicalOf(d.value)
}

func (d DelimitedNumericalToken) SourceCharacters() string {
	return sourceOf(d.delimiter) + sourceOf(d.value)
}

func (d DelimitedNumericalToken) Compare(o Token) int { return CompareTokens(d, o) }
func (d DelimitedNumericalToken) Equals(o Token) bool { return CompareTokens(d, o) == 0 }
func (DelimitedNumericalToken) isToken() {}

// Delimited widens d to a DelimitedToken.
func (d DelimitedNumericalToken) Delimited() DelimitedToken {
	return DelimitedToken{delimiter: d.delimiter, value: d.value}
}

func delimitedLen(delim Textual, value Token, all bool) int {
	n := 0
	if value != nil {
		n = value.Len(all)
	}
	if all && delim != nil {
		n += delim.Len(true)
	}
	return n
}

// leadsWithRoman reports whether the first source character of t belongs to
// a roman numeral.
func leadsWithRoman(t Token) bool {
	switch v := t.(type) {
	case RomanNumeral:
		return true
	case NamedNumericalToken:
		_, ok := v.number.(RomanNumeral)
		return ok
	case TokenList:
		return len(v.items) > 0 && v.items[0].delimiter == nil && leadsWithRoman(v.items[0].value)
	case NumericTokenList:
		return len(v.items) > 0 && v.items[0].delimiter == nil && leadsWithRoman(v.items[0].value)
	}
	return false
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
