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
	"math/big"
	"unicode/utf8"
)

// Kind identifies the concrete variant of a Token.
type Kind int

const (
	KindCharacter Kind = iota
	KindString
	KindDigits8Bit
	KindDigits16Bit
	KindDigits32Bit
	KindDigits64Bit
	KindDigitsNBit
	KindRomanNumeral
	KindNamedNumerical
	KindDelimited
	KindDelimitedNumerical
	KindTokenList
	KindNumericTokenList
)

var kindNames = [...]string{
	KindCharacter:          "Character",
	KindString:             "String",
	KindDigits8Bit:         "Digits8Bit",
	KindDigits16Bit:        "Digits16Bit",
	KindDigits32Bit:        "Digits32Bit",
	KindDigits64Bit:        "Digits64Bit",
	KindDigitsNBit:         "DigitsNBit",
	KindRomanNumeral:       "RomanNumeral",
	KindNamedNumerical:     "NamedNumerical",
	KindDelimited:          "Delimited",
	KindDelimitedNumerical: "DelimitedNumerical",
	KindTokenList:          "TokenList",
	KindNumericTokenList:   "NumericTokenList",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Token is one lexical unit of a version string.
//
// The set of implementations is closed: every Token is one of the types
// declared in this package. All tokens are immutable values and safe for
// concurrent use.
type Token interface {
	// Kind reports the concrete variant.
	Kind() Kind

	// Len returns the number of significant runes in the canonical value.
	// When includeAllSourceChars is true it returns the number of runes in
	// the original source slice, including zero padding and delimiters.
	Len(includeAllSourceChars bool) int

	// CanonicalValue is the normalized text used for display and keys.
	CanonicalValue() string

	// SourceCharacters is the exact slice of the original input.
	SourceCharacters() string

	// Compare orders the receiver against other: -1, 0 or +1.
	Compare(other Token) int

	// Equals reports whether Compare(other) == 0.
	Equals(other Token) bool

	isToken()
}

// Textual is implemented by tokens that carry non-numeric text:
// CharacterToken and StringToken.
type Textual interface {
	Token
	Text() string
}

// Numeric is implemented by tokens that carry a non-negative integer
// magnitude: the digit tokens, RomanNumeral and NamedNumericalToken.
//
// The UintN accessors are fast paths. They return false when the magnitude
// does not fit the requested width.
type Numeric interface {
	Token
	Big() *big.Int
	Uint8() (uint8, bool)
	Uint16() (uint16, bool)
	Uint32() (uint32, bool)
	Uint64() (uint64, bool)
	ZeroPadLength() int
	CompareAbs(other Numeric) int
}

// sequence is implemented by the list tokens.
type sequence interface {
	Token
	Count() int
	At(i int) Token
}

func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}

// sourceOf returns the source characters of t, or "" for nil.
func sourceOf(t Token) string {
	if t == nil {
		return ""
	}
	return t.SourceCharacters()
}

// canonicalOf returns the canonical value of t, or "" for nil.
func canonicalOf(t Token) string {
	if t == nil {
		return ""
	}
	return t.CanonicalValue()
}

// unwrap strips delimiters until a non-delimited value is reached.
func unwrap(t Token) Token {
	for {
		switch d := t.(type) {
		case DelimitedToken:
			t = d.value
		case *DelimitedToken:
			if d == nil {
				return nil
			}
			t = d.value
		case DelimitedNumericalToken:
			t = d.value
		case *DelimitedNumericalToken:
			if d == nil {
				return nil
			}
			t = d.value
		default:
			return t
		}
	}
}
