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
	"math/big"
	"strings"

	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
)

// RomanNumeral is a run of roman numeral characters (IVXLCDM, either case).
type RomanNumeral struct {
	text  string
	value uint64
}

// NewRoman returns a roman numeral token for s. The value is computed with
// the subtractive rule, so non-canonical spellings such as "IIII" are
// accepted; see IsCanonical.
func NewRoman(s string) (RomanNumeral, error) {
	if s == "" {
		return RomanNumeral{}, cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "roman numeral cannot be empty")
	}
	for i, r := range s {
		if romanValue(r) == 0 {
			return RomanNumeral{}, cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidToken,
				fmt.Sprintf("invalid roman numeral character %q", r), map[string]any{"text": s, "offset": i})
		}
	}
	return RomanNumeral{text: s, value: romanSum(s)}, nil
}

// romanSum evaluates a string of valid roman characters.
func romanSum(s string) uint64 {
	var total int64
	for i := 0; i < len(s); i++ {
		v := int64(romanValue(rune(s[i])))
		if i+1 < len(s) && v < int64(romanValue(rune(s[i+1]))) {
			total -= v
			continue
		}
		total += v
	}
	if total < 0 {
		return 0
	}
	return uint64(total)
}

// parseRoman accepts only upper-case numerals in canonical form.
func parseRoman(s string) (RomanNumeral, bool) {
	if s == "" {
		return RomanNumeral{}, false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune("IVXLCDM", rune(s[i])) {
			return RomanNumeral{}, false
		}
	}
	r := RomanNumeral{text: s, value: romanSum(s)}
	if !r.IsCanonical() {
		return RomanNumeral{}, false
	}
	return r, true
}

// Value returns the numeric value.
func (r RomanNumeral) Value() uint64 { return r.value }

// IsCanonical reports whether the numeral is written in standard form.
func (r RomanNumeral) IsCanonical() bool {
	return r.value > 0 && formatRoman(r.value) == r.CanonicalValue()
}

// Kind returns KindRomanNumeral.
func (r RomanNumeral) Kind() Kind { return KindRomanNumeral }

// Len returns the number of numeral characters.
func (r RomanNumeral) Len(includeAllSourceChars bool) int {
	// Roman characters are ASCII.
	return len(r.text)
}

// CanonicalValue returns the numeral in upper case. The remaining methods
// expose the value through the Numeric capability.
func (r RomanNumeral) CanonicalValue() string { return strings.ToUpper(r.text) }
func (r RomanNumeral) SourceCharacters() string { return r.text }
func (r RomanNumeral) Big() *big.Int { return new(big.Int).SetUint64(r.value) }
func (r RomanNumeral) Uint8() (uint8, bool) { return narrow8(r.value) }
func (r RomanNumeral) Uint16() (uint16, bool) { return narrow16(r.value) }
func (r RomanNumeral) Uint32() (uint32, bool) { return narrow32(r.value) }
func (r RomanNumeral) Uint64() (uint64, bool) { return r.value, true }
func (r RomanNumeral) ZeroPadLength() int { return 0 }
func (r RomanNumeral) CompareAbs(o Numeric) int { return compareUint64(r.value, o) }
func (r RomanNumeral) Compare(o Token) int { return CompareTokens(r, o) }
func (r RomanNumeral) Equals(o Token) bool { return CompareTokens(r, o) == 0 }
func (RomanNumeral) isToken() {}

func romanValue(r rune) uint64 {
	switch r {
	case 'I', 'i':
		return 1
	case 'V', 'v':
		return 5
	case 'X', 'x':
		return 10
	case 'L', 'l':
		return 50
	case 'C', 'c':
		return 100
	case 'D', 'd':
		return 500
	case 'M', 'm':
		return 1000
	}
	return 0
}

func isRomanRune(r rune) bool { return romanValue(r) != 0 }

var romanTable = []struct {
	value  uint64
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func formatRoman(v uint64) string {
	var b strings.Builder
	for _, e := range romanTable {
		for v >= e.value {
			b.WriteString(e.symbol)
			v -= e.value
		}
	}
	return b.String()
}
