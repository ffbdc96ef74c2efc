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

	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
)

// NamedNumericalToken is a number immediately followed by a name, such as
// "2b" or "3rc". It compares by the number first and by the name when the
// numbers are equal.
type NamedNumericalToken struct {
	number Numeric
	name   Textual
}

// NewNamedNumerical joins number and name. Both are required, and number
// cannot itself be named.
func NewNamedNumerical(number Numeric, name Textual) (NamedNumericalToken, error) {
	if number == nil {
		return NamedNumericalToken{}, cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "named numerical token requires a number")
	}
	if _, nested := number.(NamedNumericalToken); nested {
		return NamedNumericalToken{}, cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "named numerical token cannot wrap another named number")
	}
	if name == nil || name.Len(true) == 0 {
		return NamedNumericalToken{}, cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "named numerical token requires a name")
	}
	if _, ok := number.(RomanNumeral); ok && isRomanRune(firstRune(name.Text())) {
		return NamedNumericalToken{}, cdnerrors.New(cdnerrors.ErrCodeInvalidToken,
			"named numerical token name cannot start with a roman numeral character after a roman number")
	}
	return NamedNumericalToken{number: number, name: name}, nil
}

// Number returns the numeric part.
func (n NamedNumericalToken) Number() Numeric { return n.number }

// Name returns the textual suffix.
func (n NamedNumericalToken) Name() Textual { return n.name }

func (n NamedNumericalToken) Kind() Kind { return KindNamedNumerical }

func (n NamedNumericalToken) Len(includeAllSourceChars bool) int {
	total := 0
	if n.number != nil {
		total += n.number.Len(includeAllSourceChars)
	}
	if n.name != nil {
		total += n.name.Len(includeAllSourceChars)
	}
	return total
}

func (n NamedNumericalToken) CanonicalValue() string {
	return canonicalOf(n.number) + canonicalOf(n.name)
}

func (n NamedNumericalToken) SourceCharacters() string {
	return sourceOf(n.number) + sourceOf(n.name)
}

func (n NamedNumericalToken) num() Numeric {
	if n.number == nil {
		return zero
	}
	return n.number
}

func (n NamedNumericalToken) Big() *big.Int { return n.num().Big() }
func (n NamedNumericalToken) Uint8() (uint8, bool) { return n.num().Uint8() }
func (n NamedNumericalToken) Uint16() (uint16, bool) { return n.num().Uint16() }
func (n NamedNumericalToken) Uint32() (uint32, bool) { return n.num().Uint32() }
func (n NamedNumericalToken) Uint64() (uint64, bool) { return n.num().Uint64() }
func (n NamedNumericalToken) ZeroPadLength() int { return n.num().ZeroPadLength() }
func (n NamedNumericalToken) CompareAbs(o Numeric) int { return n.num().CompareAbs(o) }
func (n NamedNumericalToken) Compare(o Token) int { return CompareTokens(n, o) }
func (n NamedNumericalToken) Equals(o Token) bool { return CompareTokens(n, o) == 0 }
func (NamedNumericalToken) isToken() {}
