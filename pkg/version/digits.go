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
	"math"
	"math/big"
	"strconv"
	"strings"

	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
)

// fixed is the shared state of the fixed-width digit tokens.
type fixed[T Unsigned] struct {
	value T
	pad   int
}

// Value returns the magnitude.
func (f fixed[T]) Value() T { return f.value }

// ZeroPadLength is the number of leading zeros in the source.
func (f fixed[T]) ZeroPadLength() int { return f.pad }

// Big returns the magnitude as a new big.Int.
func (f fixed[T]) Big() *big.Int { return new(big.Int).SetUint64(uint64(f.value)) }

// Uint8 returns the magnitude and whether it fits in 8 bits.
func (f fixed[T]) Uint8() (uint8, bool) { return narrow8(uint64(f.value)) }

func (f fixed[T]) Uint16() (uint16, bool) { return narrow16(uint64(f.value)) }

func (f fixed[T]) Uint32() (uint32, bool) { return narrow32(uint64(f.value)) }

// Uint64 returns the magnitude. It always fits.
func (f fixed[T]) Uint64() (uint64, bool) { return uint64(f.value), true }

// Len counts the digits, including zero padding when includeAllSourceChars
// is set.
func (f fixed[T]) Len(includeAllSourceChars bool) int {
	n := len(strconv.FormatUint(uint64(f.value), 10))
	if includeAllSourceChars {
		n += f.pad
	}
	return n
}

// CanonicalValue returns the digits with their zero padding.
func (f fixed[T]) CanonicalValue() string {
	return padded(f.pad, strconv.FormatUint(uint64(f.value), 10))
}

func (f fixed[T]) SourceCharacters() string { return f.CanonicalValue() }

// Digits8Bit is a digit run whose magnitude fits in a uint8.
type Digits8Bit struct{ fixed[uint8] }

// Digits16Bit is a digit run whose magnitude fits in a uint16.
type Digits16Bit struct{ fixed[uint16] }

// Digits32Bit is a digit run whose magnitude fits in a uint32.
type Digits32Bit struct{ fixed[uint32] }

// Digits64Bit is a digit run whose magnitude fits in a uint64.
type Digits64Bit struct{ fixed[uint64] }

// NewDigits8Bit returns a digit token with the given magnitude and number of
// leading zeros.
func NewDigits8Bit(v uint8, zeroPad int) (Digits8Bit, error) {
	if err := checkPad(zeroPad); err != nil {
		return Digits8Bit{}, err
	}
	return Digits8Bit{fixed[uint8]{value: v, pad: zeroPad}}, nil
}

// NewDigits16Bit returns a digit token with the given magnitude and number of
// leading zeros.
func NewDigits16Bit(v uint16, zeroPad int) (Digits16Bit, error) {
	if err := checkPad(zeroPad); err != nil {
		return Digits16Bit{}, err
	}
	return Digits16Bit{fixed[uint16]{value: v, pad: zeroPad}}, nil
}

// NewDigits32Bit returns a digit token with the given magnitude and number of
// leading zeros.
func NewDigits32Bit(v uint32, zeroPad int) (Digits32Bit, error) {
	if err := checkPad(zeroPad); err != nil {
		return Digits32Bit{}, err
	}
	return Digits32Bit{fixed[uint32]{value: v, pad: zeroPad}}, nil
}

// NewDigits64Bit returns a digit token with the given magnitude and number of
// leading zeros.
func NewDigits64Bit(v uint64, zeroPad int) (Digits64Bit, error) {
	if err := checkPad(zeroPad); err != nil {
		return Digits64Bit{}, err
	}
	return Digits64Bit{fixed[uint64]{value: v, pad: zeroPad}}, nil
}

// Kind, CompareAbs, Compare and Equals implement Numeric for each width.
// CompareAbs reads the other operand as uint64 and never allocates.
func (d Digits8Bit) Kind() Kind { return KindDigits8Bit }
func (d Digits8Bit) CompareAbs(o Numeric) int { return compareUint64(uint64(d.value), o) }
func (d Digits8Bit) Compare(o Token) int { return CompareTokens(d, o) }
func (d Digits8Bit) Equals(o Token) bool { return CompareTokens(d, o) == 0 }
func (Digits8Bit) isToken() {}
func (d Digits16Bit) Kind() Kind { return KindDigits16Bit }
func (d Digits16Bit) CompareAbs(o Numeric) int { return compareUint64(uint64(d.value), o) }
func (d Digits16Bit) Compare(o Token) int { return CompareTokens(d, o) }
func (d Digits16Bit) Equals(o Token) bool { return CompareTokens(d, o) == 0 }
func (Digits16Bit) isToken() {}
func (d Digits32Bit) Kind() Kind { return KindDigits32Bit }
func (d Digits32Bit) CompareAbs(o Numeric) int { return compareUint64(uint64(d.value), o) }
func (d Digits32Bit) Compare(o Token) int { return CompareTokens(d, o) }
func (d Digits32Bit) Equals(o Token) bool { return CompareTokens(d, o) == 0 }
func (Digits32Bit) isToken() {}
func (d Digits64Bit) Kind() Kind { return KindDigits64Bit }
func (d Digits64Bit) CompareAbs(o Numeric) int { return compareUint64(uint64(d.value), o) }
func (d Digits64Bit) Compare(o Token) int { return CompareTokens(d, o) }
func (d Digits64Bit) Equals(o Token) bool { return CompareTokens(d, o) == 0 }
func (Digits64Bit) isToken() {}

// DigitsNBit is a digit run of arbitrary size. The magnitude is copied on
// construction and on every read.
type DigitsNBit struct {
	value *big.Int
	pad   int
}

// NewDigitsNBit returns a digit token for v. v must be non-negative.
func NewDigitsNBit(v *big.Int, zeroPad int) (DigitsNBit, error) {
	if v == nil || v.Sign() < 0 {
		return DigitsNBit{}, cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "digit token magnitude must be non-negative")
	}
	if err := checkPad(zeroPad); err != nil {
		return DigitsNBit{}, err
	}
	return DigitsNBit{value: new(big.Int).Set(v), pad: zeroPad}, nil
}

func (d DigitsNBit) magnitude() *big.Int {
	if d.value == nil {
		return new(big.Int)
	}
	return d.value
}

// Big returns a copy of the magnitude.
func (d DigitsNBit) Big() *big.Int { return new(big.Int).Set(d.magnitude()) }

// Uint8 returns the magnitude and whether it fits in 8 bits.
func (d DigitsNBit) Uint8() (uint8, bool) {
	v, ok := d.Uint64()
	if !ok {
		return 0, false
	}
	return narrow8(v)
}

func (d DigitsNBit) Uint16() (uint16, bool) {
	v, ok := d.Uint64()
	if !ok {
		return 0, false
	}
	return narrow16(v)
}

func (d DigitsNBit) Uint32() (uint32, bool) {
	v, ok := d.Uint64()
	if !ok {
		return 0, false
	}
	return narrow32(v)
}

// Uint64 returns the magnitude and whether it fits in 64 bits.
func (d DigitsNBit) Uint64() (uint64, bool) {
	m := d.magnitude()
	if !m.IsUint64() {
		return 0, false
	}
	return m.Uint64(), true
}

func (d DigitsNBit) ZeroPadLength() int { return d.pad }

// Len counts the digits, including zero padding when includeAllSourceChars
// is set.
func (d DigitsNBit) Len(includeAllSourceChars bool) int {
	n := len(d.magnitude().String())
	if includeAllSourceChars {
		n += d.pad
	}
	return n
}

// CanonicalValue returns the digits with their zero padding.
func (d DigitsNBit) CanonicalValue() string { return padded(d.pad, d.magnitude().String()) }
func (d DigitsNBit) SourceCharacters() string { return d.CanonicalValue() }
func (d DigitsNBit) Kind() Kind { return KindDigitsNBit }

// CompareAbs compares magnitudes. Only operands beyond 64 bits reach big.Int.
func (d DigitsNBit) CompareAbs(o Numeric) int {
	if x, ok := d.Uint64(); ok {
		return compareUint64(x, o)
	}
	if o == nil || fitsUint64(o) {
		return 1
	}
	return d.magnitude().Cmp(o.Big())
}

func (d DigitsNBit) Compare(o Token) int { return CompareTokens(d, o) }
func (d DigitsNBit) Equals(o Token) bool { return CompareTokens(d, o) == 0 }
func (DigitsNBit) isToken() {}

// ParseDigits classifies a run of ASCII digits into the narrowest digit
// token, trying 8, 16, 32 and 64 bits before falling back to DigitsNBit.
// Leading zeros are kept as ZeroPadLength; a run of zeros keeps its last
// zero as the value.
func ParseDigits(s string) (Numeric, error) {
	if s == "" {
		return nil, cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "digit token cannot be empty")
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return nil, cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidToken,
				fmt.Sprintf("not a digit run: %q", s), map[string]any{"offset": i})
		}
	}
	return digits(s), nil
}

// digits classifies a run already known to contain only ASCII digits.
func digits(s string) Numeric {
	pad := 0
	for pad < len(s)-1 && s[pad] == '0' {
		pad++
	}
	sig := s[pad:]

	// 20 digits is the widest uint64.
	if len(sig) <= 20 {
		if v, err := strconv.ParseUint(sig, 10, 64); err == nil {
			switch {
			case v <= math.MaxUint8:
				return Digits8Bit{fixed[uint8]{value: uint8(v), pad: pad}}
			case v <= math.MaxUint16:
				return Digits16Bit{fixed[uint16]{value: uint16(v), pad: pad}}
			case v <= math.MaxUint32:
				return Digits32Bit{fixed[uint32]{value: uint32(v), pad: pad}}
			default:
				return Digits64Bit{fixed[uint64]{value: v, pad: pad}}
			}
		}
	}

	v, _ := new(big.Int).SetString(sig, 10)
	return DigitsNBit{value: v, pad: pad}
}

func checkPad(n int) error {
	if n < 0 {
		return cdnerrors.New(cdnerrors.ErrCodeInvalidToken, fmt.Sprintf("zero padding cannot be negative: %d", n))
	}
	return nil
}

func padded(pad int, s string) string {
	if pad == 0 {
		return s
	}
	return strings.Repeat("0", pad) + s
}
