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
	"cmp"
	"math"
	"math/big"
)

// Unsigned is the set of fixed-width magnitudes a Numeric can be compared
// against without promotion to big.Int.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// CompareMagnitude compares the magnitude of n with v.
// It returns -1, 0 or +1 and never allocates.
func CompareMagnitude[T Unsigned](n Numeric, v T) int {
	if n == nil {
		return -1
	}
	x, ok := n.Uint64()
	if !ok {
		// Anything that does not fit 64 bits exceeds every T.
		return 1
	}
	return cmp.Compare(x, uint64(v))
}

// CompareMagnitudeBig compares the magnitude of n with v. A negative v is
// always less than any magnitude.
func CompareMagnitudeBig(n Numeric, v *big.Int) int {
	switch {
	case n == nil && v == nil:
		return 0
	case n == nil:
		return -1
	case v == nil:
		return 1
	case v.Sign() < 0:
		return 1
	}
	if x, ok := n.Uint64(); ok && v.IsUint64() {
		return cmp.Compare(x, v.Uint64())
	}
	return n.Big().Cmp(v)
}

// compareAbs compares two magnitudes: uint64 when both sides fit, big.Int
// otherwise.
func compareAbs(a, b Numeric) int {
	if b == nil {
		return 1
	}
	x, xok := a.Uint64()
	y, yok := b.Uint64()
	switch {
	case xok && yok:
		return cmp.Compare(x, y)
	case xok:
		return -1
	case yok:
		return 1
	}
	return a.Big().Cmp(b.Big())
}

// compareUint64 compares a 64-bit magnitude with o without boxing either
// side.
func compareUint64(x uint64, o Numeric) int {
	if o == nil {
		return 1
	}
	y, ok := o.Uint64()
	if !ok {
		return -1
	}
	return cmp.Compare(x, y)
}

func fitsUint64(n Numeric) bool {
	_, ok := n.Uint64()
	return ok
}

// narrowN implement the UintN fast paths for a uint64 magnitude.
func narrow8(v uint64) (uint8, bool) { return uint8(v), v <= math.MaxUint8 }
func narrow16(v uint64) (uint16, bool) { return uint16(v), v <= math.MaxUint16 }
func narrow32(v uint64) (uint32, bool) { return uint32(v), v <= math.MaxUint32 }

// zero is the implicit value of an absent Minor, Patch or Micro slot.
var zero Numeric = Digits8Bit{}

// isNumeric reports whether t, after unwrapping delimiters, is Numeric.
func isNumeric(t Token) bool {
	_, ok := unwrap(t).(Numeric)
	return ok
}
