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
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// CompareTokens orders two tokens and returns -1, 0 or +1.
//
// Delimiters are ignored. Nil sorts first. Two lists compare member by
// member, and a list against a single token compares their concatenated
// canonical text without regard to case. Numbers compare by magnitude and
// always sort before text; on equal magnitude a plain number sorts before a
// named one and two named numbers are ordered by name. Text compares by
// case-folded ordinal value.
func CompareTokens(a, b Token) int {
	a, b = unwrap(a), unwrap(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	as, aSeq := a.(sequence)
	bs, bSeq := b.(sequence)
	switch {
	case aSeq && bSeq:
		return compareSequences(as, bs)
	case aSeq:
		return compareFallback(as, b)
	case bSeq:
		return -compareFallback(bs, a)
	}

	an, aNum := a.(Numeric)
	bn, bNum := b.(Numeric)
	switch {
	case aNum && bNum:
		return compareNumeric(an, bn)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return FoldCompare(a.CanonicalValue(), b.CanonicalValue())
}

func compareSequences(a, b sequence) int {
	n, m := a.Count(), b.Count()
	for i := 0; i < n && i < m; i++ {
		if c := CompareTokens(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	switch {
	case n < m:
		return -1
	case n > m:
		return 1
	}
	return 0
}

// compareFallback compares a list with a single token through their text.
// Empty members contribute nothing to the list's text.
func compareFallback(list sequence, other Token) int {
	return FoldCompare(list.CanonicalValue(), other.CanonicalValue())
}

// compareNumeric works on the interfaces it is given so that comparing
// fixed-width numbers never allocates.
func compareNumeric(a, b Numeric) int {
	if c := compareAbs(a, b); c != 0 {
		return c
	}
	an, aNamed := a.(NamedNumericalToken)
	bn, bNamed := b.(NamedNumericalToken)
	switch {
	case aNamed && bNamed:
		return FoldCompare(canonicalOf(an.name), canonicalOf(bn.name))
	case aNamed:
		return 1
	case bNamed:
		return -1
	}
	return 0
}

// FoldCompare compares two strings by ordinal value after case folding.
// ASCII input is folded in place; the first non-ASCII byte switches to full
// Unicode case folding for the remainder of both strings.
func FoldCompare(a, b string) int {
	i := 0
	for ; i < len(a) && i < len(b); i++ {
		x, y := a[i], b[i]
		if x >= utf8.RuneSelf || y >= utf8.RuneSelf {
			return foldCompareSlow(a[i:], b[i:])
		}
		x, y = lowerASCII(x), lowerASCII(y)
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func foldCompareSlow(a, b string) int {
	// A Caser carries state and cannot be shared between goroutines.
	fold := cases.Fold()
	fa := fold.String(a)
	fb := fold.String(b)
	return strings.Compare(fa, fb)
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
