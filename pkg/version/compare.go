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

// Compare returns an integer comparing two versions by precedence:
// -1 if a < b, 0 if they are equal, 1 if a > b.
//
// Ordering follows SemVer generalized to arbitrary shapes:
//   - a nil version sorts before any other
//   - numeric majors sort before name majors
//   - Major, Minor, Patch and Micro compare numerically, absent parts are zero
//   - a release sorts after any of its pre-releases
//   - pre-release parts compare pairwise, numbers before text, and a shorter
//     list sorts first when it is a prefix of the longer one
//
// Prefix and Build never affect the result.
func Compare(a, b *SoftwareVersion) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if c := compareMajor(a, b); c != 0 {
		return c
	}
	if c := compareSlot(a.minor, b.minor); c != 0 {
		return c
	}
	if c := compareSlot(a.patch, b.patch); c != 0 {
		return c
	}
	for i := 0; i < a.micro.Count() || i < b.micro.Count(); i++ {
		if c := compareNumeric(microAt(a.micro, i), microAt(b.micro, i)); c != 0 {
			return c
		}
	}
	return comparePreRelease(a.preRelease, b.preRelease)
}

func compareMajor(a, b *SoftwareVersion) int {
	if a.variant != b.variant {
		if a.variant == VariantNumericMajor {
			return -1
		}
		return 1
	}
	if a.variant == VariantNumericMajor {
		an, aok := unwrap(a.major).(Numeric)
		bn, bok := unwrap(b.major).(Numeric)
		if aok && bok {
			return compareNumeric(an, bn)
		}
	}
	return CompareTokens(a.major, b.major)
}

func compareSlot(a, b *DelimitedNumericalToken) int {
	return compareNumeric(slotValue(a), slotValue(b))
}

func slotValue(t *DelimitedNumericalToken) Numeric {
	if t == nil || t.value == nil {
		return zero
	}
	return t.value
}

func microAt(l NumericTokenList, i int) Numeric {
	if i >= l.Count() || l.items[i].value == nil {
		return zero
	}
	return l.items[i].value
}

func comparePreRelease(a, b TokenList) int {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return 0
	case a.IsEmpty():
		return 1
	case b.IsEmpty():
		return -1
	}

	n, m := a.Count(), b.Count()
	for i := 0; i < n && i < m; i++ {
		x, y := a.items[i].value, b.items[i].value
		xn, yn := isNumeric(x), isNumeric(y)
		if xn != yn {
			if xn {
				return -1
			}
			return 1
		}
		if c := compareIdentifiers(x, y); c != 0 {
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

// compareIdentifiers orders two pre-release identifiers. A plain identifier
// facing a list of runs ("a#" against "a1") is ordered as a list of one, so
// every identifier is a run sequence and the order stays transitive. The
// concatenated-text fallback of CompareTokens is not used here.
func compareIdentifiers(x, y Token) int {
	x, y = unwrap(x), unwrap(y)
	if x == nil || y == nil {
		return CompareTokens(x, y)
	}
	xs, xSeq := x.(sequence)
	ys, ySeq := y.(sequence)
	switch {
	case xSeq && !ySeq:
		return compareWithSingle(xs, y)
	case ySeq && !xSeq:
		return -compareWithSingle(ys, x)
	}
	return CompareTokens(x, y)
}

// compareWithSingle compares list with the one-member list holding t.
func compareWithSingle(list sequence, t Token) int {
	if list.Count() == 0 {
		return -1
	}
	if c := CompareTokens(list.At(0), t); c != 0 {
		return c
	}
	if list.Count() > 1 {
		return 1
	}
	return 0
}

// Equals reports whether a and b have the same precedence. "v1.2" equals
// "1.2.0+build.7".
func Equals(a, b *SoftwareVersion) bool {
	return Compare(a, b) == 0
}

// ExactEquals reports whether a and b have the same precedence and were
// written identically, including prefix, build metadata, delimiters, zero
// padding and case.
func ExactEquals(a, b *SoftwareVersion) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	}
	if a.variant != b.variant ||
		sourceOf(a.prefix) != sourceOf(b.prefix) ||
		sourceOf(a.major) != sourceOf(b.major) ||
		!sameSlot(a.minor, b.minor) ||
		!sameSlot(a.patch, b.patch) ||
		!sameSequence(a.micro, b.micro) ||
		!sameSequence(a.preRelease, b.preRelease) ||
		!sameSequence(a.build, b.build) {
		return false
	}
	return Compare(a, b) == 0 && CompareTokens(a.build, b.build) == 0
}

func sameSlot(a, b *DelimitedNumericalToken) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.SourceCharacters() == b.SourceCharacters()
}

func sameSequence(a, b sequence) bool {
	if a.Count() != b.Count() {
		return false
	}
	for i := 0; i < a.Count(); i++ {
		x, y := a.At(i), b.At(i)
		if x.Kind() != y.Kind() || x.SourceCharacters() != y.SourceCharacters() {
			return false
		}
	}
	return true
}

// CompareStrings parses a and b and compares them. Blank input sorts first.
func CompareStrings(a, b string, opts ...ParseOption) int {
	return Compare(Parse(a, opts...), Parse(b, opts...))
}

// Compare compares v with other. See the package-level Compare.
func (v *SoftwareVersion) Compare(other *SoftwareVersion) int {
	return Compare(v, other)
}

// Equals reports whether v and other have the same precedence.
func (v *SoftwareVersion) Equals(other *SoftwareVersion) bool {
	return Compare(v, other) == 0
}

// ExactEquals reports whether v and other were written identically.
func (v *SoftwareVersion) ExactEquals(other *SoftwareVersion) bool {
	return ExactEquals(v, other)
}

// IsNewer returns true if v has strictly higher precedence than other.
func (v *SoftwareVersion) IsNewer(other *SoftwareVersion) bool {
	return Compare(v, other) > 0
}

// EqualsOrNewer returns true if v has the same or higher precedence than other.
func (v *SoftwareVersion) EqualsOrNewer(other *SoftwareVersion) bool {
	return Compare(v, other) >= 0
}
