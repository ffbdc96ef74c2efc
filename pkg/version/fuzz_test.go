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
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1")
	f.Add("v1")
	f.Add("1.2")
	f.Add("v1.2.3")
	f.Add("1.2.3-rc.1+build.5")
	f.Add("2b")
	f.Add("1.0.2k")
	f.Add("2016-01-02")
	f.Add("latest")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("-1")
	f.Add("1.-2")
	f.Add("a.b.c")
	f.Add("1.2.3.4.5")
	f.Add("   1.2.3")
	f.Add("1.2.3   ")
	f.Add("18446744073709551616.0")
	f.Add("cafe\u0301-1")
	f.Add("\xff\xfe")
	f.Add("XIV-II")

	f.Fuzz(func(t *testing.T, input string) {
		for _, opts := range [][]ParseOption{nil, {WithRomanNumerals()}} {
			// Parse should never panic
			v := Parse(input, opts...)
			if v == nil {
				continue
			}

			// The source must be reconstructed exactly
			if got := v.SourceCharacters(); got != input {
				t.Errorf("SourceCharacters() = %q, want %q", got, input)
			}

			// Parsing the canonical value must be a fixed point
			c := v.CanonicalValue()
			v2 := Parse(c, opts...)
			if v2 == nil {
				t.Fatalf("re-parsing canonical %q (from %q) returned nil", c, input)
			}
			if got := v2.CanonicalValue(); got != c {
				t.Errorf("canonical not idempotent for %q: %q != %q", input, got, c)
			}

			// Ordering must be reflexive and antisymmetric
			if Compare(v, v) != 0 {
				t.Errorf("Compare(%q, %q) != 0", input, input)
			}
			other := MustParse("1.2.3-rc.1")
			if Compare(v, other) != -Compare(other, v) {
				t.Errorf("Compare not antisymmetric for %q", input)
			}
			if Compare(v, v2) != 0 && Compare(v, v2) != -Compare(v2, v) {
				t.Errorf("Compare not antisymmetric for canonical of %q", input)
			}

			_ = v.Document()
		}
	})
}

// FuzzCompareStrings checks that ordering never panics and stays antisymmetric.
func FuzzCompareStrings(f *testing.F) {
	f.Add("1.0.0", "1.0.0-rc.1")
	f.Add("2b", "2")
	f.Add("latest", "1")
	f.Add("1.0.0-rc2", "1.0.0-rc")

	f.Fuzz(func(t *testing.T, a, b string) {
		ab, ba := CompareStrings(a, b), CompareStrings(b, a)
		if ab != -ba {
			t.Errorf("CompareStrings(%q, %q) = %d, reverse = %d", a, b, ab, ba)
		}
	})
}
