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

	"github.com/stretchr/testify/assert"
)

func TestCompareStrings(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"numeric not lexical", "1.10", "1.9", 1},
		{"pre-release below release", "1.0.0-alpha", "1.0.0", -1},
		{"prefix and build ignored", "v1.2.3", "1.2.3+build.7", 0},
		{"absent parts are zero", "1.2", "1.2.0", 0},
		{"micro zeros", "1", "1.0.0.0", 0},
		{"micro decides", "1.2.3.4", "1.2.3.10", -1},
		{"uint8 boundary", "255", "256", -1},
		{"uint64 boundary", "18446744073709551615", "18446744073709551616", -1},
		{"big numbers", "100000000000000000000000.1", "99999999999999999999999.9", 1},
		{"zero padding ignored", "1.02", "1.2", 0},
		{"name after numeric", "latest", "1.0", 1},
		{"names fold case", "Latest", "latest", 0},
		{"lettered patch above plain", "1.0.2k", "1.0.2", 1},
		{"lettered patch below next", "1.0.2k", "1.0.3", -1},
		{"named major tie on name", "2b", "2a", 1},
		{"natural pre-release numbers", "1.0.0-rc2", "1.0.0-rc10", -1},
		{"bare pre-release name first", "1.0.0-rc", "1.0.0-rc1", -1},
		{"pre-release case", "1.0.0-Alpha", "1.0.0-alpha", 0},
		{"numeric pre-release first", "1.0.0-1", "1.0.0-alpha", -1},
		{"numeric dash after patch", "1.0.0-1", "1.0.0", -1},
		{"blank first", "", "1", -1},
		{"both blank", "", " ", 0},
		{"date versions", "2016-01-02", "2016-01-10", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareStrings(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareStrings(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := CompareStrings(tt.b, tt.a); got != -tt.want {
				t.Errorf("CompareStrings(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestSemVerPrecedenceChain(t *testing.T) {
	chain := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
		"2.0.0",
		"2.1.0",
		"2.1.1",
	}
	for i := 0; i+1 < len(chain); i++ {
		a, b := MustParse(chain[i]), MustParse(chain[i+1])
		if Compare(a, b) != -1 {
			t.Errorf("expected %s < %s", chain[i], chain[i+1])
		}
		if !b.IsNewer(a) {
			t.Errorf("expected %s newer than %s", chain[i+1], chain[i])
		}
	}
}

func TestCompareTotalOrder(t *testing.T) {
	inputs := []string{
		"1", "v1", "1.0", "1.0.0", "1.0.0-rc.1", "1.0.0-rc1", "1.0.0+b",
		"2b", "2", "2.0.1k", "latest", "LATEST", "stable", "...", "1rc2",
		"1.2.3.4", "0.0.0-0", "18446744073709551616", "2016-01-02",
		"1.0.0-alpha.beta", "1.0.0-1", "1.0.0--", "a1b2",
		"1.0.0-a1", "1.0.0-a!1", "1.0.0-a#", "1.0.0-a", "1.0.0-1a2",
		"jquery-ui-1.12.1", "jquery-3.6.0", "jquery",
	}
	vs := make([]*SoftwareVersion, 0, len(inputs)+1)
	vs = append(vs, nil)
	for _, s := range inputs {
		vs = append(vs, MustParse(s))
	}

	for _, a := range vs {
		if Compare(a, a) != 0 {
			t.Errorf("Compare(%v, %v) != 0", a, a)
		}
		for _, b := range vs {
			ab, ba := Compare(a, b), Compare(b, a)
			if ab != -ba {
				t.Errorf("antisymmetry: Compare(%v, %v) = %d, reverse = %d", a, b, ab, ba)
			}
			if ab < -1 || ab > 1 {
				t.Errorf("Compare(%v, %v) = %d, want -1, 0 or 1", a, b, ab)
			}
		}
	}

	for _, a := range vs {
		for _, b := range vs {
			ab := Compare(a, b)
			if ab > 0 {
				continue
			}
			for _, c := range vs {
				bc, ac := Compare(b, c), Compare(a, c)
				switch {
				case ab == 0 && bc == 0 && ac != 0:
					t.Errorf("transitivity: %v == %v == %v but Compare(a, c) = %d", a, b, c, ac)
				case bc <= 0 && (ab < 0 || bc < 0) && ac >= 0:
					t.Errorf("transitivity: %v < %v <= %v (or <= <) but Compare(a, c) = %d", a, b, c, ac)
				}
			}
		}
	}
}

func TestComparePreReleaseRunsAgainstPlain(t *testing.T) {
	// Ascending; every pair must agree with its position.
	chain := []string{
		"1.0.0-a",
		"1.0.0-a1",
		"1.0.0-a!1",
		"1.0.0-a#",
		"1.0.0-b",
	}
	for i := range chain {
		for j := range chain {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			assert.Equal(t, want, CompareStrings(chain[i], chain[j]), "%s vs %s", chain[i], chain[j])
		}
	}

	shuffled := []string{"1.0.0-a#", "1.0.0-b", "1.0.0-a1", "1.0.0-a", "1.0.0-a!1"}
	SortStrings(shuffled)
	assert.Equal(t, chain, shuffled)
}

func TestCompareDoesNotAllocate(t *testing.T) {
	a, b := MustParse("1.2.3"), MustParse("1.2.4")
	allocs := testing.AllocsPerRun(100, func() {
		_ = Compare(a, b)
	})
	assert.Zero(t, allocs, "Compare(1.2.3, 1.2.4)")

	x := mustDigits(t, "7")
	d8, ok := x.(Digits8Bit)
	assert.True(t, ok)
	var y Numeric = mustDigits(t, "300")
	allocs = testing.AllocsPerRun(100, func() {
		_ = d8.CompareAbs(y)
	})
	assert.Zero(t, allocs, "Digits8Bit.CompareAbs")
}

func TestCompareLibraryNames(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"jquery-ui-1.12.1", "jquery-ui-1.13.0", -1},
		{"jquery-ui-1.12.1", "jquery-ui-1.12.1", 0},
		{"jquery-3.6.0", "jquery-ui-1.12.1", -1},
		{"jquery", "jquery-ui-1.12.1", -1},
		{"jquery-3.6.0", "jquery-3.10.0", -1},
		{"Jquery-UI-1.12.1", "jquery-ui-1.12.1", 0},
	}
	for _, tt := range tests {
		if got := CompareStrings(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareStrings(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := CompareStrings(tt.b, tt.a); got != -tt.want {
			t.Errorf("CompareStrings(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
		}
	}
}

func TestEqualsAndExactEquals(t *testing.T) {
	tests := []struct {
		a, b       string
		precedence bool
		exact      bool
	}{
		{"1.2.3", "1.2.3", true, true},
		{"v1.2.3", "1.2.3", true, false},
		{"1.2.3+build.1", "1.2.3+build.2", true, false},
		{"1.2.3+build.1", "1.2.3+build.1", true, true},
		{"1.02", "1.2", true, false},
		{"1.2", "1.2.0", true, false},
		{"1.2.3-RC.1", "1.2.3-rc.1", true, false},
		{"1-2", "1.2", true, false},
		{"1.2.3", "1.2.4", false, false},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		if got := Equals(a, b); got != tt.precedence {
			t.Errorf("Equals(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.precedence)
		}
		if got := a.ExactEquals(b); got != tt.exact {
			t.Errorf("ExactEquals(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.exact)
		}
	}

	assert.True(t, ExactEquals(nil, nil))
	assert.False(t, ExactEquals(nil, MustParse("1")))
}

func TestVersionMethods(t *testing.T) {
	v := MustParse("v1.2.3")
	other := MustParse("1.2.3+build.7")

	assert.Equal(t, 0, v.Compare(other))
	assert.True(t, v.Equals(other))
	assert.False(t, v.ExactEquals(other))
	assert.False(t, v.IsNewer(other))
	assert.True(t, v.EqualsOrNewer(other))
	assert.True(t, MustParse("1.2.4").IsNewer(v))
	assert.False(t, MustParse("1.2.4-rc.1").IsNewer(MustParse("1.2.4")))
}

// The compare result must not depend on which width class a number landed in.
func TestCompareIndependentOfWidth(t *testing.T) {
	pairs := [][2]string{
		{"1.255", "1.256"},
		{"1.65535", "1.65536"},
		{"1.4294967295", "1.4294967296"},
		{"1.18446744073709551615", "1.18446744073709551616"},
		{"1.0255", "1.256"},
	}
	for _, p := range pairs {
		assert.Equal(t, -1, CompareStrings(p[0], p[1]), "%s < %s", p[0], p[1])
	}
}
