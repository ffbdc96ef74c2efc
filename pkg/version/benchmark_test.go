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
	"context"
	"fmt"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	tests := []string{
		"1",
		"v2",
		"1.2",
		"v1.2.3",
		"1.2.3-rc.1+build.5",
		"3.0.0-beta.2+sha.3025e55",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_ = Parse(input)
	}
}

func BenchmarkParseMajorOnly(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Parse("1")
	}
}

func BenchmarkCompare(b *testing.B) {
	v1 := MustParse("1.2.3")
	v2 := MustParse("1.2.4")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(v1, v2)
	}
}

func BenchmarkComparePreRelease(b *testing.B) {
	v1 := MustParse("1.0.0-beta.11")
	v2 := MustParse("1.0.0-beta.2")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(v1, v2)
	}
}

func BenchmarkCompareBig(b *testing.B) {
	v1 := MustParse("18446744073709551616.1")
	v2 := MustParse("18446744073709551617.1")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(v1, v2)
	}
}

func BenchmarkParseAll(b *testing.B) {
	inputs := make([]string, 10000)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("%d.%d.%d", i/100, i%100, i%7)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseAll(context.Background(), inputs, 0)
	}
}
