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

// Package version tokenizes and orders software version strings as published
// by CDN libraries.
//
// # Overview
//
// CDN libraries publish versions in many shapes: "1.2.3", "v2", "2b",
// "1.0.2k", "2016-01-02", "3.0.0-beta.2+sha.3025e55", or a bare name such as
// "latest". This package parses any such string into a SoftwareVersion, a
// tree of typed tokens, and defines a single total order over all of them.
//
// Parsing never fails. Every string except an empty one is assigned a
// structure, and the original text can always be reconstructed exactly:
//
//	v := version.Parse("v1.02-rc.1")
//	fmt.Println(v.SourceCharacters()) // Output: v1.02-rc.1
//
// # Structure
//
// A SoftwareVersion is made of:
//
//   - Prefix: non-semantic text before the first number, e.g. "v"
//   - Major: a number, a named number ("2b"), a roman numeral, or a name
//   - Minor, Patch: optional numeric parts
//   - Micro: further numeric parts, e.g. the "4" in "1.2.3.4"
//   - PreRelease: parts that make the version a pre-release, e.g. "-rc.1"
//   - Build: metadata that never affects ordering, e.g. "+sha.5"
//
// # Tokens
//
// Each part is a Token. Digit runs are held in the narrowest of Digits8Bit,
// Digits16Bit, Digits32Bit and Digits64Bit, with DigitsNBit (math/big) for
// anything wider. The width is a storage detail only; 255 and 256 compare as
// numbers regardless of class. Leading zeros are kept for reconstruction and
// ignored for ordering.
//
// # Ordering
//
// Compare follows SemVer precedence generalized to arbitrary shapes:
//
//	version.CompareStrings("1.10", "1.9")             // 1
//	version.CompareStrings("1.0.0-alpha", "1.0.0")    // -1
//	version.CompareStrings("v1.2.3", "1.2.3+build.7") // 0
//
// Equals reports precedence equality, ExactEquals additionally requires the
// same prefix, build metadata and spelling.
//
// # Usage
//
// Parse and compare:
//
//	current := version.Parse("v1.2")
//	required := version.MustParse("1.2.0")
//	if current.EqualsOrNewer(required) {
//	    fmt.Println("Version requirement met")
//	}
//
// Sort and pick the latest release:
//
//	vs, err := version.ParseAll(ctx, inputs, 0)
//	if err != nil {
//	    // Handle error
//	}
//	version.Sort(vs)
//	latest := version.Latest(vs, false)
//
// Build versions programmatically:
//
//	major, _ := version.ParseDigits("1")
//	two, _ := version.ParseDigits("2")
//	dot, _ := version.NewCharacter('.')
//	minor, _ := version.NewDelimitedNumerical(dot, two)
//	v, err := version.NewNumericMajor(major, version.WithMinor(minor))
//
// # Error Handling
//
// Parse does not return errors. The token and version constructors return
// a *errors.StructuredError with one of these codes:
//
//   - INVALID_TOKEN: Token content does not match its kind
//   - INVALID_DELIMITER: A delimiter would merge with the following value
//   - INVALID_MAJOR_TOKEN: Major does not match the version variant
//
// All values in this package are immutable and safe for concurrent use.
package version
