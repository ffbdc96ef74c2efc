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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
)

func mustDigits(t *testing.T, s string) Numeric {
	t.Helper()
	n, err := ParseDigits(s)
	require.NoError(t, err)
	return n
}

func mustDelimited(t *testing.T, delim rune, s string) DelimitedNumericalToken {
	t.Helper()
	c, err := NewCharacter(delim)
	require.NoError(t, err)
	d, err := NewDelimitedNumerical(c, mustDigits(t, s))
	require.NoError(t, err)
	return d
}

func TestNewNumericMajor(t *testing.T) {
	v, err := NewNumericMajor(mustDigits(t, "1"),
		WithMinor(mustDelimited(t, '.', "2")),
		WithPatch(mustDelimited(t, '.', "3")),
		WithMicro(NewNumericTokenList(mustDelimited(t, '.', "4"))),
	)
	require.NoError(t, err)
	assert.Equal(t, VariantNumericMajor, v.Variant())
	assert.Equal(t, "1.2.3.4", v.CanonicalValue())
	assert.True(t, v.Equals(MustParse("1.2.3.4")))
	assert.True(t, v.ExactEquals(MustParse("1.2.3.4")))
}

func TestNewVersionWithPrefixAndLists(t *testing.T) {
	prefix, err := NewText("v")
	require.NoError(t, err)
	dash, _ := NewCharacter('-')
	plus, _ := NewCharacter('+')
	rc, _ := NewString("rc")
	sha, _ := NewString("sha")
	pre, err := NewDelimited(dash, rc)
	require.NoError(t, err)
	build, err := NewDelimited(plus, sha)
	require.NoError(t, err)

	v, err := NewNumericMajor(mustDigits(t, "2"),
		WithPrefix(prefix),
		WithMinor(mustDelimited(t, '.', "0")),
		WithPreRelease(NewTokenList(pre)),
		WithBuild(NewTokenList(build)),
	)
	require.NoError(t, err)
	assert.Equal(t, "v2.0-rc+sha", v.SourceCharacters())
	assert.True(t, v.IsPreRelease())
	assert.True(t, v.ExactEquals(MustParse("v2.0-rc+sha")))
}

func TestNewVersionErrors(t *testing.T) {
	name, _ := NewString("latest")
	one := mustDigits(t, "1")

	_, err := NewNumericMajor(name)
	assert.True(t, cdnerrors.IsCode(err, cdnerrors.ErrCodeInvalidMajorToken))

	_, err = NewNumericMajor(nil)
	assert.True(t, cdnerrors.IsCode(err, cdnerrors.ErrCodeInvalidMajorToken))

	_, err = NewNameMajor(one)
	assert.True(t, cdnerrors.IsCode(err, cdnerrors.ErrCodeInvalidMajorToken))

	_, err = NewNumericMajor(one, WithPatch(mustDelimited(t, '.', "3")))
	assert.True(t, cdnerrors.IsCode(err, cdnerrors.ErrCodeInvalidToken))

	_, err = NewNumericMajor(one,
		WithMinor(mustDelimited(t, '.', "2")),
		WithMicro(NewNumericTokenList(mustDelimited(t, '.', "4"))))
	assert.True(t, cdnerrors.IsCode(err, cdnerrors.ErrCodeInvalidToken))

	_, err = NewNumericMajor(one, WithMinor(DelimitedNumericalToken{}))
	assert.True(t, cdnerrors.IsCode(err, cdnerrors.ErrCodeInvalidToken))

	iv, _ := NewRoman("IV")
	x, _ := NewCharacter('x')
	_, err = NewNumericMajor(iv, WithPrefix(x))
	assert.True(t, cdnerrors.IsCode(err, cdnerrors.ErrCodeInvalidDelimiter))
}

func TestNewVersionSlotDelimiters(t *testing.T) {
	one := mustDigits(t, "1")
	two := mustDigits(t, "2")

	bare, err := NewDelimitedNumerical(nil, two)
	require.NoError(t, err)
	x, _ := NewCharacter('x')
	lettered, err := NewDelimitedNumerical(x, two)
	require.NoError(t, err)

	tests := []struct {
		name string
		opts []Option
	}{
		{"minor without delimiter", []Option{WithMinor(bare)}},
		{"minor after a letter", []Option{WithMinor(lettered)}},
		{"minor after plus", []Option{WithMinor(mustDelimited(t, '+', "2"))}},
		{"patch without delimiter", []Option{WithMinor(mustDelimited(t, '.', "2")), WithPatch(bare)}},
		{"micro after dash", []Option{
			WithMinor(mustDelimited(t, '.', "2")),
			WithPatch(mustDelimited(t, '.', "3")),
			WithMicro(NewNumericTokenList(mustDelimited(t, '-', "4"))),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNumericMajor(one, tt.opts...)
			assert.True(t, cdnerrors.IsCode(err, cdnerrors.ErrCodeInvalidDelimiter), "got %v", err)
		})
	}

	// Accepted slots keep their boundaries through the canonical value.
	v, err := NewNumericMajor(one,
		WithMinor(mustDelimited(t, '_', "2")),
		WithPatch(mustDelimited(t, '-', "3")))
	require.NoError(t, err)
	assert.True(t, v.ExactEquals(MustParse(v.CanonicalValue())))
}

func TestNilVersionAccessors(t *testing.T) {
	var v *SoftwareVersion
	assert.Equal(t, VariantNumericMajor, v.Variant())
	assert.Equal(t, "", v.CanonicalValue())
	assert.Equal(t, "", v.SourceCharacters())
	assert.Equal(t, "", v.String())
	assert.Nil(t, v.Prefix())
	assert.Nil(t, v.Major())
	assert.Nil(t, v.Minor())
	assert.Nil(t, v.Patch())
	assert.True(t, v.Micro().IsEmpty())
	assert.True(t, v.PreRelease().IsEmpty())
	assert.True(t, v.Build().IsEmpty())
	assert.False(t, v.IsPreRelease())
}

func TestNewNameMajor(t *testing.T) {
	name, _ := NewString("stable")
	v, err := NewNameMajor(name, WithMinor(mustDelimited(t, '-', "1")))
	require.NoError(t, err)
	assert.Equal(t, VariantNameMajor, v.Variant())
	assert.Equal(t, "stable-1", v.String())
	assert.Equal(t, 1, Compare(v, MustParse("99")))

	dot, _ := NewCharacter('.')
	wrapped, err := NewDelimited(dot, name)
	require.NoError(t, err)
	_, err = NewNameMajor(wrapped)
	assert.NoError(t, err)
}

func TestDocument(t *testing.T) {
	doc := MustParse("v1.02.3-rc.1+sha.7").Document()
	assert.Equal(t, "v1.02.3-rc.1+sha.7", doc.Source)
	assert.Equal(t, "numeric", doc.Variant)
	assert.Equal(t, "v", doc.Prefix)
	assert.Equal(t, "02", doc.Minor)
	assert.True(t, doc.IsPreRelease)

	require.Len(t, doc.Tokens, 8)
	assert.Equal(t, TokenDocument{Part: "minor", Kind: "Digits8Bit", Delimiter: ".", Value: "02"}, doc.Tokens[2])
	assert.Equal(t, TokenDocument{Part: "preRelease", Kind: "String", Delimiter: "-", Value: "rc"}, doc.Tokens[4])

	var nilVersion *SoftwareVersion
	assert.Equal(t, Document{}, nilVersion.Document())
}

func TestMarshal(t *testing.T) {
	v := MustParse("v1.2.3-beta")

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"canonical":"v1.2.3-beta"`)
	assert.Contains(t, string(b), `"isPreRelease":true`)

	y, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(y), "canonical: v1.2.3-beta")

	var doc Document
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "1", doc.Major)
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "numeric", VariantNumericMajor.String())
	assert.Equal(t, "name", VariantNameMajor.String())
}
