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
	"iter"
	"slices"
	"strings"
)

// TokenList is an ordered, immutable sequence of delimited tokens. It holds
// the pre-release and build parts of a version and the runs of a mixed
// segment such as "rc2".
type TokenList struct {
	items []DelimitedToken
}

// NewTokenList returns a list holding a copy of items.
func NewTokenList(items ...DelimitedToken) TokenList {
	return TokenList{items: slices.Clone(items)}
}

// Count returns the number of members.
func (l TokenList) Count() int { return len(l.items) }

// At returns the i'th member.
func (l TokenList) At(i int) Token { return l.items[i] }

// Item returns the i'th member as a DelimitedToken.
func (l TokenList) Item(i int) DelimitedToken { return l.items[i] }

// Items returns a copy of the members.
func (l TokenList) Items() []DelimitedToken { return slices.Clone(l.items) }

// All iterates over the members in order.
func (l TokenList) All() iter.Seq2[int, DelimitedToken] {
	return func(yield func(int, DelimitedToken) bool) {
		for i, t := range l.items {
			if !yield(i, t) {
				return
			}
		}
	}
}

// IsEmpty reports whether the list has no members.
func (l TokenList) IsEmpty() bool { return len(l.items) == 0 }

func (l TokenList) Kind() Kind { return KindTokenList }

func (l TokenList) Len(includeAllSourceChars bool) int {
	n := 0
	for _, t := range l.items {
		n += t.Len(includeAllSourceChars)
	}
	return n
}

func (l TokenList) CanonicalValue() string {
	var b strings.Builder
	for _, t := range l.items {
		b.WriteString(t.CanonicalValue())
	}
	return b.String()
}

func (l TokenList) SourceCharacters() string {
	var b strings.Builder
	for _, t := range l.items {
		b.WriteString(t.SourceCharacters())
	}
	return b.String()
}

func (l TokenList) Compare(o Token) int { return CompareTokens(l, o) }
func (l TokenList) Equals(o Token) bool { return CompareTokens(l, o) == 0 }
func (TokenList) isToken() {}

// with returns a new list with t appended.
func (l TokenList) with(t DelimitedToken) TokenList {
	return TokenList{items: append(slices.Clip(l.items), t)}
}

// NumericTokenList is an ordered, immutable sequence of delimited numeric
// tokens. It holds the Micro part of a version.
type NumericTokenList struct {
	items []DelimitedNumericalToken
}

// NewNumericTokenList returns a list holding a copy of items.
func NewNumericTokenList(items ...DelimitedNumericalToken) NumericTokenList {
	return NumericTokenList{items: slices.Clone(items)}
}

// Count returns the number of members.
func (l NumericTokenList) Count() int { return len(l.items) }

// At returns the i'th member.
func (l NumericTokenList) At(i int) Token { return l.items[i] }

// Item returns the i'th member as a DelimitedNumericalToken.
func (l NumericTokenList) Item(i int) DelimitedNumericalToken { return l.items[i] }

// Items returns a copy of the members.
func (l NumericTokenList) Items() []DelimitedNumericalToken { return slices.Clone(l.items) }

// All iterates over the members in order.
func (l NumericTokenList) All() iter.Seq2[int, DelimitedNumericalToken] {
	return func(yield func(int, DelimitedNumericalToken) bool) {
		for i, t := range l.items {
			if !yield(i, t) {
				return
			}
		}
	}
}

// IsEmpty reports whether the list has no members.
func (l NumericTokenList) IsEmpty() bool { return len(l.items) == 0 }

func (l NumericTokenList) Kind() Kind { return KindNumericTokenList }

func (l NumericTokenList) Len(includeAllSourceChars bool) int {
	n := 0
	for _, t := range l.items {
		n += t.Len(includeAllSourceChars)
	}
	return n
}

func (l NumericTokenList) CanonicalValue() string {
	var b strings.Builder
	for _, t := range l.items {
		b.WriteString(t.CanonicalValue())
	}
	return b.String()
}

func (l NumericTokenList) SourceCharacters() string {
	var b strings.Builder
	for _, t := range l.items {
		b.WriteString(t.SourceCharacters())
	}
	return b.String()
}

func (l NumericTokenList) Compare(o Token) int { return CompareTokens(l, o) }
func (l NumericTokenList) Equals(o Token) bool { return CompareTokens(l, o) == 0 }
func (NumericTokenList) isToken() {}

func (l NumericTokenList) with(t DelimitedNumericalToken) NumericTokenList {
	return NumericTokenList{items: append(slices.Clip(l.items), t)}
}
